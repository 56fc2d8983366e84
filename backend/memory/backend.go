package memory

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mwantia/cleanup/backend"
	"github.com/tidwall/btree"
)

// MemoryBackend keeps a whole directory tree in memory.
// Entries are indexed by their cleaned absolute path, so children of a directory are
// always adjacent in key order.
type MemoryBackend struct {
	mu sync.RWMutex

	entries *btree.Map[string, *backend.Entry]
}

func NewMemoryBackend() *MemoryBackend {
	mb := &MemoryBackend{
		entries: btree.NewMap[string, *backend.Entry](0),
	}
	mb.reset()

	return mb
}

// Returns the identifier name defined for this backend
func (*MemoryBackend) Name() string {
	return "memory"
}

// Open is part of the lifecycle behaviour and gets called before the first operation.
func (mb *MemoryBackend) Open(ctx context.Context) error {
	// No initialization needed - backend is ready to use
	return nil
}

// Close is part of the lifecycle behaviour and drops every entry except the root.
func (mb *MemoryBackend) Close(ctx context.Context) error {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	mb.reset()
	return nil
}

func (mb *MemoryBackend) reset() {
	root := string(filepath.Separator)

	mb.entries.Clear()
	mb.entries.Set(root, &backend.Entry{
		Name:    root,
		Path:    root,
		IsDir:   true,
		ModTime: time.Now(),
	})
}

func (mb *MemoryBackend) Stat(ctx context.Context, path string) (*backend.Entry, error) {
	mb.mu.RLock()
	defer mb.mu.RUnlock()

	key, err := toKey(path)
	if err != nil {
		return nil, err
	}

	entry, ok := mb.entries.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", backend.ErrNotExist, path)
	}

	copied := *entry
	return &copied, nil
}

func (mb *MemoryBackend) ReadDir(ctx context.Context, path string) ([]*backend.Entry, error) {
	mb.mu.RLock()
	defer mb.mu.RUnlock()

	key, err := toKey(path)
	if err != nil {
		return nil, err
	}

	dir, ok := mb.entries.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", backend.ErrNotExist, path)
	}
	if !dir.IsDir {
		return nil, fmt.Errorf("%w: %s", backend.ErrNotDirectory, path)
	}

	prefix := childPrefix(key)
	result := make([]*backend.Entry, 0)

	mb.entries.Ascend(prefix, func(child string, entry *backend.Entry) bool {
		if !strings.HasPrefix(child, prefix) {
			return false
		}
		if child == key {
			return true
		}

		// Skip anything nested deeper than one level
		if strings.ContainsRune(child[len(prefix):], filepath.Separator) {
			return true
		}

		copied := *entry
		result = append(result, &copied)
		return true
	})

	return result, nil
}

func (mb *MemoryBackend) MkdirAll(ctx context.Context, path string) error {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	key, err := toKey(path)
	if err != nil {
		return err
	}

	return mb.mkdirAll(key)
}

func (mb *MemoryBackend) mkdirAll(key string) error {
	if entry, ok := mb.entries.Get(key); ok {
		if !entry.IsDir {
			return fmt.Errorf("%w: %s", backend.ErrNotDirectory, key)
		}
		return nil
	}

	if err := mb.mkdirAll(filepath.Dir(key)); err != nil {
		return err
	}

	mb.entries.Set(key, &backend.Entry{
		Name:    filepath.Base(key),
		Path:    key,
		IsDir:   true,
		ModTime: time.Now(),
	})

	return nil
}

func (mb *MemoryBackend) Rename(ctx context.Context, oldPath, newPath string) error {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	oldKey, err := toKey(oldPath)
	if err != nil {
		return err
	}
	newKey, err := toKey(newPath)
	if err != nil {
		return err
	}

	entry, ok := mb.entries.Get(oldKey)
	if !ok {
		return fmt.Errorf("%w: %s", backend.ErrNotExist, oldPath)
	}
	if entry.IsDir {
		return fmt.Errorf("%w: %s", backend.ErrIsDirectory, oldPath)
	}

	if err := mb.requireDir(filepath.Dir(newKey)); err != nil {
		return err
	}
	if existing, ok := mb.entries.Get(newKey); ok && existing.IsDir {
		return fmt.Errorf("%w: %s", backend.ErrIsDirectory, newPath)
	}

	mb.entries.Delete(oldKey)
	mb.entries.Set(newKey, &backend.Entry{
		Name:    filepath.Base(newKey),
		Path:    newKey,
		Size:    entry.Size,
		ModTime: entry.ModTime,
	})

	return nil
}

// CreateFile adds a file of the given size. The parent directory must exist.
func (mb *MemoryBackend) CreateFile(ctx context.Context, path string, size int64) error {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	key, err := toKey(path)
	if err != nil {
		return err
	}

	if err := mb.requireDir(filepath.Dir(key)); err != nil {
		return err
	}
	if existing, ok := mb.entries.Get(key); ok && existing.IsDir {
		return fmt.Errorf("%w: %s", backend.ErrIsDirectory, path)
	}

	mb.entries.Set(key, &backend.Entry{
		Name:    filepath.Base(key),
		Path:    key,
		Size:    size,
		ModTime: time.Now(),
	})

	return nil
}

func (mb *MemoryBackend) requireDir(key string) error {
	entry, ok := mb.entries.Get(key)
	if !ok {
		return fmt.Errorf("%w: %s", backend.ErrNotExist, key)
	}
	if !entry.IsDir {
		return fmt.Errorf("%w: %s", backend.ErrNotDirectory, key)
	}

	return nil
}

func toKey(path string) (string, error) {
	if !filepath.IsAbs(path) {
		return "", fmt.Errorf("%w: %q is not absolute", backend.ErrInvalidPath, path)
	}

	return filepath.Clean(path), nil
}

func childPrefix(key string) string {
	if strings.HasSuffix(key, string(filepath.Separator)) {
		return key
	}

	return key + string(filepath.Separator)
}
