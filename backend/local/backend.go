package local

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"syscall"

	"github.com/mwantia/cleanup/backend"
)

// LocalBackend provides access to the local filesystem.
type LocalBackend struct {
	mu sync.RWMutex
}

func NewLocalBackend() *LocalBackend {
	return &LocalBackend{}
}

// Returns the identifier name defined for this backend
func (*LocalBackend) Name() string {
	return "local"
}

func (lb *LocalBackend) Open(ctx context.Context) error {
	return nil
}

func (lb *LocalBackend) Close(ctx context.Context) error {
	return nil
}

func (lb *LocalBackend) Stat(ctx context.Context, path string) (*backend.Entry, error) {
	lb.mu.RLock()
	defer lb.mu.RUnlock()

	info, err := os.Stat(path)
	if err != nil {
		return nil, mapError(err)
	}

	return toEntry(filepath.Clean(path), info), nil
}

func (lb *LocalBackend) ReadDir(ctx context.Context, path string) ([]*backend.Entry, error) {
	lb.mu.RLock()
	defer lb.mu.RUnlock()

	info, err := os.Stat(path)
	if err != nil {
		return nil, mapError(err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", backend.ErrNotDirectory, path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, mapError(err)
	}

	result := make([]*backend.Entry, 0, len(entries))
	for _, entry := range entries {
		childInfo, err := entry.Info()
		if err != nil {
			continue
		}

		result = append(result, toEntry(filepath.Join(path, entry.Name()), childInfo))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result, nil
}

func (lb *LocalBackend) MkdirAll(ctx context.Context, path string) error {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	if err := os.MkdirAll(path, 0755); err != nil {
		if errors.Is(err, syscall.ENOTDIR) {
			return fmt.Errorf("%w: %s", backend.ErrNotDirectory, path)
		}
		return mapError(err)
	}

	return nil
}

func (lb *LocalBackend) Rename(ctx context.Context, oldPath, newPath string) error {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	info, err := os.Stat(oldPath)
	if err != nil {
		return mapError(err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", backend.ErrIsDirectory, oldPath)
	}

	if target, err := os.Stat(newPath); err == nil && target.IsDir() {
		return fmt.Errorf("%w: %s", backend.ErrIsDirectory, newPath)
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return mapError(err)
	}

	return nil
}

func toEntry(path string, info fs.FileInfo) *backend.Entry {
	return &backend.Entry{
		Name:    info.Name(),
		Path:    path,
		IsDir:   info.IsDir(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}
}

func mapError(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", backend.ErrNotExist, err)
	}
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%w: %v", backend.ErrPermission, err)
	}

	return err
}
