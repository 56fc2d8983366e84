package backend

import "context"

// Storage provides the file operations needed to sort a directory into buckets.
// All paths are absolute and cleaned.
type Storage interface {
	Backend

	// Stat returns the entry at path or ErrNotExist.
	Stat(ctx context.Context, path string) (*Entry, error)

	// ReadDir returns the direct children of a directory, sorted by name.
	ReadDir(ctx context.Context, path string) ([]*Entry, error)

	// MkdirAll creates path and every missing parent.
	// Returns ErrNotDirectory if a file is in the way.
	MkdirAll(ctx context.Context, path string) error

	// Rename moves a file from oldPath to newPath, replacing an existing file.
	// The parent of newPath must exist.
	Rename(ctx context.Context, oldPath, newPath string) error
}
