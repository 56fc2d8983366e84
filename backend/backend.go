package backend

import (
	"context"
	"time"
)

// Backend is used as lifecycle entrypoint for storage implementations.
type Backend interface {
	// Name returns the identifier name defined for this backend
	Name() string
	// Open is part of the lifecycle behaviour and gets called before the first operation.
	Open(ctx context.Context) error
	// Close is part of the lifecycle behaviour and gets called once the backend is no longer used.
	Close(ctx context.Context) error
}

// Entry describes a single file or directory returned by a storage.
type Entry struct {
	Name    string
	Path    string
	IsDir   bool
	Size    int64
	ModTime time.Time
}
