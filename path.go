package cleanup

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mwantia/cleanup/backend"
)

// DefaultTargetDir is the directory created inside the source when no target is given.
const DefaultTargetDir = ".archive"

// DefaultTarget returns the target used when only a source was given.
func DefaultTarget(source string) string {
	return filepath.Join(source, DefaultTargetDir)
}

// ResolveDirectories makes source and target absolute, verifies the source is an existing
// directory and creates the target unless dryRun is set.
func ResolveDirectories(ctx context.Context, storage backend.Storage, source, target string, dryRun bool) (string, string, error) {
	sourcePath, err := absolute(source)
	if err != nil {
		return "", "", err
	}

	targetPath, err := absolute(target)
	if err != nil {
		return "", "", err
	}

	entry, err := storage.Stat(ctx, sourcePath)
	if err != nil {
		if errors.Is(err, backend.ErrNotExist) {
			return "", "", fmt.Errorf("%w: %s", ErrSourceNotFound, sourcePath)
		}
		return "", "", err
	}
	if !entry.IsDir {
		return "", "", fmt.Errorf("%w: %s", ErrNotDirectory, sourcePath)
	}

	if !dryRun {
		if err := storage.MkdirAll(ctx, targetPath); err != nil {
			return "", "", fmt.Errorf("%w: %s: %v", ErrCreateDirectory, targetPath, err)
		}
	}

	return sourcePath, targetPath, nil
}

// ResolveRelative places path inside dir unless it is already absolute.
func ResolveRelative(dir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}

	return filepath.Join(dir, path)
}

func absolute(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidPath, path, err)
	}

	return abs, nil
}
