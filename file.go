package cleanup

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mwantia/cleanup/backend"
)

// FileResult describes what happened to a single accepted file.
type FileResult int

const (
	Moved FileResult = iota
	Skipped
	Checked
)

func (r FileResult) String() string {
	switch r {
	case Moved:
		return "moved"
	case Skipped:
		return "skipped"
	case Checked:
		return "checked"
	default:
		return "unknown"
	}
}

// Acceptance is the outcome of Accept for a file.
type Acceptance struct {
	Result      FileResult
	Extension   string
	Destination string
}

// Extension returns the extension of a file name without the leading dot.
// Dotfiles without a further dot (".gitignore") and names ending in a dot have none.
func Extension(name string) (string, bool) {
	base := strings.TrimPrefix(filepath.Base(name), ".")

	idx := strings.LastIndex(base, ".")
	if idx < 0 || idx == len(base)-1 {
		return "", false
	}

	return base[idx+1:], true
}

// Accept moves the file at path into target/<extension>, unless it is filtered or
// the options request a dry-run.
func Accept(ctx context.Context, storage backend.Storage, path, target string, opts *Options) (*Acceptance, error) {
	ext, ok := Extension(path)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoExtension, path)
	}

	destDir := filepath.Join(target, ext)
	acceptance := &Acceptance{
		Result:      Skipped,
		Extension:   ext,
		Destination: filepath.Join(destDir, filepath.Base(path)),
	}

	if len(opts.Included) > 0 && !slices.Contains(opts.Included, ext) {
		return acceptance, nil
	}
	if slices.Contains(opts.Excluded, ext) {
		return acceptance, nil
	}

	if opts.DryRun {
		acceptance.Result = Checked
		return acceptance, nil
	}

	if err := storage.MkdirAll(ctx, destDir); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrCreateDirectory, destDir, err)
	}

	if err := storage.Rename(ctx, path, acceptance.Destination); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrMoveFailed, path, err)
	}

	acceptance.Result = Moved
	return acceptance, nil
}
