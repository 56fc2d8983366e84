package cleanup

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mwantia/cleanup/journal"
	"github.com/mwantia/cleanup/log"
)

// Journal records every file that was moved.
type Journal interface {
	Record(ctx context.Context, entry journal.Entry) error
}

type Options struct {
	DryRun  bool
	NoColor bool

	// Included limits the run to these extensions; empty means every extension.
	Included []string
	Excluded []string

	// Skip contains absolute paths that are never touched, e.g. the running executable.
	Skip []string

	Logger  *log.Logger
	Journal Journal
	Output  io.Writer
}

type Option func(*Options) error

func newDefaultOptions() *Options {
	return &Options{
		Output: os.Stdout,
		Logger: log.NewLogger("cleanup", log.Info, log.WithoutTerminal()),
	}
}

func WithDryRun(dryRun bool) Option {
	return func(opts *Options) error {
		opts.DryRun = dryRun
		return nil
	}
}

func WithIncluded(extensions ...string) Option {
	return func(opts *Options) error {
		opts.Included = append(opts.Included, normalizeExtensions(extensions)...)
		return nil
	}
}

func WithExcluded(extensions ...string) Option {
	return func(opts *Options) error {
		opts.Excluded = append(opts.Excluded, normalizeExtensions(extensions)...)
		return nil
	}
}

func WithSkip(paths ...string) Option {
	return func(opts *Options) error {
		for _, path := range paths {
			if path == "" {
				continue
			}

			abs, err := absolute(path)
			if err != nil {
				return err
			}
			opts.Skip = append(opts.Skip, abs)
		}
		return nil
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(opts *Options) error {
		opts.Logger = logger
		return nil
	}
}

func WithJournal(journal Journal) Option {
	return func(opts *Options) error {
		opts.Journal = journal
		return nil
	}
}

func WithOutput(w io.Writer) Option {
	return func(opts *Options) error {
		opts.Output = w
		return nil
	}
}

func WithoutColor() Option {
	return func(opts *Options) error {
		opts.NoColor = true
		return nil
	}
}

// ParseExtensions splits a comma separated list such as "txt, .mp4" into extensions.
func ParseExtensions(list string) []string {
	return normalizeExtensions(strings.Split(list, ","))
}

func normalizeExtensions(extensions []string) []string {
	result := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext != "" {
			result = append(result, ext)
		}
	}

	return result
}

func (o *Options) skips(path string) bool {
	path = filepath.Clean(path)
	for _, skip := range o.Skip {
		if skip == path {
			return true
		}
	}

	return false
}
