package cleanup

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mwantia/cleanup/backend"
	"github.com/mwantia/cleanup/journal"
	"github.com/mwantia/cleanup/log"
)

// Organizer sorts the files of a source directory into per-extension buckets of a target.
type Organizer struct {
	storage  backend.Storage
	options  *Options
	logger   *log.Logger
	reporter *reporter
}

func NewOrganizer(storage backend.Storage, opts ...Option) (*Organizer, error) {
	options := newDefaultOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	if options.Logger == nil {
		options.Logger = newDefaultOptions().Logger
	}

	return &Organizer{
		storage:  storage,
		options:  options,
		logger:   options.Logger.Named("organizer"),
		reporter: newReporter(options.Output, options.NoColor),
	}, nil
}

// Run accepts every file directly inside source. Directories and skipped paths are ignored.
// Failures of single files never stop the run; they are printed and collected in the report.
// The returned error is only set if the source cannot be listed or ctx is done.
func (o *Organizer) Run(ctx context.Context, source, target string) (*Report, error) {
	report := newReport(uuid.New())

	o.logger.Info("Starting run %s (source: %s, target: %s, dry-run: %t)", report.RunID, source, target, o.options.DryRun)

	entries, err := o.storage.ReadDir(ctx, source)
	if err != nil {
		o.logger.Error("Failed to read directory %s: %v", source, err)
		return nil, fmt.Errorf("failed to read directory %q: %w", source, err)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			o.logger.Warn("Run %s cancelled: %v", report.RunID, err)
			return report, err
		}

		if entry.IsDir || o.options.skips(entry.Path) {
			o.logger.Debug("Ignoring %s", entry.Path)
			continue
		}

		acceptance, err := Accept(ctx, o.storage, entry.Path, target, o.options)
		if err != nil {
			o.logger.Error("%v", err)
			o.reporter.failure(err)
			report.addError(err)
			continue
		}

		o.logger.Info("%s %s -> %s", acceptance.Result, entry.Path, acceptance.Destination)
		o.reporter.result(acceptance.Result, entry.Path)
		report.add(acceptance)

		if acceptance.Result == Moved && o.options.Journal != nil {
			if err := o.record(ctx, report, entry.Path, acceptance); err != nil {
				o.logger.Warn("%v", err)
				report.addError(err)
			}
		}
	}

	o.logger.Info("Finished run %s: %s", report.RunID, report)

	return report, nil
}

func (o *Organizer) record(ctx context.Context, report *Report, source string, acceptance *Acceptance) error {
	err := o.options.Journal.Record(ctx, journal.Entry{
		RunID:       report.RunID.String(),
		Source:      source,
		Destination: acceptance.Destination,
		Extension:   acceptance.Extension,
	})
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrJournal, source, err)
	}

	return nil
}
