package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mwantia/cleanup"
	"github.com/mwantia/cleanup/backend/local"
	"github.com/mwantia/cleanup/cmd"
	"github.com/mwantia/cleanup/journal"
	"github.com/mwantia/cleanup/log"
)

// Overridden at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

const defaultLogFile = "cleanup.log"

func newApp() *cmd.App {
	return cmd.NewApp("cleanup").
		AddFlag(cmd.NewFlag("log").
			Describe("Creates (or disables) a log-file in the target folder. Default is 'cleanup.log'.").
			WithDefault(func(map[string]string) string { return defaultLogFile }).
			DescribeValue("file|boolean").
			Abbr("-l").
			Abbr("--log-file")).
		AddFlag(cmd.NewFlag("dry").
			Describe("Performs a dry-run, e.g. nothing gets moved.").
			Abbr("-d").
			Abbr("--dry").
			Abbr("--dry-run")).
		AddFlag(cmd.NewFlag("excluded").
			Describe("Exclude certain files by their extension.").
			Expects(true).
			DescribeValue("extensions...").
			Abbr("-e").
			Abbr("--ext")).
		AddFlag(cmd.NewFlag("included").
			Describe("Only sort files with one of these extensions.").
			Expects(true).
			DescribeValue("extensions...").
			Abbr("-i").
			Abbr("--include")).
		AddFlag(cmd.NewFlag("journal").
			Describe("Records every move in a sqlite journal inside the target folder.").
			Expects(true).
			DescribeValue("file").
			Abbr("-j").
			Abbr("--journal")).
		AddFlag(cmd.NewFlag("log-level").
			Describe("Minimum level written to the log-file. Default is 'info'.").
			WithDefault(func(map[string]string) string { return "info" }).
			DescribeValue("level").
			Validate(func(value string) error {
				_, err := log.ParseLevel(value)
				return err
			}).
			Abbr("--log-level")).
		AddFlag(cmd.NewFlag("help").
			Describe("Prints this help text.").
			Abbr("-h").
			Abbr("--help")).
		AddFlag(cmd.NewFlag("version").
			Describe("Prints the current version.").
			Abbr("-v").
			Abbr("--version")).
		AddValue(cmd.NewValue("source").
			WithDefault(func(map[string]string) string { return "." }).
			Describe("Source directory. Default is the current directory.")).
		AddValue(cmd.NewValue("target").
			WithDefault(func(resolved map[string]string) string {
				return cleanup.DefaultTarget(resolved["source"])
			}).
			Describe("Target directory. Default is source + .archive."))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Stdout, os.Stderr, os.Args)
	stop()

	os.Exit(code)
}

func run(ctx context.Context, stdout, stderr io.Writer, args []string) int {
	app := newApp()

	result, err := app.Consume(args)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n\n", err)
		app.PrintHelp(stderr)
		return 2
	}

	if result.HasFlag("help") {
		app.PrintHelp(stdout)
		return 0
	}
	if result.HasFlag("version") {
		fmt.Fprintf(stdout, "v%s\n", version)
		return 0
	}

	if err := organize(ctx, stdout, result); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func organize(ctx context.Context, stdout io.Writer, result *cmd.Result) error {
	storage := local.NewLocalBackend()
	if err := storage.Open(ctx); err != nil {
		return fmt.Errorf("failed to open %s backend: %w", storage.Name(), err)
	}
	defer storage.Close(ctx)

	dryRun := result.HasFlag("dry")
	source, _ := result.GetValue("source")
	target, _ := result.GetValue("target")

	source, target, err := cleanup.ResolveDirectories(ctx, storage, source, target, dryRun)
	if err != nil {
		return err
	}

	opts := []cleanup.Option{
		cleanup.WithOutput(stdout),
		cleanup.WithDryRun(dryRun),
	}
	if excluded, ok := result.GetArg("excluded"); ok {
		opts = append(opts, cleanup.WithExcluded(cleanup.ParseExtensions(excluded)...))
	}
	if included, ok := result.GetArg("included"); ok {
		opts = append(opts, cleanup.WithIncluded(cleanup.ParseExtensions(included)...))
	}
	if exe, err := os.Executable(); err == nil {
		opts = append(opts, cleanup.WithSkip(exe))
	}

	levelName, _ := result.GetArg("log-level")
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return err
	}

	logFile, _ := result.GetArg("log")
	if path, ok := logFilePath(target, logFile); ok && !dryRun {
		logger := log.NewLogger("cleanup", level, log.WithFile(path), log.WithoutTerminal())
		defer logger.Close()

		opts = append(opts, cleanup.WithLogger(logger), cleanup.WithSkip(path))
	}

	if journalFile, ok := result.GetArg("journal"); ok && !dryRun {
		path := cleanup.ResolveRelative(target, journalFile)

		j, err := journal.Open(path)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", cleanup.ErrJournal, path, err)
		}
		defer j.Close()

		opts = append(opts, cleanup.WithJournal(j), cleanup.WithSkip(path, path+"-wal", path+"-shm"))
	}

	organizer, err := cleanup.NewOrganizer(storage, opts...)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Using the following paths:\n | Source: %q\n | Target: %q\n\n", source, target)

	report, err := organizer.Run(ctx, source, target)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "\n%s\n", report)
	return nil
}

// logFilePath resolves the log flag: the literals "false" and "true" toggle the default file,
// anything else is a path relative to the target.
func logFilePath(target, value string) (string, bool) {
	switch value {
	case "false":
		return "", false
	case "true":
		value = defaultLogFile
	}

	return cleanup.ResolveRelative(target, value), true
}
