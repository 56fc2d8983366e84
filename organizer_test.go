package cleanup_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mwantia/cleanup"
	"github.com/mwantia/cleanup/backend"
	"github.com/mwantia/cleanup/backend/memory"
	"github.com/mwantia/cleanup/journal"
)

var testFiles = []string{
	"t1.txt",
	"t2.txt",
	"m1.mp4",
	"m2.mp4",
	"f1.psd",
	"f2.psd",
	".ignored-file",
}

// newTestSource creates a memory storage with the test files in /src and returns it
// together with the source and the default target.
func newTestSource(t *testing.T) (*memory.MemoryBackend, string, string) {
	t.Helper()

	ctx := t.Context()
	storage := memory.NewMemoryBackend()
	source := filepath.Join(string(filepath.Separator), "src")

	if err := storage.MkdirAll(ctx, filepath.Join(source, "nested")); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	for _, file := range testFiles {
		if err := storage.CreateFile(ctx, filepath.Join(source, file), 1); err != nil {
			t.Fatalf("CreateFile failed: %v", err)
		}
	}

	return storage, source, cleanup.DefaultTarget(source)
}

func runOrganizer(t *testing.T, storage backend.Storage, source, target string, opts ...cleanup.Option) (*cleanup.Report, string) {
	t.Helper()

	ctx := t.Context()
	var out bytes.Buffer

	opts = append(opts, cleanup.WithOutput(&out), cleanup.WithoutColor())

	var probe cleanup.Options
	for _, opt := range opts {
		if err := opt(&probe); err != nil {
			t.Fatalf("Option failed: %v", err)
		}
	}

	src, tgt, err := cleanup.ResolveDirectories(ctx, storage, source, target, probe.DryRun)
	if err != nil {
		t.Fatalf("ResolveDirectories failed: %v", err)
	}

	organizer, err := cleanup.NewOrganizer(storage, opts...)
	if err != nil {
		t.Fatalf("NewOrganizer failed: %v", err)
	}

	report, err := organizer.Run(ctx, src, tgt)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	return report, out.String()
}

func verifyFileTree(t *testing.T, storage backend.Storage, paths []string, expected bool) {
	t.Helper()

	for _, path := range paths {
		_, err := storage.Stat(t.Context(), path)
		if exists := err == nil; exists != expected {
			t.Errorf("Path %s: exists = %v, want %v", path, exists, expected)
		}
	}
}

func TestOrganizer_SimpleSort(t *testing.T) {
	storage, source, target := newTestSource(t)

	report, out := runOrganizer(t, storage, source, target)

	verifyFileTree(t, storage, []string{
		filepath.Join(target, "txt", "t1.txt"),
		filepath.Join(target, "txt", "t2.txt"),
		filepath.Join(target, "mp4", "m1.mp4"),
		filepath.Join(target, "mp4", "m2.mp4"),
		filepath.Join(target, "psd", "f1.psd"),
		filepath.Join(target, "psd", "f2.psd"),
		filepath.Join(source, ".ignored-file"),
		filepath.Join(source, "nested"),
	}, true)

	verifyFileTree(t, storage, []string{
		filepath.Join(source, "t1.txt"),
		filepath.Join(source, "f2.psd"),
	}, false)

	if report.Moved != 6 || report.Errored != 1 {
		t.Errorf("Unexpected report: %s", report)
	}
	if !errors.Is(report.Err(), cleanup.ErrNoExtension) {
		t.Errorf("Expected ErrNoExtension in report, got %v", report.Err())
	}

	want := []cleanup.ExtensionCount{
		{Extension: "mp4", Count: 2},
		{Extension: "psd", Count: 2},
		{Extension: "txt", Count: 2},
	}
	if diff := cmp.Diff(want, report.Extensions()); diff != "" {
		t.Errorf("Extensions mismatch (-want +got):\n%s", diff)
	}

	if !strings.Contains(out, `♻ Moved: "`+filepath.Join(source, "t1.txt")+`"`) {
		t.Errorf("Expected moved status line, got:\n%s", out)
	}
	if !strings.Contains(out, "✖ Errored:") {
		t.Errorf("Expected errored status line, got:\n%s", out)
	}
}

func TestOrganizer_CustomTarget(t *testing.T) {
	storage, source, _ := newTestSource(t)
	target := filepath.Join(source, "sorted")

	runOrganizer(t, storage, source, target)

	verifyFileTree(t, storage, []string{
		filepath.Join(target, "txt", "t1.txt"),
		filepath.Join(target, "mp4", "m2.mp4"),
		filepath.Join(target, "psd", "f1.psd"),
	}, true)
	verifyFileTree(t, storage, []string{
		cleanup.DefaultTarget(source),
	}, false)
}

func TestOrganizer_ExcludeExtensions(t *testing.T) {
	storage, source, target := newTestSource(t)

	report, out := runOrganizer(t, storage, source, target, cleanup.WithExcluded(cleanup.ParseExtensions("txt,mp4")...))

	verifyFileTree(t, storage, []string{
		filepath.Join(target, "psd", "f1.psd"),
		filepath.Join(target, "psd", "f2.psd"),
		filepath.Join(source, "t1.txt"),
		filepath.Join(source, "t2.txt"),
		filepath.Join(source, "m1.mp4"),
		filepath.Join(source, "m2.mp4"),
	}, true)

	if report.Moved != 2 || report.Skipped != 4 {
		t.Errorf("Unexpected report: %s", report)
	}
	if !strings.Contains(out, "⊙ Skipped:") {
		t.Errorf("Expected skipped status line, got:\n%s", out)
	}
}

func TestOrganizer_IncludeExtensions(t *testing.T) {
	storage, source, target := newTestSource(t)

	report, _ := runOrganizer(t, storage, source, target, cleanup.WithIncluded("txt"))

	verifyFileTree(t, storage, []string{
		filepath.Join(target, "txt", "t1.txt"),
		filepath.Join(source, "m1.mp4"),
		filepath.Join(source, "f1.psd"),
	}, true)

	if report.Moved != 2 || report.Skipped != 4 {
		t.Errorf("Unexpected report: %s", report)
	}
}

func TestOrganizer_DryRun(t *testing.T) {
	storage, source, target := newTestSource(t)

	report, out := runOrganizer(t, storage, source, target, cleanup.WithDryRun(true), cleanup.WithExcluded("txt", "mp4"))

	verifyFileTree(t, storage, []string{
		filepath.Join(source, "f1.psd"),
		filepath.Join(source, "t1.txt"),
		filepath.Join(source, "m1.mp4"),
	}, true)
	verifyFileTree(t, storage, []string{target}, false)

	if report.Checked != 2 || report.Moved != 0 {
		t.Errorf("Unexpected report: %s", report)
	}
	if !strings.Contains(out, "✔ Matched:") {
		t.Errorf("Expected matched status line, got:\n%s", out)
	}
}

func TestOrganizer_SkipPaths(t *testing.T) {
	storage, source, target := newTestSource(t)

	report, _ := runOrganizer(t, storage, source, target, cleanup.WithSkip(filepath.Join(source, "t1.txt")))

	verifyFileTree(t, storage, []string{
		filepath.Join(source, "t1.txt"),
		filepath.Join(target, "txt", "t2.txt"),
	}, true)

	if report.Moved != 5 {
		t.Errorf("Unexpected report: %s", report)
	}
}

func TestOrganizer_Journal(t *testing.T) {
	storage, source, target := newTestSource(t)

	j, err := journal.Open(":memory:")
	if err != nil {
		t.Fatalf("journal.Open failed: %v", err)
	}
	defer j.Close()

	report, _ := runOrganizer(t, storage, source, target, cleanup.WithJournal(j))

	entries, err := j.Entries(t.Context(), report.RunID.String())
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}

	if len(entries) != report.Moved {
		t.Fatalf("Expected %d journal entries, got %d", report.Moved, len(entries))
	}
	for _, entry := range entries {
		if filepath.Dir(entry.Destination) != filepath.Join(target, entry.Extension) {
			t.Errorf("Unexpected destination %s for extension %s", entry.Destination, entry.Extension)
		}
	}
}

func TestOrganizer_Cancelled(t *testing.T) {
	storage, source, target := newTestSource(t)

	src, tgt, err := cleanup.ResolveDirectories(t.Context(), storage, source, target, false)
	if err != nil {
		t.Fatalf("ResolveDirectories failed: %v", err)
	}

	organizer, err := cleanup.NewOrganizer(storage, cleanup.WithOutput(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("NewOrganizer failed: %v", err)
	}

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if _, err := organizer.Run(ctx, src, tgt); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}

	verifyFileTree(t, storage, []string{filepath.Join(source, "t1.txt")}, true)
}

func TestOrganizer_MissingSource(t *testing.T) {
	storage := memory.NewMemoryBackend()

	organizer, err := cleanup.NewOrganizer(storage, cleanup.WithOutput(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("NewOrganizer failed: %v", err)
	}

	missing := filepath.Join(string(filepath.Separator), "missing")
	if _, err := organizer.Run(t.Context(), missing, cleanup.DefaultTarget(missing)); !errors.Is(err, backend.ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}
}
