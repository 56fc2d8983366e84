package cleanup

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestReport(t *testing.T) {
	report := newReport(uuid.New())

	report.add(&Acceptance{Result: Moved, Extension: "txt"})
	report.add(&Acceptance{Result: Moved, Extension: "txt"})
	report.add(&Acceptance{Result: Checked, Extension: "mp4"})
	report.add(&Acceptance{Result: Skipped, Extension: "psd"})
	report.addError(ErrNoExtension)
	report.addError(nil)

	if report.Moved != 2 || report.Checked != 1 || report.Skipped != 1 || report.Errored != 1 {
		t.Errorf("Unexpected counts: %s", report)
	}

	want := []ExtensionCount{
		{Extension: "mp4", Count: 1},
		{Extension: "txt", Count: 2},
	}
	if diff := cmp.Diff(want, report.Extensions()); diff != "" {
		t.Errorf("Extensions mismatch (-want +got):\n%s", diff)
	}

	if !errors.Is(report.Err(), ErrNoExtension) {
		t.Errorf("Expected ErrNoExtension, got %v", report.Err())
	}

	if got, want := report.String(), "Moved: 2, Matched: 1, Skipped: 1, Errored: 1 (mp4=1, txt=2)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestReport_Empty(t *testing.T) {
	report := newReport(uuid.New())

	if err := report.Err(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if got, want := report.String(), "Moved: 0, Matched: 0, Skipped: 0, Errored: 0"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestReport_ConcurrentString(t *testing.T) {
	report := newReport(uuid.New())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			report.add(&Acceptance{Result: Moved, Extension: "txt"})
		}()
		go func() {
			defer wg.Done()
			if !strings.HasPrefix(report.String(), "Moved: ") {
				t.Error("Expected summary prefix")
			}
		}()
	}
	wg.Wait()

	if got, want := report.String(), "Moved: 8, Matched: 0, Skipped: 0, Errored: 0 (txt=8)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
