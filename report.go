package cleanup

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/tidwall/btree"
)

// ExtensionCount is the number of files handled for one extension.
type ExtensionCount struct {
	Extension string
	Count     int
}

// Report summarizes a single run.
type Report struct {
	mu sync.RWMutex

	RunID uuid.UUID

	Moved   int
	Skipped int
	Checked int
	Errored int

	// Moved or checked files per extension, ordered by extension
	extensions *btree.Map[string, int]
	errors     []error
}

func newReport(runID uuid.UUID) *Report {
	return &Report{
		RunID:      runID,
		extensions: btree.NewMap[string, int](0),
	}
}

func (r *Report) add(acceptance *Acceptance) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch acceptance.Result {
	case Moved:
		r.Moved++
	case Checked:
		r.Checked++
	case Skipped:
		r.Skipped++
		return
	}

	count, _ := r.extensions.Get(acceptance.Extension)
	r.extensions.Set(acceptance.Extension, count+1)
}

func (r *Report) addError(err error) {
	if err == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.Errored++
	r.errors = append(r.errors, err)
}

// Extensions returns the moved or checked files per extension, sorted by extension.
func (r *Report) Extensions() []ExtensionCount {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make([]ExtensionCount, 0, r.extensions.Len())
	r.extensions.Scan(func(ext string, count int) bool {
		counts = append(counts, ExtensionCount{Extension: ext, Count: count})
		return true
	})

	return counts
}

// Err joins every per-file error of the run, or returns nil.
func (r *Report) Err() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.errors) == 0 {
		return nil
	}

	return errors.Join(r.errors...)
}

func (r *Report) String() string {
	var sb strings.Builder

	r.mu.RLock()
	fmt.Fprintf(&sb, "Moved: %d, Matched: %d, Skipped: %d, Errored: %d", r.Moved, r.Checked, r.Skipped, r.Errored)
	r.mu.RUnlock()

	extensions := r.Extensions()
	if len(extensions) > 0 {
		parts := make([]string, 0, len(extensions))
		for _, ext := range extensions {
			parts = append(parts, fmt.Sprintf("%s=%d", ext.Extension, ext.Count))
		}
		fmt.Fprintf(&sb, " (%s)", strings.Join(parts, ", "))
	}

	return sb.String()
}
