package cleanup

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// reporter prints one status line per handled file.
type reporter struct {
	w io.Writer

	moved   *color.Color
	skipped *color.Color
	matched *color.Color
	errored *color.Color
}

func newReporter(w io.Writer, noColor bool) *reporter {
	r := &reporter{
		w:       w,
		moved:   color.New(color.FgGreen),
		skipped: color.New(color.FgYellow),
		matched: color.New(color.FgCyan),
		errored: color.New(color.FgRed),
	}

	if noColor {
		for _, c := range []*color.Color{r.moved, r.skipped, r.matched, r.errored} {
			c.DisableColor()
		}
	}

	return r
}

func (r *reporter) result(result FileResult, path string) {
	switch result {
	case Moved:
		fmt.Fprintf(r.w, "%s %q\n", r.moved.Sprint("♻ Moved:"), path)
	case Skipped:
		fmt.Fprintf(r.w, "%s %q\n", r.skipped.Sprint("⊙ Skipped:"), path)
	case Checked:
		fmt.Fprintf(r.w, "%s %q\n", r.matched.Sprint("✔ Matched:"), path)
	}
}

func (r *reporter) failure(err error) {
	fmt.Fprintf(r.w, "%s %v\n", r.errored.Sprint("✖ Errored:"), err)
}
