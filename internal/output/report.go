// Package output renders pipeline results to the terminal.
package output

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spiffcs/sweep/internal/model"
)

var (
	deletedColor = color.New(color.FgGreen)
	failedColor  = color.New(color.FgRed)
	headerColor  = color.New(color.Bold)
	dimColor     = color.New(color.Faint)
)

// Outcome prints one completed deletion as it resolves.
func Outcome(w io.Writer, o model.Outcome) {
	if o.Deleted() {
		_, _ = deletedColor.Fprintf(w, "deleted %s\n", o.Repo.FullName())
		return
	}
	_, _ = failedColor.Fprintf(w, "failed %s: %v\n", o.Repo.FullName(), o.Err)
}

// Candidates prints the filtered repositories without deleting anything.
// Used by --dry-run.
func Candidates(w io.Writer, names []string) {
	_, _ = headerColor.Fprintf(w, "%d repositories match:\n", len(names))
	for _, name := range names {
		_, _ = fmt.Fprintf(w, "  %s\n", name)
	}
}

// Summary prints the final counts once every deletion has resolved.
func Summary(w io.Writer, report *model.Report, elapsed time.Duration) {
	failed := len(report.Failed())
	_, _ = headerColor.Fprintf(w, "done: %d deleted, %d failed of %d attempted\n",
		report.DeletedCount(), failed, report.Attempted())
	_, _ = dimColor.Fprintf(w, "took %s\n", elapsed.Round(time.Millisecond))
}
