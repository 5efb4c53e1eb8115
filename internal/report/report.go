// Package report renders ignored-item records into user-facing text. It is
// the terminal consumer of placeholders: every record documented here was
// skipped by an earlier phase and carried forward unchanged.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"bridge-generator/internal/api"
	"bridge-generator/internal/common"
)

// Entry is one skipped item extracted from a batch.
type Entry struct {
	Name    string
	Message string
}

// String renders the user-facing line for a skipped item.
func (e Entry) String() string {
	return fmt.Sprintf("item %s was skipped: %s", e.Name, e.Message)
}

// Collect extracts every ignored-item record from batch, in batch order.
func Collect[F, S, T any](batch []api.Api[F, S, T]) []Entry {
	var entries []Entry

	for _, rec := range batch {
		if rec.Kind != api.KindIgnoredItem || rec.Ignored == nil {
			continue
		}

		entries = append(entries, Entry{
			Name:    rec.QualifiedName().String(),
			Message: rec.Ignored.Err.Error(),
		})
	}

	return entries
}

// First returns the first skipped item in batch, if any.
func First[F, S, T any](batch []api.Api[F, S, T]) (Entry, bool) {
	return common.First(Collect(batch))
}

// Fprint writes the report for batch to w, one colored line per skipped
// item, followed by a summary line.
func Fprint[F, S, T any](w io.Writer, batch []api.Api[F, S, T]) {
	entries := Collect(batch)
	if common.IsEmpty(entries) {
		color.New(color.FgGreen).Fprintln(w, "no items were skipped")
		return
	}

	warn := color.New(color.FgYellow)
	for _, e := range entries {
		warn.Fprintln(w, e.String())
	}

	fmt.Fprintf(w, "%d of %d items were skipped\n", len(entries), len(batch))
}
