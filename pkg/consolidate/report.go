package consolidate

import (
	"fmt"
	"io"
)

// WriteReport prints the per-folder line/token breakdown followed by the
// grand totals. It only reads the summary; skipped folders have no entry.
func WriteReport(w io.Writer, summary *RunSummary) {
	fmt.Fprintln(w, "\nLines of Code and Token Summary:")
	for _, r := range summary.Folders {
		fmt.Fprintf(w, "  Folder '%s': %d lines, %d tokens\n", r.Folder, r.Stats.Lines, r.Stats.Tokens)
	}
	fmt.Fprintf(w, "Total lines of code: %d\n", summary.TotalLines)
	fmt.Fprintf(w, "Total tokens: %d\n", summary.TotalTokens)
}
