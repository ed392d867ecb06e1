package consolidate

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteReport(t *testing.T) {
	summary := &RunSummary{
		Folders: []FolderResult{
			{Folder: "lib", Stats: FolderStats{Lines: 15, Tokens: 42}},
			{Folder: "app", Stats: FolderStats{Lines: 3, Tokens: 7}},
		},
		TotalLines:  18,
		TotalTokens: 49,
	}

	var buf bytes.Buffer
	WriteReport(&buf, summary)
	out := buf.String()

	for _, want := range []string{
		"Lines of Code and Token Summary:",
		"  Folder 'lib': 15 lines, 42 tokens\n",
		"  Folder 'app': 3 lines, 7 tokens\n",
		"Total lines of code: 18\n",
		"Total tokens: 49\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q in output:\n%s", want, out)
		}
	}

	// Per-folder lines appear in processed order.
	if strings.Index(out, "'lib'") > strings.Index(out, "'app'") {
		t.Error("folder breakdown out of order")
	}
}

func TestWriteReportEmptyRun(t *testing.T) {
	var buf bytes.Buffer
	WriteReport(&buf, &RunSummary{})
	out := buf.String()

	if !strings.Contains(out, "Total lines of code: 0\n") {
		t.Errorf("empty run should report zero totals, got:\n%s", out)
	}
	if strings.Contains(out, "Folder '") {
		t.Error("empty run should have no folder breakdown")
	}
}
