package consolidate

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// masterFileName is the name of the master artifact inside the output directory.
const masterFileName = "master_consolidated.txt"

// composeMaster concatenates the per-folder artifacts into the master
// artifact: a manifest of the included artifacts, the aggregate statistics,
// and each artifact's raw content wrapped in start/end markers. The totals
// are taken as given; nothing is re-parsed or re-counted.
func composeMaster(outputDir string, results []FolderResult, totalLines, totalTokens int, logger *zap.Logger) (string, error) {
	masterPath := filepath.Join(outputDir, masterFileName)

	out, err := os.Create(masterPath)
	if err != nil {
		return "", fmt.Errorf("creating master file %s: %w", masterPath, err)
	}
	defer func() {
		if err := out.Close(); err != nil {
			logger.Error("Failed to close master file", zap.String("file", masterPath), zap.Error(err))
		}
	}()

	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "// This master file consolidates %d main folders from the src directory.\n", len(results))
	w.WriteString("// The following folder consolidations are included:\n")
	for _, r := range results {
		fmt.Fprintf(w, "// - %s\n", filepath.Base(r.ArtifactPath))
	}
	w.WriteString("\n")

	w.WriteString("// Project Statistics:\n")
	fmt.Fprintf(w, "// - Total lines of code: %d\n", totalLines)
	fmt.Fprintf(w, "// - Total tokens: %d\n\n", totalTokens)

	for _, r := range results {
		fmt.Fprintf(w, "// ===== Start of %s folder =====\n\n", r.Folder)
		data, err := os.ReadFile(r.ArtifactPath)
		if err != nil {
			return "", fmt.Errorf("reading artifact %s: %w", r.ArtifactPath, err)
		}
		w.Write(data)
		fmt.Fprintf(w, "\n// ===== End of %s folder =====\n\n", r.Folder)
	}

	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("flushing master file %s: %w", masterPath, err)
	}

	logger.Info("Master consolidated file created",
		zap.String("file", masterPath),
		zap.Int("folders", len(results)))
	return masterPath, nil
}
