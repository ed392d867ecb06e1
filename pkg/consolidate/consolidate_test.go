package consolidate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func runPipeline(t *testing.T, cfg *Config) *RunSummary {
	t.Helper()
	summary, err := Run(cfg, stubTokenizer{}, zap.NewNop())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	return summary
}

func TestRunSkipsMissingFolders(t *testing.T) {
	cfg := testConfig(t)
	cfg.Folders = []string{"lib", "missing", "app"}
	writeFile(t, filepath.Join(cfg.SourceRoot, "lib", "a.ts"), []byte("one two\n"))
	writeFile(t, filepath.Join(cfg.SourceRoot, "app", "b.ts"), []byte("three\n"))

	summary := runPipeline(t, cfg)

	if len(summary.Folders) != 2 {
		t.Fatalf("processed %d folders, want 2", len(summary.Folders))
	}
	for i, want := range []string{"lib", "app"} {
		if summary.Folders[i].Folder != want {
			t.Errorf("Folders[%d] = %s, want %s", i, summary.Folders[i].Folder, want)
		}
	}

	// No artifact for the missing folder.
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "missing_consolidated.txt")); !os.IsNotExist(err) {
		t.Error("missing folder must not produce an artifact")
	}

	master, err := os.ReadFile(summary.MasterPath)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(master), "missing_consolidated.txt") {
		t.Error("master manifest must not list the skipped folder")
	}
}

func TestRunSkipsFolderThatIsAFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.Folders = []string{"lib"}
	writeFile(t, filepath.Join(cfg.SourceRoot, "lib"), []byte("not a directory"))

	summary := runPipeline(t, cfg)

	if len(summary.Folders) != 0 {
		t.Errorf("processed %d folders, want 0", len(summary.Folders))
	}
	if summary.TotalLines != 0 || summary.TotalTokens != 0 {
		t.Error("skipped folder must contribute zero to totals")
	}
}

func TestRunTotalsAreSumsOverFolders(t *testing.T) {
	cfg := testConfig(t)
	cfg.Folders = []string{"lib", "app"}
	writeFile(t, filepath.Join(cfg.SourceRoot, "lib", "a.ts"), []byte("a b c\nd e\n"))
	writeFile(t, filepath.Join(cfg.SourceRoot, "app", "b.md"), []byte("f\ng\nh\n"))

	summary := runPipeline(t, cfg)

	var lines, tokens int
	for _, r := range summary.Folders {
		lines += r.Stats.Lines
		tokens += r.Stats.Tokens
	}
	if summary.TotalLines != lines {
		t.Errorf("TotalLines = %d, want %d", summary.TotalLines, lines)
	}
	if summary.TotalTokens != tokens {
		t.Errorf("TotalTokens = %d, want %d", summary.TotalTokens, tokens)
	}
	if summary.TotalLines != 5 {
		t.Errorf("TotalLines = %d, want 5", summary.TotalLines)
	}
}

func TestRunMasterArtifactContents(t *testing.T) {
	cfg := testConfig(t)
	cfg.Folders = []string{"lib", "app"}
	writeFile(t, filepath.Join(cfg.SourceRoot, "lib", "a.ts"), []byte("x y\n"))
	writeFile(t, filepath.Join(cfg.SourceRoot, "app", "b.ts"), []byte("z\n"))

	summary := runPipeline(t, cfg)

	data, err := os.ReadFile(summary.MasterPath)
	if err != nil {
		t.Fatal(err)
	}
	master := string(data)

	if !strings.HasPrefix(master, "// This master file consolidates 2 main folders from the src directory.\n") {
		t.Error("unexpected master header")
	}
	for _, want := range []string{
		"// - lib_consolidated.txt\n",
		"// - app_consolidated.txt\n",
		"// Project Statistics:\n",
		fmt.Sprintf("// - Total lines of code: %d\n", summary.TotalLines),
		fmt.Sprintf("// - Total tokens: %d\n", summary.TotalTokens),
		"// ===== Start of lib folder =====\n",
		"// ===== End of lib folder =====\n",
		"// ===== Start of app folder =====\n",
		"// ===== End of app folder =====\n",
	} {
		if !strings.Contains(master, want) {
			t.Errorf("master artifact missing %q", want)
		}
	}

	// Manifest order follows configuration order.
	if strings.Index(master, "lib_consolidated.txt") > strings.Index(master, "app_consolidated.txt") {
		t.Error("manifest entries out of configured order")
	}

	// The master embeds each artifact verbatim.
	libArtifact, err := os.ReadFile(filepath.Join(cfg.OutputDir, "lib_consolidated.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(master, string(libArtifact)) {
		t.Error("master does not embed the lib artifact verbatim")
	}
}

func TestRunIsIdempotent(t *testing.T) {
	cfg := testConfig(t)
	cfg.Folders = []string{"lib"}
	writeFile(t, filepath.Join(cfg.SourceRoot, "lib", "a.ts"), []byte("alpha\nbeta\n"))
	writeFile(t, filepath.Join(cfg.SourceRoot, "lib", "b.ts"), []byte("gamma\n"))

	first := runPipeline(t, cfg)
	firstMaster, err := os.ReadFile(first.MasterPath)
	if err != nil {
		t.Fatal(err)
	}

	second := runPipeline(t, cfg)
	secondMaster, err := os.ReadFile(second.MasterPath)
	if err != nil {
		t.Fatal(err)
	}

	if string(firstMaster) != string(secondMaster) {
		t.Error("master artifact differs between runs on an unchanged tree")
	}
}

func TestRunCreatesOutputDirectory(t *testing.T) {
	cfg := testConfig(t)
	cfg.OutputDir = filepath.Join(cfg.OutputDir, "nested", "out")
	cfg.Folders = []string{"lib"}
	writeFile(t, filepath.Join(cfg.SourceRoot, "lib", "a.ts"), []byte("x\n"))

	summary := runPipeline(t, cfg)

	if _, err := os.Stat(summary.MasterPath); err != nil {
		t.Fatalf("master artifact not created under nested output dir: %v", err)
	}
}

func TestRunNilConfigUsesDefaults(t *testing.T) {
	// With defaults, "src" does not exist relative to the test working
	// directory, so every folder is skipped; the run itself must succeed.
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	summary, err := Run(nil, stubTokenizer{}, zap.NewNop())
	if err != nil {
		t.Fatalf("Run(nil, ...) returned error: %v", err)
	}
	if len(summary.Folders) != 0 {
		t.Errorf("processed %d folders, want 0", len(summary.Folders))
	}
}
