// Package consolidate walks a source tree and concatenates matching files
// into per-folder text artifacts plus a master artifact, accumulating line
// and token statistics along the way.
package consolidate

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"consolidex/pkg/ignore"

	"go.uber.org/zap"
)

// Run executes the full consolidation pipeline: for each configured folder
// in order, walk it and write its artifact, then compose the master artifact
// from the artifacts actually produced. Folders missing under the source
// root (or present but not directories) are warned about and skipped; they
// produce no artifact and no summary entry.
func Run(cfg *Config, tk Tokenizer, logger *zap.Logger) (*RunSummary, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	start := time.Now()
	logger.Info("Starting consolidation",
		zap.String("sourceRoot", cfg.SourceRoot),
		zap.String("outputDir", cfg.OutputDir),
		zap.Strings("folders", cfg.Folders))

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", cfg.OutputDir, err)
	}

	langs, err := LoadLanguageTable(cfg.LanguageFile)
	if err != nil {
		return nil, fmt.Errorf("loading language table: %w", err)
	}
	excl := ignore.New(cfg.Exclude...)

	summary := &RunSummary{}
	for _, folder := range cfg.Folders {
		folderPath := filepath.Join(cfg.SourceRoot, folder)
		info, statErr := os.Stat(folderPath)
		if statErr != nil || !info.IsDir() {
			logger.Warn("Folder does not exist, skipping",
				zap.String("folder", folder),
				zap.String("sourceRoot", cfg.SourceRoot))
			continue
		}

		result, err := consolidateFolder(cfg, folder, langs, excl, tk, logger)
		if err != nil {
			return nil, err
		}
		summary.Folders = append(summary.Folders, result)
		summary.TotalLines += result.Stats.Lines
		summary.TotalTokens += result.Stats.Tokens
	}

	masterPath, err := composeMaster(cfg.OutputDir, summary.Folders, summary.TotalLines, summary.TotalTokens, logger)
	if err != nil {
		return nil, err
	}
	summary.MasterPath = masterPath

	logger.Info("Consolidation completed",
		zap.Int("folders", len(summary.Folders)),
		zap.Int("totalLines", summary.TotalLines),
		zap.Int("totalTokens", summary.TotalTokens),
		zap.Duration("elapsed", time.Since(start)))
	return summary, nil
}
