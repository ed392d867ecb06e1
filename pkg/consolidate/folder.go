package consolidate

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"consolidex/pkg/ignore"

	"go.uber.org/zap"
)

// skippedContentMarker replaces the fenced block of files whose content does
// not decode as UTF-8 text.
const skippedContentMarker = "// [Binary file or non-UTF-8 encoding, content skipped]\n\n"

// consolidateFolder walks one configured folder, serializes every matching
// file into a single artifact under cfg.OutputDir, and returns the artifact
// path together with the folder's file, line, and token counts.
//
// The caller has already verified that the folder exists under the source
// root. The artifact header carries the final file count, so the body is
// accumulated in memory and the file is written once after the walk.
func consolidateFolder(cfg *Config, folder string, langs *LanguageTable, excl *ignore.Matcher, tk Tokenizer, logger *zap.Logger) (FolderResult, error) {
	folderPath := filepath.Join(cfg.SourceRoot, folder)

	var body bytes.Buffer
	var fileCount int
	var stats FolderStats

	err := filepath.WalkDir(folderPath, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during traversal", zap.String("path", p), zap.Error(err))
			return nil
		}

		relPath, _ := filepath.Rel(cfg.SourceRoot, p)
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if excl.Matches(relPath) {
				logger.Debug("Skipping excluded directory", zap.String("directory", relPath))
				return filepath.SkipDir
			}
			return nil
		}
		if excl.Matches(relPath) {
			logger.Debug("Skipping excluded file", zap.String("file", relPath))
			return nil
		}
		if !matchesExtension(d.Name(), cfg.Extensions) {
			return nil
		}

		fileCount++
		relDir := path.Dir(relPath)
		ext := filepath.Ext(d.Name())

		fmt.Fprintf(&body, "// Directory: %s, File: %s\n", relDir, d.Name())
		fmt.Fprintf(&body, "// File Type: %s\n", strings.TrimPrefix(ext, "."))

		data, readErr := os.ReadFile(p)
		if readErr != nil || !isTextContent(data) {
			// Unreadable files keep their place in the artifact and the file
			// count, but contribute nothing to line or token totals.
			body.WriteString(skippedContentMarker)
			logger.Warn("Skipped file content",
				zap.String("file", relPath),
				zap.Error(readErr))
			return nil
		}

		content := string(data)
		lines := countLines(content)
		tokens := tk.CountTokens(content)

		body.WriteString("```" + langs.TagFor(ext) + "\n")
		body.WriteString(content)
		body.WriteString("\n```\n\n")

		stats.Lines += lines
		stats.Tokens += tokens
		logger.Info("Processed file",
			zap.String("file", relPath),
			zap.Int("lines", lines),
			zap.Int("tokens", tokens))
		return nil
	})
	if err != nil {
		return FolderResult{}, fmt.Errorf("walking folder %s: %w", folder, err)
	}

	artifactPath := filepath.Join(cfg.OutputDir, folder+"_consolidated.txt")

	var out bytes.Buffer
	fmt.Fprintf(&out, "// Consolidated %d files from the \"%s\" folder\n", fileCount, folder)
	fmt.Fprintf(&out, "// This file contains all code files within the \"%s\" folder and its subfolders.\n\n", folder)
	out.Write(body.Bytes())

	if err := os.WriteFile(artifactPath, out.Bytes(), 0644); err != nil {
		return FolderResult{}, fmt.Errorf("writing artifact %s: %w", artifactPath, err)
	}

	logger.Info("Consolidated folder",
		zap.String("folder", folder),
		zap.Int("files", fileCount),
		zap.String("artifact", artifactPath))

	return FolderResult{
		Folder:       folder,
		ArtifactPath: artifactPath,
		FileCount:    fileCount,
		Stats:        stats,
	}, nil
}
