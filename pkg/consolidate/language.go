package consolidate

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// defaultLanguageTag is returned for extensions with no known mapping.
const defaultLanguageTag = "plaintext"

// defaultLanguageTags maps file extensions to the language tag used to open
// a fenced code block in the artifacts.
var defaultLanguageTags = map[string]string{
	".js":        "javascript",
	".jsx":       "jsx",
	".ts":        "typescript",
	".tsx":       "tsx",
	".css":       "css",
	".scss":      "scss",
	".json":      "json",
	".md":        "markdown",
	".env":       "plaintext",
	".gitignore": "plaintext",
	".html":      "html",
	".xml":       "xml",
	".yaml":      "yaml",
	".yml":       "yaml",
}

// LanguageTable resolves file extensions to fenced-code-block language tags.
type LanguageTable struct {
	tags map[string]string
}

// NewLanguageTable returns a table containing the built-in mappings.
func NewLanguageTable() *LanguageTable {
	tags := make(map[string]string, len(defaultLanguageTags))
	for ext, tag := range defaultLanguageTags {
		tags[ext] = tag
	}
	return &LanguageTable{tags: tags}
}

// LoadLanguageTable returns the built-in table with overrides from the given
// YAML file merged on top. The file holds a flat mapping of extension to tag;
// keys are normalized to a lowercase ".ext" form. An empty path or a missing
// file yields the built-in table unchanged.
func LoadLanguageTable(path string) (*LanguageTable, error) {
	table := NewLanguageTable()
	if path == "" {
		return table, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return table, nil
		}
		return nil, fmt.Errorf("reading language file %s: %w", path, err)
	}

	var overrides map[string]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parsing language file %s: %w", path, err)
	}

	for ext, tag := range overrides {
		table.tags[normalizeExtension(ext)] = tag
	}
	return table, nil
}

// TagFor returns the language tag for an extension (leading dot included).
// The lookup is case-insensitive; unmapped extensions get the plaintext tag.
func (t *LanguageTable) TagFor(ext string) string {
	if tag, ok := t.tags[strings.ToLower(ext)]; ok {
		return tag
	}
	return defaultLanguageTag
}

func normalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
