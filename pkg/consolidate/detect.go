package consolidate

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// isTextContent reports whether data decodes as UTF-8 text. NUL bytes mark
// binary content even when the byte sequence happens to be valid UTF-8.
func isTextContent(data []byte) bool {
	if bytes.IndexByte(data, 0) >= 0 {
		return false
	}
	return utf8.Valid(data)
}

// matchesExtension reports whether the file name ends with one of the
// recognized extensions. The suffix match is case-sensitive.
func matchesExtension(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// countLines counts content lines split on line-break boundaries: a trailing
// newline does not open an additional empty line, and empty content has
// zero lines.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}
