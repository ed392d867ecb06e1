// Package ignore matches paths against gitignore-style exclusion patterns.
package ignore

import (
	"regexp"
	"strings"
)

// Pattern is one compiled exclusion rule.
type Pattern struct {
	Regex  *regexp.Regexp // Compiled regular expression for the pattern line.
	Negate bool           // True when the line starts with '!'.
	Line   string         // Original pattern line.
}

// Matcher holds an ordered list of exclusion rules. Later rules override
// earlier ones, so a negated pattern can re-include a previously excluded
// path.
type Matcher struct {
	patterns []*Pattern
}

// New compiles the given pattern lines into a Matcher. Empty lines and
// comment lines are dropped; lines that fail to compile are skipped.
func New(lines ...string) *Matcher {
	m := &Matcher{}
	m.Add(lines...)
	return m
}

// Add compiles additional pattern lines onto the matcher.
func (m *Matcher) Add(lines ...string) {
	for _, line := range lines {
		re, negate, ok := parseLine(line)
		if !ok {
			continue
		}
		m.patterns = append(m.patterns, &Pattern{Regex: re, Negate: negate, Line: line})
	}
}

// Matches reports whether the slash-separated relative path is excluded.
func (m *Matcher) Matches(path string) bool {
	matched, _ := m.Match(path)
	return matched
}

// Match reports whether the path is excluded and returns the last pattern
// that decided the outcome, if any.
func (m *Matcher) Match(path string) (bool, *Pattern) {
	path = strings.ReplaceAll(path, "\\", "/")

	var decided *Pattern
	matched := false
	for _, p := range m.patterns {
		if p.Regex.MatchString(path) {
			decided = p
			matched = !p.Negate
		}
	}
	return matched, decided
}

// parseLine converts one gitignore-style line into a compiled regex and a
// negation flag. It returns ok=false for blank lines, comments, and
// patterns that do not compile.
func parseLine(line string) (*regexp.Regexp, bool, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, false, false
	}

	negate := false
	if strings.HasPrefix(trimmed, "!") {
		negate = true
		trimmed = strings.TrimPrefix(trimmed, "!")
	}

	// Escaped leading '#' or '!' are literal characters.
	if strings.HasPrefix(trimmed, `\#`) || strings.HasPrefix(trimmed, `\!`) {
		trimmed = trimmed[1:]
	}

	expr := escapeSpecialChars(trimmed)
	expr = expandDoubleStar(expr)
	expr = wildcardToRegex(expr)
	expr = anchorPattern(expr, trimmed)

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, false, false
	}
	return re, negate, true
}

// escapeSpecialChars escapes regex metacharacters except '*', '?', and '/'.
func escapeSpecialChars(pattern string) string {
	for _, c := range `.+()|^$[]{}` {
		pattern = strings.ReplaceAll(pattern, string(c), `\`+string(c))
	}
	return pattern
}

// expandDoubleStar rewrites '**' segments into their regex equivalents.
func expandDoubleStar(pattern string) string {
	pattern = regexp.MustCompile(`/\*\*/`).ReplaceAllString(pattern, `(/|/.+/)`)
	pattern = regexp.MustCompile(`/\*\*$`).ReplaceAllString(pattern, `(/.*)?`)
	pattern = regexp.MustCompile(`^\*\*/`).ReplaceAllString(pattern, `(.*/)?`)
	return pattern
}

// wildcardToRegex converts single '*' and '?' wildcards.
func wildcardToRegex(pattern string) string {
	pattern = regexp.MustCompile(`\*`).ReplaceAllString(pattern, `[^/]*`)
	return strings.ReplaceAll(pattern, "?", ".")
}

// anchorPattern anchors the regex so it matches whole path segments. A
// trailing '/' in the original pattern restricts the match to directories
// and their contents.
func anchorPattern(pattern, original string) string {
	if strings.HasSuffix(original, "/") {
		pattern += "(|.*)$"
	} else {
		pattern += "(|/.*)$"
	}

	if strings.HasPrefix(pattern, "/") {
		return "^" + pattern
	}
	return "^(|.*/)" + pattern
}
