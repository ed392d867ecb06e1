package consolidate

import "testing"

func TestIsTextContent(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"plain ascii", []byte("const x = 1;\n"), true},
		{"utf8 multibyte", []byte("héllo wörld ☃"), true},
		{"empty", []byte{}, true},
		{"nul byte", []byte{'a', 0x00, 'b'}, false},
		{"invalid utf8", []byte{0xff, 0xfe, 0x41}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isTextContent(tt.data); got != tt.want {
				t.Errorf("isTextContent(%v) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

func TestMatchesExtension(t *testing.T) {
	exts := []string{".ts", ".md"}

	if !matchesExtension("index.ts", exts) {
		t.Error("index.ts should match")
	}
	if !matchesExtension("README.md", exts) {
		t.Error("README.md should match")
	}
	if matchesExtension("photo.png", exts) {
		t.Error("photo.png should not match")
	}
	// The suffix match is case-sensitive.
	if matchesExtension("index.TS", exts) {
		t.Error("index.TS should not match (case-sensitive suffix)")
	}
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		content string
		want    int
	}{
		{"", 0},
		{"a", 1},
		{"a\n", 1},
		{"a\nb", 2},
		{"a\nb\n", 2},
		{"a\r\nb\r\n", 2},
		{"\n", 1},
		{"\n\n", 2},
	}
	for _, tt := range tests {
		if got := countLines(tt.content); got != tt.want {
			t.Errorf("countLines(%q) = %d, want %d", tt.content, got, tt.want)
		}
	}
}
