package sources

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"short", "hello", "hello"},
		{"exactly at limit", strings.Repeat("a", 300), strings.Repeat("a", 300)},
		{"one over limit", strings.Repeat("a", 301), strings.Repeat("a", 300) + "..."},
		{"long", strings.Repeat("ab", 400), strings.Repeat("ab", 150) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input); got != tt.want {
				t.Errorf("Truncate() = %q (len %d), want %q", got, len(got), tt.want)
			}
		})
	}
}

func TestTruncateIsRuneSafe(t *testing.T) {
	// 301 multi-byte runes must be cut at a rune boundary.
	input := strings.Repeat("é", 301)
	got := Truncate(input)

	if !utf8.ValidString(got) {
		t.Fatalf("Truncate produced invalid UTF-8: %q", got)
	}
	if want := strings.Repeat("é", 300) + "..."; got != want {
		t.Errorf("Truncate() = %q, want 300 runes plus ellipsis", got)
	}
}
