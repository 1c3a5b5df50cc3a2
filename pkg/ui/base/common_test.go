package base

import (
	"testing"
	"unicode/utf8"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"Fits", "user1", 10, "user1"},
		{"Exact", "user1", 5, "user1"},
		{"Ellipsis", "person1@example.com", 10, "person1..."},
		{"Narrow", "abcdef", 2, "ab"},
		{"MultibyteFits", "Åsa", 3, "Åsa"},
		{"MultibyteCut", "ÅÅÅÅÅÅ", 5, "ÅÅ..."},
		{"MultibyteNarrow", "àà", 1, "à"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateString(tt.input, tt.maxWidth)
			if got != tt.want {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("TruncateString(%q, %d) produced invalid UTF-8", tt.input, tt.maxWidth)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(1, 6, 40); got != 6 {
		t.Errorf("Clamp below = %d, want 6", got)
	}
	if got := Clamp(90, 6, 40); got != 40 {
		t.Errorf("Clamp above = %d, want 40", got)
	}
	if got := Clamp(12, 6, 40); got != 12 {
		t.Errorf("Clamp inside = %d, want 12", got)
	}
}
