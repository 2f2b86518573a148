package theme

import (
	"regexp"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func TestPaletteColorsAreValidHex(t *testing.T) {
	colors := palette()
	if len(colors) != 13 {
		t.Errorf("expected 13 palette colors, got %d", len(colors))
	}
	for _, c := range colors {
		if !hexColorRegex.MatchString(string(c)) {
			t.Errorf("invalid hex color: %q", c)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  lipgloss.Color
	}{
		{"palette", "teal", Teal},
		{"alias", "accent", Pink},
		{"case and space", " Muted ", Overlay1},
		{"hex passthrough", "#123456", lipgloss.Color("#123456")},
		{"ansi passthrough", "241", lipgloss.Color("241")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.value); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
