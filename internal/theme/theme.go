// Package theme names the colours widget views may use in their styles.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette: true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	Pink     lipgloss.Color = "#f5c2e7"
	Mauve    lipgloss.Color = "#cba6f7"
	Red      lipgloss.Color = "#f38ba8"
	Peach    lipgloss.Color = "#fab387"
	Yellow   lipgloss.Color = "#f9e2af"
	Green    lipgloss.Color = "#a6e3a1"
	Teal     lipgloss.Color = "#94e2d5"
	Blue     lipgloss.Color = "#89b4fa"
	Lavender lipgloss.Color = "#b4befe"

	Text     lipgloss.Color = "#cdd6f4"
	Overlay1 lipgloss.Color = "#7f849c"
	Surface0 lipgloss.Color = "#313244"
	Base     lipgloss.Color = "#1e1e2e"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	Accent  = Pink
	Focus   = Lavender
	Muted   = Overlay1
	Success = Green
	Error   = Red
	Info    = Teal
)

var named = map[string]lipgloss.Color{
	"pink":     Pink,
	"mauve":    Mauve,
	"red":      Red,
	"peach":    Peach,
	"yellow":   Yellow,
	"green":    Green,
	"teal":     Teal,
	"blue":     Blue,
	"lavender": Lavender,
	"text":     Text,
	"overlay1": Overlay1,
	"surface0": Surface0,
	"base":     Base,

	"accent":  Accent,
	"focus":   Focus,
	"muted":   Muted,
	"success": Success,
	"error":   Error,
	"info":    Info,
}

// palette returns every named colour in display order.
func palette() []lipgloss.Color {
	return []lipgloss.Color{
		Pink, Mauve, Red, Peach, Yellow, Green, Teal, Blue, Lavender,
		Text, Overlay1, Surface0, Base,
	}
}

// Resolve maps a style value to a colour. Palette and alias names are
// matched case-insensitively; anything else (hex, ANSI index) passes
// through unchanged.
func Resolve(value string) lipgloss.Color {
	v := strings.TrimSpace(value)
	if c, ok := named[strings.ToLower(v)]; ok {
		return c
	}
	return lipgloss.Color(v)
}
