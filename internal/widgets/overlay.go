package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// OverlayAt draws popup over base with its top-left corner at (left, top).
// The popup is shifted back inside the width x height canvas when it would
// overflow and truncated when it is larger than the canvas.
func OverlayAt(base, popup string, left, top, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	baseLines := splitToLines(base, height)
	popupLines := strings.Split(popup, "\n")
	popupWidth := 0
	for _, l := range popupLines {
		popupWidth = max(popupWidth, ansi.StringWidth(l))
	}
	left, top = Place(left, top, width, height, popupWidth, len(popupLines))

	out := make([]string, height)
	for i := 0; i < height; i++ {
		baseLine := padRightANSI(baseLines[i], width)
		p := i - top
		if p < 0 || p >= len(popupLines) {
			out[i] = baseLine
			continue
		}
		segment := padRightANSI(popupLines[p], min(popupWidth, width-left))
		segWidth := ansi.StringWidth(segment)
		prefix := ansi.Truncate(baseLine, left, "")
		suffix := dropColumns(baseLine, left+segWidth)
		out[i] = padRightANSI(prefix+segment+suffix, width)
	}
	return strings.Join(out, "\n")
}

// Place returns the corner at which a w x h popup requested at (left, top)
// is drawn on a width x height canvas.
func Place(left, top, width, height, w, h int) (int, int) {
	return clamp(left, 0, max(0, width-w)), clamp(top, 0, max(0, height-h))
}

// Fit pads or crops s to exactly width x height cells.
func Fit(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := splitToLines(s, height)
	for i := range lines {
		lines[i] = padRightANSI(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	truncated := ansi.Truncate(s, cols, "")
	return strings.TrimPrefix(s, truncated)
}

func padRightANSI(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
