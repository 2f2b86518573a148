package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestFitPadsAndCrops(t *testing.T) {
	got := Fit("ab\ncdef\ng\nh", 3, 2)
	require.Equal(t, "ab \ncde", got)
	require.Empty(t, Fit("x", 0, 3))
}

func TestOverlayAtPlacesPopup(t *testing.T) {
	base := Fit("", 8, 4)
	got := OverlayAt(base, "hi", 3, 1, 8, 4)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "        ", lines[0])
	require.Equal(t, "   hi   ", lines[1])
	require.Equal(t, "        ", lines[2])
}

func TestOverlayAtKeepsBaseAroundPopup(t *testing.T) {
	base := "abcdefgh\nijklmnop"
	got := OverlayAt(base, "XY", 2, 0, 8, 2)
	require.Equal(t, "abXYefgh\nijklmnop", got)
}

func TestOverlayAtShiftsInsideCanvas(t *testing.T) {
	got := OverlayAt("", "abc\ndef", 7, 9, 8, 4)
	lines := strings.Split(got, "\n")
	require.Equal(t, "     abc", lines[2])
	require.Equal(t, "     def", lines[3])
}

func TestBoxRender(t *testing.T) {
	out := ansi.Strip(Box{Title: "panel", Content: "body", Border: lipgloss.RoundedBorder()}.Render())
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	require.True(t, strings.HasPrefix(lines[0], "╭"))
	require.Contains(t, lines[1], "[panel]")
	require.Contains(t, lines[2], "body")
	require.True(t, strings.HasPrefix(lines[3], "╰"))
}
