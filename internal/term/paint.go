package term

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/streamui/internal/render"
	"github.com/jask/streamui/internal/theme"
	"github.com/jask/streamui/internal/widgets"
)

// painted is the terminal form of a View.
type painted struct {
	out    string
	hidden bool
	fixed  bool
	left   int
	top    int
}

func paint(v render.View) (painted, error) {
	if v.IsZero() || v.Style["display"] == "none" {
		return painted{hidden: true}, nil
	}
	out, err := paintBlock(v)
	if err != nil {
		return painted{}, err
	}
	p := painted{out: out}
	if v.Style["position"] == "fixed" {
		p.fixed = true
		if p.left, err = cells(v.Style["left"]); err != nil {
			return painted{}, fmt.Errorf("left: %w", err)
		}
		if p.top, err = cells(v.Style["top"]); err != nil {
			return painted{}, fmt.Errorf("top: %w", err)
		}
	}
	return p, nil
}

func paintBlock(v render.View) (string, error) {
	parts := make([]string, 0, len(v.Children)+1)
	if v.Text != "" {
		parts = append(parts, v.Text)
	}
	for _, c := range v.Children {
		if c.IsZero() || c.Style["display"] == "none" {
			continue
		}
		s, err := paintBlock(c)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	style := lipgloss.NewStyle()
	if c := v.Style["color"]; c != "" {
		style = style.Foreground(theme.Resolve(c))
	}
	if c := v.Style["background"]; c != "" {
		style = style.Background(theme.Resolve(c))
	}
	if v.Style["bold"] == "true" {
		style = style.Bold(true)
	}
	if p := v.Style["padding"]; p != "" {
		n, err := cells(p)
		if err != nil {
			return "", fmt.Errorf("padding: %w", err)
		}
		style = style.Padding(0, n)
	}
	content = style.Render(content)

	if b := v.Style["border"]; b != "" {
		border, err := borderFor(b)
		if err != nil {
			return "", err
		}
		content = widgets.Box{
			Title:   v.Style["title"],
			Content: content,
			Border:  border,
			Color:   borderColor(v.Style),
		}.Render()
	}
	return content, nil
}

func borderFor(name string) (lipgloss.Border, error) {
	switch name {
	case "rounded":
		return lipgloss.RoundedBorder(), nil
	case "normal":
		return lipgloss.NormalBorder(), nil
	case "thick":
		return lipgloss.ThickBorder(), nil
	default:
		return lipgloss.Border{}, fmt.Errorf("unknown border %q", name)
	}
}

func borderColor(s render.Style) lipgloss.Color {
	if c := s["border-color"]; c != "" {
		return theme.Resolve(c)
	}
	return ""
}

// cells reads a length such as "12px" or "12" as a number of cells.
func cells(v string) (int, error) {
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("bad length %q", v)
	}
	return n, nil
}
