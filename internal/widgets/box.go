package widgets

import "github.com/charmbracelet/lipgloss"

// Box frames content with a border and an optional title line.
type Box struct {
	Title   string
	Content string
	Border  lipgloss.Border
	Color   lipgloss.Color
}

func (b Box) Render() string {
	style := lipgloss.NewStyle().Border(b.Border).Padding(0, 1)
	if b.Color != "" {
		style = style.BorderForeground(b.Color)
	}
	body := b.Content
	if b.Title != "" {
		body = "[" + b.Title + "]\n" + body
	}
	return style.Render(body)
}
