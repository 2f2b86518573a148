package tui

import (
	"maps"

	"github.com/jask/streamui/internal/render"
)

func (m *Model) titleView() (render.View, error) {
	return render.View{
		Text:  m.cfg.UI.Title,
		Style: render.Style{"bold": "true", "color": "accent"},
	}, nil
}

// targetView is the tooltip's hover target.
func (m *Model) targetView() (render.View, error) {
	color := "info"
	if m.tooltip.Visible() {
		color = "focus"
	}
	return render.View{
		Text:  m.cfg.UI.TargetText,
		Style: render.Style{"color": color, "background": "surface0", "padding": "1"},
	}, nil
}

func (m *Model) panelView() (render.View, error) {
	if !m.toggle.Visible() {
		return render.View{}, nil
	}
	return render.View{
		Text:  "Toggled on. Press t again to hide.",
		Style: render.Style{"border": "rounded", "title": "panel", "border-color": "mauve"},
	}, nil
}

func (m *Model) helpView() (render.View, error) {
	return render.View{
		Text:  m.keys.helpLine(),
		Style: render.Style{"color": "muted"},
	}, nil
}

// tooltipView reads the tooltip position from the store. Style does not
// check visibility, so that happens here.
func (m *Model) tooltipView() (render.View, error) {
	if !m.tooltip.Visible() {
		return render.View{}, nil
	}
	style := render.Style{"border": "rounded", "border-color": "accent", "color": "text"}
	maps.Copy(style, m.tooltip.Style())
	return render.View{Text: m.cfg.UI.TooltipText, Style: style}, nil
}
