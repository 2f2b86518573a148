package tui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/streamui/internal/config"
	"github.com/jask/streamui/internal/render"
	"github.com/jask/streamui/internal/store"
	"github.com/jask/streamui/internal/stream"
	"github.com/jask/streamui/internal/term"
)

// Model ties the screen, the render registry and the stores together and
// feeds terminal events into the stores' streams.
type Model struct {
	cfg      config.Config
	logger   *slog.Logger
	keys     keyMap
	screen   *term.Screen
	registry *render.Registry
	tooltip  *store.Tooltip
	toggle   *store.Toggle

	target   render.Node
	hovering bool
	err      error
}

var _ tea.Model = (*Model)(nil)

// New builds the demo: one tooltip target, one toggle panel.
func New(cfg config.Config, logger *slog.Logger) (*Model, error) {
	if logger == nil {
		logger = slog.Default()
	}
	width, height := cfg.UI.Width, cfg.UI.Height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	screen := term.NewScreen(width, height)
	registry := render.NewRegistry(screen, render.WithLogger(logger))
	opts := []stream.Option{stream.WithLogger(logger), stream.WithDispatchLog(cfg.Log.Dispatch)}
	m := &Model{
		cfg:      cfg,
		logger:   logger,
		keys:     newKeyMap(),
		screen:   screen,
		registry: registry,
		tooltip:  store.NewTooltip(registry, opts...),
		toggle:   store.NewToggle(registry, opts...),
	}

	mounts := []struct {
		name string
		fn   render.Func
	}{
		{"title", m.titleView},
		{"target", m.targetView},
		{"panel", m.panelView},
		{"help", m.helpView},
		{"tooltip", m.tooltipView},
	}
	for _, mt := range mounts {
		node, err := registry.Append(screen.Root(), mt.fn)
		if err != nil {
			return nil, fmt.Errorf("mount %s: %w", mt.name, err)
		}
		if mt.name == "target" {
			m.target = node
		}
	}
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if w, h := m.screen.Size(); w == msg.Width && h == msg.Height {
			return m, nil
		}
		m.screen.Resize(msg.Width, msg.Height)
		return m, m.check(m.registry.Update())
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			return m, m.check(m.toggle.Toggle.HandleEvent(store.Signal{}))
		}
	case tea.MouseMsg:
		return m, m.pointer(msg.X, msg.Y)
	}
	return m, nil
}

// pointer raises enter/leave once per crossing of the target's bounds as
// drawn in the last frame.
func (m *Model) pointer(x, y int) tea.Cmd {
	r, ok := m.screen.Bounds(m.target)
	inside := ok && r.Contains(x, y)
	ev := store.PointerEvent{PageX: x, PageY: y}
	switch {
	case inside && !m.hovering:
		m.hovering = true
		return m.check(m.tooltip.MouseEnter.HandleEvent(ev))
	case !inside && m.hovering:
		m.hovering = false
		return m.check(m.tooltip.MouseLeave.HandleEvent(ev))
	}
	return nil
}

// check ends the program on a render failure.
func (m *Model) check(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	m.err = err
	m.logger.Error("render failed", "err", err)
	return tea.Quit
}

func (m *Model) View() string {
	return m.screen.Frame()
}

// Err returns the render failure that stopped the program, if any.
func (m *Model) Err() error {
	return m.err
}
