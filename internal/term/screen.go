// Package term renders views onto a fixed-size terminal canvas. Screen
// implements render.Renderer: mounts are reconciled in place and composed
// into a frame on demand.
package term

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/jask/streamui/internal/render"
	"github.com/jask/streamui/internal/widgets"
)

// ErrUnknownNode is returned for nodes that were not mounted by this screen.
var ErrUnknownNode = errors.New("term: unknown node")

// Rect is a cell rectangle; X and Y are zero-based.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Mount is a node on a Screen.
type Mount struct {
	id       string
	children []*Mount
	painted
}

func (m *Mount) ID() string { return m.id }

var _ render.Renderer = (*Screen)(nil)

// Screen is a fixed-size terminal canvas holding a tree of mounts.
type Screen struct {
	width, height int
	root          *Mount
	mounts        map[string]*Mount
	bounds        map[string]Rect
	patches       int
}

// NewScreen returns an empty width x height screen.
func NewScreen(width, height int) *Screen {
	root := &Mount{id: uuid.NewString()}
	return &Screen{
		width:  width,
		height: height,
		root:   root,
		mounts: map[string]*Mount{root.id: root},
		bounds: map[string]Rect{},
	}
}

// Root is the host for top-level mounts.
func (s *Screen) Root() render.Node { return s.root }

// Resize changes the canvas size used by the next Frame.
func (s *Screen) Resize(width, height int) {
	s.width, s.height = width, height
}

// Size returns the canvas width and height.
func (s *Screen) Size() (int, int) { return s.width, s.height }

// Patches counts updates that changed a mount's output.
func (s *Screen) Patches() int { return s.patches }

func (s *Screen) lookup(n render.Node) (*Mount, error) {
	m, ok := n.(*Mount)
	if !ok || m == nil || s.mounts[m.id] != m {
		return nil, ErrUnknownNode
	}
	return m, nil
}

// Append paints fn and mounts the result as the last child of host.
func (s *Screen) Append(host render.Node, fn render.Func) (render.Node, error) {
	h, err := s.lookup(host)
	if err != nil {
		return nil, err
	}
	p, err := renderPainted(fn)
	if err != nil {
		return nil, err
	}
	m := &Mount{id: uuid.NewString(), painted: p}
	h.children = append(h.children, m)
	s.mounts[m.id] = m
	return m, nil
}

// Update re-runs fn for node and replaces its output only when fn now
// paints something different.
func (s *Screen) Update(node render.Node, fn render.Func) error {
	m, err := s.lookup(node)
	if err != nil {
		return err
	}
	p, err := renderPainted(fn)
	if err != nil {
		return err
	}
	if p == m.painted {
		return nil
	}
	m.painted = p
	s.patches++
	return nil
}

func renderPainted(fn render.Func) (painted, error) {
	v, err := fn()
	if err != nil {
		return painted{}, err
	}
	p, err := paint(v)
	if err != nil {
		return painted{}, fmt.Errorf("paint: %w", err)
	}
	return p, nil
}

// Frame composes every mount into a width x height canvas. In-flow mounts
// stack downward in mount order; fixed mounts are overlaid afterwards in
// mount order. Mounts hosted by a fixed mount are not drawn.
func (s *Screen) Frame() string {
	s.bounds = map[string]Rect{}
	var fixed []*Mount
	lines := s.layout(s.root, 0, &fixed)
	canvas := widgets.Fit(strings.Join(lines, "\n"), s.width, s.height)
	for _, m := range fixed {
		w := min(lipgloss.Width(m.out), s.width)
		h := min(lipgloss.Height(m.out), s.height)
		x, y := widgets.Place(m.left, m.top, s.width, s.height, w, h)
		s.bounds[m.id] = Rect{X: x, Y: y, Width: w, Height: h}
		canvas = widgets.OverlayAt(canvas, m.out, m.left, m.top, s.width, s.height)
	}
	return canvas
}

func (s *Screen) layout(m *Mount, y int, fixed *[]*Mount) []string {
	if m.hidden {
		return nil
	}
	var lines []string
	if m.out != "" {
		lines = strings.Split(m.out, "\n")
	}
	for _, c := range m.children {
		if c.fixed {
			if !c.hidden {
				*fixed = append(*fixed, c)
			}
			continue
		}
		lines = append(lines, s.layout(c, y+len(lines), fixed)...)
	}
	s.bounds[m.id] = Rect{X: 0, Y: y, Width: lipgloss.Width(strings.Join(lines, "\n")), Height: len(lines)}
	return lines
}

// Bounds reports where node was drawn in the last Frame.
func (s *Screen) Bounds(node render.Node) (Rect, bool) {
	m, err := s.lookup(node)
	if err != nil {
		return Rect{}, false
	}
	r, ok := s.bounds[m.id]
	return r, ok
}
