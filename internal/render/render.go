// Package render keeps the ordered list of mounted render functions and
// replays them against a Renderer whenever the UI needs refreshing.
package render

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Style is a CSS-like presentation descriptor, e.g. {"position": "fixed"}.
type Style map[string]string

// View describes renderable output. The zero View renders as nothing.
type View struct {
	Text     string
	Style    Style
	Children []View
}

// IsZero reports whether v has no text, style or children.
func (v View) IsZero() bool {
	return v.Text == "" && len(v.Style) == 0 && len(v.Children) == 0
}

// Func produces a View from current store state. It takes no arguments and
// is called once per Update pass.
type Func func() (View, error)

// Node is an opaque handle to output mounted by a Renderer.
type Node interface {
	ID() string
}

// Renderer is the rendering engine the registry drives.
// Append mounts fn's output under host; Update reconciles node in place
// against a fresh call of fn.
type Renderer interface {
	Append(host Node, fn Func) (Node, error)
	Update(node Node, fn Func) error
}

type entry struct {
	id   uuid.UUID
	node Node
	fn   Func
}

// Registry pairs mounted nodes with the render function that produced them.
// Entries are never removed.
type Registry struct {
	renderer Renderer
	entries  []entry
	logger   *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for mount and update diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistry returns an empty registry that mounts through r.
func NewRegistry(r Renderer, opts ...Option) *Registry {
	reg := &Registry{renderer: r, logger: slog.Default()}
	for _, o := range opts {
		o(reg)
	}
	return reg
}

// Append mounts fn under host and registers the pair. Nothing is registered
// when the renderer fails.
func (r *Registry) Append(host Node, fn Func) (Node, error) {
	if fn == nil {
		return nil, errors.New("append: nil render func")
	}
	node, err := r.renderer.Append(host, fn)
	if err != nil {
		return nil, fmt.Errorf("append: %w", err)
	}
	e := entry{id: uuid.New(), node: node, fn: fn}
	r.entries = append(r.entries, e)
	r.logger.Debug("mounted", "entry", e.id, "node", node.ID(), "position", len(r.entries)-1)
	return node, nil
}

// Update re-renders every entry in registration order. The first failing
// entry aborts the pass; later entries are not visited.
func (r *Registry) Update() error {
	for i, e := range r.entries {
		if err := r.renderer.Update(e.node, e.fn); err != nil {
			return fmt.Errorf("update entry %d (%s): %w", i, e.id, err)
		}
	}
	return nil
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Nodes returns the mounted nodes in registration order.
func (r *Registry) Nodes() []Node {
	out := make([]Node, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.node
	}
	return out
}
