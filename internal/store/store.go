// Package store holds widget state. Each store owns its streams and is
// mutated only by its own stream handlers; callers raise events on the
// streams and read state through accessors.
package store

import (
	"strconv"

	"github.com/jask/streamui/internal/render"
	"github.com/jask/streamui/internal/stream"
)

// PointerEvent carries page coordinates of a pointer.
type PointerEvent struct {
	PageX int
	PageY int
}

// Signal is a payload-free event.
type Signal struct{}

// Tooltip follows the pointer into a target and hides when it leaves.
type Tooltip struct {
	MouseEnter *stream.Stream[PointerEvent]
	MouseLeave *stream.Stream[PointerEvent]

	x, y    int
	visible bool
}

// NewTooltip returns a hidden tooltip whose streams re-render through u.
func NewTooltip(u stream.Updater, opts ...stream.Option) *Tooltip {
	t := &Tooltip{
		MouseEnter: stream.New[PointerEvent]("tooltip_hover", u, opts...),
		MouseLeave: stream.New[PointerEvent]("tooltip_leave", u, opts...),
	}
	t.MouseEnter.Handle(t.show)
	t.MouseLeave.Handle(t.hide)
	return t
}

func (t *Tooltip) show(ev PointerEvent) error {
	t.x = ev.PageX
	t.y = ev.PageY
	t.visible = true
	return nil
}

// hide keeps the last coordinates.
func (t *Tooltip) hide(PointerEvent) error {
	t.visible = false
	return nil
}

func (t *Tooltip) Visible() bool { return t.visible }
func (t *Tooltip) X() int        { return t.x }
func (t *Tooltip) Y() int        { return t.y }

// Style positions the tooltip at the last pointer coordinates. It does not
// look at visibility.
func (t *Tooltip) Style() render.Style {
	return render.Style{
		"position": "fixed",
		"left":     strconv.Itoa(t.x) + "px",
		"top":      strconv.Itoa(t.y) + "px",
	}
}

// Toggle flips a visibility flag on every toggle event.
type Toggle struct {
	Toggle *stream.Stream[Signal]

	visible bool
}

// NewToggle returns a toggle that starts hidden.
func NewToggle(u stream.Updater, opts ...stream.Option) *Toggle {
	t := &Toggle{Toggle: stream.New[Signal]("toggle_event", u, opts...)}
	t.Toggle.Handle(t.flip)
	return t
}

func (t *Toggle) flip(Signal) error {
	t.visible = !t.visible
	return nil
}

func (t *Toggle) Visible() bool { return t.visible }
