// Package stream implements named, synchronous event fan-out.
//
// A Stream runs its handlers in subscription order, isolates each handler's
// failure, and then always asks its Updater to re-render.
package stream

import (
	"fmt"
	"log/slog"
	"reflect"
	"runtime"
	"strconv"
)

// Handler reacts to one event. A returned error is logged by the stream and
// does not stop dispatch.
type Handler[E any] func(E) error

// Updater is triggered once after every dispatch.
type Updater interface {
	Update() error
}

type options struct {
	logger      *slog.Logger
	logDispatch bool
}

// Option configures a Stream.
type Option func(*options)

// WithLogger sets the logger for dispatch traces and handler failures.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithDispatchLog enables a debug record for every dispatched event.
func WithDispatchLog(on bool) Option {
	return func(o *options) { o.logDispatch = on }
}

// Stream is an append-only list of handlers for one logical event source.
type Stream[E any] struct {
	name     string
	handlers []Handler[E]
	updater  Updater
	opts     options
}

// New returns an empty stream. A nil u skips the post-dispatch update.
func New[E any](name string, u Updater, opts ...Option) *Stream[E] {
	o := options{logger: slog.Default()}
	for _, fn := range opts {
		fn(&o)
	}
	return &Stream[E]{name: name, updater: u, opts: o}
}

// Name returns the diagnostic name.
func (s *Stream[E]) Name() string {
	return s.name
}

// Len returns the number of subscribed handlers.
func (s *Stream[E]) Len() int {
	return len(s.handlers)
}

// Handle subscribes h. Duplicates are kept.
func (s *Stream[E]) Handle(h Handler[E]) {
	s.handlers = append(s.handlers, h)
}

// HandleEvent runs every handler with ev, then updates the renderer. Only
// the update error is returned.
func (s *Stream[E]) HandleEvent(ev E) error {
	if s.opts.logDispatch {
		s.opts.logger.Debug("event", "stream", s.name, "event", ev, "handlers", s.handlerNames())
	}
	for i, h := range s.handlers {
		if err := s.call(i, h, ev); err != nil {
			s.opts.logger.Error("error handling event", "stream", s.name, "event", ev, "err", err)
		}
	}
	if s.updater == nil {
		return nil
	}
	if err := s.updater.Update(); err != nil {
		return fmt.Errorf("stream %s: %w", s.name, err)
	}
	return nil
}

// handlerNames lists subscribed handlers by position and function name.
func (s *Stream[E]) handlerNames() []string {
	out := make([]string, len(s.handlers))
	for i, h := range s.handlers {
		name := "?"
		if fn := runtime.FuncForPC(reflect.ValueOf(h).Pointer()); fn != nil {
			name = fn.Name()
		}
		out[i] = strconv.Itoa(i) + ":" + name
	}
	return out
}

func (s *Stream[E]) call(i int, h Handler[E], ev E) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler %d panicked: %v", i, r)
		}
	}()
	return h(ev)
}
