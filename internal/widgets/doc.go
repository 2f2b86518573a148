// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (box chrome, canvas fitting, popup overlay compositor)
//
// Not allowed here:
// - event handling, store state, or mount bookkeeping
package widgets
