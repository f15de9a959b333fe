package gesture

import "strings"

// SurfaceResolver looks up a touch surface by selector. It returns nil when
// nothing matches.
type SurfaceResolver interface {
	Surface(selector string) *Surface
}

type touchListener struct {
	id      uint32
	fn      func(TouchInput)
	removed bool
}

// Surface is a touch-input target. Input sources call Dispatch; detectors
// subscribe with OnTouch.
type Surface struct {
	name      string
	listeners [len(touchKindNames)][]*touchListener
	nextID    uint32

	// contacts tracks synthetic touches created through the Inject* helpers.
	contacts []TouchSample
}

// NewSurface creates a detached surface with the given name.
func NewSurface(name string) *Surface {
	return &Surface{name: name}
}

// Name returns the surface name.
func (s *Surface) Name() string {
	return s.name
}

// TouchHandle allows removing a raw touch listener.
type TouchHandle struct {
	id      uint32
	surface *Surface
	kind    TouchKind
}

// Remove unregisters the listener. Safe to call repeatedly.
func (h TouchHandle) Remove() {
	if h.surface == nil {
		return
	}
	ls := h.surface.listeners[h.kind]
	for i, l := range ls {
		if l.id != h.id {
			continue
		}
		l.removed = true
		out := make([]*touchListener, 0, len(ls)-1)
		out = append(out, ls[:i]...)
		out = append(out, ls[i+1:]...)
		h.surface.listeners[h.kind] = out
		return
	}
}

// OnTouch registers a raw listener for one notification kind.
func (s *Surface) OnTouch(kind TouchKind, fn func(TouchInput)) TouchHandle {
	s.nextID++
	id := s.nextID
	s.listeners[kind] = append(s.listeners[kind], &touchListener{id: id, fn: fn})
	return TouchHandle{id: id, surface: s, kind: kind}
}

// ListenerCount returns the number of raw listeners for kind.
func (s *Surface) ListenerCount(kind TouchKind) int {
	return len(s.listeners[kind])
}

// Dispatch delivers a raw notification to the listeners for in.Kind, in
// registration order.
func (s *Surface) Dispatch(in TouchInput) {
	if int(in.Kind) >= len(s.listeners) {
		return
	}
	for _, l := range s.listeners[in.Kind] {
		if l.removed {
			continue
		}
		l.fn(in)
	}
}

// normalizeSelector strips a leading "#" so "#canvas" and "canvas" resolve
// to the same surface.
func normalizeSelector(sel string) string {
	return strings.TrimPrefix(strings.TrimSpace(sel), "#")
}
