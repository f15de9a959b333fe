package gesture

// EntityStore is the interface for optional ECS integration.
// When set on a Bus, every emitted event is forwarded after the listeners ran.
type EntityStore interface {
	EmitEvent(event Event)
}

// --- Listener registry ---

type listener struct {
	id      uint32
	fn      func(Event)
	removed bool
}

// Bus dispatches gesture events from a detector to its consumers.
// Listeners are keyed by cohort and phase; dispatch is synchronous and runs
// in registration order.
type Bus struct {
	listeners [len(cohortPrefixes)][len(phaseSuffixes)][]*listener
	nextID    uint32
	store     EntityStore
	emitted   uint64
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// CallbackHandle allows removing a registered listener.
type CallbackHandle struct {
	id     uint32
	bus    *Bus
	cohort Cohort
	phase  Phase
}

// Remove unregisters the listener so it no longer fires. Calling Remove more
// than once, or on a zero handle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.bus == nil {
		return
	}
	h.bus.remove(h.cohort, h.phase, h.id)
}

// Active reports whether the listener is still registered.
func (h CallbackHandle) Active() bool {
	if h.bus == nil {
		return false
	}
	for _, l := range h.bus.listeners[h.cohort][h.phase] {
		if l.id == h.id {
			return true
		}
	}
	return false
}

func (b *Bus) remove(c Cohort, p Phase, id uint32) {
	s := b.listeners[c][p]
	for i, l := range s {
		if l.id != id {
			continue
		}
		l.removed = true
		// Build a new slice so a dispatch in progress keeps its own view.
		out := make([]*listener, 0, len(s)-1)
		out = append(out, s[:i]...)
		out = append(out, s[i+1:]...)
		b.listeners[c][p] = out
		return
	}
}

func (b *Bus) add(c Cohort, p Phase, fn func(Event)) CallbackHandle {
	b.nextID++
	id := b.nextID
	b.listeners[c][p] = append(b.listeners[c][p], &listener{id: id, fn: fn})
	return CallbackHandle{id: id, bus: b, cohort: c, phase: p}
}

// --- Typed registration ---

// OnStart registers a callback for "<cohort>fingerstart".
func (b *Bus) OnStart(c Cohort, fn func(StartEvent)) CallbackHandle {
	return b.add(c, PhaseStart, func(e Event) { fn(e.(StartEvent)) })
}

// OnMove registers a callback for "<cohort>fingermove".
func (b *Bus) OnMove(c Cohort, fn func(MoveEvent)) CallbackHandle {
	return b.add(c, PhaseMove, func(e Event) { fn(e.(MoveEvent)) })
}

// OnEnd registers a callback for "<cohort>fingerend".
func (b *Bus) OnEnd(c Cohort, fn func(EndEvent)) CallbackHandle {
	return b.add(c, PhaseEnd, func(e Event) { fn(e.(EndEvent)) })
}

// On registers a callback by its string event name, e.g. "onefingermove".
func (b *Bus) On(name string, fn func(Event)) (CallbackHandle, error) {
	c, p, err := ParseEventName(name)
	if err != nil {
		return CallbackHandle{}, err
	}
	return b.add(c, p, fn), nil
}

// OnAll registers fn for every cohort and phase. The returned handles remove
// the individual registrations.
func (b *Bus) OnAll(fn func(Event)) []CallbackHandle {
	handles := make([]CallbackHandle, 0, len(cohortPrefixes)*len(phaseSuffixes))
	for c := range cohortPrefixes {
		for p := range phaseSuffixes {
			handles = append(handles, b.add(Cohort(c), Phase(p), fn))
		}
	}
	return handles
}

// ListenerCount returns how many callbacks are registered for the event.
func (b *Bus) ListenerCount(c Cohort, p Phase) int {
	return len(b.listeners[c][p])
}

// SetEntityStore sets the optional ECS bridge.
func (b *Bus) SetEntityStore(store EntityStore) {
	b.store = store
}

// Emitted returns the number of events dispatched since the bus was created.
func (b *Bus) Emitted() uint64 {
	return b.emitted
}

// Emit dispatches e to every listener registered for its cohort and phase,
// then to the entity store if one is set.
func (b *Bus) Emit(e Event) {
	b.emitted++
	for _, l := range b.listeners[e.Cohort()][e.Phase()] {
		if l.removed {
			continue
		}
		l.fn(e)
	}
	if b.store != nil {
		b.store.EmitEvent(e)
	}
}
