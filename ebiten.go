package gesture

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// touchReader is the subset of ebiten's touch API the source polls.
type touchReader interface {
	AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (int, int)
}

type ebitenTouches struct{}

func (ebitenTouches) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(ids)
}

func (ebitenTouches) TouchPosition(id ebiten.TouchID) (int, int) {
	return ebiten.TouchPosition(id)
}

// EbitenSource feeds an Ebitengine game's touch input into a Surface. Call
// Poll once per frame from the game's Update. Contacts are reported in the
// order they first touched down.
type EbitenSource struct {
	surface *Surface
	reader  touchReader

	idBuf   []ebiten.TouchID
	order   []ebiten.TouchID
	pos     map[ebiten.TouchID]Vec2
	current map[ebiten.TouchID]Vec2
}

// NewEbitenSource creates a source dispatching to surface.
func NewEbitenSource(surface *Surface) *EbitenSource {
	return newEbitenSource(surface, ebitenTouches{})
}

func newEbitenSource(surface *Surface, reader touchReader) *EbitenSource {
	return &EbitenSource{
		surface: surface,
		reader:  reader,
		pos:     make(map[ebiten.TouchID]Vec2),
		current: make(map[ebiten.TouchID]Vec2),
	}
}

// ActiveTouches returns the number of contacts seen on the last Poll.
func (e *EbitenSource) ActiveTouches() int {
	return len(e.order)
}

// Poll reads the current touches and dispatches touchend for lifted
// contacts, touchstart for new ones, then a single touchmove if any
// remaining contact moved.
func (e *EbitenSource) Poll() {
	e.idBuf = e.reader.AppendTouchIDs(e.idBuf[:0])

	clear(e.current)
	for _, id := range e.idBuf {
		x, y := e.reader.TouchPosition(id)
		e.current[id] = Vec2{X: float64(x), Y: float64(y)}
	}

	// Lifted contacts, in first-seen order.
	for i := 0; i < len(e.order); {
		id := e.order[i]
		if _, ok := e.current[id]; ok {
			i++
			continue
		}
		e.order = append(e.order[:i], e.order[i+1:]...)
		delete(e.pos, id)
		e.surface.Dispatch(TouchInput{Kind: TouchEnd, Touches: e.samples()})
	}

	moved := false
	for _, id := range e.order {
		if e.current[id] != e.pos[id] {
			moved = true
		}
	}

	// New contacts, in the order ebiten reports them.
	for _, id := range e.idBuf {
		if _, ok := e.pos[id]; ok {
			continue
		}
		e.order = append(e.order, id)
		e.pos[id] = e.current[id]
		e.surface.Dispatch(TouchInput{Kind: TouchStart, Touches: e.samples()})
	}

	if moved {
		for _, id := range e.order {
			e.pos[id] = e.current[id]
		}
		e.surface.Dispatch(TouchInput{Kind: TouchMove, Touches: e.samples()})
	}
}

// samples builds the contact list from the tracked order using the last
// dispatched positions, so movement is only reported by touchmove.
func (e *EbitenSource) samples() []TouchSample {
	out := make([]TouchSample, 0, len(e.order))
	for _, id := range e.order {
		p := e.pos[id]
		out = append(out, TouchSample{ID: int(id), X: p.X, Y: p.Y})
	}
	return out
}
