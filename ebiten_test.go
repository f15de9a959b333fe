package gesture

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTouch struct {
	id   ebiten.TouchID
	x, y int
}

// fakeTouches replays a fixed set of touches per frame.
type fakeTouches struct {
	frame []fakeTouch
}

func (f *fakeTouches) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	for _, t := range f.frame {
		ids = append(ids, t.id)
	}
	return ids
}

func (f *fakeTouches) TouchPosition(id ebiten.TouchID) (int, int) {
	for _, t := range f.frame {
		if t.id == id {
			return t.x, t.y
		}
	}
	return 0, 0
}

func TestEbitenSource_Lifecycle(t *testing.T) {
	_, sf, _, rec := newTestDetector()
	touch := &fakeTouches{}
	src := newEbitenSource(sf, touch)

	touch.frame = []fakeTouch{{7, 100, 100}}
	src.Poll()
	touch.frame = []fakeTouch{{7, 110, 100}}
	src.Poll()
	src.Poll() // unchanged frame dispatches nothing
	touch.frame = []fakeTouch{{7, 110, 100}, {9, 160, 100}}
	src.Poll()
	touch.frame = []fakeTouch{{7, 110, 100}, {9, 170, 100}}
	src.Poll()
	touch.frame = nil
	src.Poll()

	assert.Equal(t, []string{
		"onefingerstart", "onefingermove",
		"onefingerend", "twofingerstart",
		"twofingermove",
		"twofingerend", "onefingerstart",
		"onefingerend",
	}, rec.names())
	assert.Zero(t, src.ActiveTouches())

	mv := rec.events[4].(MoveEvent)
	assert.InDelta(t, 10, mv.SpreadChange, 1e-9)
	assert.InDelta(t, 50, mv.StartSpread, 1e-9)
}

func TestEbitenSource_KeepsFirstSeenOrder(t *testing.T) {
	sf := NewSurface("s")
	var last TouchInput
	for _, k := range []TouchKind{TouchStart, TouchMove, TouchEnd} {
		sf.OnTouch(k, func(in TouchInput) { last = in })
	}
	touch := &fakeTouches{}
	src := newEbitenSource(sf, touch)

	touch.frame = []fakeTouch{{5, 0, 0}}
	src.Poll()
	// Ebiten may report ids in any order; the source keeps touch-down order.
	touch.frame = []fakeTouch{{2, 30, 40}, {5, 0, 0}}
	src.Poll()

	require.Len(t, last.Touches, 2)
	assert.Equal(t, 5, last.Touches[0].ID)
	assert.Equal(t, 2, last.Touches[1].ID)
	assert.Equal(t, 2, src.ActiveTouches())
}

func TestEbitenSource_MoveWithLiftSameFrame(t *testing.T) {
	_, sf, _, rec := newTestDetector()
	touch := &fakeTouches{}
	src := newEbitenSource(sf, touch)

	touch.frame = []fakeTouch{{1, 0, 0}, {2, 10, 0}}
	src.Poll()
	rec.reset()

	touch.frame = []fakeTouch{{2, 20, 0}}
	src.Poll()

	require.Equal(t, []string{"twofingerend", "onefingerstart", "onefingermove"}, rec.names())
	start := rec.events[1].(StartEvent)
	assert.Equal(t, Vec2{10, 0}, start.Position)
	assert.Equal(t, Vec2{10, 0}, rec.events[2].(MoveEvent).PositionChange)
}

func TestEbitenSource_MouseOnOwnSurface(t *testing.T) {
	scene := NewScene()
	canvas := scene.NewSurface("canvas")
	scene.NewDetector(canvas, DetectorConfig{})
	mouse := scene.NewSurface("mouse")
	scene.NewDetector(mouse, DetectorConfig{})
	tr := NewTransform(0.02)
	_, err := scene.NewHandler(tr, DefaultHandlerConfig())
	require.NoError(t, err)
	scene.TargetAcquired()
	rec := newRecorder(scene.Bus())

	touch := &fakeTouches{}
	src := newEbitenSource(canvas, touch)

	mouse.InjectPress(1000, 0, 0)
	touch.frame = []fakeTouch{{7, 100, 100}}
	src.Poll()
	mouse.InjectMove(1000, 10, 0)
	touch.frame = []fakeTouch{{7, 104, 100}}
	src.Poll()

	// Polling the canvas never ends the mouse contact.
	assert.Len(t, mouse.Contacts(), 1)
	assert.Equal(t, 1, src.ActiveTouches())
	assert.Equal(t, []string{
		"onefingerstart", "onefingerstart",
		"onefingermove", "onefingermove",
	}, rec.names())
	assert.InDelta(t, 0.35, tr.RotationY, 1e-12)
}
