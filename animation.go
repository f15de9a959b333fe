package gesture

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 5 float64 fields on a Transform simultaneously.
// Call Update(dt) each frame; the group writes values and marks the transform
// changed. Handlers drive their own groups from Scene.Update.
type TweenGroup struct {
	tweens [5]*gween.Tween
	count  int
	fields [5]*float64
	target *Transform
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkChanged()
	}
}

func (g *TweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.count++
}

// TweenTransform creates a TweenGroup that animates both rotation axes and
// all scale axes of t to the values in to.
func TweenTransform(t *Transform, to Transform, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: t}
	g.add(&t.RotationX, to.RotationX, duration, fn)
	g.add(&t.RotationY, to.RotationY, duration, fn)
	g.add(&t.Scale.X, to.Scale.X, duration, fn)
	g.add(&t.Scale.Y, to.Scale.Y, duration, fn)
	g.add(&t.Scale.Z, to.Scale.Z, duration, fn)
	return g
}

// TweenScale creates a TweenGroup that animates the scale axes of t.
func TweenScale(t *Transform, to Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: t}
	g.add(&t.Scale.X, to.X, duration, fn)
	g.add(&t.Scale.Y, to.Y, duration, fn)
	g.add(&t.Scale.Z, to.Z, duration, fn)
	return g
}
