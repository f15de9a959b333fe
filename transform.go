package gesture

import "math"

// Transform is the mutable rotation and scale of a tracked 3D object.
// Rotations are in radians.
type Transform struct {
	RotationX float64 `json:"rotationX"`
	RotationY float64 `json:"rotationY"`
	Scale     Vec3    `json:"scale"`

	version uint64
}

// NewTransform returns a transform with no rotation and the given uniform scale.
func NewTransform(scale float64) *Transform {
	return &Transform{Scale: Vec3{X: scale, Y: scale, Z: scale}}
}

// --- Transform property setters ---

// SetRotation sets both rotation axes and marks the transform changed.
func (t *Transform) SetRotation(x, y float64) {
	t.RotationX = x
	t.RotationY = y
	t.version++
}

// Rotate adds deltas to both rotation axes.
func (t *Transform) Rotate(dx, dy float64) {
	t.RotationX += dx
	t.RotationY += dy
	t.version++
}

// SetScale sets the per-axis scale and marks the transform changed.
func (t *Transform) SetScale(s Vec3) {
	t.Scale = s
	t.version++
}

// MarkChanged bumps the version after fields were written directly.
func (t *Transform) MarkChanged() {
	t.version++
}

// Version increases every time the transform is changed through its methods.
// Renderers can compare it to skip redundant work.
func (t *Transform) Version() uint64 {
	return t.version
}

// Snapshot returns a copy of the transform values.
func (t *Transform) Snapshot() Transform {
	return Transform{RotationX: t.RotationX, RotationY: t.RotationY, Scale: t.Scale}
}

// Matrix returns the column-major 3x3 rotation-scale matrix R_y * R_x * S,
// for renderers that need more than the raw fields.
func (t *Transform) Matrix() [9]float64 {
	sx, cx := math.Sincos(t.RotationX)
	sy, cy := math.Sincos(t.RotationY)

	// R = Ry * Rx
	//   | cy   sy*sx  sy*cx |
	//   | 0    cx     -sx   |
	//   | -sy  cy*sx  cy*cx |
	return [9]float64{
		cy * t.Scale.X, 0, -sy * t.Scale.X,
		sy * sx * t.Scale.Y, cx * t.Scale.Y, cy * sx * t.Scale.Y,
		sy * cx * t.Scale.Z, -sx * t.Scale.Z, cy * cx * t.Scale.Z,
	}
}
