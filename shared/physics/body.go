// Package physics holds the rigid-body simulation: bodies, the scene that owns
// them, and the collision tests the gameplay handlers run.
package physics

import (
	"fmt"
	"image/color"

	"github.com/automoto/huskyhunt/shared/gamemath"
)

// Body is a polygon with mass, velocity and pending force and impulse.
// Once removed it stays removed; the owning Scene frees it on its next Tick.
type Body struct {
	shape    *gamemath.Polygon
	mass     float64
	velocity gamemath.Vector
	force    gamemath.Vector
	impulse  gamemath.Vector
	removed  bool

	info       any
	destructor func()
}

// NewBody wraps shape. It panics if mass is not positive.
func NewBody(shape *gamemath.Polygon, mass float64) *Body {
	if shape == nil {
		panic("physics: nil shape")
	}
	if mass <= 0 {
		panic(fmt.Sprintf("physics: mass must be positive, got %g", mass))
	}
	return &Body{shape: shape, mass: mass, velocity: shape.Velocity()}
}

// NewHitbox returns a w x h axis-aligned box of mass 1 centred on center.
func NewHitbox(w, h float64, center gamemath.Vector, c color.RGBA) *Body {
	b := NewBody(gamemath.NewRectangle(w, h, c), 1)
	b.SetCentroid(center)
	return b
}

// Shape exposes the underlying polygon. Callers must not keep it past the
// body's lifetime.
func (b *Body) Shape() *gamemath.Polygon {
	return b.shape
}

func (b *Body) Mass() float64 {
	return b.mass
}

func (b *Body) Color() color.RGBA {
	return b.shape.Color()
}

func (b *Body) Centroid() gamemath.Vector {
	return b.shape.Centroid()
}

func (b *Body) SetCentroid(c gamemath.Vector) {
	b.shape.SetCenter(c)
}

func (b *Body) Velocity() gamemath.Vector {
	return b.velocity
}

func (b *Body) SetVelocity(v gamemath.Vector) {
	b.velocity = v
}

func (b *Body) Rotation() float64 {
	return b.shape.Rotation()
}

// SetRotation turns the body about its centroid to an absolute angle.
func (b *Body) SetRotation(angle float64) {
	b.shape.SetRotation(angle)
}

// AddForce accumulates a force applied over the next Tick.
func (b *Body) AddForce(f gamemath.Vector) {
	b.force = b.force.Add(f)
}

// AddImpulse accumulates an instantaneous momentum change applied on the next Tick.
func (b *Body) AddImpulse(j gamemath.Vector) {
	b.impulse = b.impulse.Add(j)
}

// Tick integrates the body over dt. The new velocity comes from the pending
// impulse and force; the position moves by the average of the old and new
// velocity. Both accumulators are cleared.
func (b *Body) Tick(dt float64) {
	dv := b.impulse.Add(b.force.Scale(dt)).Scale(1 / b.mass)
	next := b.velocity.Add(dv)
	b.shape.Translate(b.velocity.Add(next).Scale(dt / 2))
	b.velocity = next
	b.force = gamemath.Zero
	b.impulse = gamemath.Zero
}

// Remove marks the body for the next scene sweep. It is idempotent.
func (b *Body) Remove() {
	b.removed = true
}

func (b *Body) Removed() bool {
	return b.removed
}

// SetInfo attaches an owner payload and an optional destructor run when the
// scene frees the body.
func (b *Body) SetInfo(info any, destructor func()) {
	b.info = info
	b.destructor = destructor
}

func (b *Body) Info() any {
	return b.info
}

// free runs the destructor at most once.
func (b *Body) free() {
	if b.destructor != nil {
		d := b.destructor
		b.destructor = nil
		d()
	}
}

// Radius is the largest distance from the centroid to a vertex.
func (b *Body) Radius() float64 {
	c := b.shape.Centroid()
	r := 0.0
	for i := 0; i < b.shape.Len(); i++ {
		if d := b.shape.Point(i).Distance(c); d > r {
			r = d
		}
	}
	return r
}
