package physics

import (
	"fmt"
	"slices"

	"github.com/automoto/huskyhunt/shared/gamemath"
)

// ForceCreator is called once per InvokeForces with the entry's aux payload.
type ForceCreator func(aux any)

// CollisionHandler runs when a registered pair starts overlapping.
type CollisionHandler func(a, b *Body, axis gamemath.Vector, aux any)

// ForceEntry is a registered callback scoped to a set of bodies. An entry
// with no bodies is global.
type ForceEntry struct {
	Creator ForceCreator
	Aux     any
	Bodies  []*Body
}

func (e *ForceEntry) references(b *Body) bool {
	return slices.Contains(e.Bodies, b)
}

func (e *ForceEntry) stale() bool {
	for _, b := range e.Bodies {
		if b.Removed() {
			return true
		}
	}
	return false
}

// Scene owns bodies and the force entries registered against them.
// Insertion order is preserved and doubles as draw order.
type Scene struct {
	bodies []*Body
	forces []*ForceEntry
}

func NewScene() *Scene {
	return &Scene{}
}

// AddBody hands ownership of b to the scene.
func (s *Scene) AddBody(b *Body) {
	s.bodies = append(s.bodies, b)
}

// BodyCount includes bodies that are removed but not yet swept.
func (s *Scene) BodyCount() int {
	return len(s.bodies)
}

// Body returns the i-th body and panics when i is out of range.
func (s *Scene) Body(i int) *Body {
	if i < 0 || i >= len(s.bodies) {
		panic(fmt.Sprintf("physics: body index %d out of range [0,%d)", i, len(s.bodies)))
	}
	return s.bodies[i]
}

// Bodies returns a snapshot of the body list in insertion order.
func (s *Scene) Bodies() []*Body {
	return slices.Clone(s.bodies)
}

func (s *Scene) ForceCount() int {
	return len(s.forces)
}

// AddForceCreator registers a global entry.
func (s *Scene) AddForceCreator(creator ForceCreator, aux any) {
	s.AddForceCreatorWithBodies(creator, aux, nil)
}

// AddForceCreatorWithBodies registers an entry that is dropped as soon as any
// of bodies is swept.
func (s *Scene) AddForceCreatorWithBodies(creator ForceCreator, aux any, bodies []*Body) {
	s.forces = append(s.forces, &ForceEntry{
		Creator: creator,
		Aux:     aux,
		Bodies:  slices.Clone(bodies),
	})
}

// CreateCollision registers a pairwise entry that calls handler on the frame
// a and b begin to overlap.
func (s *Scene) CreateCollision(a, b *Body, handler CollisionHandler, aux any) {
	colliding := false
	s.AddForceCreatorWithBodies(func(aux any) {
		info := FindCollision(a, b)
		if info.Collided && !colliding {
			handler(a, b, info.Axis, aux)
		}
		colliding = info.Collided
	}, aux, []*Body{a, b})
}

// InvokeForces runs every entry once in registration order. Entries that
// reference a removed body are skipped; entries added during the pass first
// run on the next call.
func (s *Scene) InvokeForces() {
	n := len(s.forces)
	for i := 0; i < n; i++ {
		e := s.forces[i]
		if e.stale() {
			continue
		}
		e.Creator(e.Aux)
	}
}

// Tick sweeps removed bodies and integrates the rest. Bodies are visited from
// last to first. A removed body first loses every entry that references it,
// then is freed, which runs its destructor.
func (s *Scene) Tick(dt float64) {
	n := len(s.bodies)
	kept := make([]*Body, 0, n)
	for i := n - 1; i >= 0; i-- {
		b := s.bodies[i]
		if b.Removed() {
			s.purge(b)
			b.free()
			continue
		}
		b.Tick(dt)
		kept = append(kept, b)
	}
	slices.Reverse(kept)
	// Destructors may add bodies; those join after the survivors.
	s.bodies = append(kept, s.bodies[n:]...)
}

func (s *Scene) purge(b *Body) {
	s.forces = slices.DeleteFunc(s.forces, func(e *ForceEntry) bool {
		return e.references(b)
	})
}
