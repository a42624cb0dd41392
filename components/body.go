package components

import (
	"github.com/automoto/huskyhunt/shared/physics"
	"github.com/yohamta/donburi"
)

// EntityKind identifies which gameplay actor owns a body.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindEnemy
	KindBoss
	KindProjectile
	KindPortal
)

func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindBoss:
		return "boss"
	case KindProjectile:
		return "projectile"
	case KindPortal:
		return "portal"
	}
	return "unknown"
}

// EntityRef is the payload every gameplay body carries: the owning actor's
// kind and its entity in the world.
type EntityRef struct {
	Kind   EntityKind
	Entity donburi.Entity
}

// Entry resolves the ref, or returns false once the entity is gone.
func (r EntityRef) Entry(w donburi.World) (*donburi.Entry, bool) {
	if !w.Valid(r.Entity) {
		return nil, false
	}
	return w.Entry(r.Entity), true
}

// RefOf returns the owner recorded on b.
func RefOf(b *physics.Body) (EntityRef, bool) {
	ref, ok := b.Info().(EntityRef)
	return ref, ok
}

// BodyData links an entity to the physics body the scene owns for it.
type BodyData struct {
	Body *physics.Body
}

var Body = donburi.NewComponentType[BodyData]()

// AttachBody stores body on entry and tags it with the entry's ref. When the
// scene frees the body the entity is removed from w.
func AttachBody(w donburi.World, entry *donburi.Entry, kind EntityKind, body *physics.Body) {
	entity := entry.Entity()
	Body.SetValue(entry, BodyData{Body: body})
	body.SetInfo(EntityRef{Kind: kind, Entity: entity}, func() {
		if w.Valid(entity) {
			w.Remove(entity)
		}
	})
}

// GetBody returns the body attached to entry.
func GetBody(entry *donburi.Entry) *physics.Body {
	return Body.Get(entry).Body
}
