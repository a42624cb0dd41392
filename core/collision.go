package core

import (
	"log"

	"github.com/automoto/huskyhunt/components"
	cfg "github.com/automoto/huskyhunt/config"
	"github.com/automoto/huskyhunt/shared/gamemath"
	"github.com/automoto/huskyhunt/shared/physics"
	"github.com/yohamta/donburi"
)

// entryOf resolves the entity that owns b.
func (g *Game) entryOf(b *physics.Body) (*donburi.Entry, bool) {
	ref, ok := components.RefOf(b)
	if !ok {
		return nil, false
	}
	return ref.Entry(g.world)
}

// onCollision is the single handler registered for every gameplay pair. It
// dispatches on the owners of the two bodies.
func (g *Game) onCollision(a, b *physics.Body, _ gamemath.Vector, _ any) {
	ra, okA := components.RefOf(a)
	rb, okB := components.RefOf(b)
	if !okA || !okB {
		return
	}
	// Projectiles and portals go second.
	if ra.Kind == components.KindProjectile || ra.Kind == components.KindPortal {
		a, b = b, a
		ra, rb = rb, ra
	}

	switch {
	case rb.Kind == components.KindProjectile:
		entry, ok := rb.Entry(g.world)
		if !ok {
			return
		}
		proj := components.Projectile.Get(entry)
		g.projectileHit(a, ra, b, proj)
	case ra.Kind == components.KindPlayer && rb.Kind == components.KindPortal:
		g.traversePortal(b, rb)
	}
}

func (g *Game) projectileHit(target *physics.Body, ref components.EntityRef, proj *physics.Body, data *components.ProjectileData) {
	switch ref.Kind {
	case components.KindPlayer:
		if data.Faction != cfg.FactionMob {
			return
		}
		if entry, ok := ref.Entry(g.world); ok {
			components.Health.Get(entry).TakeDamage(data.Damage)
		}
		proj.Remove()
	case components.KindEnemy:
		if data.Faction != cfg.FactionPlayer {
			return
		}
		target.Remove()
		proj.Remove()
	case components.KindBoss:
		if data.Faction != cfg.FactionPlayer {
			return
		}
		if entry, ok := ref.Entry(g.world); ok {
			components.Health.Get(entry).TakeDamage(data.Damage)
		}
		proj.Remove()
	}
}

func (g *Game) traversePortal(body *physics.Body, ref components.EntityRef) {
	entry, ok := ref.Entry(g.world)
	if !ok {
		return
	}
	portal := components.Portal.Get(entry)
	if !portal.Active {
		return
	}
	portal.Active = false
	body.Remove()
	log.Printf("Player entered %s portal", portal.Type)
}
