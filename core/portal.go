package core

import (
	"log"

	"github.com/automoto/huskyhunt/components"
	cfg "github.com/automoto/huskyhunt/config"
	"github.com/yohamta/donburi"
)

// spawnPortal opens a portal in the middle of the arena and lets the player
// walk into it.
func (g *Game) spawnPortal(kind cfg.PortalType) {
	portal := g.createPortal(cfg.World.Center(), kind)
	data := g.data()
	data.Portal = portal.Entity()
	data.HasPortal = true
	data.PortalSpawned = true

	if player := g.PlayerBody(); player != nil {
		g.scene.CreateCollision(player, components.GetBody(portal), g.onCollision, nil)
	}
	log.Printf("Spawned %s portal", kind)
}

// portalTraversed reports whether the current portal has been used. A portal
// whose entity is already swept was used.
func (g *Game) portalTraversed() bool {
	data := g.data()
	if !data.HasPortal {
		return false
	}
	entry, ok := g.entry(data.Portal)
	if !ok {
		return true
	}
	return !components.Portal.Get(entry).Active
}

// PortalScale returns the portal's current pulse scale.
func (g *Game) PortalScale() float32 {
	entry, ok := g.PortalEntry()
	if !ok {
		return 1
	}
	return components.Tween.Get(entry).Value
}

// advancePulse steps every portal tween, restarting finished sequences.
func (g *Game) advancePulse(dt float64) {
	components.Tween.Each(g.world, func(entry *donburi.Entry) {
		tw := components.Tween.Get(entry)
		if tw.Sequence == nil {
			return
		}
		value, _, done := tw.Sequence.Update(float32(dt))
		if done {
			tw.Sequence.Reset()
		}
		tw.Value = value
	})
}
