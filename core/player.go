package core

import (
	"github.com/automoto/huskyhunt/components"
	cfg "github.com/automoto/huskyhunt/config"
	"github.com/automoto/huskyhunt/shared/gamemath"
	"github.com/automoto/huskyhunt/shared/physics"
	"github.com/automoto/huskyhunt/tags"
)

// fire shoots a player projectile at target if the magazine allows it.
func (g *Game) fire(target gamemath.Vector) bool {
	entry, ok := g.PlayerEntry()
	if !ok {
		return false
	}
	player := components.Player.Get(entry)
	if !player.TryFire() {
		return false
	}

	from := components.GetBody(entry).Centroid()
	proj := g.createProjectile(shot{
		Damage:  player.Damage,
		Faction: cfg.FactionPlayer,
		Style:   components.StylePlayerShot,
		Width:   cfg.Player.ProjectileWidth,
		Height:  cfg.Player.ProjectileHeight,
		From:    from,
		Angle:   target.Sub(from).Angle(),
		Speed:   cfg.Player.ProjectileSpeed,
		Color:   cfg.Player.ProjectileColor,
	})

	for _, enemy := range g.liveBodies(components.KindEnemy) {
		g.scene.CreateCollision(enemy, proj, g.onCollision, nil)
	}
	if boss, ok := g.BossEntry(); ok {
		if body := components.GetBody(boss); !body.Removed() {
			g.scene.CreateCollision(body, proj, g.onCollision, nil)
		}
	}
	return true
}

// melee removes every live enemy within swing range and returns how many
// were hit.
func (g *Game) melee() int {
	body := g.PlayerBody()
	if body == nil {
		return 0
	}

	g.syncSpace()
	reach := cfg.Player.MeleeRange + body.Radius() + enemyRadius()
	hits := 0
	for _, entry := range g.nearby(body.Centroid(), reach, tags.ResolvEnemy) {
		enemy := components.GetBody(entry)
		if enemy.Removed() {
			continue
		}
		if physics.FindCollisionMelee(enemy, body, cfg.Player.MeleeRange).Collided {
			enemy.Remove()
			hits++
		}
	}
	return hits
}
