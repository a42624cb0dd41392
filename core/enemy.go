package core

import (
	"math"

	"github.com/automoto/huskyhunt/components"
	cfg "github.com/automoto/huskyhunt/config"
	"github.com/automoto/huskyhunt/shared/gamemath"
	"github.com/automoto/huskyhunt/shared/physics"
)

// liveBodies returns the scene's bodies owned by kind that are not removed,
// in scene order.
func (g *Game) liveBodies(kind components.EntityKind) []*physics.Body {
	var out []*physics.Body
	for _, b := range g.scene.Bodies() {
		if b.Removed() {
			continue
		}
		if ref, ok := components.RefOf(b); ok && ref.Kind == kind {
			out = append(out, b)
		}
	}
	return out
}

// liveProjectiles returns the live projectiles fired by faction.
func (g *Game) liveProjectiles(faction cfg.Faction) []*physics.Body {
	var out []*physics.Body
	for _, b := range g.liveBodies(components.KindProjectile) {
		entry, ok := g.entryOf(b)
		if !ok {
			continue
		}
		if components.Projectile.Get(entry).Faction == faction {
			out = append(out, b)
		}
	}
	return out
}

// spawnEnemy drops an enemy on a random point of the arena border and wires
// it to every player projectile already in flight.
func (g *Game) spawnEnemy(damage int) *physics.Body {
	pos := g.borderPoint()
	entry := g.createEnemy(pos, damage, 0, 0)
	body := components.GetBody(entry)
	for _, proj := range g.liveProjectiles(cfg.FactionPlayer) {
		g.scene.CreateCollision(body, proj, g.onCollision, nil)
	}
	return body
}

// borderPoint picks a uniformly placed point on a random side of the arena.
func (g *Game) borderPoint() gamemath.Vector {
	min, max := cfg.World.Min, cfg.World.Max
	pick := func(a, b float64) float64 {
		if g.rng.Float64() < 0.5 {
			return a
		}
		return b
	}
	if g.rng.Float64() < 0.5 {
		x := min.X + g.rng.Float64()*(max.X-min.X)
		return gamemath.Vector{X: x, Y: pick(min.Y, max.Y)}
	}
	x := pick(min.X, max.X)
	y := min.Y + g.rng.Float64()*(max.Y-min.Y)
	return gamemath.Vector{X: x, Y: y}
}

// moveEnemies steers every live enemy toward the player and away from
// incoming player projectiles.
func (g *Game) moveEnemies() {
	player := g.PlayerBody()
	if player == nil {
		return
	}
	shots := g.liveProjectiles(cfg.FactionPlayer)
	for _, enemy := range g.liveBodies(components.KindEnemy) {
		enemy.SetVelocity(steer(enemy, player, shots))
	}
}

// steer combines the approach velocity with a sidestep from the nearest
// threatening shot. When several shots are inside the dodge radius the last
// one in scene order decides.
func steer(enemy, player *physics.Body, shots []*physics.Body) gamemath.Vector {
	pos := enemy.Centroid()

	approach := gamemath.Zero
	if pos.Distance(player.Centroid()) > cfg.Enemy.StopRadius {
		approach = gamemath.HomingVelocity(pos, player.Centroid(), cfg.Enemy.Speed)
	}

	dodge := gamemath.Zero
	for _, shot := range shots {
		toShot := shot.Centroid().Sub(pos)
		dist := toShot.Length()
		if dist >= cfg.Enemy.DodgeRadius || dist == 0 {
			continue
		}
		if toShot.Scale(1 / dist).Cross(shot.Velocity()) > 0 {
			dodge = toShot.Rotate(-math.Pi / 2)
		} else {
			dodge = toShot.Rotate(math.Pi / 2)
		}
		dodge = dodge.Scale(cfg.Enemy.DodgeSpeed / dodge.Length())
	}

	return approach.Add(dodge)
}

// enemiesAttack has every live enemy shoot at the player.
func (g *Game) enemiesAttack() {
	player := g.PlayerBody()
	if player == nil {
		return
	}
	target := player.Centroid()
	for _, enemy := range g.liveBodies(components.KindEnemy) {
		entry, ok := g.entryOf(enemy)
		if !ok {
			continue
		}
		from := enemy.Centroid()
		proj := g.createProjectile(shot{
			Damage:  components.Enemy.Get(entry).Damage,
			Faction: cfg.FactionMob,
			Style:   components.StyleEnemyShot,
			Width:   cfg.Enemy.ProjectileWidth,
			Height:  cfg.Enemy.ProjectileHeight,
			From:    from,
			Angle:   target.Sub(from).Angle(),
			Speed:   cfg.Enemy.ProjectileSpeed,
			Color:   cfg.Enemy.ProjectileColor,
		})
		g.scene.CreateCollision(player, proj, g.onCollision, nil)
	}
}
