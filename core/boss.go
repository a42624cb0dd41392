package core

import (
	"log"
	"math"

	"github.com/automoto/huskyhunt/components"
	cfg "github.com/automoto/huskyhunt/config"
	"github.com/automoto/huskyhunt/shared/gamemath"
	"github.com/automoto/huskyhunt/shared/physics"
)

func (g *Game) spawnBoss() {
	if player := g.PlayerBody(); player != nil {
		player.SetCentroid(cfg.Player.ResetPos)
	}
	boss := g.createBoss(cfg.World.Center())
	data := g.data()
	data.Boss = boss.Entity()
	data.HasBoss = true
	data.BossSpawned = true
	log.Printf("Boss spawned with %d health", cfg.Boss.Health)
}

// bossDefeated reports whether the boss has been brought to zero health. A
// boss whose entity is already gone counts as defeated.
func (g *Game) bossDefeated() bool {
	data := g.data()
	if !data.BossSpawned {
		return false
	}
	health, ok := g.BossHealth()
	return !ok || health.Current <= 0
}

func (g *Game) bossBody() *physics.Body {
	entry, ok := g.BossEntry()
	if !ok {
		return nil
	}
	return components.GetBody(entry)
}

// bossRing fires projectiles evenly around the boss.
func (g *Game) bossRing() {
	boss := g.bossBody()
	player := g.PlayerBody()
	if boss == nil || player == nil {
		return
	}
	n := cfg.Boss.NumProjectiles
	from := boss.Centroid()
	for i := 0; i < n; i++ {
		g.bossShot(player, from, 2*math.Pi*float64(i)/float64(n), cfg.Boss.ProjectileSpeed, components.StyleBossRing)
	}
}

// bossRay fires a line of projectiles at the player, each faster than the
// one before.
func (g *Game) bossRay() {
	boss := g.bossBody()
	player := g.PlayerBody()
	if boss == nil || player == nil {
		return
	}
	n := cfg.Boss.NumProjectiles
	from := boss.Centroid()
	angle := player.Centroid().Sub(from).Angle()
	for i := 0; i < n; i++ {
		speed := cfg.Boss.ProjectileSpeed*float64(i+1)/float64(n) + cfg.Boss.RayLowBound
		g.bossShot(player, from, angle, speed, components.StyleBossRay)
	}
}

func (g *Game) bossShot(player *physics.Body, from gamemath.Vector, angle, speed float64, style components.ProjectileStyle) {
	proj := g.createProjectile(shot{
		Damage:  cfg.Boss.Damage,
		Faction: cfg.FactionMob,
		Style:   style,
		Width:   cfg.Boss.ProjectileWidth,
		Height:  cfg.Boss.ProjectileHeight,
		From:    from,
		Angle:   angle,
		Speed:   speed,
		Color:   cfg.Boss.ProjectileColor,
	})
	g.scene.CreateCollision(player, proj, g.onCollision, nil)
}
