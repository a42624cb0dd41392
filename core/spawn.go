package core

import (
	"image/color"
	"math"

	"github.com/automoto/huskyhunt/archetypes"
	"github.com/automoto/huskyhunt/components"
	cfg "github.com/automoto/huskyhunt/config"
	"github.com/automoto/huskyhunt/shared/gamemath"
	"github.com/automoto/huskyhunt/shared/physics"
	"github.com/automoto/huskyhunt/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

func (g *Game) createPlayer(pos gamemath.Vector) *donburi.Entry {
	player := archetypes.Player.Spawn(g.world)
	body := physics.NewHitbox(cfg.Player.Width, cfg.Player.Height, pos, cfg.Player.Color)
	components.AttachBody(g.world, player, components.KindPlayer, body)
	components.Player.SetValue(player, components.NewPlayerData())
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.MaxHealth,
	})
	g.scene.AddBody(body)
	return player
}

// createEnemy spawns a regular enemy. A zero w or h uses the configured size.
func (g *Game) createEnemy(pos gamemath.Vector, damage int, w, h float64) *donburi.Entry {
	if w == 0 || h == 0 {
		w, h = cfg.Enemy.Width, cfg.Enemy.Height
	}
	enemy := archetypes.Enemy.Spawn(g.world)
	body := physics.NewHitbox(w, h, pos, cfg.Enemy.Color)
	components.AttachBody(g.world, enemy, components.KindEnemy, body)
	components.Enemy.SetValue(enemy, components.EnemyData{Damage: damage})
	g.attachObject(enemy, body, tags.ResolvEnemy)
	g.scene.AddBody(body)
	return enemy
}

func (g *Game) createBoss(pos gamemath.Vector) *donburi.Entry {
	boss := archetypes.Boss.Spawn(g.world)
	body := physics.NewHitbox(cfg.Boss.Width, cfg.Boss.Height, pos, cfg.Boss.Color)
	components.AttachBody(g.world, boss, components.KindBoss, body)
	components.Boss.SetValue(boss, components.BossData{Damage: cfg.Boss.Damage})
	components.Health.SetValue(boss, components.HealthData{
		Current: cfg.Boss.Health,
		Max:     cfg.Boss.Health,
	})
	g.attachObject(boss, body, tags.ResolvBoss)
	g.scene.AddBody(body)
	return boss
}

func (g *Game) createPortal(pos gamemath.Vector, kind cfg.PortalType) *donburi.Entry {
	portal := archetypes.Portal.Spawn(g.world)
	body := physics.NewHitbox(cfg.Portal.Width, cfg.Portal.Height, pos, cfg.Portal.Color)
	components.AttachBody(g.world, portal, components.KindPortal, body)
	components.Portal.SetValue(portal, components.PortalData{Type: kind, Active: true})

	// The portal breathes: its render scale runs up and back down, then repeats.
	seq := gween.NewSequence()
	seq.Add(
		gween.New(1, cfg.Portal.PulseScale, cfg.Portal.PulsePeriod, ease.InOutQuad),
		gween.New(cfg.Portal.PulseScale, 1, cfg.Portal.PulsePeriod, ease.InOutQuad),
	)
	components.Tween.SetValue(portal, components.TweenData{Sequence: seq, Value: 1})

	g.attachObject(portal, body, tags.ResolvPortal)
	g.scene.AddBody(body)
	return portal
}

// shot describes a projectile about to be fired.
type shot struct {
	Damage  int
	Faction cfg.Faction
	Style   components.ProjectileStyle
	Width   float64
	Height  float64
	From    gamemath.Vector
	Angle   float64
	Speed   float64
	Color   color.RGBA
}

func (g *Game) createProjectile(s shot) *physics.Body {
	projectile := archetypes.Projectile.Spawn(g.world)
	body := physics.NewHitbox(s.Width, s.Height, s.From, s.Color)
	sin, cos := math.Sincos(s.Angle)
	body.SetVelocity(gamemath.Vector{X: s.Speed * cos, Y: s.Speed * sin})
	components.AttachBody(g.world, projectile, components.KindProjectile, body)
	components.Projectile.SetValue(projectile, components.ProjectileData{
		Damage:  s.Damage,
		Faction: s.Faction,
		Angle:   s.Angle,
		Style:   s.Style,
	})
	g.scene.AddBody(body)
	return body
}
