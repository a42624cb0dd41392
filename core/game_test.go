package core

import (
	"math"
	"testing"

	"github.com/automoto/huskyhunt/components"
	cfg "github.com/automoto/huskyhunt/config"
	"github.com/automoto/huskyhunt/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const frame = 1.0 / 60

func newPlayingGame(t *testing.T) *Game {
	t.Helper()
	g := NewGame(1)
	g.Start()
	require.Equal(t, cfg.StatePlaying, g.State())
	return g
}

func projectileData(t *testing.T, g *Game) []components.ProjectileData {
	t.Helper()
	var out []components.ProjectileData
	for _, b := range g.liveBodies(components.KindProjectile) {
		entry, ok := g.entryOf(b)
		require.True(t, ok)
		out = append(out, *components.Projectile.Get(entry))
	}
	return out
}

func TestNewGameStartsOnMenu(t *testing.T) {
	g := NewGame(1)

	assert.Equal(t, cfg.StateMenu, g.State())
	assert.Equal(t, 1, g.Scene().BodyCount())
	require.NotNil(t, g.PlayerBody())
	assert.True(t, g.PlayerBody().Centroid().ApproxEqual(cfg.Player.ResetPos, 1e-9))

	health := g.PlayerHealth()
	assert.Equal(t, cfg.Player.Health, health.Current)
	assert.Equal(t, cfg.Player.MaxHealth, health.Max)
}

func TestMenuOnlyTicksTheScene(t *testing.T) {
	g := NewGame(1)
	for i := 0; i < 600; i++ {
		g.Update(frame)
	}
	assert.Equal(t, cfg.StateMenu, g.State())
	assert.Equal(t, 0, g.LiveCount(components.KindEnemy))
	assert.Equal(t, 1, g.Scene().BodyCount())
}

func TestStartAndRestartOnlyLeaveTheirStates(t *testing.T) {
	g := NewGame(1)

	g.Restart()
	assert.Equal(t, cfg.StateMenu, g.State())

	g.Start()
	assert.Equal(t, cfg.StatePlaying, g.State())
	g.Start()
	assert.Equal(t, cfg.StatePlaying, g.State())
	g.Restart()
	assert.Equal(t, cfg.StatePlaying, g.State())

	g.data().Kills = 7
	components.Health.Get(mustPlayer(t, g)).Current = 0
	g.Update(frame)
	require.Equal(t, cfg.StateLoss, g.State())

	g.Start()
	assert.Equal(t, cfg.StateLoss, g.State())

	g.Restart()
	assert.Equal(t, cfg.StateMenu, g.State())
	assert.Equal(t, 0, g.Data().Kills)
	assert.Equal(t, cfg.Player.Health, g.PlayerHealth().Current)
	assert.Equal(t, 1, g.Scene().BodyCount())
}

func TestEnemyAttackAimsAtPlayer(t *testing.T) {
	g := newPlayingGame(t)
	enemy := g.createEnemy(gamemath.Vector{X: 800, Y: 400}, cfg.Enemy.Damage, 0, 0)
	from := components.GetBody(enemy).Centroid()

	g.enemiesAttack()

	shots := projectileData(t, g)
	require.Len(t, shots, 1)
	want := g.PlayerBody().Centroid().Sub(from).Angle()
	assert.InDelta(t, want, shots[0].Angle, 1e-9)
	assert.Equal(t, cfg.FactionMob, shots[0].Faction)
	assert.Equal(t, cfg.Enemy.Damage, shots[0].Damage)

	proj := g.liveBodies(components.KindProjectile)[0]
	assert.InDelta(t, cfg.Enemy.ProjectileSpeed, proj.Velocity().Length(), 1e-9)
	assert.InDelta(t, want, proj.Velocity().Angle(), 1e-9)
}

func TestEnemyAttackFiresOnTheAttackTimer(t *testing.T) {
	g := newPlayingGame(t)
	enemy := g.createEnemy(gamemath.Vector{X: 800, Y: 400}, cfg.Enemy.Damage, 0, 0)
	body := components.GetBody(enemy)

	var from gamemath.Vector
	ticks := 0
	for g.LiveCount(components.KindProjectile) == 0 {
		require.Less(t, ticks, 150, "no volley before the attack timer")
		from = body.Centroid()
		g.Update(frame)
		ticks++
	}

	assert.GreaterOrEqual(t, float64(ticks)*frame, cfg.Timer.EnemyAttack-1e-9)
	assert.Equal(t, 1, g.LiveCount(components.KindEnemy), "no border spawn yet")
	shots := projectileData(t, g)
	require.Len(t, shots, 1)
	want := g.PlayerBody().Centroid().Sub(from).Angle()
	assert.InDelta(t, want, shots[0].Angle, 1e-9)
	assert.Equal(t, cfg.FactionMob, shots[0].Faction)
	assert.Zero(t, g.Data().SinceAttack, "attack clock resets")
}

func TestLossClearsEnemiesAndProjectiles(t *testing.T) {
	g := newPlayingGame(t)
	g.createEnemy(gamemath.Vector{X: 100, Y: 100}, cfg.Enemy.Damage, 0, 0)
	g.createEnemy(gamemath.Vector{X: 900, Y: 100}, cfg.Enemy.Damage, 0, 0)
	g.enemiesAttack()
	require.True(t, g.fire(gamemath.Vector{X: 500, Y: 400}))
	require.Equal(t, 3, g.LiveCount(components.KindProjectile))

	components.Health.Get(mustPlayer(t, g)).Current = 0
	g.Update(frame)

	assert.Equal(t, cfg.StateLoss, g.State())
	assert.Equal(t, 0, g.LiveCount(components.KindEnemy))
	assert.Equal(t, 0, g.LiveCount(components.KindProjectile))
	assert.Equal(t, 1, g.Scene().BodyCount())
	assert.Equal(t, 0, g.Data().Kills)

	before := g.PlayerBody().Centroid()
	for i := 0; i < 10; i++ {
		g.Update(frame)
	}
	assert.Equal(t, cfg.StateLoss, g.State())
	assert.Equal(t, before, g.PlayerBody().Centroid())
}

func TestKillsAwardExpAndLevelUp(t *testing.T) {
	g := newPlayingGame(t)
	components.Health.Get(mustPlayer(t, g)).Current = 40

	a := g.createEnemy(gamemath.Vector{X: 100, Y: 100}, cfg.Enemy.Damage, 0, 0)
	b := g.createEnemy(gamemath.Vector{X: 900, Y: 100}, cfg.Enemy.Damage, 0, 0)
	components.GetBody(a).Remove()
	components.GetBody(b).Remove()
	g.Update(frame)

	assert.Equal(t, 2, g.Data().Kills)
	stats := g.PlayerStats()
	assert.Equal(t, 2, stats.Level)
	assert.Equal(t, 0, stats.Exp)
	assert.Equal(t, cfg.Player.LevelScale+cfg.Player.LevelScaleIncrease, stats.LevelScale)
	assert.Equal(t, cfg.Player.Damage+cfg.Player.DamagePerLevel, stats.Damage)
	assert.Equal(t, cfg.Player.Health, g.PlayerHealth().Current)
	assert.Equal(t, 0, g.LiveCount(components.KindEnemy))
	assert.False(t, g.World().Valid(a.Entity()))
}

func TestPortalToBossPhaseToWin(t *testing.T) {
	g := newPlayingGame(t)
	data := g.Data()
	data.Kills = cfg.Game.KillThreshold - 1

	last := g.createEnemy(gamemath.Vector{X: 100, Y: 100}, cfg.Enemy.Damage, 0, 0)
	components.GetBody(last).Remove()
	g.Update(frame)
	require.Equal(t, cfg.Game.KillThreshold, g.Data().Kills)
	require.True(t, g.Data().PortalSpawned)
	_, ok := g.PortalEntry()
	require.True(t, ok)

	// Nothing spawns while the portal waits.
	for i := 0; i < 300; i++ {
		g.Update(frame)
	}
	assert.Equal(t, cfg.StatePlaying, g.State())
	assert.Equal(t, 0, g.LiveCount(components.KindEnemy))

	g.PlayerBody().SetCentroid(cfg.World.Center())
	g.Update(frame)
	_, ok = g.PortalEntry()
	assert.False(t, ok, "traversed portal is swept")

	g.Update(frame)
	require.Equal(t, cfg.StateBossPhase, g.State())
	assert.False(t, g.Data().PortalSpawned)

	g.Update(frame)
	require.True(t, g.Data().BossSpawned)
	boss, ok := g.BossHealth()
	require.True(t, ok)
	assert.Equal(t, cfg.Boss.Health, boss.Current)
	assert.True(t, g.PlayerBody().Centroid().ApproxEqual(cfg.Player.ResetPos, 1e-9))

	bossEntry, ok := g.BossEntry()
	require.True(t, ok)
	components.Health.Get(bossEntry).Current = 0
	g.Update(frame)
	require.True(t, g.Data().PortalSpawned)
	portal, ok := g.PortalEntry()
	require.True(t, ok)
	assert.Equal(t, cfg.PortalEnd, components.Portal.Get(portal).Type)
	_, ok = g.BossEntry()
	assert.False(t, ok, "defeated boss is swept")

	g.PlayerBody().SetCentroid(cfg.World.Center())
	g.Update(frame)
	g.Update(frame)

	assert.Equal(t, cfg.StateWin, g.State())
	assert.False(t, g.Data().PortalSpawned)
	_, ok = g.PlayerEntry()
	assert.False(t, ok)

	g.Restart()
	assert.Equal(t, cfg.StateMenu, g.State())
}

func TestBossPhaseLoss(t *testing.T) {
	g := newPlayingGame(t)
	g.setState(cfg.StateBossPhase)
	g.data().Kills = cfg.Game.KillThreshold
	g.Update(frame)
	require.True(t, g.Data().BossSpawned)

	components.Health.Get(mustPlayer(t, g)).Current = 0
	g.Update(frame)

	assert.Equal(t, cfg.StateLoss, g.State())
	assert.Equal(t, 0, g.Scene().BodyCount())
}

func TestEnemiesSpawnOnTheCadence(t *testing.T) {
	g := newPlayingGame(t)
	steps := int(math.Round(cfg.Timer.EnemySpawn/frame)) + 1
	for i := 0; i < steps; i++ {
		g.Update(frame)
	}
	assert.Equal(t, 1, g.LiveCount(components.KindEnemy))
}

func mustPlayer(t *testing.T, g *Game) *donburi.Entry {
	t.Helper()
	entry, ok := g.PlayerEntry()
	require.True(t, ok)
	return entry
}
