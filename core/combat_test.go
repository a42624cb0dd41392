package core

import (
	"math"
	"testing"

	"github.com/automoto/huskyhunt/components"
	cfg "github.com/automoto/huskyhunt/config"
	"github.com/automoto/huskyhunt/shared/gamemath"
	"github.com/automoto/huskyhunt/shared/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeleeHitsOnlyEnemiesInReach(t *testing.T) {
	g := newPlayingGame(t)
	p := g.PlayerBody().Centroid()

	// Both hitboxes are 35x35, so the allowance is 10 + 35*sqrt(2), about 59.5.
	near := g.createEnemy(p.Add(gamemath.Vector{X: 50}), cfg.Enemy.Damage, 0, 0)
	edge := g.createEnemy(p.Add(gamemath.Vector{X: -59}), cfg.Enemy.Damage, 0, 0)
	far := g.createEnemy(p.Add(gamemath.Vector{X: 0, Y: 60}), cfg.Enemy.Damage, 0, 0)
	away := g.createEnemy(gamemath.Vector{X: 900, Y: 400}, cfg.Enemy.Damage, 0, 0)

	assert.Equal(t, 2, g.melee())
	assert.True(t, components.GetBody(near).Removed())
	assert.True(t, components.GetBody(edge).Removed())
	assert.False(t, components.GetBody(far).Removed())
	assert.False(t, components.GetBody(away).Removed())

	// Swinging again does not count the same enemies twice.
	assert.Equal(t, 0, g.melee())
}

func TestMeleeFollowsMovedEnemies(t *testing.T) {
	g := newPlayingGame(t)
	enemy := g.createEnemy(gamemath.Vector{X: 900, Y: 400}, cfg.Enemy.Damage, 0, 0)
	components.GetBody(enemy).SetCentroid(g.PlayerBody().Centroid().Add(gamemath.Vector{X: 30}))

	assert.Equal(t, 1, g.melee())
}

func TestHandleMouseIgnoredOutsideCombat(t *testing.T) {
	g := NewGame(1)
	g.HandleMouse(MouseEvent{Button: MouseRight, X: 500, Y: 100})
	assert.Equal(t, 0, g.LiveCount(components.KindProjectile))
}

func TestFireFlipsScreenY(t *testing.T) {
	g := newPlayingGame(t)
	g.HandleMouse(MouseEvent{Button: MouseRight, X: 500, Y: 100})

	shots := projectileData(t, g)
	require.Len(t, shots, 1)
	assert.InDelta(t, math.Pi/2, shots[0].Angle, 1e-9)
	assert.Equal(t, cfg.FactionPlayer, shots[0].Faction)
	assert.Equal(t, cfg.Player.Damage, shots[0].Damage)
}

func TestMagazineEmptiesThenReloads(t *testing.T) {
	g := newPlayingGame(t)
	target := gamemath.Vector{X: 500, Y: 400}

	for i := 0; i < cfg.Player.MaxBullets; i++ {
		assert.True(t, g.fire(target), "shot %d", i)
	}
	assert.False(t, g.fire(target))
	assert.Equal(t, cfg.Player.MaxBullets, g.PlayerStats().BulletsLeft())

	steps := int(math.Ceil(cfg.Player.BulletCooldown/frame)) + 1
	for i := 0; i < steps; i++ {
		g.Update(frame)
	}
	assert.True(t, g.fire(target))
}

func TestPlayerShotsHitEnemiesAndBoss(t *testing.T) {
	g := newPlayingGame(t)
	enemy := g.createEnemy(gamemath.Vector{X: 500, Y: 150}, cfg.Enemy.Damage, 0, 0)
	g.spawnBoss()
	boss := g.bossBody()
	require.NotNil(t, boss)

	require.True(t, g.fire(gamemath.Vector{X: 500, Y: 400}))
	proj := g.liveBodies(components.KindProjectile)[0]

	proj.SetCentroid(components.GetBody(enemy).Centroid())
	g.scene.InvokeForces()
	assert.True(t, proj.Removed())
	assert.True(t, components.GetBody(enemy).Removed())

	require.True(t, g.fire(gamemath.Vector{X: 500, Y: 400}))
	second := g.liveBodies(components.KindProjectile)[0]
	second.SetCentroid(boss.Centroid())
	g.scene.InvokeForces()
	assert.True(t, second.Removed())
	health, ok := g.BossHealth()
	require.True(t, ok)
	assert.Equal(t, cfg.Boss.Health-cfg.Player.Damage, health.Current)
}

func TestMobShotDamagesPlayerOnce(t *testing.T) {
	g := newPlayingGame(t)
	g.createEnemy(gamemath.Vector{X: 500, Y: 300}, cfg.Enemy.Damage, 0, 0)
	g.enemiesAttack()
	proj := g.liveBodies(components.KindProjectile)[0]

	proj.SetCentroid(g.PlayerBody().Centroid())
	g.scene.InvokeForces()
	g.scene.InvokeForces()

	assert.True(t, proj.Removed())
	assert.Equal(t, cfg.Player.Health-cfg.Enemy.Damage, g.PlayerHealth().Current)
}

func TestBossRingAndRay(t *testing.T) {
	g := newPlayingGame(t)
	g.spawnBoss()
	n := cfg.Boss.NumProjectiles

	g.bossRing()
	ring := g.liveBodies(components.KindProjectile)
	require.Len(t, ring, n)
	for i, b := range ring {
		assert.InDelta(t, cfg.Boss.ProjectileSpeed, b.Velocity().Length(), 1e-9)
		entry, ok := g.entryOf(b)
		require.True(t, ok)
		data := components.Projectile.Get(entry)
		assert.InDelta(t, 2*math.Pi*float64(i)/float64(n), data.Angle, 1e-9)
		assert.Equal(t, cfg.Boss.Damage, data.Damage)
		assert.Equal(t, components.StyleBossRing, data.Style)
	}
	for _, b := range ring {
		b.Remove()
	}

	g.bossRay()
	ray := g.liveBodies(components.KindProjectile)
	require.Len(t, ray, n)
	aim := g.PlayerBody().Centroid().Sub(g.bossBody().Centroid()).Angle()
	for i, b := range ray {
		want := cfg.Boss.ProjectileSpeed*float64(i+1)/float64(n) + cfg.Boss.RayLowBound
		assert.InDelta(t, want, b.Velocity().Length(), 1e-9)
		assert.InDelta(t, aim, b.Velocity().Angle(), 1e-9)
	}
}

func TestHandleEdges(t *testing.T) {
	g := newPlayingGame(t)
	enemy := components.GetBody(g.createEnemy(gamemath.Vector{X: 500, Y: 250}, cfg.Enemy.Damage, 0, 0))
	enemy.SetCentroid(gamemath.Vector{X: 1010, Y: 510})

	proj := g.createProjectile(shot{
		Width: 10, Height: 10,
		From:  gamemath.Vector{X: 500, Y: -1},
		Color: cfg.White,
	})

	g.handleEdges()

	assert.True(t, enemy.Centroid().ApproxEqual(gamemath.Vector{X: 1000, Y: 510}, 1e-9), "only the first violated axis is clamped")
	assert.True(t, proj.Removed())

	g.handleEdges()
	assert.True(t, enemy.Centroid().ApproxEqual(gamemath.Vector{X: 1000, Y: 500}, 1e-9))
}

func TestEnemiesSpawnOnTheBorder(t *testing.T) {
	g := newPlayingGame(t)
	for i := 0; i < 50; i++ {
		c := g.spawnEnemy(cfg.Enemy.Damage).Centroid()
		onX := near(c.X, cfg.World.Min.X) || near(c.X, cfg.World.Max.X)
		onY := near(c.Y, cfg.World.Min.Y) || near(c.Y, cfg.World.Max.Y)
		assert.True(t, onX || onY, "spawn %v is not on the border", c)
		_, out := gamemath.ClampToRect(c, cfg.World.Min.Sub(gamemath.Vector{X: 1e-9, Y: 1e-9}), cfg.World.Max.Add(gamemath.Vector{X: 1e-9, Y: 1e-9}))
		assert.False(t, out, "spawn %v is outside the arena", c)
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSpawnedEnemyMeetsShotsInFlight(t *testing.T) {
	g := newPlayingGame(t)
	require.True(t, g.fire(gamemath.Vector{X: 500, Y: 400}))
	before := g.Scene().ForceCount()

	g.spawnEnemy(cfg.Enemy.Damage)
	assert.Equal(t, before+1, g.Scene().ForceCount())
}

func TestSteerApproachAndDodge(t *testing.T) {
	hitbox := func(x, y float64) *physics.Body {
		return physics.NewHitbox(10, 10, gamemath.Vector{X: x, Y: y}, cfg.White)
	}
	enemy := hitbox(300, 300)
	player := hitbox(300, 100)

	v := steer(enemy, player, nil)
	assert.True(t, v.ApproxEqual(gamemath.Vector{X: 0, Y: -cfg.Enemy.Speed}, 1e-9))

	beside := hitbox(300, 320)
	assert.Equal(t, gamemath.Zero, steer(enemy, beside, nil), "inside the stop radius")

	shot := hitbox(400, 300)
	shot.SetVelocity(gamemath.Vector{X: -200, Y: 50})
	v = steer(enemy, player, []*physics.Body{shot})
	assert.True(t, v.ApproxEqual(gamemath.Vector{X: 0, Y: -cfg.Enemy.Speed - cfg.Enemy.DodgeSpeed}, 1e-9))

	distant := hitbox(300, 600)
	distant.SetVelocity(gamemath.Vector{X: 0, Y: -200})
	v = steer(enemy, player, []*physics.Body{distant})
	assert.True(t, v.ApproxEqual(gamemath.Vector{X: 0, Y: -cfg.Enemy.Speed}, 1e-9))
}

func TestMovementKeysAreRepeatSafe(t *testing.T) {
	g := newPlayingGame(t)
	body := g.PlayerBody()

	for _, held := range []float64{0, 0.1, 0.5} {
		g.HandleKey(KeyEvent{Key: 'd', Type: KeyPressed, Held: held})
	}
	assert.Equal(t, cfg.Player.MoveStep, body.Velocity().X)

	g.HandleKey(KeyEvent{Key: 'W', Type: KeyPressed})
	assert.Equal(t, cfg.Player.MoveStep, body.Velocity().Y)

	g.HandleKey(KeyEvent{Key: 'd', Type: KeyReleased})
	g.HandleKey(KeyEvent{Key: 'w', Type: KeyReleased})
	assert.Equal(t, gamemath.Zero, body.Velocity())

	// The player starts above the floor line, so moving down is allowed.
	g.HandleKey(KeyEvent{Key: 's', Type: KeyPressed})
	assert.Equal(t, -cfg.Player.MoveStep, body.Velocity().Y)
	g.HandleKey(KeyEvent{Key: 's', Type: KeyReleased})

	body.SetCentroid(cfg.Player.StartPos)
	g.HandleKey(KeyEvent{Key: 's', Type: KeyPressed})
	assert.Equal(t, 0.0, body.Velocity().Y)
}

func TestOneShotKeysNeedAFreshPress(t *testing.T) {
	g := NewGame(1)

	g.HandleKey(KeyEvent{Key: 'd', Type: KeyPressed})
	assert.Equal(t, gamemath.Zero, g.PlayerBody().Velocity(), "movement is ignored on the menu")

	g.HandleKey(KeyEvent{Key: '\r', Type: KeyPressed, Held: 0.2})
	assert.Equal(t, cfg.StateMenu, g.State())
	g.HandleKey(KeyEvent{Key: '\r', Type: KeyPressed})
	assert.Equal(t, cfg.StatePlaying, g.State())

	g.HandleKey(KeyEvent{Key: 'r', Type: KeyPressed})
	assert.Equal(t, cfg.StatePlaying, g.State())
}

func TestPortalPulses(t *testing.T) {
	g := newPlayingGame(t)
	g.spawnPortal(cfg.PortalBoss)
	assert.Equal(t, float32(1), g.PortalScale())

	g.advancePulse(float64(cfg.Portal.PulsePeriod))
	assert.InDelta(t, cfg.Portal.PulseScale, g.PortalScale(), 1e-4)

	g.advancePulse(float64(cfg.Portal.PulsePeriod))
	assert.InDelta(t, 1, g.PortalScale(), 1e-4)
}

func TestActionForKey(t *testing.T) {
	tests := []struct {
		key  rune
		want cfg.ActionID
	}{
		{'a', cfg.ActionMoveLeft},
		{'A', cfg.ActionMoveLeft},
		{'d', cfg.ActionMoveRight},
		{'w', cfg.ActionMoveUp},
		{'s', cfg.ActionMoveDown},
		{'\r', cfg.ActionStart},
		{'r', cfg.ActionRestart},
		{'x', cfg.ActionNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ActionForKey(tt.key), "key %q", tt.key)
	}
}

func TestBroadphaseIsTheWorldSingleton(t *testing.T) {
	g := newPlayingGame(t)
	entry, ok := components.Space.First(g.World())
	require.True(t, ok)
	assert.Same(t, components.Space.Get(entry), g.Space())

	enemy := g.createEnemy(gamemath.Vector{X: 300, Y: 300}, cfg.Enemy.Damage, 0, 0)
	assert.Same(t, g.Space(), components.Object.Get(enemy).Space)

	before := g.Space()
	components.Health.Get(mustPlayer(t, g)).Current = 0
	g.Update(frame)
	g.Restart()
	require.Equal(t, cfg.StateMenu, g.State())
	assert.NotSame(t, before, g.Space(), "a restart builds a fresh broadphase")
}

func TestNearestUsesTheBroadphase(t *testing.T) {
	g := newPlayingGame(t)
	center := gamemath.Vector{X: 500, Y: 250}
	far := g.createEnemy(gamemath.Vector{X: 900, Y: 250}, cfg.Enemy.Damage, 0, 0)
	near := g.createEnemy(gamemath.Vector{X: 600, Y: 250}, cfg.Enemy.Damage, 0, 0)

	b, d, ok := g.Nearest(center, 1000, components.KindEnemy)
	require.True(t, ok)
	assert.Same(t, components.GetBody(near), b)
	assert.InDelta(t, 100, d, 1e-9)

	_, _, ok = g.Nearest(center, 50, components.KindEnemy)
	assert.False(t, ok)

	components.GetBody(near).Remove()
	b, _, ok = g.Nearest(center, 1000, components.KindEnemy)
	require.True(t, ok)
	assert.Same(t, components.GetBody(far), b)

	_, _, ok = g.Nearest(center, 1000, components.KindProjectile)
	assert.False(t, ok, "projectiles are not in the broadphase")
}

func TestNearestFindsBossAndPortal(t *testing.T) {
	g := newPlayingGame(t)
	player := g.PlayerBody().Centroid()

	_, _, ok := g.Nearest(player, 2000, components.KindBoss)
	assert.False(t, ok)
	g.spawnBoss()
	boss, _, ok := g.Nearest(player, 2000, components.KindBoss)
	require.True(t, ok)
	assert.Same(t, g.bossBody(), boss)

	g.spawnPortal(cfg.PortalEnd)
	entry, ok := g.PortalEntry()
	require.True(t, ok)
	portal, _, ok := g.Nearest(player, 2000, components.KindPortal)
	require.True(t, ok)
	assert.Same(t, components.GetBody(entry), portal)
}
