package core

import (
	"github.com/automoto/huskyhunt/components"
	cfg "github.com/automoto/huskyhunt/config"
)

// Update advances the run by dt seconds.
func (g *Game) Update(dt float64) {
	data := g.data()
	data.Ticks++
	data.Elapsed += dt

	switch data.State {
	case cfg.StateMenu:
		g.scene.Tick(dt)
	case cfg.StatePlaying:
		g.updatePlaying(dt)
	case cfg.StateBossPhase:
		g.updateBossPhase(dt)
	}
}

func (g *Game) updatePlaying(dt float64) {
	data := g.data()
	if g.PlayerHealth().Current <= 0 {
		g.clearScreen()
		g.setState(cfg.StateLoss)
		g.sweep(dt)
		return
	}

	if data.Kills < cfg.Game.KillThreshold {
		g.combatRound(dt)
		g.handleEdges()
	} else if g.portalTraversed() {
		g.setState(cfg.StateBossPhase)
		data.PortalSpawned = false
	}

	g.finishFrame(dt)
}

func (g *Game) updateBossPhase(dt float64) {
	data := g.data()
	if !data.BossSpawned {
		g.spawnBoss()
	}

	switch {
	case g.PlayerHealth().Current <= 0:
		if player := g.PlayerBody(); player != nil {
			player.Remove()
		}
		if boss := g.bossBody(); boss != nil {
			boss.Remove()
		}
		g.clearScreen()
		g.setState(cfg.StateLoss)
		g.sweep(dt)
		return
	case g.bossDefeated():
		if !data.PortalSpawned {
			if boss := g.bossBody(); boss != nil {
				boss.Remove()
			}
			g.spawnPortal(cfg.PortalEnd)
		}
		if g.portalTraversed() {
			if player := g.PlayerBody(); player != nil {
				player.Remove()
			}
			data.PortalSpawned = false
			g.setState(cfg.StateWin)
			g.sweep(dt)
			return
		}
	default:
		g.combatRound(dt)
		if data.SinceBossRing >= cfg.Timer.BossRing {
			g.bossRing()
			data.SinceBossRing = 0
		}
		if data.SinceBossRay >= cfg.Timer.BossRay {
			g.bossRay()
			data.SinceBossRay = 0
		}
		g.handleEdges()
	}

	g.finishFrame(dt)
}

// combatRound runs the shared wave logic: clocks, steering, spawning and
// the enemy volley.
func (g *Game) combatRound(dt float64) {
	data := g.data()
	data.AdvanceTimers(dt)
	if entry, ok := g.PlayerEntry(); ok {
		components.Player.Get(entry).SinceReload += dt
	}

	g.moveEnemies()

	if data.SinceSpawn >= cfg.Timer.EnemySpawn {
		g.spawnEnemy(cfg.Enemy.Damage)
		data.SinceSpawn = 0
	}
	if data.SinceAttack >= cfg.Timer.EnemyAttack {
		g.enemiesAttack()
		data.SinceAttack = 0
	}
}

// finishFrame runs collisions, bookkeeping and the physics step.
func (g *Game) finishFrame(dt float64) {
	g.scene.InvokeForces()
	if g.data().PortalSpawned {
		g.clearScreen()
	}
	g.advancePulse(dt)
	g.sweep(dt)
}

// sweep reaps everything marked removed and then lets the scene free it.
func (g *Game) sweep(dt float64) {
	g.reapProjectiles()
	g.reapEnemies()
	g.syncSpace()
	g.scene.Tick(dt)
}
