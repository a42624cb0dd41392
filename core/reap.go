package core

import (
	"github.com/automoto/huskyhunt/components"
	cfg "github.com/automoto/huskyhunt/config"
	"github.com/automoto/huskyhunt/tags"
	"github.com/yohamta/donburi"
)

// clearScreen marks every enemy and projectile for removal.
func (g *Game) clearScreen() {
	for _, b := range g.scene.Bodies() {
		ref, ok := components.RefOf(b)
		if !ok {
			continue
		}
		if ref.Kind == components.KindEnemy || ref.Kind == components.KindProjectile {
			b.Remove()
		}
	}
}

// removedEntries collects the entries visited by each whose body is marked
// removed. Collecting first keeps the world stable while it is iterated.
func (g *Game) removedEntries(each func(donburi.World, func(*donburi.Entry))) []*donburi.Entry {
	var out []*donburi.Entry
	each(g.world, func(entry *donburi.Entry) {
		if components.GetBody(entry).Removed() {
			out = append(out, entry)
		}
	})
	return out
}

// reapProjectiles counts the projectiles leaving the scene this frame.
func (g *Game) reapProjectiles() {
	g.data().ProjectilesSpent += len(g.removedEntries(tags.Projectile.Each))
}

// reapEnemies awards the kills for enemies leaving the scene this frame.
// Nothing is awarded once the run is over or while a portal is clearing the
// arena. Reaching the kill threshold outside the boss arena opens the boss
// portal.
func (g *Game) reapEnemies() {
	for range g.removedEntries(tags.Enemy.Each) {
		data := g.data()
		if data.State.IsGameOver() || data.PortalSpawned {
			continue
		}
		data.Kills++
		g.awardKill()
		if data.Kills >= cfg.Game.KillThreshold && data.State != cfg.StateBossPhase {
			g.spawnPortal(cfg.PortalBoss)
		}
	}
}

func (g *Game) awardKill() {
	entry, ok := g.PlayerEntry()
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	player.GainExp()
	player.LevelUp(components.Health.Get(entry))
}
