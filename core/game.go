// Package core runs the simulation: the world, the physics scene that owns
// every body, the broadphase and the combat state machine. It never touches
// the renderer, so the client and the headless runner share it.
package core

import (
	"log"
	"math/rand"

	"github.com/automoto/huskyhunt/archetypes"
	"github.com/automoto/huskyhunt/components"
	cfg "github.com/automoto/huskyhunt/config"
	"github.com/automoto/huskyhunt/shared/physics"
	"github.com/yohamta/donburi"
)

// Game is the context for one run. All gameplay state hangs off it.
type Game struct {
	world donburi.World
	scene *physics.Scene
	rng   *rand.Rand
	game  *donburi.Entry
}

// NewGame builds a run parked on the menu. seed drives every random choice.
func NewGame(seed int64) *Game {
	g := &Game{rng: rand.New(rand.NewSource(seed))}
	g.reset()
	return g
}

func (g *Game) reset() {
	g.world = donburi.NewWorld()
	g.scene = physics.NewScene()
	createSpace(g.world)

	g.game = archetypes.Game.Spawn(g.world)
	components.Game.SetValue(g.game, components.GameData{State: cfg.StateMenu})

	player := g.createPlayer(cfg.Player.ResetPos)
	g.data().Player = player.Entity()
}

func (g *Game) World() donburi.World {
	return g.world
}

func (g *Game) Scene() *physics.Scene {
	return g.scene
}

// Data returns the game singleton. It panics if the singleton is gone.
func (g *Game) Data() *components.GameData {
	return g.data()
}

func (g *Game) data() *components.GameData {
	if !g.game.Valid() {
		panic("core: game singleton missing from world")
	}
	return components.Game.Get(g.game)
}

func (g *Game) State() cfg.GameStateID {
	return g.data().State
}

func (g *Game) setState(next cfg.GameStateID) {
	data := g.data()
	if data.State == next {
		return
	}
	log.Printf("Game state %s -> %s (kills %d, tick %d)", data.State, next, data.Kills, data.Ticks)
	data.State = next
}

// Start leaves the menu. It does nothing in any other state.
func (g *Game) Start() {
	if g.State() != cfg.StateMenu {
		return
	}
	g.setState(cfg.StatePlaying)
}

// Restart throws the finished run away and returns to the menu with a fresh
// world. It does nothing unless the run has ended.
func (g *Game) Restart() {
	if !g.State().IsGameOver() {
		return
	}
	log.Printf("Restarting from %s", g.State())
	g.reset()
}

// PlayerEntry returns the player while its entity is still alive.
func (g *Game) PlayerEntry() (*donburi.Entry, bool) {
	return g.entry(g.data().Player)
}

// BossEntry returns the boss once spawned and until its body is swept.
func (g *Game) BossEntry() (*donburi.Entry, bool) {
	data := g.data()
	if !data.HasBoss {
		return nil, false
	}
	return g.entry(data.Boss)
}

// PortalEntry returns the current portal until it is traversed and swept.
func (g *Game) PortalEntry() (*donburi.Entry, bool) {
	data := g.data()
	if !data.HasPortal {
		return nil, false
	}
	return g.entry(data.Portal)
}

func (g *Game) entry(e donburi.Entity) (*donburi.Entry, bool) {
	if !g.world.Valid(e) {
		return nil, false
	}
	return g.world.Entry(e), true
}

// PlayerBody returns the player's body, or nil once the player is gone.
func (g *Game) PlayerBody() *physics.Body {
	entry, ok := g.PlayerEntry()
	if !ok {
		return nil
	}
	return components.GetBody(entry)
}

// PlayerHealth returns the player's health, or zero health once the player is gone.
func (g *Game) PlayerHealth() components.HealthData {
	entry, ok := g.PlayerEntry()
	if !ok {
		return components.HealthData{Max: cfg.Player.MaxHealth}
	}
	return *components.Health.Get(entry)
}

// PlayerStats returns progression and weapon state for the HUD.
func (g *Game) PlayerStats() components.PlayerData {
	entry, ok := g.PlayerEntry()
	if !ok {
		return components.NewPlayerData()
	}
	return *components.Player.Get(entry)
}

// BossHealth reports the boss's health, if a boss exists.
func (g *Game) BossHealth() (components.HealthData, bool) {
	entry, ok := g.BossEntry()
	if !ok {
		return components.HealthData{}, false
	}
	return *components.Health.Get(entry), true
}

// LiveCount returns how many bodies owned by kind are in play.
func (g *Game) LiveCount(kind components.EntityKind) int {
	return len(g.liveBodies(kind))
}
