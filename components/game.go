package components

import (
	cfg "github.com/automoto/huskyhunt/config"
	"github.com/yohamta/donburi"
)

// GameData stores the state machine's phase, timers and counters.
// This is a singleton component - only one run exists at a time.
type GameData struct {
	State cfg.GameStateID

	// Seconds since each cadence last fired
	SinceSpawn    float64
	SinceAttack   float64
	SinceBossRing float64
	SinceBossRay  float64

	Kills            int
	ProjectilesSpent int  // Projectiles swept so far
	PortalSpawned    bool // A portal is up and the arena is being cleared
	BossSpawned      bool

	Player donburi.Entity
	Boss   donburi.Entity
	Portal donburi.Entity

	HasBoss   bool
	HasPortal bool

	Ticks   int
	Elapsed float64
}

// AdvanceTimers adds dt to every cadence clock.
func (g *GameData) AdvanceTimers(dt float64) {
	g.SinceSpawn += dt
	g.SinceAttack += dt
	g.SinceBossRing += dt
	g.SinceBossRay += dt
}

var Game = donburi.NewComponentType[GameData]()
