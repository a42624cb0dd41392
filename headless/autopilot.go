package headless

import (
	"github.com/automoto/huskyhunt/components"
	cfg "github.com/automoto/huskyhunt/config"
	"github.com/automoto/huskyhunt/core"
	"github.com/automoto/huskyhunt/shared/gamemath"
	"github.com/automoto/huskyhunt/shared/physics"
)

// deadZone is how close the autopilot gets to a waypoint before it stops
// pressing keys on that axis.
const deadZone = 5.0

// Autopilot plays the game through the same key and mouse events a human
// would produce.
type Autopilot struct {
	difficulty    cfg.BotDifficultyConfig
	restart       bool
	decisionTimer int

	held map[rune]float64 // Movement keys currently down and for how long
}

// NewAutopilot returns a pilot tuned for d. When restart is set the pilot
// starts a new run after each win or loss.
func NewAutopilot(d cfg.BotDifficulty, restart bool) *Autopilot {
	return &Autopilot{
		difficulty: cfg.Bot.Difficulties[d],
		restart:    restart,
		held:       make(map[rune]float64),
	}
}

type target struct {
	body *physics.Body
	dist float64
}

// Step feeds one tick of input into g.
func (a *Autopilot) Step(g *core.Game, dt float64) {
	state := g.State()
	switch {
	case state == cfg.StateMenu:
		a.releaseAll(g)
		g.HandleKey(core.KeyEvent{Key: cfg.ActionKeys[cfg.ActionStart], Type: core.KeyPressed})
		return
	case state.IsGameOver():
		a.releaseAll(g)
		if a.restart {
			g.HandleKey(core.KeyEvent{Key: cfg.ActionKeys[cfg.ActionRestart], Type: core.KeyPressed})
		}
		return
	}

	player := g.PlayerBody()
	if player == nil {
		return
	}
	pos := player.Centroid()

	a.steer(g, a.waypoint(g, pos).Sub(pos), dt)

	if a.decisionTimer > 0 {
		a.decisionTimer--
		return
	}
	a.decisionTimer = a.difficulty.ReactionDelay

	nearest := nearestEnemy(g, pos, a.difficulty.FireRange)
	if nearest.body != nil && nearest.dist <= a.difficulty.MeleeRange {
		g.HandleMouse(core.MouseEvent{Button: core.MouseLeft})
		return
	}
	if aim, ok := a.aim(g, pos, nearest); ok {
		x, y := worldToScreen(aim)
		g.HandleMouse(core.MouseEvent{Button: core.MouseRight, X: x, Y: y})
	}
}

// waypoint picks where the player should head: into an open portal, away
// from the closest enemy when hurt, otherwise the spot it already holds.
func (a *Autopilot) waypoint(g *core.Game, pos gamemath.Vector) gamemath.Vector {
	if portal, _, ok := g.Nearest(pos, arenaSpan(), components.KindPortal); ok {
		return portal.Centroid()
	}

	health := g.PlayerHealth()
	if health.Max > 0 && float64(health.Current)/float64(health.Max) < a.difficulty.RetreatThreshold {
		if nearest := nearestEnemy(g, pos, arenaSpan()); nearest.body != nil {
			away := pos.Sub(nearest.body.Centroid()).Normalize().Scale(100)
			return pos.Add(away)
		}
	}
	return pos
}

// aim returns the point to shoot at: the nearest enemy inside fire range,
// else the boss.
func (a *Autopilot) aim(g *core.Game, pos gamemath.Vector, nearest target) (gamemath.Vector, bool) {
	if nearest.body != nil && nearest.dist <= a.difficulty.FireRange {
		return nearest.body.Centroid(), true
	}
	if boss, _, ok := g.Nearest(pos, arenaSpan(), components.KindBoss); ok {
		return boss.Centroid(), true
	}
	return gamemath.Zero, false
}

// steer holds the movement keys that close delta and releases the rest.
func (a *Autopilot) steer(g *core.Game, delta gamemath.Vector, dt float64) {
	left := cfg.ActionKeys[cfg.ActionMoveLeft]
	right := cfg.ActionKeys[cfg.ActionMoveRight]
	up := cfg.ActionKeys[cfg.ActionMoveUp]
	down := cfg.ActionKeys[cfg.ActionMoveDown]

	a.axis(g, delta.X, right, left, dt)
	a.axis(g, delta.Y, up, down, dt)
}

func (a *Autopilot) axis(g *core.Game, d float64, pos, neg rune, dt float64) {
	want := rune(0)
	if d > deadZone {
		want = pos
	} else if d < -deadZone {
		want = neg
	}
	for _, key := range []rune{pos, neg} {
		if key != want {
			a.release(g, key)
		}
	}
	if want == 0 {
		return
	}
	held, down := a.held[want]
	if down {
		held += dt
	}
	a.held[want] = held
	g.HandleKey(core.KeyEvent{Key: want, Type: core.KeyPressed, Held: held})
}

func (a *Autopilot) release(g *core.Game, key rune) {
	if _, down := a.held[key]; !down {
		return
	}
	delete(a.held, key)
	g.HandleKey(core.KeyEvent{Key: key, Type: core.KeyReleased})
}

func (a *Autopilot) releaseAll(g *core.Game) {
	for key := range a.held {
		a.release(g, key)
	}
}

func nearestEnemy(g *core.Game, pos gamemath.Vector, radius float64) target {
	b, d, ok := g.Nearest(pos, radius, components.KindEnemy)
	if !ok {
		return target{}
	}
	return target{body: b, dist: d}
}

// arenaSpan is a radius that reaches every point of the arena from anywhere
// inside it.
func arenaSpan() float64 {
	return cfg.World.Max.Distance(cfg.World.Min)
}

// worldToScreen is the inverse of core.ScreenToWorld.
func worldToScreen(p gamemath.Vector) (float64, float64) {
	return p.X, cfg.World.Max.Y - p.Y
}
