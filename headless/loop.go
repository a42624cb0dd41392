// Package headless drives the simulation without a window: a fixed-rate
// loop, an autopilot standing in for the player and Prometheus metrics.
package headless

import (
	"log"
	"sync"
	"time"

	cfg "github.com/automoto/huskyhunt/config"
	"github.com/automoto/huskyhunt/core"
)

type GameLoop struct {
	game     *core.Game
	pilot    *Autopilot
	metrics  *Metrics
	tickRate int
	maxTicks int // 0 runs until stopped
	fast     bool

	ticks    int
	running  bool
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewGameLoop wires game to pilot. metrics may be nil. A tickRate of zero
// or less takes the configured rate at call time.
func NewGameLoop(game *core.Game, pilot *Autopilot, metrics *Metrics, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = cfg.Game.TickRate
	}
	return &GameLoop{
		game:     game,
		pilot:    pilot,
		metrics:  metrics,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// SetTickBudget stops the loop after n ticks. Zero means no budget.
func (g *GameLoop) SetTickBudget(n int) {
	g.maxTicks = n
}

// SetFast drops the ticker so ticks run back to back.
func (g *GameLoop) SetFast(fast bool) {
	g.fast = fast
}

func (g *GameLoop) TickRate() int {
	return g.tickRate
}

func (g *GameLoop) Ticks() int {
	return g.ticks
}

func (g *GameLoop) Running() bool {
	return g.running
}

// Run blocks until Stop is called or the tick budget is spent.
func (g *GameLoop) Run() {
	g.running = true
	defer func() { g.running = false }()

	log.Printf("Game loop started at %d ticks/second (fast: %v, budget: %d)", g.tickRate, g.fast, g.maxTicks)

	if g.fast {
		g.runFast()
		return
	}

	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			g.tick()
			if g.budgetSpent() {
				log.Printf("Game loop finished after %d ticks", g.ticks)
				return
			}
		}
	}
}

func (g *GameLoop) runFast() {
	for !g.budgetSpent() {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		default:
		}
		g.tick()
	}
	log.Printf("Game loop finished after %d ticks", g.ticks)
}

// Stop ends Run. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) budgetSpent() bool {
	return g.maxTicks > 0 && g.ticks >= g.maxTicks
}

func (g *GameLoop) tick() {
	start := time.Now()
	dt := 1 / float64(g.tickRate)
	prev := g.game.State()

	if g.pilot != nil {
		g.pilot.Step(g.game, dt)
	}
	g.game.Update(dt)
	g.ticks++

	if g.metrics != nil {
		g.metrics.Observe(g.game, prev, time.Since(start))
	}
}
