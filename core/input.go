package core

import (
	"unicode"

	cfg "github.com/automoto/huskyhunt/config"
	"github.com/automoto/huskyhunt/shared/gamemath"
)

type KeyEventType int

const (
	KeyPressed KeyEventType = iota
	KeyReleased
)

// KeyEvent is one keyboard sample. Held is how long the key has been down in
// seconds; zero marks the first press.
type KeyEvent struct {
	Key  rune
	Type KeyEventType
	Held float64
}

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
)

// MouseEvent is a click in screen coordinates, y pointing down.
type MouseEvent struct {
	Button MouseButton
	X, Y   float64
}

// ActionForKey maps a key rune to its action, ignoring case.
func ActionForKey(key rune) cfg.ActionID {
	key = unicode.ToLower(key)
	for action, r := range cfg.ActionKeys {
		if r == key {
			return action
		}
	}
	return cfg.ActionNone
}

// HandleKey applies a key event. Movement keys only set the player's
// velocity, so repeated press events are harmless.
func (g *Game) HandleKey(ev KeyEvent) {
	action := ActionForKey(ev.Key)
	switch action {
	case cfg.ActionStart:
		if ev.Type == KeyPressed && ev.Held == 0 {
			g.Start()
		}
		return
	case cfg.ActionRestart:
		if ev.Type == KeyPressed && ev.Held == 0 {
			g.Restart()
		}
		return
	}

	if !g.State().IsCombat() {
		return
	}
	body := g.PlayerBody()
	if body == nil {
		return
	}

	step := cfg.Player.MoveStep
	v := body.Velocity()
	switch ev.Type {
	case KeyPressed:
		switch action {
		case cfg.ActionMoveLeft:
			v.X = -step
		case cfg.ActionMoveRight:
			v.X = step
		case cfg.ActionMoveUp:
			v.Y = step
		case cfg.ActionMoveDown:
			// The player can't walk below the starting line.
			if body.Centroid().Y > cfg.Player.StartPos.Y {
				v.Y = -step
			}
		}
	case KeyReleased:
		switch action {
		case cfg.ActionMoveLeft, cfg.ActionMoveRight:
			v.X = 0
		case cfg.ActionMoveUp, cfg.ActionMoveDown:
			v.Y = 0
		}
	}
	body.SetVelocity(v)
}

// HandleMouse turns a click into an attack: left swings, right fires toward
// the cursor.
func (g *Game) HandleMouse(ev MouseEvent) {
	if !g.State().IsCombat() {
		return
	}
	switch ev.Button {
	case MouseLeft:
		g.melee()
	case MouseRight:
		g.fire(ScreenToWorld(ev.X, ev.Y))
	}
}

// ScreenToWorld flips a screen point into scene coordinates.
func ScreenToWorld(x, y float64) gamemath.Vector {
	return gamemath.Vector{X: x, Y: cfg.World.Max.Y - y}
}
