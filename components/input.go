package components

import (
	cfg "github.com/automoto/huskyhunt/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool    // Current frame's Pressed state
	Previous [cfg.ActionCount]bool    // Previous frame's Pressed state
	Held     [cfg.ActionCount]float64 // Seconds each action has been down
}

var Input = donburi.NewComponentType[InputData]()

// Action returns the full ActionState for an action ID.
func (d *InputData) Action(id cfg.ActionID) ActionState {
	curr := d.Current[id]
	prev := d.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Advance records this frame's pressed set and ages the hold timers.
func (d *InputData) Advance(pressed [cfg.ActionCount]bool, dt float64) {
	d.Previous = d.Current
	d.Current = pressed
	for id := range d.Current {
		switch {
		case !d.Current[id]:
			d.Held[id] = 0
		case d.Previous[id]:
			d.Held[id] += dt
		}
	}
}
