package components

import (
	"testing"

	cfg "github.com/automoto/huskyhunt/config"
	"github.com/stretchr/testify/assert"
)

func TestInputEdges(t *testing.T) {
	var in InputData
	var down [cfg.ActionCount]bool
	down[cfg.ActionMoveLeft] = true

	in.Advance(down, 0.1)
	assert.Equal(t, ActionState{Pressed: true, JustPressed: true}, in.Action(cfg.ActionMoveLeft))
	assert.Zero(t, in.Held[cfg.ActionMoveLeft])

	in.Advance(down, 0.1)
	assert.Equal(t, ActionState{Pressed: true}, in.Action(cfg.ActionMoveLeft))
	assert.InDelta(t, 0.1, in.Held[cfg.ActionMoveLeft], 1e-9)

	in.Advance([cfg.ActionCount]bool{}, 0.1)
	assert.Equal(t, ActionState{JustReleased: true}, in.Action(cfg.ActionMoveLeft))
	assert.Zero(t, in.Held[cfg.ActionMoveLeft])

	in.Advance([cfg.ActionCount]bool{}, 0.1)
	assert.Equal(t, ActionState{}, in.Action(cfg.ActionMoveLeft))
}
