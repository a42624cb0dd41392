package systems

import (
	"github.com/automoto/huskyhunt/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGame steps the simulation by one ebiten tick.
func NewUpdateGame(game *core.Game) func(*ecs.ECS) {
	return func(_ *ecs.ECS) {
		game.Update(1 / float64(ebiten.TPS()))
	}
}
