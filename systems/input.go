package systems

import (
	"github.com/automoto/huskyhunt/components"
	cfg "github.com/automoto/huskyhunt/config"
	"github.com/automoto/huskyhunt/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// KeyBindings lists the physical keys behind each keyboard action.
var KeyBindings = map[cfg.ActionID][]ebiten.Key{
	cfg.ActionMoveLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	cfg.ActionMoveRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	cfg.ActionMoveUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
	cfg.ActionMoveDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
	cfg.ActionStart:     {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	cfg.ActionRestart:   {ebiten.KeyR},
}

// NewUpdateInput polls the keyboard and mouse and forwards them to the game.
// Held keys send a press every frame; a release is sent once on the falling
// edge.
func NewUpdateInput(game *core.Game) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e.World)

		var pressed [cfg.ActionCount]bool
		for actionID, keys := range KeyBindings {
			for _, key := range keys {
				if ebiten.IsKeyPressed(key) {
					pressed[actionID] = true
				}
			}
		}
		input.Advance(pressed, 1/float64(ebiten.TPS()))

		for actionID, key := range cfg.ActionKeys {
			state := input.Action(actionID)
			switch {
			case state.Pressed:
				game.HandleKey(core.KeyEvent{Key: key, Type: core.KeyPressed, Held: input.Held[actionID]})
			case state.JustReleased:
				game.HandleKey(core.KeyEvent{Key: key, Type: core.KeyReleased})
			}
		}

		x, y := ebiten.CursorPosition()
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			game.HandleMouse(core.MouseEvent{Button: core.MouseLeft, X: float64(x), Y: float64(y)})
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
			game.HandleMouse(core.MouseEvent{Button: core.MouseRight, X: float64(x), Y: float64(y)})
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Input))
	}
	return components.Input.Get(entry)
}
