package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/huskyhunt/config"
	"github.com/automoto/huskyhunt/systems"
	"github.com/automoto/huskyhunt/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the outcome and waits for a restart
type GameOverScene struct {
	ecs          *ecs.ECS
	session      *Session
	sceneChanger SceneChanger
	gameOverUI   *ui.GameOverUI
	once         sync.Once
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, session *Session) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, session: session}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.gameOverUI.Update()
	gs.ecs.Update()

	if gs.session.Game.State() == cfg.StateMenu {
		gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger, gs.session))
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.gameOverUI == nil {
		return
	}
	gs.gameOverUI.UI.Draw(screen)
}

func (gs *GameOverScene) configure() {
	game := gs.session.Game
	gs.ecs = ecs.NewECS(donburi.NewWorld())
	gs.gameOverUI = ui.NewGameOverUI(game.Restart)
	gs.gameOverUI.SetOutcome(game.State() == cfg.StateWin)

	// 'r' restarts as well as the button
	gs.ecs.AddSystem(systems.NewUpdateInput(game))
}
