package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/huskyhunt/core"
	"github.com/automoto/huskyhunt/systems"
	"github.com/automoto/huskyhunt/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the title screen until the run starts
type MenuScene struct {
	ecs          *ecs.ECS
	session      *Session
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, session *Session) *MenuScene {
	return &MenuScene{sceneChanger: sc, session: session}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menuUI.Update()
	ms.ecs.Update()

	if ms.session.Game.State().IsCombat() {
		ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger, ms.session))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	game := ms.session.Game
	ms.ecs = ecs.NewECS(donburi.NewWorld())
	ms.menuUI = ui.NewMenuUI(game.Start)

	// Enter starts the run as well as the button
	ms.ecs.AddSystem(systems.NewUpdateInput(game))
}

// Session is what every scene of a run shares.
type Session struct {
	Game   *core.Game
	Images systems.SpriteSource
}
