package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/huskyhunt/config"
	"github.com/automoto/huskyhunt/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs the arena while the player is fighting.
type WorldScene struct {
	ecs          *ecs.ECS
	session      *Session
	sceneChanger SceneChanger
	once         sync.Once
}

func NewWorldScene(sc SceneChanger, session *Session) *WorldScene {
	return &WorldScene{sceneChanger: sc, session: session}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if ws.session.Game.State().IsGameOver() {
		ws.sceneChanger.ChangeScene(NewGameOverScene(ws.sceneChanger, ws.session))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	game := ws.session.Game
	ws.ecs = ecs.NewECS(donburi.NewWorld())

	// Input must run before the simulation steps
	ws.ecs.AddSystem(systems.NewUpdateInput(game))
	ws.ecs.AddSystem(systems.NewUpdateGame(game))

	ws.ecs.AddRenderer(cfg.Default, systems.NewDrawBodies(game, ws.session.Images))
	ws.ecs.AddRenderer(cfg.Overlay, systems.NewDrawHUD(game))
}
