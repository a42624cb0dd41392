package main

import (
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/automoto/huskyhunt/assets"
	"github.com/automoto/huskyhunt/config"
	"github.com/automoto/huskyhunt/core"
	"github.com/automoto/huskyhunt/fonts"
	"github.com/automoto/huskyhunt/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(seed int64, spriteDir string) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	session := &scenes.Session{
		Game:   core.NewGame(seed),
		Images: assets.NewImageCache(os.DirFS(spriteDir)),
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		session.Game.Start()
		g.scene = scenes.NewWorldScene(g, session)
	} else {
		g.scene = scenes.NewMenuScene(g, session)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default tuning")
	assetDir := flag.String("assets", ".", "Directory holding the sprite folder")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed for enemy spawns")
	flag.Parse()

	if err := config.LoadOverrides(*configPath); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.Menu.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.Game.TickRate)

	spriteDir := filepath.Join(*assetDir, config.Sprites.Dir)
	if _, err := os.Stat(spriteDir); err != nil {
		log.Printf("Warning: sprite directory %s unavailable, drawing flat shapes: %v", spriteDir, err)
	}

	if err := ebiten.RunGame(NewGame(*seed, spriteDir)); err != nil {
		log.Fatal(err)
	}
}
