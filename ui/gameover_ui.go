package ui

import cfg "github.com/automoto/huskyhunt/config"

// GameOverUI shows how the run ended and offers a restart.
type GameOverUI struct {
	*titleScreen
	OnRestart func()
	won       bool
}

func NewGameOverUI(onRestart func()) *GameOverUI {
	g := &GameOverUI{OnRestart: onRestart}
	g.titleScreen = newTitleScreen(cfg.Menu.LossTitle, "Restart", func() {
		if g.OnRestart != nil {
			g.OnRestart()
		}
	})
	return g
}

// SetOutcome switches the title between the win and loss text.
func (g *GameOverUI) SetOutcome(won bool) {
	g.won = won
	if won {
		g.setTitle(cfg.Menu.WinTitle)
	} else {
		g.setTitle(cfg.Menu.LossTitle)
	}
}

func (g *GameOverUI) Won() bool {
	return g.won
}

func (g *GameOverUI) Update() {
	g.UI.Update()
}
