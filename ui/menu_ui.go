package ui

import cfg "github.com/automoto/huskyhunt/config"

// MenuUI is the title screen with a single Play button.
type MenuUI struct {
	*titleScreen
	OnPlay func()
}

// NewMenuUI builds the menu. onPlay runs once per click.
func NewMenuUI(onPlay func()) *MenuUI {
	m := &MenuUI{OnPlay: onPlay}
	m.titleScreen = newTitleScreen(cfg.Menu.Title, "Play", func() {
		if m.OnPlay != nil {
			m.OnPlay()
		}
	})
	return m
}

func (m *MenuUI) Update() {
	m.UI.Update()
}
