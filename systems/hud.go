package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/huskyhunt/config"
	"github.com/automoto/huskyhunt/core"
	"github.com/automoto/huskyhunt/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // bars use the freetype faces
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawBar fills rect with secondary, then covers value/max of its width with
// primary. Nothing is drawn when max is not positive.
func DrawBar(screen *ebiten.Image, value, max int, rect cfg.BarRect, primary, secondary color.RGBA) {
	if max <= 0 {
		return
	}
	ratio := float32(value) / float32(max)
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}
	vector.FillRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), secondary, false)
	vector.FillRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W)*ratio, float32(rect.H), primary, false)
}

// NewDrawHUD renders the player's bars and level, plus the boss bar while
// the boss fight is on.
func NewDrawHUD(game *core.Game) func(*ecs.ECS, *ebiten.Image) {
	return func(_ *ecs.ECS, screen *ebiten.Image) {
		if !game.State().IsCombat() {
			return
		}
		face := fonts.Small.Get()
		hud := cfg.HUD

		hp := game.PlayerHealth()
		DrawBar(screen, hp.Current, hp.Max, hud.HPBar, hud.HealthColor, hud.DamageColor)
		drawBarLabel(screen, fmt.Sprintf(hud.HPText, hp.Current, hp.Max), hud.HPBar)

		stats := game.PlayerStats()
		DrawBar(screen, stats.Exp, stats.LevelScale, hud.XPBar, hud.ExpColor, hud.EmptyColor)
		drawBarLabel(screen, fmt.Sprintf(hud.XPText, stats.Exp, stats.LevelScale), hud.XPBar)

		if stats.Ready() {
			left := stats.BulletsLeft()
			DrawBar(screen, left, cfg.Player.MaxBullets, hud.BulletsBar, hud.BulletColor, hud.EmptyColor)
			drawBarLabel(screen, fmt.Sprintf(hud.BulletsText, left, cfg.Player.MaxBullets), hud.BulletsBar)
		} else {
			elapsed := int(stats.SinceReload * 1000)
			DrawBar(screen, elapsed, int(cfg.Player.BulletCooldown*1000), hud.BulletsBar, hud.BulletColor, hud.EmptyColor)
			drawBarLabel(screen, fmt.Sprintf(hud.ReloadText, stats.ReloadRemaining()), hud.BulletsBar)
		}

		level := fmt.Sprintf(hud.LevelText, stats.Level)
		text.Draw(screen, level, face, int(hud.HPBar.X)-60, int(hud.HPBar.Y+hud.HPBar.H)-6, hud.TextColor)

		if game.State() == cfg.StateBossPhase {
			if boss, ok := game.BossHealth(); ok && boss.Current > 0 {
				DrawBar(screen, boss.Current, boss.Max, hud.BossBar, hud.DamageColor, hud.BorderColor)
			}
		}
	}
}

func drawBarLabel(screen *ebiten.Image, label string, rect cfg.BarRect) {
	face := fonts.Small.Get()
	x := int(rect.X + cfg.HUD.BarMargin)
	y := int(rect.Y+rect.H) - int(cfg.HUD.BarMargin)
	text.Draw(screen, label, face, x, y, cfg.HUD.TextColor)
}
