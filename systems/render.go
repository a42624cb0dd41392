package systems

import (
	"image"
	"image/color"

	"github.com/automoto/huskyhunt/components"
	cfg "github.com/automoto/huskyhunt/config"
	"github.com/automoto/huskyhunt/core"
	"github.com/automoto/huskyhunt/shared/physics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// SpriteSource hands out images by path, or nil when one can't be loaded.
type SpriteSource interface {
	Sprite(path string) *ebiten.Image
}

// BoundingBox returns the body's axis-aligned bounds in screen pixels.
// Scene y points up, screen y points down.
func BoundingBox(b *physics.Body) image.Rectangle {
	min, max := b.Shape().Bounds()
	top := cfg.World.Max.Y - max.Y
	bottom := cfg.World.Max.Y - min.Y
	return image.Rect(int(min.X), int(top), int(max.X), int(bottom))
}

// NewDrawBodies draws every live body in scene order, each with its sprite
// when one loads and as a flat rectangle otherwise.
func NewDrawBodies(game *core.Game, images SpriteSource) func(*ecs.ECS, *ebiten.Image) {
	return func(_ *ecs.ECS, screen *ebiten.Image) {
		bg := cfg.HUD.BackgroundPlay
		if game.State() == cfg.StateBossPhase {
			bg = cfg.HUD.BackgroundBoss
		}
		screen.Fill(bg)

		for _, b := range game.Scene().Bodies() {
			if b.Removed() {
				continue
			}
			ref, ok := components.RefOf(b)
			if !ok {
				continue
			}
			entry, ok := ref.Entry(game.World())
			if !ok {
				continue
			}

			box := BoundingBox(b)
			var img *ebiten.Image
			if images != nil {
				if p := spritePath(ref.Kind, entry); p != "" {
					img = images.Sprite(p)
				}
			}

			scale := 1.0
			if ref.Kind == components.KindPortal {
				scale = float64(game.PortalScale())
			}
			angle := 0.0
			if ref.Kind == components.KindProjectile {
				angle = components.Projectile.Get(entry).Angle
			}

			if img == nil {
				drawRect(screen, box, scale, b.Color())
			} else {
				drawSprite(screen, img, box, scale, angle)
			}
			if cfg.Debug.ShowHitboxes {
				drawOutline(screen, box, cfg.White)
			}
		}
	}
}

// spritePath picks the image for an entity, or "" when it has none.
func spritePath(kind components.EntityKind, entry *donburi.Entry) string {
	var name string
	switch kind {
	case components.KindPlayer:
		name = cfg.Sprites.Player
	case components.KindEnemy:
		name = cfg.Sprites.Enemy
	case components.KindBoss:
		name = cfg.Sprites.Boss
	case components.KindPortal:
		name = cfg.Sprites.PortalBoss
		if components.Portal.Get(entry).Type == cfg.PortalEnd {
			name = cfg.Sprites.PortalEnd
		}
	case components.KindProjectile:
		switch components.Projectile.Get(entry).Style {
		case components.StylePlayerShot:
			name = cfg.Sprites.PlayerProjectile
		case components.StyleEnemyShot:
			name = cfg.Sprites.EnemyProjectile
		case components.StyleBossRing:
			name = cfg.Sprites.BossRing
		case components.StyleBossRay:
			name = cfg.Sprites.BossRay
		}
	}
	return name
}

func drawSprite(screen, img *ebiten.Image, box image.Rectangle, scale, angle float64) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w == 0 || h == 0 {
		return
	}
	cx := float64(box.Min.X+box.Max.X) / 2
	cy := float64(box.Min.Y+box.Max.Y) / 2

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	// Anchor at the sprite center so rotation and pulse stay in place
	drawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	drawOp.GeoM.Scale(float64(box.Dx())/float64(w)*scale, float64(box.Dy())/float64(h)*scale)
	// Screen y is flipped, so counter-clockwise turns negate
	drawOp.GeoM.Rotate(-angle)
	drawOp.GeoM.Translate(cx, cy)
	screen.DrawImage(img, drawOp)
}

func drawRect(screen *ebiten.Image, box image.Rectangle, scale float64, c color.RGBA) {
	w := float64(box.Dx()) * scale
	h := float64(box.Dy()) * scale
	cx := float64(box.Min.X+box.Max.X) / 2
	cy := float64(box.Min.Y+box.Max.Y) / 2
	vector.FillRect(screen, float32(cx-w/2), float32(cy-h/2), float32(w), float32(h), c, false)
}

func drawOutline(screen *ebiten.Image, box image.Rectangle, c color.RGBA) {
	vector.StrokeRect(screen,
		float32(box.Min.X), float32(box.Min.Y),
		float32(box.Dx()), float32(box.Dy()),
		1, c, false)
}
