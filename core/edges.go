package core

import (
	"github.com/automoto/huskyhunt/components"
	cfg "github.com/automoto/huskyhunt/config"
	"github.com/automoto/huskyhunt/shared/gamemath"
	"github.com/automoto/huskyhunt/shared/physics"
)

// handleEdges keeps bodies inside the arena. Projectiles that leave are
// removed; everything else is pushed back onto the border.
func (g *Game) handleEdges() {
	for _, b := range g.scene.Bodies() {
		handleEdge(b)
	}
}

func handleEdge(b *physics.Body) {
	if b.Removed() {
		return
	}
	clamped, out := gamemath.ClampToRect(b.Centroid(), cfg.World.Min, cfg.World.Max)
	if !out {
		return
	}
	if ref, ok := components.RefOf(b); ok && ref.Kind == components.KindProjectile {
		b.Remove()
		return
	}
	b.SetCentroid(clamped)
}
