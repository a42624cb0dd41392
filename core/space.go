package core

import (
	"math"

	"github.com/automoto/huskyhunt/archetypes"
	"github.com/automoto/huskyhunt/components"
	cfg "github.com/automoto/huskyhunt/config"
	"github.com/automoto/huskyhunt/shared/gamemath"
	"github.com/automoto/huskyhunt/shared/physics"
	"github.com/automoto/huskyhunt/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// spaceCellSize is the broadphase grid cell edge in world units.
const spaceCellSize = 25

// broadphaseTags maps the kinds kept in the broadphase to their resolv tag.
var broadphaseTags = map[components.EntityKind]string{
	components.KindEnemy:  tags.ResolvEnemy,
	components.KindBoss:   tags.ResolvBoss,
	components.KindPortal: tags.ResolvPortal,
}

func createSpace(w donburi.World) {
	entry := archetypes.Space.Spawn(w)
	components.Space.Set(entry, resolv.NewSpace(cfg.C.Width, cfg.C.Height, spaceCellSize, spaceCellSize))
}

// Space returns the broadphase stored in the world.
func (g *Game) Space() *resolv.Space {
	entry, ok := components.Space.First(g.world)
	if !ok {
		panic("core: space singleton missing from world")
	}
	return components.Space.Get(entry)
}

// attachObject mirrors body's bounding box into the broadphase under tag.
func (g *Game) attachObject(entry *donburi.Entry, body *physics.Body, tag string) {
	min, max := body.Shape().Bounds()
	w, h := max.X-min.X, max.Y-min.Y
	obj := resolv.NewObject(min.X, min.Y, w, h)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags(tag)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	g.Space().Add(obj)
}

// syncSpace moves every broadphase object onto its body and drops the ones
// whose body is on its way out. It must run before the scene sweep frees them.
func (g *Game) syncSpace() {
	space := g.Space()
	components.Object.Each(g.world, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry).Object
		if obj == nil || obj.Space == nil {
			return
		}
		body := components.GetBody(entry)
		if body.Removed() {
			space.Remove(obj)
			return
		}
		min, _ := body.Shape().Bounds()
		obj.X, obj.Y = min.X, min.Y
		obj.Update()
	})
}

// nearby returns the entries tagged tag whose broadphase cells fall within
// radius of center. Results are candidates only; callers run the exact test.
func (g *Game) nearby(center gamemath.Vector, radius float64, tag string) []*donburi.Entry {
	probe := resolv.NewObject(center.X-radius, center.Y-radius, 2*radius, 2*radius, tags.ResolvProbe)
	space := g.Space()
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	var found []*donburi.Entry
	for _, obj := range check.ObjectsByTags(tag) {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		found = append(found, entry)
	}
	return found
}

// Nearest returns the live body of kind closest to center within radius. It
// only covers kinds kept in the broadphase: enemies, the boss and portals.
func (g *Game) Nearest(center gamemath.Vector, radius float64, kind components.EntityKind) (*physics.Body, float64, bool) {
	tag, ok := broadphaseTags[kind]
	if !ok {
		return nil, 0, false
	}
	g.syncSpace()

	var best *physics.Body
	bestDist := math.Inf(1)
	for _, entry := range g.nearby(center, radius, tag) {
		b := components.GetBody(entry)
		if b == nil || b.Removed() {
			continue
		}
		if d := b.Centroid().Distance(center); d <= radius && d < bestDist {
			best, bestDist = b, d
		}
	}
	if best == nil {
		return nil, 0, false
	}
	return best, bestDist, true
}

// enemyRadius bounds the circumscribed radius of a regular enemy.
func enemyRadius() float64 {
	return math.Hypot(cfg.Enemy.Width, cfg.Enemy.Height) / 2
}
