package physics

import (
	"math"

	"github.com/automoto/huskyhunt/shared/gamemath"
)

// CollisionInfo is the result of a collision test. Axis is a unit vector
// pointing from the first body toward the second, or zero when unknown.
type CollisionInfo struct {
	Collided bool
	Axis     gamemath.Vector
}

// FindCollision runs a separating-axis test over the edge normals of both
// convex shapes. Touching edges do not count as a collision. On overlap the
// axis of least penetration is returned.
func FindCollision(a, b *Body) CollisionInfo {
	pa, pb := a.shape, b.shape
	best := math.Inf(1)
	var axis gamemath.Vector

	for _, p := range []*gamemath.Polygon{pa, pb} {
		n := p.Len()
		for i := 0; i < n; i++ {
			edge := p.Point((i + 1) % n).Sub(p.Point(i))
			normal := gamemath.Vector{X: -edge.Y, Y: edge.X}.Normalize()
			if normal == gamemath.Zero {
				continue
			}
			minA, maxA := project(pa, normal)
			minB, maxB := project(pb, normal)
			overlap := math.Min(maxA, maxB) - math.Max(minA, minB)
			if overlap <= 0 {
				return CollisionInfo{}
			}
			if overlap < best {
				best = overlap
				axis = normal
			}
		}
	}

	if axis.Dot(pb.Centroid().Sub(pa.Centroid())) < 0 {
		axis = axis.Negate()
	}
	return CollisionInfo{Collided: true, Axis: axis}
}

func project(p *gamemath.Polygon, axis gamemath.Vector) (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for i := 0; i < p.Len(); i++ {
		d := p.Point(i).Dot(axis)
		min = math.Min(min, d)
		max = math.Max(max, d)
	}
	return min, max
}

// FindCollisionMelee treats both bodies as circles of their circumscribed
// radius. They collide when the centroid distance is at most
// reach + a.Radius() + b.Radius(); the boundary itself counts.
func FindCollisionMelee(a, b *Body, reach float64) CollisionInfo {
	d := b.Centroid().Sub(a.Centroid())
	if d.Length() > reach+a.Radius()+b.Radius() {
		return CollisionInfo{}
	}
	return CollisionInfo{Collided: true, Axis: d.Normalize()}
}
