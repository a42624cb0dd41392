package physics

import (
	"image/color"
	"math"
	"testing"

	"github.com/automoto/huskyhunt/shared/gamemath"
	"github.com/stretchr/testify/assert"
)

func TestFindCollision(t *testing.T) {
	tests := []struct {
		name     string
		a, b     gamemath.Vector
		collided bool
	}{
		{"overlapping", gamemath.Vector{X: 0, Y: 0}, gamemath.Vector{X: 6, Y: 2}, true},
		{"same centre", gamemath.Vector{X: 3, Y: 3}, gamemath.Vector{X: 3, Y: 3}, true},
		{"separated on x", gamemath.Vector{X: 0, Y: 0}, gamemath.Vector{X: 20, Y: 0}, false},
		{"touching edges", gamemath.Vector{X: 0, Y: 0}, gamemath.Vector{X: 10, Y: 0}, false},
		{"separated on y", gamemath.Vector{X: 0, Y: 0}, gamemath.Vector{X: 2, Y: -11}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := FindCollision(box(tt.a), box(tt.b))
			assert.Equal(t, tt.collided, info.Collided)
			if !tt.collided {
				assert.Equal(t, gamemath.Zero, info.Axis)
			}
		})
	}
}

func TestFindCollisionAxisPointsFromAToB(t *testing.T) {
	info := FindCollision(box(gamemath.Vector{X: 0, Y: 0}), box(gamemath.Vector{X: 8, Y: 1}))
	assert.True(t, info.Collided)
	assert.True(t, info.Axis.ApproxEqual(gamemath.Vector{X: 1, Y: 0}, eps), "axis %v", info.Axis)

	info = FindCollision(box(gamemath.Vector{X: 8, Y: 1}), box(gamemath.Vector{X: 0, Y: 0}))
	assert.True(t, info.Axis.ApproxEqual(gamemath.Vector{X: -1, Y: 0}, eps), "axis %v", info.Axis)
}

func TestFindCollisionContainment(t *testing.T) {
	// No edges cross when one shape sits wholly inside the other.
	outer := NewHitbox(70, 70, gamemath.Vector{X: 500, Y: 250}, color.RGBA{})
	inner := NewHitbox(10, 20, gamemath.Vector{X: 510, Y: 250}, color.RGBA{})

	info := FindCollision(outer, inner)
	assert.True(t, info.Collided)
	assert.True(t, info.Axis.ApproxEqual(gamemath.Vector{X: 1, Y: 0}, eps), "axis %v", info.Axis)

	info = FindCollision(inner, outer)
	assert.True(t, info.Collided)
	assert.True(t, info.Axis.ApproxEqual(gamemath.Vector{X: -1, Y: 0}, eps), "axis %v", info.Axis)
}

func TestFindCollisionRotated(t *testing.T) {
	// A diamond whose AABB overlaps the box but whose edges do not.
	a := box(gamemath.Zero)
	b := box(gamemath.Vector{X: 9, Y: 9})
	b.SetRotation(math.Pi / 4)
	assert.False(t, FindCollision(a, b).Collided)

	b.SetCentroid(gamemath.Vector{X: 11, Y: 0})
	assert.True(t, FindCollision(a, b).Collided)
}

func TestFindCollisionMeleeBoundaryInclusive(t *testing.T) {
	a := NewHitbox(6, 8, gamemath.Zero, color.RGBA{})
	b := NewHitbox(6, 8, gamemath.Zero, color.RGBA{})
	// Each radius is 5, so the threshold is reach + 10.
	reach := 10.0

	b.SetCentroid(gamemath.Vector{X: 20, Y: 0})
	info := FindCollisionMelee(a, b, reach)
	assert.True(t, info.Collided)
	assert.True(t, info.Axis.ApproxEqual(gamemath.Vector{X: 1, Y: 0}, eps))

	b.SetCentroid(gamemath.Vector{X: 20.0001, Y: 0})
	assert.False(t, FindCollisionMelee(a, b, reach).Collided)

	b.SetCentroid(gamemath.Vector{X: 12, Y: 16})
	assert.True(t, FindCollisionMelee(a, b, reach).Collided)
}

func TestFindCollisionMeleeSameCentre(t *testing.T) {
	a, b := box(gamemath.Zero), box(gamemath.Zero)
	info := FindCollisionMelee(a, b, 0)
	assert.True(t, info.Collided)
	assert.Equal(t, gamemath.Zero, info.Axis)
}
