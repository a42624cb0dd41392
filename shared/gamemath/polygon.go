package gamemath

import (
	"fmt"
	"image/color"
	"math"
)

// degenerateArea is the smallest |area| for which a centroid is defined.
const degenerateArea = 1e-12

// Polygon is an ordered vertex list with a cached centroid.
// Translate and Rotate keep the vertices and the centroid in step.
type Polygon struct {
	points        []Vector
	centroid      Vector
	rotation      float64
	rotationSpeed float64
	velocity      Vector
	color         color.RGBA
}

// NewPolygon copies points and computes the centroid.
// It panics on fewer than three points or a zero-area shape.
func NewPolygon(points []Vector, velocity Vector, rotationSpeed float64, c color.RGBA) *Polygon {
	if len(points) < 3 {
		panic(fmt.Sprintf("polygon needs at least 3 points, got %d", len(points)))
	}
	p := &Polygon{
		points:        append([]Vector(nil), points...),
		velocity:      velocity,
		rotationSpeed: rotationSpeed,
		color:         c,
	}
	p.centroid = p.ComputeCentroid()
	return p
}

// NewRectangle returns an axis-aligned w x h rectangle, counter-clockwise, with its
// lower-left corner at the origin.
func NewRectangle(w, h float64, c color.RGBA) *Polygon {
	return NewPolygon([]Vector{{0, 0}, {w, 0}, {w, h}, {0, h}}, Zero, 0, c)
}

// Points returns a copy of the vertices.
func (p *Polygon) Points() []Vector {
	return append([]Vector(nil), p.points...)
}

func (p *Polygon) Len() int {
	return len(p.points)
}

// Point returns vertex i.
func (p *Polygon) Point(i int) Vector {
	return p.points[i]
}

// Area returns the signed area. Positive means counter-clockwise winding.
func (p *Polygon) Area() float64 {
	sum := 0.0
	n := len(p.points)
	for i := 0; i < n; i++ {
		a, b := p.points[i], p.points[(i+1)%n]
		sum += a.Cross(b)
	}
	return sum / 2
}

// ComputeCentroid recomputes the centroid from the vertices with the shoelace formula.
func (p *Polygon) ComputeCentroid() Vector {
	area := p.Area()
	if math.Abs(area) < degenerateArea {
		panic(fmt.Sprintf("degenerate polygon: area %g", area))
	}
	var cx, cy float64
	n := len(p.points)
	for i := 0; i < n; i++ {
		a, b := p.points[i], p.points[(i+1)%n]
		cross := a.Cross(b)
		cx += (a.X + b.X) * cross
		cy += (a.Y + b.Y) * cross
	}
	return Vector{cx / (6 * area), cy / (6 * area)}
}

// Centroid returns the cached centroid.
func (p *Polygon) Centroid() Vector {
	return p.centroid
}

// Translate moves every vertex and the centroid by v.
func (p *Polygon) Translate(v Vector) {
	for i := range p.points {
		p.points[i] = p.points[i].Add(v)
	}
	p.centroid = p.centroid.Add(v)
}

// Rotate turns the polygon by angle radians about pivot and adds angle to the
// rotation accumulator.
func (p *Polygon) Rotate(angle float64, pivot Vector) {
	for i := range p.points {
		p.points[i] = p.points[i].Sub(pivot).Rotate(angle).Add(pivot)
	}
	p.centroid = p.centroid.Sub(pivot).Rotate(angle).Add(pivot)
	p.rotation += angle
}

// SetCenter translates the polygon so its centroid lands on target.
func (p *Polygon) SetCenter(target Vector) {
	p.Translate(target.Sub(p.centroid))
}

// Rotation returns the accumulated rotation in radians.
func (p *Polygon) Rotation() float64 {
	return p.rotation
}

// SetRotation rotates about the centroid until the accumulator equals angle.
func (p *Polygon) SetRotation(angle float64) {
	p.Rotate(angle-p.rotation, p.centroid)
}

func (p *Polygon) Velocity() Vector {
	return p.velocity
}

func (p *Polygon) SetVelocity(v Vector) {
	p.velocity = v
}

func (p *Polygon) RotationSpeed() float64 {
	return p.rotationSpeed
}

func (p *Polygon) SetRotationSpeed(speed float64) {
	p.rotationSpeed = speed
}

func (p *Polygon) Color() color.RGBA {
	return p.color
}

func (p *Polygon) SetColor(c color.RGBA) {
	p.color = c
}

// Tick advances the polygon by its own velocity and rotation speed.
func (p *Polygon) Tick(dt float64) {
	p.Translate(p.velocity.Scale(dt))
	if p.rotationSpeed != 0 {
		p.Rotate(p.rotationSpeed*dt, p.centroid)
	}
}

// Bounds returns the axis-aligned bounding box corners.
func (p *Polygon) Bounds() (min, max Vector) {
	min, max = p.points[0], p.points[0]
	for _, pt := range p.points[1:] {
		min.X = math.Min(min.X, pt.X)
		min.Y = math.Min(min.Y, pt.Y)
		max.X = math.Max(max.X, pt.X)
		max.Y = math.Max(max.Y, pt.Y)
	}
	return min, max
}
