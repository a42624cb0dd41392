package gamemath

import "math"

// Vector is a 2D vector in scene units. The y axis points up.
type Vector struct {
	X, Y float64
}

// Zero is the zero vector.
var Zero = Vector{}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{v.X - o.X, v.Y - o.Y}
}

// Negate returns -v.
func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y}
}

// Scale returns v scaled by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{v.X * s, v.Y * s}
}

// Multiply returns the component-wise product.
func (v Vector) Multiply(o Vector) Vector {
	return Vector{v.X * o.X, v.Y * o.Y}
}

// Dot returns the dot product.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the 3D cross product.
func (v Vector) Cross(o Vector) float64 {
	return v.X*o.Y - v.Y*o.X
}

func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns |v - o|.
func (v Vector) Distance(o Vector) float64 {
	return v.Sub(o).Length()
}

// Normalize returns the unit vector along v, or the zero vector if v has no length.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l == 0 {
		return Zero
	}
	return v.Scale(1 / l)
}

// Rotate rotates v counter-clockwise by angle radians about the origin.
func (v Vector) Rotate(angle float64) Vector {
	sin, cos := math.Sincos(angle)
	return Vector{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Angle returns atan2(y, x).
func (v Vector) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// AngleBetween returns the unsigned angle between v and o in [0, pi].
// A zero-length operand yields 0.
func (v Vector) AngleBetween(o Vector) float64 {
	lv, lo := v.Length(), o.Length()
	if lv == 0 || lo == 0 {
		return 0
	}
	cos := v.Dot(o) / (lv * lo)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

// ApproxEqual reports whether v and o differ by at most eps on each axis.
func (v Vector) ApproxEqual(o Vector, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}
