package gamemath

// HomingVelocity returns a velocity of magnitude speed pointing from one point to
// another. Coincident points give the zero vector.
func HomingVelocity(from, to Vector, speed float64) Vector {
	return to.Sub(from).Normalize().Scale(speed)
}

// ClampToRect reports whether p lies outside [min, max] and, if so, returns p pulled
// back onto the boundary along the first violated axis only. The order is
// x above max, x below min, y above max, y below min.
func ClampToRect(p, min, max Vector) (Vector, bool) {
	switch {
	case p.X > max.X:
		return Vector{max.X, p.Y}, true
	case p.X < min.X:
		return Vector{min.X, p.Y}, true
	case p.Y > max.Y:
		return Vector{p.X, max.Y}, true
	case p.Y < min.Y:
		return Vector{p.X, min.Y}, true
	}
	return p, false
}
