package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector in world units (+Y up)
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2Normalize returns the unit vector of v, zero-safe (zero in, zero out)
func V2Normalize(v Vec2) Vec2 {
	mag := V2Mag(v)
	if mag == 0 || math.IsInf(mag, 0) || math.IsNaN(mag) {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// V2Direction returns the unit vector from 'from' towards 'to'
// ok is false when the points coincide and no direction exists
func V2Direction(from, to Vec2) (dir Vec2, ok bool) {
	dir = V2Normalize(V2Sub(to, from))
	if dir.X == 0 && dir.Y == 0 {
		return Vec2{}, false
	}
	return dir, true
}

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
