package vmath

import "math"

// AABB is an axis-aligned box described by its centre and half extents
type AABB struct {
	Center   Vec2
	HalfSize Vec2
}

func (b AABB) Min() Vec2 { return V2Sub(b.Center, b.HalfSize) }
func (b AABB) Max() Vec2 { return V2Add(b.Center, b.HalfSize) }

// Overlaps reports strict interpenetration; boxes sharing only an edge do not overlap
func (b AABB) Overlaps(o AABB) bool {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := o.Min(), o.Max()
	return bMin.X < oMax.X && bMax.X > oMin.X && bMin.Y < oMax.Y && bMax.Y > oMin.Y
}

// Contains reports whether p lies inside b (edges inclusive)
func (b AABB) Contains(p Vec2) bool {
	bMin, bMax := b.Min(), b.Max()
	return p.X >= bMin.X && p.X <= bMax.X && p.Y >= bMin.Y && p.Y <= bMax.Y
}

// SweepOverlaps reports whether b, translated by d, strictly overlaps o at any point along the move
// Slab test of the centre segment against o grown by b's half extents
func (b AABB) SweepOverlaps(d Vec2, o AABB) bool {
	p := V2Sub(b.Center, o.Center)
	e := V2Add(b.HalfSize, o.HalfSize)
	enter, exit := math.Inf(-1), math.Inf(1)

	for _, ax := range [2][3]float64{{p.X, d.X, e.X}, {p.Y, d.Y, e.Y}} {
		pos, delta, ext := ax[0], ax[1], ax[2]
		if delta == 0 {
			if math.Abs(pos) >= ext {
				return false
			}
			continue
		}
		t1 := (-ext - pos) / delta
		t2 := (ext - pos) / delta
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		enter = math.Max(enter, t1)
		exit = math.Min(exit, t2)
	}
	return enter < exit && enter < 1 && exit > 0
}

// Penetration returns the minimum translation that moves b out of o along a single axis
// Zero vector when the boxes do not overlap
func (b AABB) Penetration(o AABB) Vec2 {
	if !b.Overlaps(o) {
		return Vec2{}
	}
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := o.Min(), o.Max()

	pushLeft := oMin.X - bMax.X  // negative
	pushRight := oMax.X - bMin.X // positive
	pushDown := oMin.Y - bMax.Y  // negative
	pushUp := oMax.Y - bMin.Y    // positive

	dx := pushRight
	if -pushLeft < pushRight {
		dx = pushLeft
	}
	dy := pushUp
	if -pushDown < pushUp {
		dy = pushDown
	}

	if math.Abs(dx) < math.Abs(dy) {
		return Vec2{X: dx}
	}
	return Vec2{Y: dy}
}
