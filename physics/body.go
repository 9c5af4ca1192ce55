package physics

import (
	"github.com/lixenwraith/vi-arena/vmath"
)

// BodyKind distinguishes immovable geometry from simulated bodies
type BodyKind uint8

const (
	// BodyStatic never moves and never contacts another static body
	BodyStatic BodyKind = iota
	// BodyDynamic is integrated every step
	BodyDynamic
)

func (k BodyKind) String() string {
	if k == BodyStatic {
		return "static"
	}
	return "dynamic"
}

// Body is an axis-aligned box collider with kinematic state
type Body struct {
	Kind     BodyKind
	Position vmath.Vec2
	Velocity vmath.Vec2
	HalfSize vmath.Vec2

	// GravityScale multiplies space gravity; projectiles use 0
	GravityScale float64

	// Swept bodies test contacts along their whole step path
	// and are never pushed out of static geometry
	Swept bool

	// Grounded is set when the last step pushed the body up out of static geometry
	Grounded bool

	prevPosition vmath.Vec2
}

// NewStaticBody creates immovable geometry centred at pos with full extents size
func NewStaticBody(pos, size vmath.Vec2) Body {
	return Body{
		Kind:     BodyStatic,
		Position: pos,
		HalfSize: vmath.V2Scale(size, 0.5),
	}
}

// NewDynamicBody creates a gravity-affected body centred at pos with full extents size
func NewDynamicBody(pos, size vmath.Vec2) Body {
	return Body{
		Kind:         BodyDynamic,
		Position:     pos,
		HalfSize:     vmath.V2Scale(size, 0.5),
		GravityScale: 1,
	}
}

// Bounds returns the collider box at the current position
func (b *Body) Bounds() vmath.AABB {
	return vmath.AABB{Center: b.Position, HalfSize: b.HalfSize}
}

// sweep returns the box at the start of the last step and its displacement over the step
// Non-swept bodies are tested in place at their current position
func (b *Body) sweep() (vmath.AABB, vmath.Vec2) {
	if !b.Swept {
		return b.Bounds(), vmath.Vec2{}
	}
	start := vmath.AABB{Center: b.prevPosition, HalfSize: b.HalfSize}
	return start, vmath.V2Sub(b.Position, b.prevPosition)
}
