package physics

import (
	"github.com/lixenwraith/vi-arena/vmath"
)

// Integrate performs semi-implicit Euler integration: v = v + a*dt; p = p + v*dt
// The pre-step position is retained for swept contact tests
func Integrate(b *Body, gravity vmath.Vec2, dt float64) {
	b.prevPosition = b.Position
	if b.Kind == BodyStatic {
		return
	}
	b.Velocity = vmath.V2Add(b.Velocity, vmath.V2Scale(gravity, b.GravityScale*dt))
	b.Position = vmath.V2Add(b.Position, vmath.V2Scale(b.Velocity, dt))
}

// ApplyImpulse adds velocity delta
func ApplyImpulse(b *Body, dv vmath.Vec2) {
	b.Velocity = vmath.V2Add(b.Velocity, dv)
}

// SetImpulse overrides velocity
func SetImpulse(b *Body, v vmath.Vec2) {
	b.Velocity = v
}

// PushOut separates b from static box o along the axis of least penetration
// Velocity into o on that axis is zeroed; returns true if b was moved
func PushOut(b *Body, o vmath.AABB) bool {
	mtv := b.Bounds().Penetration(o)
	if mtv.IsZero() {
		return false
	}
	b.Position = vmath.V2Add(b.Position, mtv)

	if mtv.X != 0 && (mtv.X > 0) != (b.Velocity.X > 0) {
		b.Velocity.X = 0
	}
	if mtv.Y != 0 {
		if (mtv.Y > 0) != (b.Velocity.Y > 0) {
			b.Velocity.Y = 0
		}
		if mtv.Y > 0 {
			b.Grounded = true
		}
	}
	return true
}
