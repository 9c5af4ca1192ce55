package parameter

import (
	"time"
)

// Player Entity
const (
	// PlayerWidth and PlayerHeight are the player collider extents in world units
	PlayerWidth  = 10.0
	PlayerHeight = 20.0

	// PlayerStartingHealth is the initial player health
	PlayerStartingHealth uint16 = 100

	// PlayerAttackCooldown is the minimum time between two shots
	PlayerAttackCooldown = 650 * time.Millisecond
)

// Player Locomotion
const (
	// JumpForce is the upward velocity set on jump (world units/s)
	JumpForce = 200.0

	// MoveAccel is the horizontal acceleration while a move key is held (world units/s²)
	MoveAccel = 1000.0

	// MaxMoveSpeed caps horizontal acceleration from input (world units/s)
	MaxMoveSpeed = 100.0

	// MovementDampingFactor is applied to horizontal velocity every tick
	MovementDampingFactor = 0.92

	// MoveLatch keeps a move intent alive after a key press; terminals report no key release
	MoveLatch = 120 * time.Millisecond
)
