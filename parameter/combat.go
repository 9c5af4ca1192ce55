package parameter

import "time"

// Projectile
const (
	// ProjectileWidth and ProjectileHeight are the projectile collider extents
	ProjectileWidth  = 5.0
	ProjectileHeight = 5.0

	// ProjectileSpeed is the launch speed along the aim direction (world units/s)
	ProjectileSpeed = 1000.0

	// ProjectileDamage is subtracted from struck health
	ProjectileDamage uint16 = 10

	// ProjectileLifetime is the age after which an unresolved projectile is culled
	ProjectileLifetime = 3 * time.Second
)

// Training Targets
const (
	// TargetCount is the number of training targets placed on the floors
	TargetCount = 3

	// TargetWidth and TargetHeight are the target collider extents
	TargetWidth  = 10.0
	TargetHeight = 20.0

	// TargetHealth is the starting health of each training target
	TargetHealth uint16 = 50
)
