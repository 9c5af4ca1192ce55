package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundFire   SoundType = iota // Projectile launch
	SoundHit                     // Projectile struck a damageable actor
	SoundThud                    // Projectile struck arena geometry
	SoundDefeat                  // Actor health reached zero
	SoundTypeCount
)

// String returns the sound name used in config and logs
func (s SoundType) String() string {
	switch s {
	case SoundFire:
		return "fire"
	case SoundHit:
		return "hit"
	case SoundThud:
		return "thud"
	case SoundDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}
