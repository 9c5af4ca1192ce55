package component

// PlayerComponent tags the locally controlled actor
type PlayerComponent struct{}

// TargetComponent tags a training target placed by the arena
type TargetComponent struct{}

// DampingComponent slows horizontal movement each tick
// Vertical velocity is left to gravity
type DampingComponent struct {
	Factor float64
}

// FacingComponent holds the last horizontal heading (-1 or +1)
// Used as the fire direction when the aim point coincides with the shooter
type FacingComponent struct {
	X float64
}
