package engine

// System is a unit of per-tick game logic
// Systems run in ascending Priority order under the world update lock
type System interface {
	// Init resets internal state; called on construction and on round restart
	Init()

	// Name identifies the system in logs and telemetry
	Name() string

	// Priority orders execution, lower values run first
	Priority() int

	// Update advances the system by the tick delta held in TimeResource
	Update()
}
