package parameter

// System Execution Priorities (lower runs first)
// Cooldowns advance before the player system evaluates fire intent,
// physics finalises contacts before damage resolution reads them
const (
	PriorityCooldown  = 10
	PriorityPlayer    = 20
	PriorityPhysics   = 30
	PriorityDamage    = 40
	PriorityCull      = 50
	PriorityDefeat    = 60
	PriorityAudio     = 800
	PriorityTelemetry = 900
	PrioritySpectator = 950
)
