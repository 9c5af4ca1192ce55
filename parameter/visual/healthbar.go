package visual

// HUD bar configuration
const (
	HUDBarLength = 20

	BarCharFull  = '█'
	BarCharEmpty = '░'

	// HealthLowThreshold switches the health bar to the low style
	HealthLowThreshold = 0.3
)
