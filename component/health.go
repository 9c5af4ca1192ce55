package component

// HealthComponent holds the remaining health of a damageable actor
// Current never goes below zero; Max is informational for HUD bars
type HealthComponent struct {
	Current uint16
	Max     uint16
}

// NewHealth creates a full health pool
func NewHealth(max uint16) HealthComponent {
	return HealthComponent{Current: max, Max: max}
}

// Apply subtracts damage with saturation at zero and returns the remaining health
// Over-damage is clamped, not tracked
func (h *HealthComponent) Apply(damage uint16) uint16 {
	if damage >= h.Current {
		h.Current = 0
	} else {
		h.Current -= damage
	}
	return h.Current
}

// Defeated reports whether health has reached zero
func (h HealthComponent) Defeated() bool {
	return h.Current == 0
}

// Fraction returns Current/Max in [0, 1]; 0 when Max is unset
func (h HealthComponent) Fraction() float64 {
	if h.Max == 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}
