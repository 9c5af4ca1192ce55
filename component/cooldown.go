package component

import "time"

// CooldownComponent is a per-actor countdown gating repeated actions
// State is Charging while Elapsed < Duration and Ready once Elapsed reaches Duration.
// Ready is derived on demand and never stored.
// A consumed cooldown stays spent until the next positive Tick, so a zero Duration still allows one use per tick.
type CooldownComponent struct {
	Duration time.Duration
	Elapsed  time.Duration
	Spent    bool
}

// NewCooldown creates a cooldown at Elapsed = 0: Charging for positive durations, Ready for zero
func NewCooldown(d time.Duration) CooldownComponent {
	if d < 0 {
		d = 0
	}
	return CooldownComponent{Duration: d}
}

// Tick advances elapsed time by dt, clamped at Duration
func (c *CooldownComponent) Tick(dt time.Duration) {
	if dt <= 0 {
		return
	}
	c.Spent = false
	c.Elapsed += dt
	if c.Elapsed > c.Duration {
		c.Elapsed = c.Duration
	}
}

// Ready reports whether the cooldown has fully elapsed
func (c CooldownComponent) Ready() bool {
	return !c.Spent && c.Elapsed >= c.Duration
}

// Reset returns the cooldown to Charging with zero elapsed time
func (c *CooldownComponent) Reset() {
	c.Elapsed = 0
	c.Spent = true
}

// TryConsume resets and returns true if Ready, otherwise leaves state untouched
func (c *CooldownComponent) TryConsume() bool {
	if !c.Ready() {
		return false
	}
	c.Reset()
	return true
}

// Remaining returns the time left until Ready
func (c CooldownComponent) Remaining() time.Duration {
	if c.Ready() || c.Duration == 0 {
		return 0
	}
	return c.Duration - c.Elapsed
}

// Progress returns charge progress in [0, 1]
func (c CooldownComponent) Progress() float64 {
	if c.Duration == 0 {
		if c.Spent {
			return 0
		}
		return 1
	}
	return float64(c.Elapsed) / float64(c.Duration)
}
