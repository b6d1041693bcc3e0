package component

// ChargeComponent is the player's ability resource, always within [0, Max]
type ChargeComponent struct {
	Current float64
	Max     float64
}

// Add increases charge clamped to [0, Max]
func (c *ChargeComponent) Add(amount float64) {
	c.Current += amount
	if c.Current > c.Max {
		c.Current = c.Max
	}
	if c.Current < 0 {
		c.Current = 0
	}
}

// Spend deducts cost if available
func (c *ChargeComponent) Spend(cost float64) bool {
	if c.Current < cost {
		return false
	}
	c.Current -= cost
	return true
}

// Full reports whether charge is at max
func (c ChargeComponent) Full() bool {
	return c.Current >= c.Max
}

// Fraction returns Current/Max, zero when Max is zero
func (c ChargeComponent) Fraction() float64 {
	if c.Max <= 0 {
		return 0
	}
	return c.Current / c.Max
}
