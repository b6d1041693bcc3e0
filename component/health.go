package component

// HealthComponent tracks hit points, Current never exceeds Max
type HealthComponent struct {
	Current int
	Max     int
}

// Damage subtracts amount and reports whether the entity crossed to zero or below
// Negative amounts are ignored
func (h *HealthComponent) Damage(amount int) bool {
	if amount > 0 {
		h.Current -= amount
	}
	return h.Current <= 0
}

// Heal adds amount clamped to Max
func (h *HealthComponent) Heal(amount int) {
	if amount <= 0 {
		return
	}
	h.Current = min(h.Current+amount, h.Max)
}

// Alive reports whether health is above zero
func (h HealthComponent) Alive() bool {
	return h.Current > 0
}
