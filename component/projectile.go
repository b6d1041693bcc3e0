package component

// BulletComponent marks a projectile
// Lasers are removed by lifetime only and follow the player's x
type BulletComponent struct {
	Friendly bool
	Damage   int
	Laser    bool

	// TrailInterval is the seconds between trail particles, zero disables
	TrailInterval float64
	TrailElapsed  float64
}

// LifetimeComponent removes the entity when Remaining reaches zero
type LifetimeComponent struct {
	Remaining float64
}
