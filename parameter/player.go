package parameter

// Player resources
const (
	PlayerMaxHealth = 100

	// PlayerMaxCharge is the special ability resource cap
	PlayerMaxCharge = 1000.0

	// ChargeRefillRate is charge gained per second
	ChargeRefillRate = 18.0

	// HealthRegenRate is health per second once charge is full
	HealthRegenRate = 3.6
)

// Player movement
const (
	PlayerSize       = 16.0
	PlayerSpeed      = 300.0 // px/s toward cursor
	PlayerSnapRadius = 20.0
	PlayerSpawnY     = -160.0

	// PlayerTrailLength is the number of retained trail points
	PlayerTrailLength = 15

	// PlayerSparkSpeed is the movement speed above which trail sparks are emitted
	PlayerSparkSpeed = 30.0
)

// Primary fire
const (
	PrimaryCooldown = 0.08
	PrimaryCost     = 1.0

	// LaserScoreThreshold switches primary fire from missile to beam
	LaserScoreThreshold = 500

	MissileSpeed          = 500.0
	MissileDamage         = 1
	MissileTrailInterval  = 0.045
	MissileSpawnOffsetY   = -5.0
	ShootPitchScoreCap    = 2000.0
	ShootPitchPerScore    = 0.0003
	ShootPitchJitter      = 0.05
	LaserDamage           = 2
	LaserLifetime         = 0.8
	LaserRiseSpeed        = 700.0
	LaserSpawnOffsetY     = -2.0
	LaserMuzzleParticles  = 10
	LaserSweepStartFreq   = 500.0
	LaserSweepBaseFreq    = 1000.0
	LaserSweepPerScore    = 0.2
	LaserSweepScoreCap    = 3000.0
	LaserSweepMaxFreq     = 2200.0
	LaserSweepDurationSec = 0.18
)

// Special fire
const (
	SpecialMaxBullets  = 104
	SpecialMaxSpeed    = 600.0
	SpecialMaxCooldown = 0.6
	SpecialMaxShake    = 6.0
	SpecialMaxShakeFr  = 50

	SpecialMinCharge   = 150.0
	SpecialMinCost     = 50.0
	SpecialMinBullets  = 32
	SpecialMinSpeed    = 400.0
	SpecialMinCooldown = 0.25

	SpecialBulletDamage = 1
)

// Player ship visual
const (
	PlayerShipSeed = 12345

	// Engine glow sits below the hull at this fraction of the half height
	FlameOffsetY = 0.6
	FlameWidth   = 0.8
	FlameHalfW   = 0.5
	FlameHalfH   = 0.15
)
