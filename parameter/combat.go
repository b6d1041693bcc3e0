package parameter

// Score by enemy kind
const (
	PointsBasic   = 5
	PointsMeteor  = 1
	PointsSpecial = 20
)

// Ramming
const (
	RamEnemyDamage  = 3
	RamPlayerDamage = 5
)

// Bullets
const (
	BulletWidth  = 4.0
	BulletHeight = 4.0
	LaserWidth   = 2.0
	LaserHeight  = 50.0

	// BulletBoundsMargin expands the viewport for bullet removal
	BulletBoundsMargin = 10.0
)

// Shake pulses: intensity in px, duration in frames
const (
	ShakeKill          = 1.5
	ShakeKillFrames    = 8
	ShakeSpecial       = 3.0
	ShakeSpecialFrames = 24
	ShakeRam           = 3.0
	ShakeRamFrames     = 12
	ShakeHit           = 2.0
	ShakeHitFrames     = 10
)

// Overlay effects
const (
	FlashDuration     = 0.08
	VignetteDuration  = 0.6
	VignetteIntensity = 0.5
)
