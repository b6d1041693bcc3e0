package parameter

// Particle integration
const (
	// ParticleDamping multiplies particle velocity each tick
	ParticleDamping = 0.96

	ParticleMinScale  = 0.1
	ParticleScaleFade = 0.8
	ParticleAlpha     = 0.9
)

// Generic burst
const (
	BurstLifeMin   = 0.35
	BurstLifeMax   = 0.65
	BurstSpin      = 6.0
	BurstIntensity = 1.2
)

// Destruction burst (core + sparks)
const (
	DestructCoreCount    = 25
	DestructCoreSpeedMin = 180.0
	DestructCoreSpeedMax = 320.0
	DestructCoreSizeMin  = 0.04
	DestructCoreSizeMax  = 0.08
	DestructCoreLifeMin  = 0.5
	DestructCoreLifeMax  = 0.8
	DestructCoreSpin     = 8.0

	DestructSparkCount    = 20
	DestructSparkSpeedMin = 300.0
	DestructSparkSpeedMax = 450.0
	DestructSparkSizeMin  = 0.015
	DestructSparkSizeMax  = 0.03
	DestructSparkLifeMin  = 0.2
	DestructSparkLifeMax  = 0.4
	DestructSparkSpin     = 12.0
)

// Impact bursts
const (
	ImpactCount    = 12
	ImpactSpeedMin = 80.0
	ImpactSpeedMax = 180.0
	ImpactSizeMin  = 0.015
	ImpactSizeMax  = 0.035
	ImpactLifeMin  = 0.15
	ImpactLifeMax  = 0.35

	RamBurstCount    = 24
	RamBurstSpeedMin = 120.0
	RamBurstSpeedMax = 200.0
	RamBurstSizeMin  = 0.02
	RamBurstSizeMax  = 0.05

	MuzzleSpeedMin = 80.0
	MuzzleSpeedMax = 180.0
	MuzzleSizeMin  = 0.02
	MuzzleSizeMax  = 0.06

	MissileTrailSpeedMin = 30.0
	MissileTrailSpeedMax = 90.0
	MissileTrailSizeMin  = 0.008
	MissileTrailSizeMax  = 0.02

	SparkCount    = 2
	SparkSpeedMin = 20.0
	SparkSpeedMax = 60.0
	SparkSizeMin  = 0.01
	SparkSizeMax  = 0.025
)

// Trails
const (
	TrailAlpha     = 0.6
	TrailScaleBase = 0.3
	TrailScaleGain = 0.7
)
