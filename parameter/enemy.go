package parameter

// Enemy spawn band
const (
	SpawnMarginX = 30.0
	SpawnMinY    = 140.0
	SpawnMaxY    = 180.0
)

// Movement state machine
const (
	// MovementPatternCount is the number of re-rollable movement patterns
	MovementPatternCount = 13

	MoveDistanceMin = 20
	MoveDistanceMax = 70

	// EdgeMargin is the distance inside the viewport edge that forces an inward pattern
	EdgeMargin = 20.0

	// EdgeOverrideDistance is the re-roll counter after an edge override
	EdgeOverrideDistance = 10

	// EnemyRemovalMargin is how far past bottom/sides an enemy is culled
	EnemyRemovalMargin = 30.0

	// EnemyBaseRate converts the stored speed factor to px/s
	EnemyBaseRate = 60.0

	EnemyTrailLength = 10
)

// Enemy fire, cooldowns counted in ticks
const (
	EnemyShootInitMin  = 20
	EnemyShootInitMax  = 120
	EnemyShootMin      = 20
	EnemyShootMax      = 180
	EnemyBulletSpeed   = 180.0
	EnemyBulletDamage  = 1
	EnemyMuzzleOffset  = 10.0
	EnemySingleOffsetX = 9.0
	EnemyBurstSpacing  = 8.0
)

// Wave spawner
const (
	// BurstCapWave is the wave index from which bursts reach their maximum size
	BurstCapWave = 2
	BurstMax     = 3
)

// Movement pattern tuning, phase steps are per tick
const (
	SineSlowRate   = 42.0
	SineSlowStep   = 0.1
	SineSlowAmp    = 1.5
	SineFastRate   = 72.0
	SineFastStep   = 0.25
	SineFastAmp    = 2.6
	HomingRate     = 0.6
	HomingDrift    = 0.8
	OrbitAngular   = 2.0
	OrbitDescent   = 20.0
	OrbitRadiusMin = 60.0
	OrbitRadiusMax = 120.0

	DashApproachMult  = 3.0
	DashApproachTime  = 0.5
	DashRetreatMult   = 2.0
	DashRetreatTime   = 0.8
	DashCooldownMin   = 0.3
	DashCooldownMax   = 0.8
	DashDriftStep     = 0.08
	DashDriftAmp      = 1.2
	DashDriftDescent  = 30.0
	DashDistanceFloor = 1.0

	FormationDescent = 35.0
	FormationStep    = 0.05
	FormationAmp     = 0.6
	WaveDescent      = 40.0
	WaveStep         = 0.06
	WaveAmp          = 0.5
	AnchorDescent    = 30.0
	AnchorAngular    = 1.5
	AnchorRadius     = 50.0
	AnchorOffsetDiv  = 100.0

	FormationOffsetX = 80.0
	FormationOffsetY = 60.0
)
