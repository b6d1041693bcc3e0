package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityPlayer    = 10 // Control: input, regen, fire
	PrioritySpawn     = 20 // Control: wave schedule
	PriorityEnemy     = 30 // Control: movement state machine, enemy fire
	PriorityBullet    = 100
	PriorityCollision = 200
	PriorityEffect    = 300 // Particles, flashes, vignette, shake
	PriorityTrail     = 310
	PriorityFlame     = 320
	PriorityStarfield = 330
	PriorityAudio     = 900
	PriorityStatus    = 1000 // After all others, HUD publication
)
