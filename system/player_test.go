package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/lixenwraith/void-raider/component"
	"github.com/lixenwraith/void-raider/core"
	"github.com/lixenwraith/void-raider/engine"
	"github.com/lixenwraith/void-raider/parameter"
	"github.com/lixenwraith/void-raider/vmath"
)

// TestPlayerSpawn verifies the initial ship state
func TestPlayerSpawn(t *testing.T) {
	h := newHarness("spawn", "enemy")
	pe := h.player()
	require.NotZero(t, pe)

	hp, ok := h.world.Components.Health.GetComponent(pe)
	require.True(t, ok)
	assert.Equal(t, parameter.PlayerMaxHealth, hp.Current)

	ch, ok := h.world.Components.Charge.GetComponent(pe)
	require.True(t, ok)
	assert.Equal(t, parameter.PlayerMaxCharge, ch.Current)

	assert.Equal(t, vmath.V2(0, parameter.PlayerSpawnY), h.playerPos())
	assert.Equal(t, 1, h.world.Components.Flame.CountEntities(), "player carries one engine flame")
}

// TestSpecialFullCharge fires the full tier from max charge
func TestSpecialFullCharge(t *testing.T) {
	h := newHarness("spawn", "enemy")

	in := h.hold()
	in.FireSecondary = true
	h.tick(in)

	w := h.world
	pe := h.player()

	friendly := 0
	for _, e := range w.Components.Bullet.GetAllEntities() {
		b, _ := w.Components.Bullet.GetComponent(e)
		if b.Friendly && !b.Laser {
			friendly++
		}
	}
	assert.Equal(t, parameter.SpecialMaxBullets, friendly)

	ch, _ := w.Components.Charge.GetComponent(pe)
	assert.Zero(t, ch.Current)

	pc, _ := w.Components.Player.GetComponent(pe)
	assert.InDelta(t, parameter.SpecialMaxCooldown, pc.Cooldowns.Special, 1e-9)

	assert.Equal(t, 1, h.audio.count(core.SoundSpecial))
	assert.Equal(t, parameter.SpecialMaxShake, w.Resources.Camera.Intensity)
}

// TestSpecialMinTier spends a fixed cost below max charge
func TestSpecialMinTier(t *testing.T) {
	h := newHarness("spawn", "enemy")
	pe := h.player()
	h.world.Components.Charge.SetComponent(pe, component.ChargeComponent{Current: 400, Max: parameter.PlayerMaxCharge})

	in := h.hold()
	in.FireSecondary = true
	h.tick(in)

	assert.Equal(t, parameter.SpecialMinBullets, h.world.Components.Bullet.CountEntities())
	ch, _ := h.world.Components.Charge.GetComponent(pe)
	refill := parameter.ChargeRefillRate * testTick.Seconds()
	assert.InDelta(t, 400+refill-parameter.SpecialMinCost, ch.Current, 1e-9)

	// Cooldown blocks the next volley
	h.tick(in)
	assert.Equal(t, parameter.SpecialMinBullets, h.world.Components.Bullet.CountEntities())
}

// TestSpecialInsufficientCharge does nothing below the minimum tier
func TestSpecialInsufficientCharge(t *testing.T) {
	h := newHarness("spawn", "enemy")
	pe := h.player()
	h.world.Components.Charge.SetComponent(pe, component.ChargeComponent{Current: 100, Max: parameter.PlayerMaxCharge})

	in := h.hold()
	in.FireSecondary = true
	h.tick(in)

	assert.Zero(t, h.world.Components.Bullet.CountEntities())
	assert.Zero(t, h.audio.count(core.SoundSpecial))
}

// TestPrimaryMissile fires a missile below the laser threshold
func TestPrimaryMissile(t *testing.T) {
	h := newHarness("spawn", "enemy")

	in := h.hold()
	in.FirePrimary = true
	h.tick(in)

	w := h.world
	require.Equal(t, 1, w.Components.Bullet.CountEntities())
	e := w.Components.Bullet.GetAllEntities()[0]
	b, _ := w.Components.Bullet.GetComponent(e)
	assert.True(t, b.Friendly)
	assert.False(t, b.Laser)

	kin, _ := w.Components.Kinetic.GetComponent(e)
	assert.Equal(t, vmath.V2(0, parameter.MissileSpeed), kin.Velocity)
	assert.Equal(t, 1, h.audio.count(core.SoundShoot))

	// Primary cooldown outlasts one tick
	h.tick(in)
	assert.Equal(t, 1, w.Components.Bullet.CountEntities())
}

// TestPrimaryLaser switches to the beam once score reaches the threshold
func TestPrimaryLaser(t *testing.T) {
	h := newHarness("spawn", "enemy")
	h.world.Resources.State.Score = parameter.LaserScoreThreshold

	in := h.hold()
	in.FirePrimary = true
	h.tick(in)

	w := h.world
	require.Equal(t, 1, w.Components.Bullet.CountEntities())
	e := w.Components.Bullet.GetAllEntities()[0]
	b, _ := w.Components.Bullet.GetComponent(e)
	assert.True(t, b.Laser)
	assert.Equal(t, parameter.LaserDamage, b.Damage)
	assert.Equal(t, 1, h.audio.count(core.SoundLaserSweep))

	// Beam tracks the ship horizontally
	in = h.hold()
	in.Cursor = vmath.V2(h.playerPos().X+10, h.playerPos().Y)
	h.tick(in)
	tr, _ := w.Components.Transform.GetComponent(e)
	assert.InDelta(t, h.playerPos().X, tr.Position.X, 1e-9)
}

// TestPlayerMovementCapped verifies speed cap and snap toward the cursor
func TestPlayerMovementCapped(t *testing.T) {
	h := newHarness("spawn", "enemy")
	start := h.playerPos()

	h.tick(engine.Input{Dt: testTick, Cursor: vmath.V2(start.X+200, start.Y)})
	step := parameter.PlayerSpeed * testTick.Seconds()
	assert.InDelta(t, start.X+step, h.playerPos().X, 1e-9)

	near := vmath.V2(h.playerPos().X+parameter.PlayerSnapRadius/2, start.Y)
	h.tick(engine.Input{Dt: testTick, Cursor: near})
	assert.Equal(t, near, h.playerPos())
}

// TestPlayerStaysInViewport clamps the ship against far cursor positions
func TestPlayerStaysInViewport(t *testing.T) {
	h := newHarness("spawn", "enemy")
	for i := 0; i < 200; i++ {
		h.tick(engine.Input{Dt: testTick, Cursor: vmath.V2(5000, 5000)})
	}

	col, _ := h.world.Components.Collider.GetComponent(h.player())
	half := h.world.Resources.Config.HalfViewport()
	pos := h.playerPos()
	assert.LessOrEqual(t, pos.X, half.X-col.Half.X)
	assert.LessOrEqual(t, pos.Y, half.Y-col.Half.Y)
}

// TestRegenAtFullCharge heals only while charge is full
func TestRegenAtFullCharge(t *testing.T) {
	h := newHarness("spawn", "enemy")
	pe := h.player()
	h.world.Components.Health.SetComponent(pe, component.HealthComponent{Current: 50, Max: parameter.PlayerMaxHealth})

	// One simulated second at full charge
	for i := 0; i < 4; i++ {
		h.tick(engine.Input{Dt: 250 * time.Millisecond, Cursor: h.playerPos()})
	}
	hp, _ := h.world.Components.Health.GetComponent(pe)
	assert.Equal(t, 53, hp.Current, "3.6 hp/s floors to 3 after one second")

	h.world.Components.Charge.SetComponent(pe, component.ChargeComponent{Current: 10, Max: parameter.PlayerMaxCharge})
	h.tick(engine.Input{Dt: 250 * time.Millisecond, Cursor: h.playerPos()})
	hp, _ = h.world.Components.Health.GetComponent(pe)
	assert.Equal(t, 53, hp.Current)
}

// TestResourcesStayInRange checks clamps under arbitrary starting state and stalls
func TestResourcesStayInRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		h := newHarness("spawn", "enemy")
		pe := h.player()
		charge := rapid.Float64Range(0, parameter.PlayerMaxCharge).Draw(rt, "charge")
		health := rapid.IntRange(1, parameter.PlayerMaxHealth).Draw(rt, "health")
		stall := time.Duration(rapid.Int64Range(0, int64(10*time.Second)).Draw(rt, "dt"))

		h.world.Components.Charge.SetComponent(pe, component.ChargeComponent{Current: charge, Max: parameter.PlayerMaxCharge})
		h.world.Components.Health.SetComponent(pe, component.HealthComponent{Current: health, Max: parameter.PlayerMaxHealth})

		in := engine.Input{Dt: stall, Cursor: h.playerPos(), FirePrimary: true, FireSecondary: true}
		h.game.Tick(in)

		ch, _ := h.world.Components.Charge.GetComponent(pe)
		hp, _ := h.world.Components.Health.GetComponent(pe)
		if ch.Current < 0 || ch.Current > ch.Max {
			rt.Fatalf("charge %v outside [0, %v]", ch.Current, ch.Max)
		}
		if hp.Current > hp.Max || hp.Current < health {
			rt.Fatalf("health %d outside [%d, %d]", hp.Current, health, hp.Max)
		}
		if h.world.Resources.Time.DeltaTime > parameter.MaxDeltaTime {
			rt.Fatalf("dt %v exceeds clamp", h.world.Resources.Time.DeltaTime)
		}
	})
}
