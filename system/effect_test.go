package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/void-raider/component"
	"github.com/lixenwraith/void-raider/core"
	"github.com/lixenwraith/void-raider/engine"
	"github.com/lixenwraith/void-raider/parameter"
	"github.com/lixenwraith/void-raider/status"
	"github.com/lixenwraith/void-raider/visual"
	"github.com/lixenwraith/void-raider/vmath"
)

// TestParticlesExpire removes particles after their lifetime
func TestParticlesExpire(t *testing.T) {
	h := newHarness("spawn", "enemy")
	w := h.world
	e := spawnParticle(w, particleSpec{
		pos:   vmath.V2(0, 0),
		vel:   vmath.V2(100, 0),
		life:  0.1,
		size:  0.04,
		start: core.ColorWhite,
		end:   core.ColorTransparent,
	})

	h.tick(h.hold())
	tr, ok := w.Components.Transform.GetComponent(e)
	require.True(t, ok)
	assert.Greater(t, tr.Position.X, 0.0)
	assert.Less(t, tr.Scale.X, 0.04, "scale fades with age")
	assert.GreaterOrEqual(t, tr.Scale.X, 0.04*parameter.ParticleMinScale, "fade is relative to the base size")

	kin, _ := w.Components.Kinetic.GetComponent(e)
	assert.InDelta(t, 100*parameter.ParticleDamping, kin.Velocity.X, 1e-9)

	for i := 0; i < 10; i++ {
		h.tick(h.hold())
	}
	assert.False(t, w.Alive(e))
	_, visible := h.rec.Get(e)
	assert.False(t, visible)
}

// TestShakeRunsOut counts shake frames down to a reset camera
func TestShakeRunsOut(t *testing.T) {
	h := newHarness("spawn", "enemy")
	requestShake(h.world, 4, 3)
	h.tick(h.hold())

	cam := h.world.Resources.Camera
	assert.Equal(t, 4.0, cam.Intensity)
	assert.Equal(t, 3, cam.Frames)

	for i := 0; i < 3; i++ {
		h.tick(h.hold())
		assert.LessOrEqual(t, cam.Offset.X, 2.0)
	}
	h.tick(h.hold())
	assert.Zero(t, cam.Frames)
	assert.Equal(t, vmath.Vec2{}, cam.Offset)

	// A weaker pulse never shortens a stronger one
	cam.Pulse(5, 10)
	cam.Pulse(1, 2)
	assert.Equal(t, 5.0, cam.Intensity)
	assert.Equal(t, 10, cam.Frames)
}

// TestAmbientVisuals spawns the starfield and screen border once
func TestAmbientVisuals(t *testing.T) {
	h := newHarness("spawn", "enemy")
	assert.Equal(t, parameter.StarCount, h.rec.CountRole(visual.RoleStar))
	assert.Equal(t, 4, h.rec.CountRole(visual.RoleVignette))
	assert.Equal(t, 1, h.rec.CountRole(visual.RoleFlame))

	h.tick(h.hold())
	assert.Equal(t, parameter.StarCount, h.world.Components.Star.CountEntities())
}

// TestStarsWrap moves a star past the bottom back to the top
func TestStarsWrap(t *testing.T) {
	h := newHarness("spawn", "enemy")
	w := h.world
	half := w.Resources.Config.HalfViewport()
	e := w.Components.Star.GetAllEntities()[0]
	w.Components.Transform.Mutate(e, func(tr *component.TransformComponent) {
		tr.Position.Y = -half.Y + 0.01
	})
	h.tick(h.hold())

	tr, _ := w.Components.Transform.GetComponent(e)
	assert.Equal(t, half.Y, tr.Position.Y)
}

// TestTrailGradient grows segments that brighten toward the head
func TestTrailGradient(t *testing.T) {
	h := newHarness("spawn", "enemy")
	for i := 0; i < 20; i++ {
		p := h.playerPos()
		h.tick(engine.Input{Dt: testTick, Cursor: vmath.V2(p.X+3, p.Y)})
	}

	tc, ok := h.world.Components.Trail.GetComponent(h.player())
	require.True(t, ok)
	assert.Len(t, tc.Points, parameter.PlayerTrailLength)
	require.NotEmpty(t, tc.Segments)

	first, last := tc.Segments[0], tc.Segments[len(tc.Segments)-1]
	assert.Less(t, first.Color.A, last.Color.A)
	assert.Less(t, first.Scale, last.Scale)

	f := h.game.Frame()
	assert.NotEmpty(t, f.Trails)
}

// TestStationaryTrailHasNoSegments skips degenerate segments
func TestStationaryTrailHasNoSegments(t *testing.T) {
	h := newHarness("spawn", "enemy")
	for i := 0; i < 5; i++ {
		h.tick(h.hold())
	}
	tc, _ := h.world.Components.Trail.GetComponent(h.player())
	assert.Empty(t, tc.Segments)
}

// TestFlameFollowsShip keeps the glow under the hull and drops it with the owner
func TestFlameFollowsShip(t *testing.T) {
	h := newHarness("spawn", "enemy")
	w := h.world
	h.tick(engine.Input{Dt: testTick, Cursor: vmath.V2(50, -100)})

	fe := w.Components.Flame.GetAllEntities()[0]
	ftr, _ := w.Components.Transform.GetComponent(fe)
	ptr, _ := w.Components.Transform.GetComponent(h.player())
	assert.Equal(t, flamePosition(ptr.Position, ptr.Scale), ftr.Position)

	w.DestroyEntity(h.player())
	h.tick(engine.Input{Dt: testTick})
	assert.Zero(t, w.Components.Flame.CountEntities())
}

// TestStatusBoardPublishes mirrors HUD values into the status registry
func TestStatusBoardPublishes(t *testing.T) {
	h := newHarness("spawn", "enemy")
	h.world.Resources.State.Score = 42
	h.tick(h.hold())

	board := status.NewBoard(h.world.Resources.Status)
	assert.Equal(t, int64(42), board.Score.Load())
	assert.True(t, board.Alive.Load())
	assert.Equal(t, int64(parameter.PlayerMaxHealth), board.Health.Load())
	assert.Equal(t, parameter.PlayerMaxCharge, board.ChargeMax.Get())
	assert.Equal(t, "running", board.Phase.Load())
	assert.Equal(t, h.game.MatchID().String(), board.Match.Load())

	hud := h.game.HUD()
	assert.Equal(t, 42, hud.Score)
	assert.True(t, hud.PlayerAlive)
}

// TestMutedAudioDiscards drops requests while muted
func TestMutedAudioDiscards(t *testing.T) {
	h := newHarness("spawn", "enemy")

	in := h.hold()
	in.Muted = true
	in.FirePrimary = true
	h.tick(in)

	assert.True(t, h.audio.IsMuted())
	assert.Zero(t, h.audio.count(core.SoundShoot))
	assert.Equal(t, 1, h.world.Components.Bullet.CountEntities(), "gameplay is unaffected by mute")
}

// TestSystemToggle stops a disabled system from updating
func TestSystemToggle(t *testing.T) {
	h := newHarness("spawn", "enemy", "player")

	in := h.hold()
	in.FirePrimary = true
	h.tick(in)
	assert.Zero(t, h.world.Components.Bullet.CountEntities())

	h.game.SetSystemEnabled("player", true)
	h.tick(in)
	assert.Equal(t, 1, h.world.Components.Bullet.CountEntities())
}

// TestRestartResetsMatch rebuilds the world for a fresh match
func TestRestartResetsMatch(t *testing.T) {
	h := newHarness("spawn", "enemy")
	first := h.game.MatchID()
	h.world.Resources.State.Score = 300
	old := h.player()

	h.game.Restart()

	assert.NotEqual(t, first, h.game.MatchID())
	assert.Zero(t, h.world.Resources.State.Score)
	assert.NotZero(t, h.player())
	assert.NotEqual(t, old, h.player(), "entity ids are never reused")
	assert.Equal(t, parameter.StarCount, h.world.Components.Star.CountEntities())
	assert.Equal(t, 4, h.world.Components.Border.CountEntities())
	assert.Equal(t, parameter.StarCount, h.rec.CountRole(visual.RoleStar))
}
