package engine

import (
	"github.com/lixenwraith/void-raider/core"
	"github.com/lixenwraith/void-raider/visual"
	"github.com/lixenwraith/void-raider/vmath"
)

// HUD is the read-only state an external UI renders
type HUD struct {
	Score       int
	Wave        int
	Health      int
	MaxHealth   int
	Charge      float64
	MaxCharge   float64
	Enemies     int
	PlayerAlive bool
	Muted       bool
	Phase       core.GamePhase
	Frame       int64
	MatchID     string
}

// Frame is a render snapshot taken after a tick
type Frame struct {
	HUD       HUD
	Shake     vmath.Vec2
	Instances []visual.Instance
	Trails    [][]visual.Segment
}

// hudLocked builds the HUD, caller holds the update lock
func (g *Game) hudLocked() HUD {
	w := g.world
	res := w.Resources
	h := HUD{
		Score:   res.State.Score,
		Wave:    res.State.Wave,
		Enemies: w.Components.Enemy.CountEntities(),
		Muted:   res.State.Muted,
		Phase:   res.State.Phase,
		Frame:   res.Time.FrameNumber,
		MatchID: g.matchID.String(),
	}
	if pe, ok := w.PlayerEntity(); ok {
		h.PlayerAlive = true
		if hp, ok := w.Components.Health.GetComponent(pe); ok {
			h.Health, h.MaxHealth = hp.Current, hp.Max
		}
		if ch, ok := w.Components.Charge.GetComponent(pe); ok {
			h.Charge, h.MaxCharge = ch.Current, ch.Max
		}
	}
	return h
}

// frameLocked collects visual instances and trails, caller holds the update lock
func (g *Game) frameLocked() Frame {
	w := g.world
	f := Frame{
		HUD:   g.hudLocked(),
		Shake: w.Resources.Camera.Offset,
	}

	entities := w.Components.Visual.GetAllEntities()
	f.Instances = make([]visual.Instance, 0, len(entities))
	for _, e := range entities {
		vis, ok := w.Components.Visual.GetComponent(e)
		if !ok {
			continue
		}
		tr, ok := w.Components.Transform.GetComponent(e)
		if !ok {
			continue
		}
		f.Instances = append(f.Instances, visual.Instance{
			Entity:   e,
			Role:     vis.Role,
			Shape:    vis.Shape,
			Position: tr.Position,
			Rotation: tr.Rotation,
			Scale:    tr.Scale,
			Color:    vis.Color,
		})
	}

	for _, e := range w.Components.Trail.GetAllEntities() {
		if t, ok := w.Components.Trail.GetComponent(e); ok && len(t.Segments) > 0 {
			segs := make([]visual.Segment, len(t.Segments))
			copy(segs, t.Segments)
			f.Trails = append(f.Trails, segs)
		}
	}
	return f
}
