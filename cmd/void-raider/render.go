package main

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/void-raider/core"
	"github.com/lixenwraith/void-raider/engine"
	"github.com/lixenwraith/void-raider/visual"
	"github.com/lixenwraith/void-raider/vmath"
)

// viewport maps between world pixels (origin at center, Y up) and terminal cells
type viewport struct {
	mu     sync.RWMutex
	world  vmath.Vec2
	cols   int
	rows   int
	hudRow int
}

func newViewport(world vmath.Vec2) *viewport {
	return &viewport{world: world, cols: 1, rows: 1, hudRow: 1}
}

func (v *viewport) resize(cols, rows int) {
	v.mu.Lock()
	v.cols = max(cols, 1)
	v.rows = max(rows-v.hudRow, 1)
	v.mu.Unlock()
}

// cellToWorld returns the world position at the center of a cell
func (v *viewport) cellToWorld(x, y int) vmath.Vec2 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	fx := (float64(x) + 0.5) / float64(v.cols)
	fy := (float64(y-v.hudRow) + 0.5) / float64(v.rows)
	return vmath.V2(fx*v.world.X-v.world.X/2, v.world.Y/2-fy*v.world.Y)
}

// worldToCell returns the cell holding p, ok is false off screen
func (v *viewport) worldToCell(p vmath.Vec2) (x, y int, ok bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	fx := (p.X + v.world.X/2) / v.world.X
	fy := (v.world.Y/2 - p.Y) / v.world.Y
	if fx < 0 || fx >= 1 || fy < 0 || fy >= 1 {
		return 0, 0, false
	}
	return int(fx * float64(v.cols)), int(fy*float64(v.rows)) + v.hudRow, true
}

var roleGlyphs = map[visual.Role]rune{
	visual.RoleShip:     '▲',
	visual.RoleBullet:   '•',
	visual.RoleLaser:    '┃',
	visual.RoleParticle: '·',
	visual.RoleFlame:    '^',
	visual.RoleFlash:    '*',
	visual.RoleStar:     '.',
}

// drawOrder layers background first
var drawOrder = []visual.Role{
	visual.RoleStar,
	visual.RoleParticle,
	visual.RoleFlame,
	visual.RoleBullet,
	visual.RoleLaser,
	visual.RoleShip,
	visual.RoleFlash,
}

func tcellColor(c core.Color) tcell.Color {
	rgb := c.RGB()
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// renderer draws frames as colored glyphs
type renderer struct {
	screen tcell.Screen
	view   *viewport
}

// Present implements engine.Presenter
func (r *renderer) Present(f engine.Frame) {
	s := r.screen
	s.Clear()

	byRole := make(map[visual.Role][]visual.Instance, len(drawOrder))
	for _, inst := range f.Instances {
		byRole[inst.Role] = append(byRole[inst.Role], inst)
	}

	for _, trail := range f.Trails {
		for _, seg := range trail {
			r.plot(vmath.V2Add(seg.Position, f.Shake), '·', seg.Color)
		}
	}
	for _, role := range drawOrder {
		glyph := roleGlyphs[role]
		for _, inst := range byRole[role] {
			r.plot(vmath.V2Add(inst.Position, f.Shake), glyph, inst.Color)
		}
	}

	r.drawHUD(f.HUD, len(byRole[visual.RoleTint]) > 0)
	s.Show()
}

func (r *renderer) plot(p vmath.Vec2, glyph rune, c core.Color) {
	x, y, ok := r.view.worldToCell(p)
	if !ok || c.A <= 0 {
		return
	}
	r.screen.SetContent(x, y, glyph, nil, tcell.StyleDefault.Foreground(tcellColor(c)))
}

func (r *renderer) drawHUD(h engine.HUD, damaged bool) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	if damaged {
		style = style.Foreground(tcell.ColorRed)
	}
	line := hudLine(h)
	for i, ch := range []rune(line) {
		r.screen.SetContent(i, 0, ch, nil, style)
	}

	if h.Phase == core.PhaseGameOver {
		cols, rows := r.screen.Size()
		msg := "GAME OVER - click to restart"
		x := max((cols-len(msg))/2, 0)
		for i, ch := range msg {
			r.screen.SetContent(x+i, rows/2, ch, nil, tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
		}
	}
}

func hudLine(h engine.HUD) string {
	charge := 0.0
	if h.MaxCharge > 0 {
		charge = h.Charge / h.MaxCharge * 100
	}
	line := fmt.Sprintf("SCORE %d  WAVE %d  HP %d/%d  CHARGE %3.0f%%  ENEMIES %d",
		h.Score, h.Wave+1, h.Health, h.MaxHealth, charge, h.Enemies)
	if h.Muted {
		line += "  [muted]"
	}
	if h.Phase == core.PhasePaused {
		line += "  [paused]"
	}
	return line
}
