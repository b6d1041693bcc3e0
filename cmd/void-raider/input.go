package main

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/void-raider/engine"
	"github.com/lixenwraith/void-raider/vmath"
)

// inputState accumulates terminal events between ticks
// Pause and restart are edges consumed by the next Sample; mute is latched
type inputState struct {
	mu   sync.Mutex
	view *viewport

	cursor    vmath.Vec2
	primary   bool
	secondary bool
	held      tcell.ButtonMask
	muted     bool
	pause     bool
	restart   bool
}

func newInputState(view *viewport, muted bool) *inputState {
	return &inputState{view: view, muted: muted}
}

// Sample implements engine.InputSource
func (s *inputState) Sample(dt time.Duration) engine.Input {
	s.mu.Lock()
	defer s.mu.Unlock()

	in := engine.Input{
		Dt:            dt,
		Cursor:        s.cursor,
		FirePrimary:   s.primary,
		FireSecondary: s.secondary,
		Muted:         s.muted,
		TogglePause:   s.pause,
		Restart:       s.restart,
	}
	s.pause = false
	s.restart = false
	return in
}

// handleMouse tracks the pointer and held buttons
// Only a press from all-released requests a restart, dragging with a held button does not
func (s *inputState) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons() & (tcell.Button1 | tcell.Button2 | tcell.Button3)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cursor = s.view.cellToWorld(x, y)
	s.primary = buttons&tcell.Button1 != 0
	s.secondary = buttons&(tcell.Button2|tcell.Button3) != 0
	if buttons != 0 && s.held == 0 {
		s.restart = true
	}
	s.held = buttons
}

// handleKey applies a key press, returns false when the host should quit
func (s *inputState) handleKey(ev *tcell.EventKey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case 'p', 'P':
			s.pause = true
		case 'm', 'M':
			s.muted = !s.muted
		case ' ':
			s.secondary = true
		case 'r', 'R':
			s.restart = true
		}
	}
	return true
}

// releaseKeys clears keyboard-held fire, terminals report no key-up
func (s *inputState) releaseKeys() {
	s.mu.Lock()
	s.secondary = false
	s.mu.Unlock()
}
