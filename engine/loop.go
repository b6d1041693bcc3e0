package engine

import (
	"context"
	"sync/atomic"
	"time"
)

// InputSource samples host input once per tick
type InputSource interface {
	Sample(dt time.Duration) Input
}

// Presenter receives the render snapshot after each tick
type Presenter interface {
	Present(f Frame)
}

// InputFunc adapts a function to InputSource
type InputFunc func(dt time.Duration) Input

func (f InputFunc) Sample(dt time.Duration) Input { return f(dt) }

// PresenterFunc adapts a function to Presenter
type PresenterFunc func(f Frame)

func (f PresenterFunc) Present(fr Frame) { f(fr) }

// Loop drives a Game at a fixed tick rate
// Deadlines advance by a fixed interval for drift correction; if the loop
// falls more than two intervals behind it resynchronizes instead of bursting
type Loop struct {
	game     *Game
	interval time.Duration
	input    InputSource
	output   Presenter
	now      func() time.Time

	ticks atomic.Uint64
}

// NewLoop creates a loop, output may be nil
func NewLoop(game *Game, interval time.Duration, input InputSource, output Presenter) *Loop {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &Loop{
		game:     game,
		interval: interval,
		input:    input,
		output:   output,
		now:      time.Now,
	}
}

// Ticks returns the number of ticks run
func (l *Loop) Ticks() uint64 {
	return l.ticks.Load()
}

// Run blocks until ctx is cancelled
func (l *Loop) Run(ctx context.Context) error {
	last := l.now()
	deadline := last.Add(l.interval)

	timer := time.NewTimer(l.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		now := l.now()
		l.step(now.Sub(last))
		last = now

		deadline = deadline.Add(l.interval)
		if now.Sub(deadline) > 2*l.interval {
			deadline = now.Add(l.interval)
		}
		timer.Reset(max(deadline.Sub(l.now()), 0))
	}
}

// step runs one tick with the measured elapsed time
func (l *Loop) step(dt time.Duration) {
	in := l.input.Sample(dt)
	in.Dt = dt
	l.game.Tick(in)
	l.ticks.Add(1)
	if l.output != nil {
		l.output.Present(l.game.Frame())
	}
}
