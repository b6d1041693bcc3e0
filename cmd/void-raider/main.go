package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/void-raider/audio"
	"github.com/lixenwraith/void-raider/config"
	"github.com/lixenwraith/void-raider/core"
	"github.com/lixenwraith/void-raider/engine"
	"github.com/lixenwraith/void-raider/logging"
	"github.com/lixenwraith/void-raider/manifest"
	"github.com/lixenwraith/void-raider/visual"
)

const logFileName = "void-raider.log"

var errQuit = errors.New("quit requested")

var configFlag = flag.String("config", "", "Path to a config file (json, yaml or toml)")

func main() {
	flag.Parse()

	if err := run(*configFlag); err != nil {
		fmt.Fprintf(os.Stderr, "void-raider: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logFile, err := openLog(cfg.LogsDir)
	if err != nil {
		return err
	}
	defer logFile.Close()
	log := logging.New(cfg.LogLevel, logFile)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	core.SetCrashHook(screen.Fini)
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	sound, err := audio.NewEngine(cfg.AudioEngineConfig(), audio.EngineOptions{Logger: log, Seed: seed})
	if err != nil {
		return fmt.Errorf("creating audio engine: %w", err)
	}
	if err := sound.Start(); err != nil {
		return fmt.Errorf("starting audio engine: %w", err)
	}
	defer sound.Stop()

	game := engine.NewGame(engine.Options{
		Seed:       seed,
		Viewport:   cfg.Viewport(),
		Sink:       visual.NopSink{},
		Audio:      sound,
		Logger:     log,
		Waves:      cfg.Waves,
		BurstSpawn: cfg.Spawn.Burst,
	})
	manifest.RegisterSystems()
	if err := manifest.Install(game); err != nil {
		return err
	}

	view := newViewport(cfg.Viewport())
	view.resize(screen.Size())
	input := newInputState(view, cfg.Audio.Muted)
	loop := engine.NewLoop(game, cfg.TickInterval(), input, &renderer{screen: screen, view: view})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(guard(func() error { return loop.Run(ctx) }))
	g.Go(guard(func() error { return pollEvents(ctx, screen, view, input) }))
	g.Go(func() error {
		<-ctx.Done()
		screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})

	err = g.Wait()
	stats := sound.Stats()
	log.Info().
		Uint64("ticks", loop.Ticks()).
		Uint64("sounds_played", stats.Played).
		Uint64("sounds_dropped", stats.Dropped).
		Int("score", game.HUD().Score).
		Msg("shutdown")

	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// pollEvents feeds terminal events into the input state until quit or cancellation
func pollEvents(ctx context.Context, screen tcell.Screen, view *viewport, input *inputState) error {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return errQuit
		}
		switch ev := ev.(type) {
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return ctx.Err()
			}
		case *tcell.EventResize:
			view.resize(ev.Size())
			screen.Sync()
		case *tcell.EventMouse:
			input.handleMouse(ev)
		case *tcell.EventKey:
			if !input.handleKey(ev) {
				return errQuit
			}
			if ev.Key() == tcell.KeyRune && ev.Rune() == ' ' {
				time.AfterFunc(150*time.Millisecond, input.releaseKeys)
			}
		}
	}
}

// guard recovers panics in errgroup goroutines through the crash handler
func guard(fn func() error) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				core.HandleCrash(r)
			}
		}()
		return fn()
	}
}

// openLog creates the logs directory and opens the session log for append
func openLog(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating logs dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}
