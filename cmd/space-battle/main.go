package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/itwt/space-battle/config"
	"github.com/itwt/space-battle/engine"
	"github.com/itwt/space-battle/logging"
	"github.com/itwt/space-battle/parameter"
	"github.com/itwt/space-battle/status"
	"github.com/itwt/space-battle/terminal"
)

var (
	configPath = pflag.String("config", "space-battle.toml", "Path to TOML config file; missing file uses defaults")
	debugFlag  = pflag.Bool("debug", false, "Enable debug logging to the log file")
	_          = pflag.String("backend", parameter.DefaultBackend, "Display backend: terminal, window")
	_          = pflag.Int64("seed", 0, "Terrain seed; 0 picks one from the clock")
	_          = pflag.Int("fps", parameter.TargetFPS, "Target frames per second")
)

func main() {
	pflag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "space-battle: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configPath, pflag.CommandLine)
	if err != nil {
		return err
	}

	logger, closer, err := logging.Setup(cfg.Log, *debugFlag)
	if err != nil {
		return err
	}
	defer closer.Close()

	seed := cfg.World.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info().
		Str("backend", cfg.Display.Backend).
		Int64("seed", seed).
		Int("fps", cfg.Display.FPS).
		Msg("match starting")

	controls, err := cfg.ControlBindings()
	if err != nil {
		return err
	}

	world := engine.NewWorld(cfg, rand.New(rand.NewSource(seed)))
	stats := status.NewRegistry()
	opts := engine.LoopOptions{
		Controls: controls,
		FPS:      cfg.Display.FPS,
		Stats:    stats,
		Logger:   logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Display.Backend {
	case config.BackendWindow:
		err = runWindow(ctx, cfg, world, opts, logger)
	default:
		err = runTerminal(ctx, cfg, world, opts, logger)
	}
	if err != nil {
		logger.Error().Err(err).Msg("match aborted")
		return err
	}

	logger.Info().Fields(stats.Snapshot()).Msg("match finished")
	return nil
}

// runTerminal plays in the current terminal until quit, restoring it on exit or panic
func runTerminal(ctx context.Context, cfg *config.Config, world *engine.World, opts engine.LoopOptions, logger zerolog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}

	backend, err := terminal.New(screen, terminal.Options{
		Width:       float64(cfg.Display.Width),
		Height:      float64(cfg.Display.Height),
		InitialHold: cfg.Input.InitialHold,
		RepeatHold:  cfg.Input.RepeatHold,
	}, logger)
	if err != nil {
		return err
	}
	defer backend.Close()

	// Panic Recovery: restore the terminal before reporting so the trace is readable
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			_ = backend.Close()
			logger.Error().Interface("panic", r).Bytes("stack", stack).Msg("crashed")
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSPACE-BATTLE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", stack)
			os.Exit(1)
		}
	}()

	loop := engine.NewLoop(world, backend, backend, opts)
	return loop.Run(ctx)
}
