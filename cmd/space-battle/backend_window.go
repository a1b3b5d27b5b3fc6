//go:build window

package main

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/itwt/space-battle/config"
	"github.com/itwt/space-battle/engine"
	"github.com/itwt/space-battle/window"
)

// runWindow opens a desktop window; ebiten paces the loop at the configured TPS
func runWindow(ctx context.Context, cfg *config.Config, world *engine.World, opts engine.LoopOptions, logger zerolog.Logger) error {
	backend := window.New(window.Options{
		Width:  cfg.Display.Width,
		Height: cfg.Display.Height,
		FPS:    cfg.Display.FPS,
	}, logger)

	loop := engine.NewLoop(world, backend, backend, opts)
	stop := context.AfterFunc(ctx, loop.Stop)
	defer stop()

	return backend.Run(loop)
}
