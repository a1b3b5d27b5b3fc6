//go:build !window

package main

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/itwt/space-battle/config"
	"github.com/itwt/space-battle/engine"
)

func runWindow(context.Context, *config.Config, *engine.World, engine.LoopOptions, zerolog.Logger) error {
	return errors.New("window backend not built in; rebuild with -tags window")
}
