// Command matchsim runs the matchmaking simulation.
//
// this binary:
//  1. loads config from environment variables (.env during dev)
//  2. builds the queue store and the match selector
//  3. replays a seeded stream of player arrivals through them
//  4. prints the end-of-run summary
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gbr98/matchmaking/cmd/matchsim/command"
	"github.com/gbr98/matchmaking/pkg/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config error")
	}

	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(lvl)
	}
	logger.Debug().Str("config", cfg.String()).Msg("loaded")

	root := &cobra.Command{Use: "matchsim", Short: "5v5 matchmaking simulator"}
	root.AddCommand(
		command.Simulate{Logger: logger}.Command(ctx, cfg),
	)

	if err := root.Execute(); err != nil {
		logger.Fatal().Err(err).Msg("command failed")
	}
}
