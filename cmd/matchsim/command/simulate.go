package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gbr98/matchmaking/internal/domain/events"
	"github.com/gbr98/matchmaking/internal/matchmaking"
	"github.com/gbr98/matchmaking/internal/queue"
	"github.com/gbr98/matchmaking/internal/sim"
	"github.com/gbr98/matchmaking/pkg/config"
)

type Simulate struct {
	Logger zerolog.Logger
}

func (cmd Simulate) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	c := &cobra.Command{
		Use:   "simulate",
		Short: "replay a seeded stream of player arrivals through the matchmaker",
		RunE: func(cc *cobra.Command, _ []string) error {
			return cmd.run(ctx, cfg)
		},
	}

	c.Flags().IntVar(&cfg.SimPlayers, "players", cfg.SimPlayers, "number of players to simulate")
	c.Flags().Float64Var(&cfg.SimMaxTime, "max-time", cfg.SimMaxTime, "simulated time span in seconds")
	c.Flags().IntVar(&cfg.MaxEloDistance, "max-elo-distance", cfg.MaxEloDistance, "widest rating span allowed in a match")
	c.Flags().Int64Var(&cfg.SimSeed, "seed", cfg.SimSeed, "random seed")

	return c
}

func (cmd Simulate) run(ctx context.Context, cfg *config.Config) error {
	store := queue.NewStore()
	selector, err := matchmaking.NewSelector(store, cfg.MaxEloDistance, cmd.Logger)
	if err != nil {
		return errors.Wrap(err, "simulate: bad selector config")
	}

	// match announcements, decoupled from the selector via the bus
	cancel := events.Subscribe(func(ev events.MatchCreated) {
		cmd.Logger.Info().
			Int("match_seq", ev.Seq).
			Float64("balance_score", ev.BalanceScore).
			Str("team_a", rosterOf(ev.TeamA)).
			Str("team_b", rosterOf(ev.TeamB)).
			Msg("match announced")
	})
	defer cancel()

	cmd.Logger.Info().
		Int("players", cfg.SimPlayers).
		Float64("max_time", cfg.SimMaxTime).
		Int("max_elo_distance", cfg.MaxEloDistance).
		Int64("seed", cfg.SimSeed).
		Msg("simulation start")

	arrivals := sim.GenerateArrivals(cfg.SimPlayers, cfg.SimMaxTime, cfg.SimSeed)

	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "simulate: interrupted")
	}
	summary := sim.NewRunner(store, selector, cmd.Logger).Run(arrivals)

	cmd.Logger.Info().
		Int("total_players", summary.TotalPlayers).
		Int("matches_created", summary.MatchesCreated).
		Int("players_matched", summary.PlayersMatched).
		Int("still_queued", summary.StillQueued).
		Float64("final_time", summary.FinalTime).
		Msg("simulation summary")
	return nil
}

// rosterOf renders a team as "id:rating(form)" entries for the log line.
func rosterOf(team []queue.Player) string {
	parts := make([]string, len(team))
	for i, p := range team {
		parts[i] = fmt.Sprintf("%d:%d(%+d)", p.ID, p.Rating, p.Form)
	}
	return strings.Join(parts, " ")
}
