package sim

import (
	"github.com/rs/zerolog"

	"github.com/gbr98/matchmaking/internal/domain/events"
	"github.com/gbr98/matchmaking/internal/matchmaking"
	"github.com/gbr98/matchmaking/internal/queue"
)

// Summary mirrors the end-of-run report: how many players arrived, how
// many matches formed, and who is still waiting.
type Summary struct {
	TotalPlayers   int
	MatchesCreated int
	PlayersMatched int
	StillQueued    int
	FinalTime      float64
}

// Runner feeds arrivals into the queue and triggers one selection
// attempt per arrival, the same cadence the live system would use.
type Runner struct {
	store    *queue.Store
	selector *matchmaking.Selector
	log      zerolog.Logger
	clock    float64
}

func NewRunner(store *queue.Store, selector *matchmaking.Selector, log zerolog.Logger) *Runner {
	return &Runner{store: store, selector: selector, log: log}
}

// Run processes every arrival in order and returns the final summary.
func (r *Runner) Run(arrivals []Arrival) Summary {
	for _, a := range arrivals {
		r.clock = a.Time
		p := r.store.Insert(a.Rating, a.Form, a.Time)
		r.log.Debug().
			Int("player_id", p.ID).
			Int("rating", p.Rating).
			Int("form", p.Form).
			Float64("time", a.Time).
			Int("queue_size", r.store.Size()).
			Msg("player queued")
		events.Publish(events.PlayerQueued{Player: p, QueueSize: r.store.Size()})

		r.selector.AttemptMatch()
	}

	return Summary{
		TotalPlayers:   len(arrivals),
		MatchesCreated: r.selector.MatchCount(),
		PlayersMatched: r.selector.MatchCount() * matchmaking.MatchSize,
		StillQueued:    r.store.Size(),
		FinalTime:      r.clock,
	}
}
