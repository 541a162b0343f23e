// Package matchmaking decides when ten waiting players can form a fair
// 5v5 match and how to split them into teams.
package matchmaking

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/gbr98/matchmaking/internal/domain/events"
	"github.com/gbr98/matchmaking/internal/queue"
)

// Selector searches the waiting set for the best eligible group of ten
// players. It owns no state beyond the configured rating distance and a
// match counter.
type Selector struct {
	store         *queue.Store
	maxRatingDist int
	matchCount    int
	log           zerolog.Logger
}

// NewSelector rejects a negative maxRatingDistance: it can never admit
// a match and always means caller misuse.
func NewSelector(store *queue.Store, maxRatingDistance int, log zerolog.Logger) (*Selector, error) {
	if maxRatingDistance < 0 {
		return nil, fmt.Errorf("matchmaking: maxRatingDistance must be >= 0, got %d", maxRatingDistance)
	}
	return &Selector{
		store:         store,
		maxRatingDist: maxRatingDistance,
		log:           log,
	}, nil
}

// MatchCount reports how many matches this selector has created.
func (s *Selector) MatchCount() int { return s.matchCount }

// QueueSize reports the current waiting-set size.
func (s *Selector) QueueSize() int { return s.store.Size() }

// AttemptMatch searches the current waiting set for the best eligible
// group of ten, removes those players from the queue and returns the
// match. A nil result means no match is currently formable, which is a
// normal outcome, not an error. The search, the removal and the
// MatchCreated publish run as one critical section against the store,
// so concurrent inserts can never desync the snapshot from the removal
// set and announcements always arrive in Seq order. Subscribers of
// MatchCreated therefore must not call back into the queue store.
func (s *Selector) AttemptMatch() *Match {
	var m *Match
	s.store.Locked(func(tx *queue.Tx) {
		candidates := tx.Snapshot()
		if len(candidates) < MatchSize {
			return
		}

		best := s.bestWindow(candidates)
		if best == nil {
			return
		}

		if err := tx.Remove(best.Players()); err != nil {
			// The snapshot and the removal run under the same lock, so a
			// missing id can only mean the store invariant is broken.
			panic(fmt.Sprintf("matchmaking: selected player missing from queue: %v", err))
		}

		s.matchCount++
		best.Seq = s.matchCount
		m = best

		s.log.Info().
			Int("match_seq", m.Seq).
			Int("rating_span", m.RatingSpan()).
			Float64("balance_score", m.BalanceScore).
			Int("queue_size", tx.Size()).
			Msg("match created")
		events.Publish(events.MatchCreated{
			Seq:          m.Seq,
			TeamA:        m.TeamA,
			TeamB:        m.TeamB,
			BalanceScore: m.BalanceScore,
		})
	})
	return m
}

// bestWindow slides over the rating-sorted players and returns the
// eligible ten-player window with the lowest balance score, or nil.
// Ties go to the lowest start index, which together with the composite
// (rating, id) sort makes selection reproducible across runs.
func (s *Selector) bestWindow(players []queue.Player) *Match {
	sort.Slice(players, func(i, j int) bool {
		if players[i].Rating != players[j].Rating {
			return players[i].Rating < players[j].Rating
		}
		return players[i].ID < players[j].ID
	})

	var best *Match
	for i := 0; i+MatchSize <= len(players); i++ {
		group := windowFrom(players, i, s.maxRatingDist)
		if group == nil {
			continue
		}
		teamA, teamB, score := balanceTeams(group)
		if best == nil || score < best.BalanceScore {
			best = &Match{TeamA: teamA, TeamB: teamB, BalanceScore: score}
		}
	}
	return best
}

// windowFrom scans forward from start, admitting consecutive players
// while their rating stays within maxDist of the window's first member,
// stopping once ten are collected. Returns nil if the run is shorter.
func windowFrom(players []queue.Player, start, maxDist int) []queue.Player {
	base := players[start].Rating
	group := make([]queue.Player, 0, MatchSize)
	for j := start; j < len(players) && len(group) < MatchSize; j++ {
		if players[j].Rating-base > maxDist {
			break
		}
		group = append(group, players[j])
	}
	if len(group) != MatchSize {
		return nil
	}
	return group
}
