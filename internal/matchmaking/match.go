package matchmaking

import "github.com/gbr98/matchmaking/internal/queue"

const (
	// TeamSize is the number of players per side.
	TeamSize = 5
	// MatchSize is the total number of players a match consumes.
	MatchSize = 2 * TeamSize
)

// Match is the transient result of a successful selection. The players
// in both teams have already been removed from the queue when a Match
// is returned; nothing holds onto it afterwards.
type Match struct {
	Seq          int // monotonic match number, 1-based
	TeamA        []queue.Player
	TeamB        []queue.Player
	BalanceScore float64 // |avg form A - avg form B|, lower is better
}

// Players returns both teams as a single slice, team A first.
func (m *Match) Players() []queue.Player {
	all := make([]queue.Player, 0, MatchSize)
	all = append(all, m.TeamA...)
	all = append(all, m.TeamB...)
	return all
}

// RatingSpan is the max-min rating difference over all ten players.
func (m *Match) RatingSpan() int {
	all := m.Players()
	lo, hi := all[0].Rating, all[0].Rating
	for _, p := range all[1:] {
		if p.Rating < lo {
			lo = p.Rating
		}
		if p.Rating > hi {
			hi = p.Rating
		}
	}
	return hi - lo
}
