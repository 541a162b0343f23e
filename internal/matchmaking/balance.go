package matchmaking

import (
	"math"
	"sort"

	"github.com/gbr98/matchmaking/internal/queue"
)

// balanceTeams splits ten players into two teams of five, trying to
// minimize the difference between the teams' form sums. Greedy: walk
// the players in form-descending order and give each one to the side
// that is behind. This is an approximation, not a proven-optimal
// partition, but it is deterministic and fast.
func balanceTeams(group []queue.Player) (teamA, teamB []queue.Player, score float64) {
	sorted := append([]queue.Player(nil), group...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Form != sorted[j].Form {
			return sorted[i].Form > sorted[j].Form
		}
		return sorted[i].ID < sorted[j].ID
	})

	teamA = make([]queue.Player, 0, TeamSize)
	teamB = make([]queue.Player, 0, TeamSize)
	sumA, sumB := 0, 0
	for _, p := range sorted {
		if len(teamA) < TeamSize && (len(teamB) == TeamSize || sumA <= sumB) {
			teamA = append(teamA, p)
			sumA += p.Form
		} else {
			teamB = append(teamB, p)
			sumB += p.Form
		}
	}

	score = math.Abs(float64(sumA)-float64(sumB)) / float64(TeamSize)
	return teamA, teamB, score
}
