package matchmaking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbr98/matchmaking/internal/queue"
)

func groupWithForms(forms []int) []queue.Player {
	ps := make([]queue.Player, len(forms))
	for i, f := range forms {
		ps[i] = queue.Player{ID: i + 1, Rating: 1500, Form: f}
	}
	return ps
}

func formSum(team []queue.Player) int {
	sum := 0
	for _, p := range team {
		sum += p.Form
	}
	return sum
}

func TestBalanceTeams_FiveASide(t *testing.T) {
	a, b, _ := balanceTeams(groupWithForms([]int{10, 8, 6, 4, 2, 0, -2, -4, -6, -8}))

	require.Len(t, a, TeamSize)
	require.Len(t, b, TeamSize)

	seen := map[int]bool{}
	for _, p := range append(append([]queue.Player{}, a...), b...) {
		require.False(t, seen[p.ID], "player %d on both teams", p.ID)
		seen[p.ID] = true
	}
}

func TestBalanceTeams_GreedyPartition(t *testing.T) {
	a, b, score := balanceTeams(groupWithForms([]int{10, 8, 6, 4, 2, 0, -2, -4, -6, -8}))

	// greedy walks form-descending, handing each player to the side
	// that is behind: A={10,4,2,-6,-8}, B={8,6,0,-2,-4}
	assert.Equal(t, 2, formSum(a))
	assert.Equal(t, 8, formSum(b))
	assert.InDelta(t, 1.2, score, 1e-9)
}

func TestBalanceTeams_EqualFormsSplitByID(t *testing.T) {
	a, b, score := balanceTeams(groupWithForms([]int{3, 3, 3, 3, 3, 3, 3, 3, 3, 3}))

	// all ties: id order decides, and the sides alternate because A's
	// running sum pulls ahead after every pick, so A gets the odd ids
	for i, p := range a {
		assert.Equal(t, 2*i+1, p.ID)
	}
	for i, p := range b {
		assert.Equal(t, 2*i+2, p.ID)
	}
	assert.Zero(t, score)
}

func TestBalanceTeams_Deterministic(t *testing.T) {
	forms := []int{5, -3, 7, 0, -10, 2, 2, -1, 9, -6}
	a1, b1, s1 := balanceTeams(groupWithForms(forms))
	a2, b2, s2 := balanceTeams(groupWithForms(forms))

	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
	assert.Equal(t, s1, s2)
}
