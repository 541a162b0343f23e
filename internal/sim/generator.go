// Package sim reproduces the matchmaking load shape the system is built
// for: players arriving at random times with random ratings and form,
// one selection attempt per arrival.
package sim

import (
	"math/rand"
	"sort"
)

// Arrival is one queue-entry event on the virtual clock.
type Arrival struct {
	Time   float64 // seconds since simulation start
	Rating int
	Form   int
}

// rating and form ranges of the generated population
const (
	minRating = 1000
	maxRating = 3000
	formSpan  = 10 // form drawn from [-formSpan, +formSpan]
)

// GenerateArrivals produces n arrivals uniformly spread over
// [0, maxTime), sorted by time. The same seed always yields the same
// event sequence.
func GenerateArrivals(n int, maxTime float64, seed int64) []Arrival {
	rng := rand.New(rand.NewSource(seed))

	arrivals := make([]Arrival, n)
	for i := range arrivals {
		arrivals[i] = Arrival{
			Time:   rng.Float64() * maxTime,
			Rating: minRating + rng.Intn(maxRating-minRating+1),
			Form:   rng.Intn(2*formSpan+1) - formSpan,
		}
	}
	sort.Slice(arrivals, func(i, j int) bool { return arrivals[i].Time < arrivals[j].Time })
	return arrivals
}
