package queue

// Player represents a player waiting for a match.
// Identity is the ID alone: two players with equal rating and form but
// different IDs are distinct. A Player is immutable after Insert.
type Player struct {
	ID       int     // assigned at insertion, monotonic, never reused
	Rating   int     // skill score (ELO)
	Form     int     // net wins over the last 10 matches, in [-10, +10]
	JoinedAt float64 // queue-entry time on the caller's clock, reporting only
}
