// Package events - types.go
package events

import "github.com/gbr98/matchmaking/internal/queue"

// PlayerQueued is emitted after a player enters the waiting queue.
type PlayerQueued struct {
	Player    queue.Player
	QueueSize int // waiting-set size right after the insert
}

// MatchCreated is emitted when the selector forms a match. The players
// listed here are already out of the queue.
type MatchCreated struct {
	Seq          int // monotonic match number, 1-based
	TeamA        []queue.Player
	TeamB        []queue.Player
	BalanceScore float64
}
