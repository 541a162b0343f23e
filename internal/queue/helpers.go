// Package queue - helpers.go
// Small internal helpers kept separate to keep store.go focused.
package queue

// snapshot returns a copy of the players slice so callers can't alias
// the store's backing array.
func snapshot(ps []Player) []Player {
	return append([]Player(nil), ps...)
}
