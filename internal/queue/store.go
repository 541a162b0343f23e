package queue

import "sync"

// Store holds the set of waiting players and owns the player id counter.
// All mutation goes through the mutex; Locked runs a caller-supplied
// critical section so that a selection and its removal observe one
// consistent waiting set.
type Store struct {
	mu      sync.Mutex
	players []Player
	nextID  int
}

func NewStore() *Store {
	return &Store{
		players: []Player{},
	}
}

// Insert constructs a Player with a freshly allocated id and appends it
// to the waiting set. It never fails.
func (s *Store) Insert(rating, form int, joinedAt float64) Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(rating, form, joinedAt)
}

// Remove deletes every given player from the waiting set by identity.
// Any id not present yields ErrNotQueued; players that were present are
// removed regardless.
func (s *Store) Remove(players []Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(players)
}

// Size reports the number of players currently waiting.
func (s *Store) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.players)
}

// Snapshot returns a copy of the waiting set in insertion order.
func (s *Store) Snapshot() []Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.players)
}

// Locked runs fn while holding the store mutex, handing it the unlocked
// inner operations. The selector uses this so that its snapshot, the
// search over it, and the removal of the chosen players form a single
// critical section with respect to concurrent inserts.
func (s *Store) Locked(fn func(tx *Tx)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&Tx{s: s})
}

// Tx exposes the store operations inside a Locked critical section.
type Tx struct {
	s *Store
}

func (t *Tx) Insert(rating, form int, joinedAt float64) Player {
	return t.s.insertLocked(rating, form, joinedAt)
}

func (t *Tx) Remove(players []Player) error { return t.s.removeLocked(players) }

func (t *Tx) Size() int { return len(t.s.players) }

func (t *Tx) Snapshot() []Player { return snapshot(t.s.players) }

func (s *Store) insertLocked(rating, form int, joinedAt float64) Player {
	s.nextID++
	p := Player{
		ID:       s.nextID,
		Rating:   rating,
		Form:     form,
		JoinedAt: joinedAt,
	}
	s.players = append(s.players, p)
	return p
}

func (s *Store) removeLocked(players []Player) error {
	drop := make(map[int]bool, len(players))
	for _, p := range players {
		drop[p.ID] = true
	}

	// compact in place, counting how many of the requested ids were found
	kept := s.players[:0]
	found := 0
	for _, p := range s.players {
		if drop[p.ID] {
			found++
			continue
		}
		kept = append(kept, p)
	}
	s.players = kept

	if found != len(drop) {
		return ErrNotQueued
	}
	return nil
}
