// Package ledger tracks each player's score and which player holds the crib.
package ledger

import (
	"math/rand"
	"sort"
)

// DefaultWinningScore is the score that ends a standard game
const DefaultWinningScore = 121

// Entry is one player's line on the board
type Entry struct {
	Name       string
	Score      int
	CribHolder bool
}

// Ledger is a name-keyed score table. Players keep the order in which they
// were added; crib rotation follows that order. Scores are never clamped.
//
// A Ledger is not safe for concurrent use.
type Ledger struct {
	order   []string
	entries map[string]*Entry
	rng     *rand.Rand
}

// New creates an empty ledger. rng picks the crib holder when none is named.
func New(rng *rand.Rand) *Ledger {
	return &Ledger{
		entries: make(map[string]*Entry),
		rng:     rng,
	}
}

// AddPlayer adds a player with score 0. It fails if the name is taken.
func (l *Ledger) AddPlayer(name string) bool {
	if _, ok := l.entries[name]; ok {
		return false
	}
	l.entries[name] = &Entry{Name: name}
	l.order = append(l.order, name)
	return true
}

// RemovePlayer drops a player. Removing the crib holder passes the crib to
// the next player in order, wrapping around to the first.
func (l *Ledger) RemovePlayer(name string) bool {
	e, ok := l.entries[name]
	if !ok {
		return false
	}
	delete(l.entries, name)
	for i, n := range l.order {
		if n != name {
			continue
		}
		l.order = append(l.order[:i], l.order[i+1:]...)
		if e.CribHolder && len(l.order) > 0 {
			l.entries[l.order[i%len(l.order)]].CribHolder = true
		}
		break
	}
	return true
}

// Len returns the number of players
func (l *Ledger) Len() int { return len(l.order) }

// SetCribHolder makes name the only crib holder. An empty name picks a player
// uniformly at random. It fails for an unknown name or an empty ledger.
func (l *Ledger) SetCribHolder(name string) bool {
	if len(l.order) == 0 {
		return false
	}
	if name == "" {
		name = l.order[l.rng.Intn(len(l.order))]
	}
	if _, ok := l.entries[name]; !ok {
		return false
	}

	for _, e := range l.entries {
		e.CribHolder = false
	}
	l.entries[name].CribHolder = true
	return true
}

// RotateCribHolder passes the crib to the next player, wrapping after the
// last one. It fails when nobody holds the crib.
func (l *Ledger) RotateCribHolder() bool {
	i := l.holderIndex()
	if i < 0 {
		return false
	}
	next := l.order[(i+1)%len(l.order)]
	return l.SetCribHolder(next)
}

// CribHolder returns the name of the player holding the crib
func (l *Ledger) CribHolder() (string, bool) {
	i := l.holderIndex()
	if i < 0 {
		return "", false
	}
	return l.order[i], true
}

// Peg adds delta, which may be negative, to a player's score
func (l *Ledger) Peg(name string, delta int) bool {
	e, ok := l.entries[name]
	if !ok {
		return false
	}
	e.Score += delta
	return true
}

// Score returns a player's current score
func (l *Ledger) Score(name string) (int, bool) {
	e, ok := l.entries[name]
	if !ok {
		return 0, false
	}
	return e.Score, true
}

// Players returns a snapshot of every entry in enumeration order
func (l *Ledger) Players() []Entry {
	out := make([]Entry, 0, len(l.order))
	for _, name := range l.order {
		out = append(out, *l.entries[name])
	}
	return out
}

// Standings returns the entries ordered by score, highest first. Ties keep
// enumeration order.
func (l *Ledger) Standings() []Entry {
	out := l.Players()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// Leader returns the highest-scoring player who has reached target
func (l *Ledger) Leader(target int) (string, bool) {
	standings := l.Standings()
	if len(standings) == 0 || standings[0].Score < target {
		return "", false
	}
	return standings[0].Name, true
}

func (l *Ledger) holderIndex() int {
	for i, name := range l.order {
		if l.entries[name].CribHolder {
			return i
		}
	}
	return -1
}
