package hand

import (
	"github.com/arcanaland/cribbage/internal/card"
	"github.com/arcanaland/cribbage/internal/scoring"
)

// Hand records the cards held by one player and whether the hand has already
// given up its cards this round.
type Hand struct {
	cards []card.Card
	drawn bool
}

// New returns an empty hand
func New() *Hand {
	return &Hand{}
}

// Cards returns a copy of the held cards in insertion order
func (h *Hand) Cards() []card.Card {
	out := make([]card.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Len returns the number of held cards
func (h *Hand) Len() int { return len(h.cards) }

// Drawn reports whether RemoveCards has run since the last Reset
func (h *Hand) Drawn() bool { return h.drawn }

// SetCards replaces the held cards and returns the previous ones
func (h *Hand) SetCards(cards []card.Card) []card.Card {
	previous := h.cards
	h.cards = make([]card.Card, len(cards))
	copy(h.cards, cards)
	return previous
}

// RemoveCards takes the selected cards out of the hand and returns those that
// were not held. It only works once per round: a second call before Reset
// changes nothing and reports ok=false.
func (h *Hand) RemoveCards(selection []card.Card) (notFound []card.Card, ok bool) {
	if h.drawn {
		return nil, false
	}
	h.drawn = true

	for _, c := range selection {
		if !contains(h.cards, c) {
			notFound = append(notFound, c)
		}
	}

	kept := make([]card.Card, 0, len(h.cards))
	for _, c := range h.cards {
		if !contains(selection, c) {
			kept = append(kept, c)
		}
	}
	h.cards = kept

	return notFound, true
}

// Reset empties the hand and clears the drawn guard, returning the cards held
// just before.
func (h *Hand) Reset() []card.Card {
	previous := h.cards
	h.cards = nil
	h.drawn = false
	return previous
}

// EvaluateScore returns the hand's points with the given starter. The flipped
// jack is not included.
func (h *Hand) EvaluateScore(starter card.Card) int {
	return h.Breakdown(starter).Total()
}

// Breakdown returns the points per scoring rule
func (h *Hand) Breakdown(starter card.Card) scoring.Breakdown {
	return scoring.Evaluate(h.cards, starter)
}

func contains(cards []card.Card, c card.Card) bool {
	for _, held := range cards {
		if held.Same(c) {
			return true
		}
	}
	return false
}
