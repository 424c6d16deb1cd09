package deck

import (
	"math/rand"

	"github.com/arcanaland/cribbage/internal/card"
)

// StandardSize is the number of cards in a full French deck
const StandardSize = 52

// Deck is an ordered stack of unique cards bounded by a capacity. The top of
// the stack is its last element: DrawCards and Peek work from that end.
//
// A Deck is not safe for concurrent use.
type Deck struct {
	ID   string
	Name string

	stack    []card.Card
	capacity int
	rng      *rand.Rand
}

// Options configures the values carried by a standard deck's cards
type Options struct {
	// AceHigh makes aces worth 11 in this deck only
	AceHigh bool
	// Values overrides the point value of individual ranks
	Values map[card.Rank]int
}

// value returns the point value of rank r under these options
func (o Options) value(r card.Rank) int {
	if v, ok := o.Values[r]; ok {
		return v
	}
	if r == card.Ace && o.AceHigh {
		return 11
	}
	return card.DefaultValue(r)
}

// New creates a deck holding at most capacity cards and adds the given cards
// to it. Duplicates and cards past the capacity are dropped.
func New(rng *rand.Rand, capacity int, cards ...card.Card) *Deck {
	if capacity < 0 {
		capacity = 0
	}
	d := &Deck{
		stack:    make([]card.Card, 0, capacity),
		capacity: capacity,
		rng:      rng,
	}
	d.AddCards(cards)
	return d
}

// NewStandard creates a full 52-card deck in suit-then-rank order
func NewStandard(rng *rand.Rand, opts Options) *Deck {
	cards := make([]card.Card, 0, StandardSize)
	for _, s := range card.Suits {
		for _, r := range card.Ranks {
			cards = append(cards, card.NewWithValue(s, r, opts.value(r)))
		}
	}
	d := New(rng, StandardSize, cards...)
	d.ID = "standard"
	d.Name = "Standard 52"
	return d
}

// Len returns the number of cards in the deck
func (d *Deck) Len() int { return len(d.stack) }

// Cap returns the maximum number of cards the deck may hold
func (d *Deck) Cap() int { return d.capacity }

// Cards returns a copy of the stack, bottom first
func (d *Deck) Cards() []card.Card {
	out := make([]card.Card, len(d.stack))
	copy(out, d.stack)
	return out
}

// Contains reports whether a card with the same identity is in the deck
func (d *Deck) Contains(c card.Card) bool {
	return d.indexOf(c) >= 0
}

// Lookup returns this deck's copy of the card with the same identity as c,
// carrying the deck's point value for it.
func (d *Deck) Lookup(c card.Card) (card.Card, bool) {
	i := d.indexOf(c)
	if i < 0 {
		return card.Card{}, false
	}
	return d.stack[i], true
}

// Shuffle randomly permutes the stack
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.stack), func(i, j int) {
		d.stack[i], d.stack[j] = d.stack[j], d.stack[i]
	})
}

// DrawCards removes and returns the top n cards in stack order. If the deck
// holds fewer than n cards nothing is drawn and the result is empty.
func (d *Deck) DrawCards(n int) []card.Card {
	if n <= 0 || n > len(d.stack) {
		return nil
	}
	cut := len(d.stack) - n
	drawn := make([]card.Card, n)
	copy(drawn, d.stack[cut:])
	d.stack = d.stack[:cut]
	return drawn
}

// RandomDraw removes and returns n distinct cards chosen uniformly at random.
// Unlike DrawCards, n is reduced to the deck size when it is larger.
func (d *Deck) RandomDraw(n int) []card.Card {
	if n > len(d.stack) {
		n = len(d.stack)
	}
	if n <= 0 {
		return nil
	}

	picked := d.rng.Perm(len(d.stack))[:n]
	drawn := make([]card.Card, 0, n)
	take := make(map[int]bool, n)
	for _, i := range picked {
		drawn = append(drawn, d.stack[i])
		take[i] = true
	}

	kept := d.stack[:0]
	for i, c := range d.stack {
		if !take[i] {
			kept = append(kept, c)
		}
	}
	d.stack = kept
	return drawn
}

// AddCards appends cards to the top of the deck. Cards already present and
// cards beyond the capacity are skipped and returned to the caller.
func (d *Deck) AddCards(cards []card.Card) []card.Card {
	var rejected []card.Card
	for _, c := range cards {
		if d.Contains(c) || len(d.stack) >= d.capacity {
			rejected = append(rejected, c)
			continue
		}
		d.stack = append(d.stack, c)
	}
	return rejected
}

// PushEnd is AddCards
func (d *Deck) PushEnd(cards []card.Card) []card.Card {
	return d.AddCards(cards)
}

// RemoveCards removes every given card that is present and returns the ones
// the deck did not hold before the call. A card listed twice is removed once
// and never reported.
func (d *Deck) RemoveCards(cards []card.Card) []card.Card {
	held := make(map[card.ID]bool, len(d.stack))
	for _, c := range d.stack {
		held[c.ID()] = true
	}

	var missing []card.Card
	for _, c := range cards {
		if !held[c.ID()] {
			missing = append(missing, c)
			continue
		}
		if i := d.indexOf(c); i >= 0 {
			d.stack = append(d.stack[:i], d.stack[i+1:]...)
		}
	}
	return missing
}

// RandomInsert places each card that is not already present at a uniformly
// random position while capacity allows, and returns the cards inserted.
func (d *Deck) RandomInsert(cards []card.Card) []card.Card {
	var inserted []card.Card
	for _, c := range cards {
		if d.Contains(c) || len(d.stack) >= d.capacity {
			continue
		}
		pos := d.rng.Intn(len(d.stack) + 1)
		d.stack = append(d.stack, card.Card{})
		copy(d.stack[pos+1:], d.stack[pos:])
		d.stack[pos] = c
		inserted = append(inserted, c)
	}
	return inserted
}

// Peek returns the top card without removing it
func (d *Deck) Peek() (card.Card, bool) {
	if len(d.stack) == 0 {
		return card.Card{}, false
	}
	return d.stack[len(d.stack)-1], true
}

func (d *Deck) indexOf(c card.Card) int {
	for i, held := range d.stack {
		if held.Same(c) {
			return i
		}
	}
	return -1
}
