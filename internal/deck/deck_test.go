package deck

import (
	"math/rand"
	"testing"

	"github.com/arcanaland/cribbage/internal/card"
)

func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func mustParse(t *testing.T, codes ...string) []card.Card {
	t.Helper()
	cards, err := card.ParseAll(codes)
	if err != nil {
		t.Fatal(err)
	}
	return cards
}

// assertInvariants checks uniqueness and the capacity bound
func assertInvariants(t *testing.T, d *Deck) {
	t.Helper()
	if d.Len() > d.Cap() {
		t.Fatalf("deck holds %d cards, capacity %d", d.Len(), d.Cap())
	}
	seen := make(map[card.ID]bool)
	for _, c := range d.Cards() {
		if seen[c.ID()] {
			t.Fatalf("duplicate card %s in deck", c)
		}
		seen[c.ID()] = true
	}
}

func TestNewStandard(t *testing.T) {
	d := NewStandard(newRNG(), Options{})
	if d.Len() != StandardSize || d.Cap() != StandardSize {
		t.Fatalf("expected 52/52, got %d/%d", d.Len(), d.Cap())
	}
	assertInvariants(t, d)

	top, ok := d.Peek()
	if !ok || top != card.New(card.Spades, card.King) {
		t.Fatalf("expected K♠ on top, got %v", top)
	}
}

func TestAceHighIsPerDeck(t *testing.T) {
	high := NewStandard(newRNG(), Options{AceHigh: true})
	low := NewStandard(newRNG(), Options{})
	for _, c := range high.Cards() {
		if c.Rank() == card.Ace && c.Value() != 11 {
			t.Fatalf("expected ace-high deck to value %s at 11, got %d", c, c.Value())
		}
	}
	for _, c := range low.Cards() {
		if c.Rank() == card.Ace && c.Value() != 1 {
			t.Fatalf("expected %s at 1, got %d", c, c.Value())
		}
	}
}

func TestValueOverrides(t *testing.T) {
	d := NewStandard(newRNG(), Options{AceHigh: true, Values: map[card.Rank]int{card.Ace: 5, card.King: 3}})
	for _, c := range d.Cards() {
		switch c.Rank() {
		case card.Ace:
			if c.Value() != 5 {
				t.Fatalf("expected explicit override to win over ace-high, got %d", c.Value())
			}
		case card.King:
			if c.Value() != 3 {
				t.Fatalf("expected king at 3, got %d", c.Value())
			}
		}
	}
}

func TestShuffleKeepsMembership(t *testing.T) {
	d := NewStandard(newRNG(), Options{})
	before := d.Cards()
	d.Shuffle()
	if d.Len() != len(before) {
		t.Fatalf("expected %d cards, got %d", len(before), d.Len())
	}
	for _, c := range before {
		if !d.Contains(c) {
			t.Fatalf("card %s lost by shuffle", c)
		}
	}
	assertInvariants(t, d)
}

func TestDrawCardsTakesTop(t *testing.T) {
	d := New(newRNG(), 5, mustParse(t, "AH", "2H", "3H", "4H")...)
	drawn := d.DrawCards(2)
	want := mustParse(t, "3H", "4H")
	if len(drawn) != 2 || drawn[0] != want[0] || drawn[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, drawn)
	}
	if d.Len() != 2 {
		t.Fatalf("expected 2 cards left, got %d", d.Len())
	}
	top, _ := d.Peek()
	if top != card.New(card.Hearts, card.Two) {
		t.Fatalf("expected 2♥ on top, got %v", top)
	}
}

func TestDrawCardsAllOrNothing(t *testing.T) {
	d := New(newRNG(), 5, mustParse(t, "AH", "2H", "3H")...)
	before := d.Cards()
	if drawn := d.DrawCards(4); len(drawn) != 0 {
		t.Fatalf("expected empty draw, got %v", drawn)
	}
	after := d.Cards()
	if len(after) != len(before) {
		t.Fatalf("deck changed by failed draw: %v -> %v", before, after)
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("deck order changed by failed draw")
		}
	}
	if drawn := d.DrawCards(0); len(drawn) != 0 {
		t.Fatalf("expected empty draw for n=0, got %v", drawn)
	}
}

func TestRandomDrawClamps(t *testing.T) {
	d := New(newRNG(), 5, mustParse(t, "AH", "2H", "3H")...)
	drawn := d.RandomDraw(10)
	if len(drawn) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(drawn))
	}
	if d.Len() != 0 {
		t.Fatalf("expected empty deck, got %d", d.Len())
	}
	if _, ok := d.Peek(); ok {
		t.Fatal("expected no top card on empty deck")
	}
}

func TestRandomDrawDistinct(t *testing.T) {
	d := NewStandard(newRNG(), Options{})
	drawn := d.RandomDraw(13)
	if len(drawn) != 13 || d.Len() != 39 {
		t.Fatalf("expected 13 drawn and 39 left, got %d and %d", len(drawn), d.Len())
	}
	seen := make(map[card.ID]bool)
	for _, c := range drawn {
		if seen[c.ID()] {
			t.Fatalf("card %s drawn twice", c)
		}
		seen[c.ID()] = true
		if d.Contains(c) {
			t.Fatalf("drawn card %s still in deck", c)
		}
	}
}

func TestAddCardsRejectsDuplicatesAndOverflow(t *testing.T) {
	d := New(newRNG(), 3, mustParse(t, "AH")...)
	in := mustParse(t, "AH", "2H", "3H", "4H")
	rejected := d.AddCards(in)
	if len(rejected) != 2 {
		t.Fatalf("expected 2 rejected, got %v", rejected)
	}
	if rejected[0] != in[0] || rejected[1] != in[3] {
		t.Fatalf("expected [A♥ 4♥] rejected, got %v", rejected)
	}
	if d.Len() != 3 {
		t.Fatalf("expected 3 cards, got %d", d.Len())
	}
	assertInvariants(t, d)

	if rejected := d.PushEnd(mustParse(t, "5H")); len(rejected) != 1 {
		t.Fatalf("expected full deck to reject, got %v", rejected)
	}
}

func TestAddCardsDuplicateByIdentity(t *testing.T) {
	d := New(newRNG(), 5, card.New(card.Spades, card.Ace))
	rejected := d.AddCards([]card.Card{card.NewWithValue(card.Spades, card.Ace, 11)})
	if len(rejected) != 1 {
		t.Fatalf("expected ace with another value to be rejected, got %v", rejected)
	}
}

func TestRemoveCardsComplement(t *testing.T) {
	d := New(newRNG(), 5, mustParse(t, "AH", "2H", "3H")...)
	missing := d.RemoveCards(mustParse(t, "2H", "KS"))
	if len(missing) != 1 || missing[0] != card.New(card.Spades, card.King) {
		t.Fatalf("expected [K♠] missing, got %v", missing)
	}
	want := mustParse(t, "AH", "3H")
	got := d.Cards()
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRemoveCardsRepeatedInput(t *testing.T) {
	d := New(newRNG(), 5, mustParse(t, "AH", "2H")...)
	if missing := d.RemoveCards(mustParse(t, "AH", "ah")); len(missing) != 0 {
		t.Fatalf("expected nothing missing, got %v", missing)
	}
	got := d.Cards()
	if len(got) != 1 || got[0] != card.New(card.Hearts, card.Two) {
		t.Fatalf("expected [2♥], got %v", got)
	}
	assertInvariants(t, d)
}

func TestRandomInsert(t *testing.T) {
	d := New(newRNG(), 4, mustParse(t, "AH", "2H")...)
	inserted := d.RandomInsert(mustParse(t, "2H", "3H", "4H", "5H"))
	want := mustParse(t, "3H", "4H")
	if len(inserted) != 2 || inserted[0] != want[0] || inserted[1] != want[1] {
		t.Fatalf("expected %v inserted, got %v", want, inserted)
	}
	if d.Len() != 4 {
		t.Fatalf("expected 4 cards, got %d", d.Len())
	}
	assertInvariants(t, d)
}

func TestInvariantsUnderRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	d := New(rng, 20)
	pool := NewStandard(rand.New(rand.NewSource(7)), Options{}).Cards()

	pick := func() []card.Card {
		n := rng.Intn(6)
		out := make([]card.Card, n)
		for i := range out {
			out[i] = pool[rng.Intn(len(pool))]
		}
		return out
	}

	for i := 0; i < 500; i++ {
		switch rng.Intn(6) {
		case 0:
			d.AddCards(pick())
		case 1:
			d.RemoveCards(pick())
		case 2:
			d.DrawCards(rng.Intn(5))
		case 3:
			d.RandomDraw(rng.Intn(5))
		case 4:
			d.RandomInsert(pick())
		case 5:
			d.Shuffle()
		}
		assertInvariants(t, d)
	}
}

func TestLookupCarriesDeckValue(t *testing.T) {
	d := NewStandard(newRNG(), Options{AceHigh: true})
	c, ok := d.Lookup(card.New(card.Clubs, card.Ace))
	if !ok || c.Value() != 11 {
		t.Fatalf("expected A♣ worth 11, got %v %d", ok, c.Value())
	}
	d.RemoveCards([]card.Card{c})
	if _, ok := d.Lookup(c); ok {
		t.Fatal("expected removed card to be missing")
	}
}
