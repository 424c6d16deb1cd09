package scoring

import (
	"testing"

	"github.com/arcanaland/cribbage/internal/card"
)

func parse(t *testing.T, codes ...string) []card.Card {
	t.Helper()
	cards, err := card.ParseAll(codes)
	if err != nil {
		t.Fatal(err)
	}
	return cards
}

func parseOne(t *testing.T, code string) card.Card {
	t.Helper()
	c, err := card.Parse(code)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestRuns(t *testing.T) {
	tests := []struct {
		name    string
		hand    []string
		starter string
		want    int
	}{
		{"double run of four", []string{"3H", "4S", "5D", "5C"}, "6H", 8},
		{"run of five", []string{"AH", "2S", "3D", "4C"}, "5H", 5},
		{"run of three", []string{"9H", "10S", "JD", "2C"}, "5H", 3},
		{"starter completes run", []string{"QH", "KS", "4D", "2C"}, "JH", 3},
		{"double run of three", []string{"4H", "4S", "5D", "6C"}, "KH", 6},
		{"two cards only", []string{"QH", "KS", "4D", "8C"}, "2H", 0},
		{"no run", []string{"AH", "3S", "5D", "7C"}, "9H", 0},
		{"ace is low", []string{"QH", "KS", "AD", "8C"}, "5H", 0},
	}
	for _, tt := range tests {
		got := Runs(parse(t, tt.hand...), parseOne(t, tt.starter))
		if got != tt.want {
			t.Fatalf("%s: expected %d, got %d", tt.name, tt.want, got)
		}
	}
}

func TestFifteens(t *testing.T) {
	hand := parse(t, "5H", "10C", "QD", "JS")
	starter := parseOne(t, "5D")

	combos := FifteenCombos(hand, starter)
	if len(combos) != 6 {
		t.Fatalf("expected 6 combinations, got %d: %v", len(combos), combos)
	}
	for _, set := range combos {
		sum := 0
		for _, c := range set {
			sum += c.Value()
		}
		if sum != FifteenTarget {
			t.Fatalf("combination %v sums to %d", set, sum)
		}
	}
	if got := Fifteens(hand, starter); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}
}

func TestFifteensTable(t *testing.T) {
	tests := []struct {
		name    string
		hand    []string
		starter string
		want    int
	}{
		{"none", []string{"AH", "AS", "AD", "2C"}, "7H", 0},
		{"all five cards", []string{"AH", "2S", "3D", "4C"}, "5H", 2},
		{"four fives and a jack", []string{"5H", "5S", "5D", "5C"}, "JH", 16},
		{"seven eight", []string{"7H", "8S", "KD", "KC"}, "2H", 2},
	}
	for _, tt := range tests {
		got := Fifteens(parse(t, tt.hand...), parseOne(t, tt.starter))
		if got != tt.want {
			t.Fatalf("%s: expected %d, got %d", tt.name, tt.want, got)
		}
	}
}

func TestFifteensUsesCardValue(t *testing.T) {
	hand := []card.Card{card.NewWithValue(card.Hearts, card.Ace, 11), card.New(card.Spades, card.Four)}
	starter := card.New(card.Clubs, card.Nine)
	if got := Fifteens(hand, starter); got != 2 {
		t.Fatalf("expected ace-high 11+4 to make fifteen, got %d", got)
	}
}

func TestPairs(t *testing.T) {
	tests := []struct {
		name    string
		hand    []string
		starter string
		want    int
	}{
		{"none", []string{"AH", "2S", "3D", "4C"}, "5H", 0},
		{"one pair", []string{"AH", "AS", "3D", "4C"}, "9H", 2},
		{"two pairs", []string{"AH", "AS", "3D", "3C"}, "9H", 4},
		{"three of a kind", []string{"7H", "7S", "7D", "4C"}, "9H", 6},
		{"four of a kind", []string{"7H", "7S", "7D", "7C"}, "9H", 12},
		{"starter pairs", []string{"7H", "2S", "3D", "4C"}, "7S", 2},
	}
	for _, tt := range tests {
		got := Pairs(parse(t, tt.hand...), parseOne(t, tt.starter))
		if got != tt.want {
			t.Fatalf("%s: expected %d, got %d", tt.name, tt.want, got)
		}
	}
}

func TestFlush(t *testing.T) {
	hearts := parse(t, "2H", "5H", "9H", "KH")
	if got := Flush(hearts, parseOne(t, "3S")); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
	if got := Flush(hearts, parseOne(t, "3H")); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	mixed := parse(t, "2H", "5H", "9H", "KS")
	if got := Flush(mixed, parseOne(t, "3H")); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := Flush(nil, parseOne(t, "3H")); got != 0 {
		t.Fatalf("expected 0 for empty hand, got %d", got)
	}
}

func TestMatchJack(t *testing.T) {
	hand := parse(t, "JH", "5S", "9D", "KC")
	if got := MatchJack(hand, parseOne(t, "3H")); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := MatchJack(hand, parseOne(t, "3S")); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := MatchJack(parse(t, "2H", "5S", "9D", "KC"), parseOne(t, "JH")); got != 0 {
		t.Fatalf("starter jack must not score nobs, got %d", got)
	}
}

func TestFlipJack(t *testing.T) {
	if got := FlipJack(parseOne(t, "JD")); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := FlipJack(parseOne(t, "QD")); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestEvaluate(t *testing.T) {
	// 5-5-5-J with the matching five: the best hand in cribbage.
	hand := parse(t, "5H", "5S", "5C", "JD")
	starter := parseOne(t, "5D")

	b := Evaluate(hand, starter)
	want := Breakdown{Runs: 0, Fifteens: 16, Pairs: 12, Flush: 0, Nobs: 1}
	if b != want {
		t.Fatalf("expected %+v, got %+v", want, b)
	}
	if b.Total() != 29 {
		t.Fatalf("expected 29, got %d", b.Total())
	}
}

func TestEvaluateExcludesFlipJack(t *testing.T) {
	hand := parse(t, "2H", "4S", "6C", "8D")
	starter := parseOne(t, "JD")
	if got := Evaluate(hand, starter).Total(); got != 0 {
		t.Fatalf("expected flipped jack to stay out of the hand total, got %d", got)
	}
}
