// Package scoring evaluates a cribbage hand together with the starter card.
//
// Every rule is a pure function of (hand, starter) so callers can show a
// per-rule breakdown. Rules other than Flush and MatchJack look at the
// combined five cards.
package scoring

import (
	"sort"

	"github.com/arcanaland/cribbage/internal/card"
)

// FifteenTarget is the value sum that scores a fifteen
const FifteenTarget = 15

const (
	pointsPerFifteen  = 2
	pointsForNobs     = 1
	pointsForHisHeels = 2
)

// Breakdown holds the points scored by each rule counted in a hand's total
type Breakdown struct {
	Runs     int
	Fifteens int
	Pairs    int
	Flush    int
	Nobs     int
}

// Total sums the rules. The flipped-jack bonus is never part of it: those
// points belong to the crib holder and are scored with FlipJack.
func (b Breakdown) Total() int {
	return b.Runs + b.Fifteens + b.Pairs + b.Flush + b.Nobs
}

// Evaluate scores every rule for hand and starter
func Evaluate(hand []card.Card, starter card.Card) Breakdown {
	return Breakdown{
		Runs:     Runs(hand, starter),
		Fifteens: Fifteens(hand, starter),
		Pairs:    Pairs(hand, starter),
		Flush:    Flush(hand, starter),
		Nobs:     MatchJack(hand, starter),
	}
}

// Runs scores sequences of three or more consecutive ranks. A duplicated rank
// inside a run multiplies it, so 3-4-5-5-6 scores two runs of four.
func Runs(hand []card.Card, starter card.Card) int {
	cards := sortedByRank(hand, starter)

	score := 0
	run, mult := 1, 1
	closeRun := func() {
		if run >= 3 {
			score += run * mult
		}
		run, mult = 1, 1
	}

	for i := 1; i < len(cards); i++ {
		prev, cur := cards[i-1].Rank(), cards[i].Rank()
		switch {
		case cur == prev+1:
			run++
		case cur == prev:
			mult++
		default:
			closeRun()
		}
	}
	closeRun()

	return score
}

// Fifteens scores two points for every distinct set of cards whose values
// add up to fifteen.
func Fifteens(hand []card.Card, starter card.Card) int {
	return pointsPerFifteen * len(FifteenCombos(hand, starter))
}

// FifteenCombos enumerates every distinct set of cards summing to fifteen.
// Sets are distinct by card identity: two fives of different suits give two
// different sets.
func FifteenCombos(hand []card.Card, starter card.Card) [][]card.Card {
	return subsetsSumming(combined(hand, starter), FifteenTarget)
}

// subsetsSumming builds a reachability table reach[i][s], true when some
// subset of the first i cards sums to s, then walks it backwards to list
// every subset reaching target.
func subsetsSumming(cards []card.Card, target int) [][]card.Card {
	reach := make([][]bool, len(cards)+1)
	for i := range reach {
		reach[i] = make([]bool, target+1)
	}
	reach[0][0] = true

	for i := 1; i <= len(cards); i++ {
		v := cards[i-1].Value()
		for s := 0; s <= target; s++ {
			reach[i][s] = reach[i-1][s] || (v >= 0 && v <= s && reach[i-1][s-v])
		}
	}

	if !reach[len(cards)][target] {
		return nil
	}

	var found [][]card.Card
	var walk func(i, s int, picked []card.Card)
	walk = func(i, s int, picked []card.Card) {
		if i == 0 {
			if s == 0 {
				set := make([]card.Card, len(picked))
				for j := range picked {
					set[j] = picked[len(picked)-1-j]
				}
				found = append(found, set)
			}
			return
		}

		c := cards[i-1]
		if reach[i-1][s] {
			walk(i-1, s, picked)
		}
		if v := c.Value(); v >= 0 && v <= s && reach[i-1][s-v] {
			walk(i-1, s-v, append(picked, c))
		}
	}
	walk(len(cards), target, make([]card.Card, 0, len(cards)))

	return found
}

// Pairs scores every pair of equal ranks: 2 for a pair, 6 for three of a
// kind and 12 for four of a kind.
func Pairs(hand []card.Card, starter card.Card) int {
	cards := sortedByRank(hand, starter)

	score, streak := 0, 0
	for i := 1; i < len(cards); i++ {
		if cards[i].Rank() == cards[i-1].Rank() {
			streak++
			score += streak * 2
		} else {
			streak = 0
		}
	}
	return score
}

// Flush scores a hand whose cards all share a suit: one point per hand card,
// plus one when the starter matches too. The starter alone never makes a
// flush.
func Flush(hand []card.Card, starter card.Card) int {
	if len(hand) == 0 {
		return 0
	}

	suit := hand[0].Suit()
	for _, c := range hand[1:] {
		if c.Suit() != suit {
			return 0
		}
	}

	if starter.Suit() == suit {
		return len(hand) + 1
	}
	return len(hand)
}

// MatchJack scores one point for a jack in hand of the starter's suit
func MatchJack(hand []card.Card, starter card.Card) int {
	for _, c := range hand {
		if c.Rank() == card.Jack && c.Suit() == starter.Suit() {
			return pointsForNobs
		}
	}
	return 0
}

// FlipJack scores two points when the starter itself is a jack. The points
// go to the dealer, not to any hand.
func FlipJack(starter card.Card) int {
	if starter.Rank() == card.Jack {
		return pointsForHisHeels
	}
	return 0
}

func combined(hand []card.Card, starter card.Card) []card.Card {
	cards := make([]card.Card, 0, len(hand)+1)
	cards = append(cards, hand...)
	return append(cards, starter)
}

func sortedByRank(hand []card.Card, starter card.Card) []card.Card {
	cards := combined(hand, starter)
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Rank() < cards[j].Rank()
	})
	return cards
}
