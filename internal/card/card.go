package card

import (
	"fmt"
	"strings"
)

// Suit identifies one of the four French suits
type Suit uint8

const (
	Hearts Suit = iota
	Clubs
	Diamonds
	Spades
)

// Suits lists every suit in deck construction order
var Suits = []Suit{Hearts, Clubs, Diamonds, Spades}

// Rank identifies a card rank. Its integer value is the rank order used by
// runs and pairs: Ace=1 through King=13.
type Rank uint8

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Ranks lists every rank from Ace to King
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

var rankSymbols = map[Rank]string{
	Ace: "A", Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7",
	Eight: "8", Nine: "9", Ten: "10", Jack: "J", Queen: "Q", King: "K",
}

var rankNames = map[Rank]string{
	Ace: "Ace", Two: "Two", Three: "Three", Four: "Four", Five: "Five", Six: "Six", Seven: "Seven",
	Eight: "Eight", Nine: "Nine", Ten: "Ten", Jack: "Jack", Queen: "Queen", King: "King",
}

// Valid reports whether r is one of the thirteen ranks
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// String returns the rank symbol (A, 2..10, J, Q, K)
func (r Rank) String() string {
	if s, ok := rankSymbols[r]; ok {
		return s
	}
	return "?"
}

// Name returns the English rank name
func (r Rank) Name() string {
	if s, ok := rankNames[r]; ok {
		return s
	}
	return fmt.Sprintf("Rank(%d)", uint8(r))
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s <= Spades
}

// Code returns the single-letter suit code (H, C, D, S)
func (s Suit) Code() string {
	switch s {
	case Hearts:
		return "H"
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// String returns the suit symbol
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Name returns the English suit name
func (s Suit) Name() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Spades:
		return "Spades"
	default:
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
}

// Red reports whether the suit is printed in red
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

// DefaultValue returns the counting value of a rank: Ace=1, pips at face
// value, court cards 10.
func DefaultValue(r Rank) int {
	if r >= Ten {
		return 10
	}
	return int(r)
}

// ID is the identity of a card. Two cards with the same ID are the same
// physical card regardless of their point value.
type ID struct {
	Suit Suit
	Rank Rank
}

// Card represents a playing card. The zero value is not a valid card.
type Card struct {
	suit  Suit
	rank  Rank
	value int
}

// New creates a card carrying the default value for its rank
func New(suit Suit, rank Rank) Card {
	return Card{suit: suit, rank: rank, value: DefaultValue(rank)}
}

// NewWithValue creates a card with an explicit point value, used by decks
// configured with value overrides such as ace-high.
func NewWithValue(suit Suit, rank Rank, value int) Card {
	return Card{suit: suit, rank: rank, value: value}
}

func (c Card) Suit() Suit { return c.suit }
func (c Card) Rank() Rank { return c.rank }
func (c Card) Value() int { return c.value }

// ID returns the (suit, rank) identity of the card
func (c Card) ID() ID {
	return ID{Suit: c.suit, Rank: c.rank}
}

// Same reports whether c and o are the same physical card
func (c Card) Same(o Card) bool {
	return c.ID() == o.ID()
}

// Valid reports whether the card has a real suit and rank
func (c Card) Valid() bool {
	return c.suit.Valid() && c.rank.Valid()
}

// String returns the rank symbol followed by the suit symbol, e.g. 10♣
func (c Card) String() string {
	return c.rank.String() + c.suit.String()
}

// Code returns the ASCII card code, e.g. 10C
func (c Card) Code() string {
	return c.rank.String() + c.suit.Code()
}

// Name returns the long form, e.g. "Ten of Clubs"
func (c Card) Name() string {
	return fmt.Sprintf("%s of %s", c.rank.Name(), c.suit.Name())
}

// Parse reads a card code such as "5H", "10c", "qd" or "J♠". The card
// carries the default value for its rank.
func Parse(code string) (Card, error) {
	s := strings.ToUpper(strings.TrimSpace(code))
	if s == "" {
		return Card{}, fmt.Errorf("empty card code")
	}

	runes := []rune(s)
	suit, err := parseSuit(runes[len(runes)-1])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %v", code, err)
	}

	rank, err := ParseRank(string(runes[:len(runes)-1]))
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %v", code, err)
	}

	return New(suit, rank), nil
}

// ParseAll parses each code in order, stopping at the first error
func ParseAll(codes []string) ([]Card, error) {
	cards := make([]Card, 0, len(codes))
	for _, code := range codes {
		c, err := Parse(code)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// ParseRank reads a rank symbol (A, 2..10, J, Q, K). "T" is accepted for ten.
func ParseRank(symbol string) (Rank, error) {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if s == "T" {
		return Ten, nil
	}
	for r, sym := range rankSymbols {
		if sym == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown rank %q", symbol)
}

func parseSuit(r rune) (Suit, error) {
	switch r {
	case 'H', '♥':
		return Hearts, nil
	case 'C', '♣':
		return Clubs, nil
	case 'D', '♦':
		return Diamonds, nil
	case 'S', '♠':
		return Spades, nil
	}
	return 0, fmt.Errorf("unknown suit %q", string(r))
}
