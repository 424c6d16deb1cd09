package validator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/cribbage/internal/card"
	"github.com/arcanaland/cribbage/internal/deck"
)

// Point values a rank override may take
const (
	minValue = 1
	maxValue = 11
)

// minDealCards covers a two-player deal: six cards each plus the starter
const minDealCards = 2*6 + 1

// ValidationResults collects the problems found in a deck definition. Cards
// and Capacity describe the deck it builds once exclusions are applied.
type ValidationResults struct {
	Errors   []string
	Warnings []string
	Cards    int
	Capacity int
}

type Validator struct {
	DeckPath string
	Results  ValidationResults

	config deck.DeckConfig
}

func NewValidator(deckPath string) *Validator {
	return &Validator{
		DeckPath: deckPath,
		Results:  ValidationResults{},
	}
}

// Validate checks the deck definition. An error is returned only when the
// definition cannot be read at all; problems with its content are collected
// in the results.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.validateDeckToml(); err != nil {
		return v.Results, err
	}

	v.validateMetadata()
	v.validateValues()
	remaining := v.validateExcludedCards()
	v.validateCapacity(remaining)

	v.Results.Cards = remaining
	v.Results.Capacity = v.config.Deck.Capacity
	if v.Results.Capacity == 0 {
		v.Results.Capacity = remaining
	}
	if remaining < minDealCards {
		v.warnf("deck holds %d cards, too few for a two-player deal of %d", remaining, minDealCards)
	}

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

func (v *Validator) validateDeckToml() error {
	deckTomlPath := filepath.Join(v.DeckPath, deck.DefinitionFile)
	if _, err := os.Stat(deckTomlPath); os.IsNotExist(err) {
		return fmt.Errorf("deck.toml not found in %s", v.DeckPath)
	}

	meta, err := toml.DecodeFile(deckTomlPath, &v.config)
	if err != nil {
		return fmt.Errorf("error parsing deck.toml: %v", err)
	}

	for _, key := range meta.Undecoded() {
		v.warnf("unknown key in deck.toml: %s", key.String())
	}
	return nil
}

func (v *Validator) validateMetadata() {
	if v.config.Deck.ID == "" {
		v.errorf("deck.id is required in deck.toml")
	} else if strings.ContainsAny(v.config.Deck.ID, " /\\") {
		v.errorf("deck.id must not contain spaces or path separators: %q", v.config.Deck.ID)
	}

	if v.config.Deck.Name == "" {
		v.errorf("deck.name is required in deck.toml")
	}

	if v.config.Deck.Version == "" {
		v.warnf("deck.version is not set")
	}
}

func (v *Validator) validateValues() {
	for symbol, value := range v.config.Values {
		r, err := card.ParseRank(symbol)
		if err != nil {
			v.errorf("values.%s: %v", symbol, err)
			continue
		}
		if value < minValue || value > maxValue {
			v.errorf("values.%s: value %d outside %d-%d", symbol, value, minValue, maxValue)
		}
		if r == card.Ace && v.config.Deck.AceHigh {
			v.warnf("values.%s overrides deck.ace_high", symbol)
		}
	}
}

// validateExcludedCards returns the number of cards left after exclusions
func (v *Validator) validateExcludedCards() int {
	remaining := deck.StandardSize
	excluded := v.config.Deck.ExcludedCards
	if excluded == nil {
		return remaining
	}

	if len(excluded.Cards) > 0 && excluded.Reason == "" {
		v.warnf("deck.excluded_cards.reason is empty")
	}

	seen := make(map[card.ID]bool)
	for _, code := range excluded.Cards {
		c, err := card.Parse(code)
		if err != nil {
			v.errorf("deck.excluded_cards: %v", err)
			continue
		}
		if seen[c.ID()] {
			v.errorf("deck.excluded_cards lists %s more than once", c.Code())
			continue
		}
		seen[c.ID()] = true
		remaining--
	}

	if remaining == 0 {
		v.errorf("deck.excluded_cards removes every card")
	}
	return remaining
}

func (v *Validator) validateCapacity(remaining int) {
	capacity := v.config.Deck.Capacity
	switch {
	case capacity == 0:
		return
	case capacity < 0:
		v.errorf("deck.capacity must be positive, got %d", capacity)
	case capacity < remaining:
		v.errorf("deck.capacity %d is smaller than the %d cards in the deck", capacity, remaining)
	case capacity > deck.StandardSize:
		v.warnf("deck.capacity %d leaves room for cards that cannot be unique", capacity)
	}
}
