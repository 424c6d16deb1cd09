package deck

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/cribbage/internal/card"
)

// DefinitionFile is the file name of a deck definition inside a deck directory
const DefinitionFile = "deck.toml"

// LoadDeck loads a deck definition from a directory and builds the deck it
// describes: a standard deck with value overrides, minus any excluded cards.
func LoadDeck(deckPath string, rng *rand.Rand) (*Deck, error) {
	config, err := LoadConfig(deckPath)
	if err != nil {
		return nil, err
	}
	return config.Build(rng)
}

// LoadConfig decodes the deck.toml in deckPath without building the deck
func LoadConfig(deckPath string) (*DeckConfig, error) {
	deckTomlPath := filepath.Join(deckPath, DefinitionFile)
	if _, err := os.Stat(deckTomlPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("deck.toml not found in %s", deckPath)
	}

	var config DeckConfig
	if _, err := toml.DecodeFile(deckTomlPath, &config); err != nil {
		return nil, fmt.Errorf("error parsing deck.toml: %v", err)
	}
	return &config, nil
}

// Build creates the deck described by the configuration
func (c *DeckConfig) Build(rng *rand.Rand) (*Deck, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}

	full := NewStandard(rng, opts)

	if c.Deck.ExcludedCards != nil {
		excluded, err := card.ParseAll(c.Deck.ExcludedCards.Cards)
		if err != nil {
			return nil, fmt.Errorf("error in excluded_cards: %v", err)
		}
		seen := make(map[card.ID]bool, len(excluded))
		for _, ex := range excluded {
			if seen[ex.ID()] {
				return nil, fmt.Errorf("excluded card listed twice: %s", ex.Code())
			}
			seen[ex.ID()] = true
		}
		full.RemoveCards(excluded)
	}

	capacity := c.Deck.Capacity
	if capacity == 0 {
		capacity = full.Len()
	}
	if capacity < full.Len() {
		return nil, fmt.Errorf("capacity %d is smaller than the %d cards in the deck", capacity, full.Len())
	}

	d := New(rng, capacity, full.Cards()...)
	d.ID = c.Deck.ID
	d.Name = c.Deck.Name
	return d, nil
}

// Options converts the [values] table and ace_high flag into deck options
func (c *DeckConfig) Options() (Options, error) {
	opts := Options{AceHigh: c.Deck.AceHigh}
	if len(c.Values) == 0 {
		return opts, nil
	}

	opts.Values = make(map[card.Rank]int, len(c.Values))
	for symbol, value := range c.Values {
		r, err := card.ParseRank(symbol)
		if err != nil {
			return Options{}, fmt.Errorf("error in values: %v", err)
		}
		opts.Values[r] = value
	}
	return opts, nil
}

// Deck configuration structures
type DeckConfig struct {
	Deck   DeckSection    `toml:"deck"`
	Values map[string]int `toml:"values"`
}

type DeckSection struct {
	ID            string               `toml:"id"`
	Name          string               `toml:"name"`
	Version       string               `toml:"version"`
	Author        string               `toml:"author"`
	Description   string               `toml:"description"`
	AceHigh       bool                 `toml:"ace_high"`
	Capacity      int                  `toml:"capacity"`
	ExcludedCards *ExcludedCardSection `toml:"excluded_cards"`
}

type ExcludedCardSection struct {
	Cards  []string `toml:"cards"`
	Reason string   `toml:"reason"`
}
