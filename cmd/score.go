package cmd

import (
	"fmt"
	"strings"

	"github.com/arcanaland/cribbage/internal/card"
	"github.com/arcanaland/cribbage/internal/deck"
	"github.com/arcanaland/cribbage/internal/hand"
	"github.com/arcanaland/cribbage/internal/scoring"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

// HandSize is the number of cards a scored hand holds
const HandSize = 4

var scoreCmd = &cobra.Command{
	Use:   "score [card] [card] [card] [card]",
	Short: "Score a cribbage hand against a starter card",
	Long: `Score counts a four-card hand together with the starter card and prints
the points for each rule: fifteens, pairs, runs, flush and nobs.

Card values come from the selected deck, so --ace-high or a deck with value
overrides changes how fifteens are counted.

Examples:
  cribbage score 5H 10C QD JS --starter 5D
  cribbage score 3H 4S 5D 5C -s 6H`,
	Args: cobra.ExactArgs(HandSize),
	RunE: func(cmd *cobra.Command, args []string) error {
		starterCode, _ := cmd.Flags().GetString("starter")
		if starterCode == "" {
			return fmt.Errorf("a starter card is required (--starter)")
		}

		cfg, rng, err := loadSession(cmd)
		if err != nil {
			return err
		}
		d, err := openDeck(cmd, cfg, rng)
		if err != nil {
			return err
		}

		codes := append(append([]string{}, args...), starterCode)
		cards, err := card.ParseAll(codes)
		if err != nil {
			return err
		}
		cards, err = takeFromDeck(d, cards)
		if err != nil {
			return err
		}

		h := hand.New()
		h.SetCards(cards[:HandSize])
		starter := cards[HandSize]

		displayScore(h, starter)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().StringP("starter", "s", "", "The starter card turned up after the deal")
	addSessionFlags(scoreCmd)
}

// takeFromDeck removes the requested cards from the deck so each can only be
// used once, returning them with the deck's point values.
func takeFromDeck(d *deck.Deck, cards []card.Card) ([]card.Card, error) {
	valued := make([]card.Card, 0, len(cards))
	seen := make(map[card.ID]bool, len(cards))
	for _, c := range cards {
		if seen[c.ID()] {
			return nil, fmt.Errorf("card %s given more than once", c.Code())
		}
		seen[c.ID()] = true

		held, ok := d.Lookup(c)
		if !ok {
			valued = append(valued, c)
			continue
		}
		valued = append(valued, held)
	}

	if missing := d.RemoveCards(valued); len(missing) > 0 {
		codes := make([]string, len(missing))
		for i, c := range missing {
			codes[i] = c.Code()
		}
		return nil, fmt.Errorf("cards not available in deck %s: %s", d.Name, strings.Join(codes, ", "))
	}
	return valued, nil
}

func displayScore(h *hand.Hand, starter card.Card) {
	b := h.Breakdown(starter)
	width := terminalWidth()

	fmt.Println()
	fmt.Println("  " + label("Hand:    ") + cardsString(h.Cards()))
	fmt.Println("  " + label("Starter: ") + cardString(starter))
	fmt.Println()

	rows := []struct {
		name   string
		points int
	}{
		{"Fifteens", b.Fifteens},
		{"Pairs", b.Pairs},
		{"Runs", b.Runs},
		{"Flush", b.Flush},
		{"Nobs", b.Nobs},
	}
	for _, row := range rows {
		points := fmt.Sprintf("%2d", row.points)
		if row.points > 0 {
			points = colorize.HiGreenString(points)
		}
		fmt.Printf("  %s %s\n", label(fmt.Sprintf("%-9s", row.name)), points)
	}

	combos := scoring.FifteenCombos(h.Cards(), starter)
	if len(combos) > 0 {
		parts := make([]string, len(combos))
		for i, set := range combos {
			parts[i] = "{" + cardsString(set) + "}"
		}
		for _, line := range wrapText(strings.Join(parts, " "), width-14) {
			fmt.Println(strings.Repeat(" ", 14) + line)
		}
	}

	fmt.Printf("  %s %s\n", label(fmt.Sprintf("%-9s", "Total")), colorize.HiWhiteString("%2d", b.Total()))

	if heels := scoring.FlipJack(starter); heels > 0 {
		fmt.Println()
		colorize.Yellow("  Starter is a jack: %d for the dealer, not counted in this hand.", heels)
	}
	fmt.Println()
}
