package cmd

import (
	"fmt"

	"github.com/arcanaland/cribbage/internal/card"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [card]",
	Short: "Display information about a specific card",
	Long: `Show displays a playing card: its suit, rank, rank order and point value.
Use card codes like '5H', '10c', 'QD' or 'J♠'.

The point value comes from the deck given with --deck, the default deck from
your config, or a standard deck (aces low unless --ace-high is set).

Examples:
  cribbage show 5H
  cribbage show --ace-high AS
  cribbage show --deck ./short-deck JD`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := card.Parse(args[0])
		if err != nil {
			return err
		}

		cfg, rng, err := loadSession(cmd)
		if err != nil {
			return err
		}
		d, err := openDeck(cmd, cfg, rng)
		if err != nil {
			return err
		}

		held, inDeck := d.Lookup(c)
		if inDeck {
			c = held
		}

		displayCard(c, d.Name, inDeck)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
	addSessionFlags(showCmd)
}

// displayCard prints the card's details
func displayCard(c card.Card, deckName string, inDeck bool) {
	lines := []string{
		label("Card:  ") + colorize.HiWhiteString(c.Name()),
		label("Code:  ") + cardString(c) + " (" + c.Code() + ")",
		label("Deck:  ") + colorize.HiWhiteString(deckName),
		label("Suit:  ") + colorize.HiWhiteString("%s · %s", c.Suit().Name(), c.Suit()),
		label("Rank:  ") + colorize.HiWhiteString("%s · order %d of 13", c.Rank().Name(), int(c.Rank())),
		label("Value: ") + colorize.HiWhiteString("%d", c.Value()),
	}

	if !inDeck {
		lines = append(lines, colorize.YellowString("This card is not part of the deck; showing its standard value."))
	}

	if c.Rank() == card.Jack {
		note := "A jack in hand matching the starter's suit scores one for nobs. " +
			"Turned up as the starter, it scores two for the dealer."
		lines = append(lines, "")
		lines = append(lines, wrapText(note, terminalWidth()-4)...)
	}

	fmt.Println()
	for _, line := range lines {
		fmt.Println("  " + line)
	}
	fmt.Println()
}
