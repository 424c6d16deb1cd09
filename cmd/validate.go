package cmd

import (
	"fmt"
	"os"

	"github.com/arcanaland/cribbage/internal/deck"
	"github.com/arcanaland/cribbage/internal/validator"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a deck definition directory",
	Long: `Validate checks that a deck directory contains a well-formed deck.toml:
required metadata, parseable excluded cards, sane value overrides and a
capacity large enough to hold the deck. A valid deck also reports how many
cards remain after exclusions.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckPath := args[0]

		// Check if path exists
		if _, err := os.Stat(deckPath); os.IsNotExist(err) {
			return fmt.Errorf("deck directory not found: %s", deckPath)
		}

		v := validator.NewValidator(deckPath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			colorize.Green("✅ Deck '%s' is valid.", deckPath)
		} else {
			colorize.Red("❌ Deck '%s' has %d validation errors:", deckPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		fmt.Printf("%s%d of %d, capacity %d\n", label("Cards: "), results.Cards, deck.StandardSize, results.Capacity)

		if len(results.Warnings) > 0 {
			colorize.Yellow("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
