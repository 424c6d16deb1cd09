package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/arcanaland/cribbage/internal/card"
	"github.com/arcanaland/cribbage/internal/config"
	"github.com/arcanaland/cribbage/internal/deck"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage decks in your deck library",
	Long:  `Commands for managing deck definitions in your deck library and drawing from them.`,
}

// deckListCmd represents the deck list command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available decks in your deck library",
	RunE: func(cmd *cobra.Command, args []string) error {
		libraryPath := config.GetDeckLibraryPath()

		// Check if deck library exists
		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Printf("Deck library at %s does not exist.\n", libraryPath)
			fmt.Println("Run 'cribbage deck init' to create it.")
			return nil
		}

		libraryPath, err := filepath.EvalSymlinks(libraryPath)
		if err != nil {
			return fmt.Errorf("error resolving symbolic link: %v", err)
		}

		defaultDeck, err := config.GetDefaultDeck()
		if err != nil {
			return fmt.Errorf("error getting default deck: %v", err)
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			return fmt.Errorf("error reading deck library: %v", err)
		}

		if len(entries) == 0 {
			fmt.Println("No decks found in your deck library.")
			fmt.Println("You can add decks by copying them to:", libraryPath)
			return nil
		}

		for _, entry := range entries {
			entryPath := filepath.Join(libraryPath, entry.Name())
			fileInfo, err := os.Stat(entryPath)
			if err != nil {
				fmt.Printf("Error resolving entry %s: %v\n", entry.Name(), err)
				continue
			}
			if !fileInfo.IsDir() {
				continue
			}

			d, err := deck.LoadConfig(entryPath)
			if err != nil {
				// Not a valid deck, skip
				continue
			}

			if entry.Name() == defaultDeck {
				fmt.Printf("* %s (%s) %s\n", entry.Name(), d.Deck.Name, colorize.GreenString("[DEFAULT]"))
			} else {
				fmt.Printf("  %s (%s)\n", entry.Name(), d.Deck.Name)
			}
		}
		return nil
	},
}

// deckSetDefaultCmd represents the deck set-default command
var deckSetDefaultCmd = &cobra.Command{
	Use:   "set-default [deck_name]",
	Short: "Set the default deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckName := args[0]

		deckPath, err := config.GetDeckPath(deckName)
		if err != nil {
			return err
		}

		// Try to load the deck to make sure it's valid
		if _, err := deck.LoadDeck(deckPath, rand.New(rand.NewSource(1))); err != nil {
			return fmt.Errorf("not a valid deck: %v", err)
		}

		if err := config.SetDefaultDeck(deckName); err != nil {
			return fmt.Errorf("error setting default deck: %v", err)
		}

		fmt.Printf("Default deck set to: %s\n", deckName)
		return nil
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the deck library",
	RunE: func(cmd *cobra.Command, args []string) error {
		libraryPath := config.GetDeckLibraryPath()

		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating deck library: %v", err)
		}

		fmt.Println("Deck library initialized at:", libraryPath)
		fmt.Println("You can now add decks by copying them to this directory.")

		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %v", err)
		}

		fmt.Println("Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

// deckDrawCmd represents the deck draw command
var deckDrawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Shuffle a deck and draw cards from it",
	Long: `Draw shuffles a deck and draws cards from the top of it, or at random with
--random. Drawing from the top is all or nothing: asking for more cards than
the deck holds draws none. A random draw takes as many as are available.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		random, _ := cmd.Flags().GetBool("random")

		cfg, rng, err := loadSession(cmd)
		if err != nil {
			return err
		}

		d, err := openDeck(cmd, cfg, rng)
		if err != nil {
			return err
		}
		d.Shuffle()

		var drawn []card.Card
		if random {
			drawn = d.RandomDraw(count)
		} else {
			drawn = d.DrawCards(count)
		}

		fmt.Println(label("Deck:  ") + d.Name)
		fmt.Println(label("Drawn: ") + cardsString(drawn))
		if len(drawn) < count {
			colorize.Yellow("asked for %d cards, drew %d", count, len(drawn))
		}
		if top, ok := d.Peek(); ok {
			fmt.Println(label("Top:   ") + cardString(top))
		}
		fmt.Printf("%s%d/%d\n", label("Left:  "), d.Len(), d.Cap())
		return nil
	},
}

// loadSession reads the configuration and builds the random source, honouring
// the --seed and --ace-high flags where a command defines them.
func loadSession(cmd *cobra.Command) (*config.Config, *rand.Rand, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("error loading config: %v", err)
	}

	if f := cmd.Flags().Lookup("seed"); f != nil && f.Changed {
		cfg.Seed, _ = cmd.Flags().GetInt64("seed")
	}
	if f := cmd.Flags().Lookup("ace-high"); f != nil && f.Changed {
		cfg.AceHigh, _ = cmd.Flags().GetBool("ace-high")
	}

	rng, seed := config.NewSeededRNG(cfg.Seed)
	cfg.Seed = seed
	return cfg, rng, nil
}

// openDeck loads the deck named by --deck, else the configured default deck,
// else a standard deck.
func openDeck(cmd *cobra.Command, cfg *config.Config, rng *rand.Rand) (*deck.Deck, error) {
	deckName := cfg.DefaultDeck
	if f := cmd.Flags().Lookup("deck"); f != nil && f.Changed {
		deckName = f.Value.String()
	}

	if deckName == "" {
		return deck.NewStandard(rng, deck.Options{AceHigh: cfg.AceHigh}), nil
	}

	deckPath, err := config.GetDeckPath(deckName)
	if err != nil {
		return nil, err
	}
	return loadDefinition(deckPath, cfg.AceHigh, rng)
}

// loadDefinition builds a deck from its definition. aceHigh forces aces to
// 11 on top of the definition; an explicit A entry under [values] still wins.
func loadDefinition(deckPath string, aceHigh bool, rng *rand.Rand) (*deck.Deck, error) {
	def, err := deck.LoadConfig(deckPath)
	if err != nil {
		return nil, fmt.Errorf("error loading deck: %v", err)
	}
	if aceHigh {
		def.Deck.AceHigh = true
	}
	d, err := def.Build(rng)
	if err != nil {
		return nil, fmt.Errorf("error loading deck: %v", err)
	}
	return d, nil
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckSetDefaultCmd)
	deckCmd.AddCommand(deckInitCmd)
	deckCmd.AddCommand(deckDrawCmd)

	deckDrawCmd.Flags().IntP("count", "n", 1, "Number of cards to draw")
	deckDrawCmd.Flags().Bool("random", false, "Draw cards at random positions instead of from the top")
	addSessionFlags(deckDrawCmd)
}

// addSessionFlags registers the flags read by loadSession and openDeck
func addSessionFlags(c *cobra.Command) {
	c.Flags().StringP("deck", "d", "", "Specify a deck from your deck library or a path to a deck")
	c.Flags().Int64("seed", 0, "Seed for shuffling and random picks (0 uses the clock)")
	c.Flags().Bool("ace-high", false, "Count aces as 11, in the standard deck or any deck definition")
}
