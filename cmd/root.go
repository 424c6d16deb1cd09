package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cribbage",
	Short: "Tool for scoring cribbage hands and managing card decks",
	Long: `Cribbage is a command-line tool for scoring cribbage hands, inspecting cards
and managing the deck definitions used to deal them.`,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
