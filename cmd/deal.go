package cmd

import (
	"fmt"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/freecell/internal/board"
	"github.com/arcanaland/freecell/internal/config"
	"github.com/arcanaland/freecell/internal/tui"
	"github.com/arcanaland/freecell/internal/validator"
)

// dealCmd prints a deal without starting a game
var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Print a deal and check it",
	Long: `Deal prints the starting board of a game without entering the interactive
terminal, followed by a check that every card was dealt exactly once.
It works when output is piped.

Examples:
  freecell deal --deal 1
  freecell deal --seed 42`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		cards, label, err := dealCards(cmd)
		if err != nil {
			return err
		}

		palette, err := tui.NewPalette(cfg.Theme)
		if err != nil {
			return err
		}

		b := board.Deal(cards)
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, colorize.CyanString("Deal: ")+colorize.HiWhiteString(label))
		fmt.Fprintln(out)
		fmt.Fprintln(out, strings.Join(tui.BoardLines(b, palette, nil), "\n"))
		fmt.Fprintln(out)

		results, err := validator.NewValidator(b).Validate()
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		if !results.Valid() {
			fmt.Fprintf(out, "❌ Deal %s has %d errors:\n", label, len(results.Errors))
			for i, e := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, e)
			}
			return fmt.Errorf("validation failed")
		}
		fmt.Fprintf(out, "✅ Deal %s holds all 52 cards exactly once.\n", label)

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(dealCmd)
}
