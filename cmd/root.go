package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/arcanaland/freecell/internal/board"
	"github.com/arcanaland/freecell/internal/card"
	"github.com/arcanaland/freecell/internal/config"
	"github.com/arcanaland/freecell/internal/deck"
	"github.com/arcanaland/freecell/internal/game"
	"github.com/arcanaland/freecell/internal/tui"
)

// RootCmd represents the base command: play a game
var RootCmd = &cobra.Command{
	Use:   "freecell",
	Short: "Play FreeCell solitaire in the terminal",
	Long: `FreeCell deals the 52 cards into eight cascades. Move every card to the
four foundations, building each up by suit from Ace to King.

Move the cursor with the arrow keys or h/j/k/l, K/J or PageUp/PageDown jump
to the top or bottom. Space or Enter picks a card (and every card below it)
and then places it: on a cascade, on a free cell or on a foundation. Esc
cancels a pick, q quits.

Examples:
  freecell
  freecell --deal 617
  freecell --seed 42 --supermove
  freecell --no-restrict`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	RootCmd.PersistentFlags().Uint64("seed", 0, "Shuffle with this seed instead of a random one")
	RootCmd.PersistentFlags().Int("deal", 0, fmt.Sprintf("Play a classic numbered deal (1-%d)", deck.MaxNumbered))

	RootCmd.Flags().Bool("no-restrict", false, "Allow runs of any length to move at once")
	RootCmd.Flags().Bool("supermove", false, "Let each empty cascade double the movable run length")
	RootCmd.Flags().String("log-file", "", "Append a JSON move log to this file")
	RootCmd.Flags().String("log-level", "", "Log level (debug, info, warn, error)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

func runGame(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	opts := board.Options{
		RestrictMovement: cfg.RestrictMovement,
		Supermove:        cfg.Supermove,
	}
	if noRestrict, _ := cmd.Flags().GetBool("no-restrict"); noRestrict {
		opts.RestrictMovement = false
	}
	if cmd.Flags().Changed("supermove") {
		opts.Supermove, _ = cmd.Flags().GetBool("supermove")
	}

	logFile, logLevel := cfg.LogFile, cfg.LogLevel
	if cmd.Flags().Changed("log-file") {
		logFile, _ = cmd.Flags().GetString("log-file")
	}
	if cmd.Flags().Changed("log-level") {
		logLevel, _ = cmd.Flags().GetString("log-level")
	}
	logger, closeLog, err := newLogger(logFile, logLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	cards, label, err := dealCards(cmd)
	if err != nil {
		return err
	}

	palette, err := tui.NewPalette(cfg.Theme)
	if err != nil {
		return err
	}

	t, err := tui.Open(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer t.Close()

	if width, _ := t.Size(); width < tui.MinWidth {
		logger.Warn().Int("width", width).Int("needed", tui.MinWidth).Msg("terminal too narrow for the board")
	}

	g := game.New(board.Deal(cards), opts, logger)
	logger.Info().
		Str("deal", label).
		Bool("restrict_movement", opts.RestrictMovement).
		Bool("supermove", opts.Supermove).
		Msg("game started")

	for {
		if err := tui.Render(t.Writer(), g, palette); err != nil {
			return err
		}

		k, err := t.ReadKey()
		if err != nil {
			return err
		}
		if !g.HandleKey(k) {
			break
		}
	}

	logger.Info().Int("moves", g.Moves).Bool("solved", g.Solved()).Msg("game ended")
	return nil
}

// dealCards returns the card order selected by --deal or --seed, with a
// label naming the deal so it can be replayed.
func dealCards(cmd *cobra.Command) ([]card.Card, string, error) {
	number, _ := cmd.Flags().GetInt("deal")
	seed, _ := cmd.Flags().GetUint64("seed")

	if cmd.Flags().Changed("deal") {
		if cmd.Flags().Changed("seed") {
			return nil, "", fmt.Errorf("use either --seed or --deal, not both")
		}
		cards, err := deck.Numbered(number)
		if err != nil {
			return nil, "", err
		}
		return cards, fmt.Sprintf("#%d", number), nil
	}

	if !cmd.Flags().Changed("seed") {
		seed = uint64(time.Now().UnixNano())
	}
	return deck.Shuffled(seed), fmt.Sprintf("seed %d", seed), nil
}
