package tui

import (
	"fmt"
	"io"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/arcanaland/freecell/internal/board"
	"github.com/arcanaland/freecell/internal/card"
	"github.com/arcanaland/freecell/internal/config"
	"github.com/arcanaland/freecell/internal/game"
)

const (
	// indent puts the first card at column 8, like a leading tab
	indent = "       "
	// slotWidth is the screen width of one column: marker, card, marker, padding
	slotWidth = 8

	// MinWidth is the narrowest terminal that shows every column
	MinWidth = len(indent) + 1 + board.Columns*slotWidth
)

// Palette colours card text
type Palette struct {
	red    func(a ...interface{}) string
	marker func(a ...interface{}) string
}

// NewPalette builds a palette from the theme. Empty theme entries use the
// terminal's own colours via fatih/color.
func NewPalette(theme config.Theme) (*Palette, error) {
	p := &Palette{
		red:    colorize.New(colorize.FgRed).SprintFunc(),
		marker: colorize.New(colorize.Bold).SprintFunc(),
	}

	if theme.Red != "" {
		fn, err := hexPainter(theme.Red)
		if err != nil {
			return nil, fmt.Errorf("invalid theme.red: %v", err)
		}
		p.red = fn
	}
	if theme.Cursor != "" {
		fn, err := hexPainter(theme.Cursor)
		if err != nil {
			return nil, fmt.Errorf("invalid theme.cursor: %v", err)
		}
		p.marker = fn
	}
	return p, nil
}

// hexPainter paints text in a 24-bit foreground colour
func hexPainter(hex string) (func(a ...interface{}) string, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, err
	}
	r, g, b := c.RGB255()
	return func(a ...interface{}) string {
		s := fmt.Sprint(a...)
		if colorize.NoColor {
			return s
		}
		return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, s)
	}, nil
}

func (p *Palette) paint(c card.Card) string {
	if c.Color() == card.Red {
		return p.red(c.String())
	}
	return c.String()
}

// BoardLines lays out the board: the header row of free cells and
// foundations, a blank line, then one line per cascade row. When picked is
// set, that card is framed with [ ].
func BoardLines(b *board.Board, p *Palette, picked *board.Position) []string {
	height := 0
	for col := 0; col < board.Columns; col++ {
		height = max(height, b.Height(col))
	}

	lines := make([]string, 0, height+2)
	lines = append(lines, boardRow(b, p, picked, 0), "")
	for row := 1; row <= height; row++ {
		lines = append(lines, boardRow(b, p, picked, row))
	}
	return lines
}

func boardRow(b *board.Board, p *Palette, picked *board.Position, row int) string {
	var sb strings.Builder
	sb.WriteString(indent)
	for col := 0; col < board.Columns; col++ {
		pos := board.Position{Col: col, Row: row}
		left, right := " ", " "
		if picked != nil && *picked == pos {
			left, right = p.marker("["), p.marker("]")
		}
		sb.WriteString(left)
		sb.WriteString(p.paint(b.At(pos)))
		sb.WriteString(right)
		sb.WriteString(strings.Repeat(" ", slotWidth-5))
	}
	return strings.TrimRight(sb.String(), " ")
}

// Frame renders the whole screen for g in raw-mode line endings, and
// leaves the terminal cursor on the game cursor.
func Frame(g *game.Game, p *Palette) string {
	var picked *board.Position
	if g.Phase == game.PhasePlace {
		picked = &g.Picked
	}
	lines := BoardLines(g.Board, p, picked)

	var sb strings.Builder
	sb.WriteString(clearScreen)
	sb.WriteString(strings.Join(lines, "\r\n"))
	sb.WriteString("\r\n\r\n")
	sb.WriteString(status(g))

	x, y := cursorCell(g, len(lines))
	fmt.Fprintf(&sb, "\x1b[%d;%dH", y+1, x+1)
	return sb.String()
}

// cursorCell returns the 0-based screen column and line of the game cursor
func cursorCell(g *game.Game, boardLines int) (int, int) {
	x := len(indent) + 1 + g.Cursor.Col*slotWidth
	switch {
	case g.Phase == game.PhasePlace && g.Top:
		return x, 0
	case g.Phase == game.PhasePlace:
		// just below the longest cascade
		return x, boardLines
	case g.Cursor.Row == 0:
		return x, 0
	default:
		return x, g.Cursor.Row + 1
	}
}

func status(g *game.Game) string {
	if g.Solved() {
		return fmt.Sprintf("Solved in %d moves! Press q to quit.", g.Moves)
	}

	restrict := "off"
	if g.Options.RestrictMovement {
		restrict = "on"
		if g.Options.Supermove {
			restrict = "supermove"
		}
	}
	return fmt.Sprintf("%s · moves %d · free cells %d · restrict %s · hjkl move, space select, esc cancel, q quit",
		g.Phase, g.Moves, g.Board.FreeCellsAvailable(), restrict)
}

// Render writes the frame for g to w
func Render(w io.Writer, g *game.Game, p *Palette) error {
	if _, err := io.WriteString(w, Frame(g, p)); err != nil {
		return fmt.Errorf("error drawing board: %v", err)
	}
	return nil
}
