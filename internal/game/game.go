// Package game drives one FreeCell game: a cursor, a two-step pick and
// place turn, and the board it mutates.
//
// A turn starts in the Pick phase, where the cursor addresses any slot of
// the board. Confirming a pick validates the run under the cursor and moves
// to the Place phase, where the cursor only chooses a column and whether
// the header slot (free cell or foundation) or the cascade is meant.
// Confirming a placement applies the move when legal. Illegal picks and
// moves are dropped silently and the turn starts over.
package game

import (
	"github.com/rs/zerolog"

	"github.com/arcanaland/freecell/internal/board"
	"github.com/arcanaland/freecell/internal/card"
	"github.com/arcanaland/freecell/internal/validator"
)

// Key is an input event, already decoded from the terminal
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyTop
	KeyBottom
	KeyConfirm
	KeyCancel
	KeyQuit
)

// Phase is the step of the current turn
type Phase int

const (
	PhasePick Phase = iota
	PhasePlace
)

func (p Phase) String() string {
	if p == PhasePlace {
		return "place"
	}
	return "pick"
}

// Game owns the board and the turn state
type Game struct {
	Board   *board.Board
	Options board.Options

	Cursor board.Position
	Phase  Phase
	// Picked is the source of the run being moved, valid in PhasePlace
	Picked board.Position
	// Top selects the header slot of the cursor column in PhasePlace
	Top bool

	Moves int

	log zerolog.Logger
}

// New starts a game on b
func New(b *board.Board, opts board.Options, log zerolog.Logger) *Game {
	return &Game{
		Board:   b,
		Options: opts,
		log:     log,
	}
}

// HandleKey advances the state machine by one key. It returns false once
// the player asked to quit.
func (g *Game) HandleKey(k Key) bool {
	if k == KeyQuit {
		return false
	}

	if g.Phase == PhasePick {
		g.handlePick(k)
	} else {
		g.handlePlace(k)
	}
	return true
}

func (g *Game) handlePick(k Key) {
	switch k {
	case KeyLeft:
		g.moveColumn(-1)
	case KeyRight:
		g.moveColumn(1)
	case KeyUp:
		g.Cursor.Row--
	case KeyDown:
		g.Cursor.Row++
	case KeyTop:
		g.Cursor.Row = 0
	case KeyBottom:
		g.Cursor.Row = g.Board.Height(g.Cursor.Col)
	case KeyConfirm:
		g.SelectSource(g.Cursor)
	}
	g.clampRow()
}

func (g *Game) handlePlace(k Key) {
	switch k {
	case KeyLeft:
		g.moveColumn(-1)
	case KeyRight:
		g.moveColumn(1)
	case KeyUp, KeyDown:
		g.Top = !g.Top
	case KeyTop:
		g.Top = true
	case KeyBottom:
		g.Top = false
	case KeyCancel:
		g.Cancel()
	case KeyConfirm:
		g.SelectDestination(board.Destination{Col: g.Cursor.Col, Top: g.Top})
	}
}

func (g *Game) moveColumn(delta int) {
	g.Cursor.Col = min(max(g.Cursor.Col+delta, 0), board.Columns-1)
}

// clampRow keeps the pick cursor between the header and the last card
func (g *Game) clampRow() {
	g.Cursor.Row = min(max(g.Cursor.Row, 0), g.Board.Height(g.Cursor.Col))
}

// SelectSource picks the run at p. An invalid pick keeps the game in the
// pick phase and reports false.
func (g *Game) SelectSource(p board.Position) bool {
	run, err := g.Board.Pick(p)
	if err != nil {
		g.log.Debug().Err(err).Int("col", p.Col).Int("row", p.Row).Msg("pick rejected")
		return false
	}

	g.log.Debug().Int("col", p.Col).Int("row", p.Row).Int("cards", len(run)).Msg("picked")
	g.Picked = p
	g.Cursor = p
	g.Phase = PhasePlace
	g.Top = false
	return true
}

// SelectDestination completes the turn by placing the picked run at dest.
// The turn ends whether or not the move was legal.
func (g *Game) SelectDestination(dest board.Destination) bool {
	if g.Phase != PhasePlace {
		return false
	}
	from := g.Picked
	g.Phase = PhasePick
	g.Cursor.Col = dest.Col
	defer g.clampRow()

	run, err := g.Board.Move(from, dest, g.Options)
	if err != nil {
		g.log.Debug().Err(err).
			Int("from_col", from.Col).Int("from_row", from.Row).
			Int("to_col", dest.Col).Bool("top", dest.Top).
			Msg("move rejected")
		return false
	}

	g.Moves++
	g.log.Debug().
		Strs("cards", cardStrings(run)).
		Int("from_col", from.Col).Int("to_col", dest.Col).Bool("top", dest.Top).
		Int("moves", g.Moves).
		Msg("moved")

	g.checkBoard()
	if g.Board.Solved() {
		g.log.Info().Int("moves", g.Moves).Msg("solved")
	}
	return true
}

// Cancel abandons the current pick without touching the board
func (g *Game) Cancel() {
	if g.Phase == PhasePlace {
		g.Cursor = g.Picked
	}
	g.Phase = PhasePick
	g.Top = false
	g.clampRow()
}

// Solved reports whether every card is on a foundation
func (g *Game) Solved() bool {
	return g.Board.Solved()
}

// checkBoard logs any broken board invariant. It never changes the game.
func (g *Game) checkBoard() {
	results, err := validator.NewValidator(g.Board).Validate()
	if err != nil {
		g.log.Error().Err(err).Msg("board validation failed")
		return
	}
	for _, e := range results.Errors {
		g.log.Error().Str("problem", e).Msg("board invariant broken")
	}
}

func cardStrings(run []card.Card) []string {
	out := make([]string, len(run))
	for i, c := range run {
		out[i] = c.String()
	}
	return out
}
