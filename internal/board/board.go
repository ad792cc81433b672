package board

import (
	"errors"
	"slices"

	"github.com/arcanaland/freecell/internal/card"
	"github.com/arcanaland/freecell/internal/deck"
)

const (
	// Columns is the board width; the header row splits it into free cells
	// and foundations.
	Columns     = deck.Cascades
	FreeCells   = 4
	Foundations = 4
)

// Rule violations. The game never shows these to the player; a rejected
// move just leaves the board as it was.
var (
	ErrEmptySource    = errors.New("nothing to pick at that position")
	ErrFoundationPick = errors.New("cards cannot be taken back from a foundation")
	ErrInvalidRun     = errors.New("cards below the pick are not an alternating descending run")
	ErrIllegalMove    = errors.New("destination does not accept the picked cards")
	ErrRunTooLong     = errors.New("run is longer than free cells and empty cascades allow")
)

// Position addresses a slot by column and row. Row 0 is the header: free
// cells in columns 0-3 and foundations in columns 4-7. Row r >= 1 is the
// r-th card of the cascade, counted from the bottom of the pile.
type Position struct {
	Col int
	Row int
}

// IsFreeCell reports whether p addresses a free cell
func (p Position) IsFreeCell() bool {
	return p.Row == 0 && p.Col >= 0 && p.Col < FreeCells
}

// IsFoundation reports whether p addresses a foundation
func (p Position) IsFoundation() bool {
	return p.Row == 0 && p.Col >= FreeCells && p.Col < Columns
}

// Destination is where a picked run is placed: the header slot of a
// column when Top is set, the end of the cascade otherwise.
type Destination struct {
	Col int
	Top bool
}

// Options toggles the optional movement rules
type Options struct {
	// RestrictMovement limits run moves to MaxRunLength cards
	RestrictMovement bool
	// Supermove uses the doubling capacity formula instead of the linear one
	Supermove bool
}

// Board is the whole game state.
type Board struct {
	Cells       [FreeCells]card.Card
	Foundations [Foundations][]card.Card
	Cascades    [Columns][]card.Card
}

// New builds a board from dealt cascades with empty free cells and
// foundations.
func New(cascades [Columns][]card.Card) *Board {
	b := &Board{}
	for i := range b.Cells {
		b.Cells[i] = card.Empty
	}
	for i, cascade := range cascades {
		b.Cascades[i] = slices.Clone(cascade)
	}
	return b
}

// Deal spreads cards round-robin into a fresh board
func Deal(cards []card.Card) *Board {
	return New(deck.Deal(cards))
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	c := &Board{Cells: b.Cells}
	for i := range b.Foundations {
		c.Foundations[i] = slices.Clone(b.Foundations[i])
	}
	for i := range b.Cascades {
		c.Cascades[i] = slices.Clone(b.Cascades[i])
	}
	return c
}

// Height returns the number of cards in a cascade
func (b *Board) Height(col int) int {
	if col < 0 || col >= Columns {
		return 0
	}
	return len(b.Cascades[col])
}

// FoundationTop returns the top card of foundation i, or card.Empty
func (b *Board) FoundationTop(i int) card.Card {
	pile := b.Foundations[i]
	if len(pile) == 0 {
		return card.Empty
	}
	return pile[len(pile)-1]
}

// At returns the card at p, or card.Empty when nothing is there.
func (b *Board) At(p Position) card.Card {
	switch {
	case p.Col < 0 || p.Col >= Columns || p.Row < 0:
		return card.Empty
	case p.IsFreeCell():
		return b.Cells[p.Col]
	case p.IsFoundation():
		return b.FoundationTop(p.Col - FreeCells)
	case p.Row > len(b.Cascades[p.Col]):
		return card.Empty
	default:
		return b.Cascades[p.Col][p.Row-1]
	}
}

// FreeCellsAvailable counts empty free cells
func (b *Board) FreeCellsAvailable() int {
	n := 0
	for _, c := range b.Cells {
		if c.IsEmpty() {
			n++
		}
	}
	return n
}

// EmptyCascades counts cascades with no cards
func (b *Board) EmptyCascades() int {
	n := 0
	for _, cascade := range b.Cascades {
		if len(cascade) == 0 {
			n++
		}
	}
	return n
}

// Solved reports whether every card has reached a foundation
func (b *Board) Solved() bool {
	total := 0
	for _, pile := range b.Foundations {
		total += len(pile)
	}
	return total == deck.Size
}

// Cards returns every card on the board: free cells, then foundations,
// then cascades. Empty free cells are skipped.
func (b *Board) Cards() []card.Card {
	out := make([]card.Card, 0, deck.Size)
	for _, c := range b.Cells {
		if !c.IsEmpty() {
			out = append(out, c)
		}
	}
	for _, pile := range b.Foundations {
		out = append(out, pile...)
	}
	for _, cascade := range b.Cascades {
		out = append(out, cascade...)
	}
	return out
}
