package board

import (
	"slices"

	"github.com/arcanaland/freecell/internal/card"
	"github.com/arcanaland/freecell/internal/rules"
)

// Pick returns the cards that would move when the player selects p: the
// single card of a free cell, or everything from p to the end of the
// cascade. The run must be an alternating-colour descending sequence.
func (b *Board) Pick(p Position) ([]card.Card, error) {
	switch {
	case p.Col < 0 || p.Col >= Columns || p.Row < 0:
		return nil, ErrEmptySource
	case p.IsFoundation():
		return nil, ErrFoundationPick
	case p.IsFreeCell():
		if b.Cells[p.Col].IsEmpty() {
			return nil, ErrEmptySource
		}
		return []card.Card{b.Cells[p.Col]}, nil
	case p.Row > len(b.Cascades[p.Col]):
		return nil, ErrEmptySource
	}

	run := slices.Clone(b.Cascades[p.Col][p.Row-1:])
	if !rules.ValidRun(run) {
		return nil, ErrInvalidRun
	}
	return run, nil
}

// Check validates moving the run at from to the destination without
// changing the board, and returns the run that would move.
func (b *Board) Check(from Position, to Destination, opts Options) ([]card.Card, error) {
	run, err := b.Pick(from)
	if err != nil {
		return nil, err
	}
	if to.Col < 0 || to.Col >= Columns {
		return nil, ErrIllegalMove
	}

	if to.Top {
		// Free cells and foundations hold one card at a time.
		if len(run) != 1 {
			return nil, ErrIllegalMove
		}
		if to.Col < FreeCells {
			if !b.Cells[to.Col].IsEmpty() {
				return nil, ErrIllegalMove
			}
			return run, nil
		}
		if !rules.CanMoveToFoundation(run[0], b.FoundationTop(to.Col-FreeCells)) {
			return nil, ErrIllegalMove
		}
		return run, nil
	}

	if !from.IsFreeCell() && from.Col == to.Col {
		return nil, ErrIllegalMove
	}

	dest := b.Cascades[to.Col]
	destEmpty := len(dest) == 0
	if !destEmpty && !rules.CanMove(run[0], dest[len(dest)-1]) {
		return nil, ErrIllegalMove
	}

	if opts.RestrictMovement {
		limit := rules.MaxRunLength(b.FreeCellsAvailable(), b.EmptyCascades(), destEmpty, opts.Supermove)
		if len(run) > limit {
			return nil, ErrRunTooLong
		}
	}

	return run, nil
}

// Move relocates the run at from to the destination. A rejected move
// returns the rule it broke and leaves the board untouched.
func (b *Board) Move(from Position, to Destination, opts Options) ([]card.Card, error) {
	run, err := b.Check(from, to, opts)
	if err != nil {
		return nil, err
	}

	if from.IsFreeCell() {
		// the slot stays in place so the header keeps its layout
		b.Cells[from.Col] = card.Empty
	} else {
		b.Cascades[from.Col] = b.Cascades[from.Col][:from.Row-1]
	}

	switch {
	case to.Top && to.Col < FreeCells:
		b.Cells[to.Col] = run[0]
	case to.Top:
		b.Foundations[to.Col-FreeCells] = append(b.Foundations[to.Col-FreeCells], run[0])
	default:
		b.Cascades[to.Col] = append(b.Cascades[to.Col], run...)
	}

	return run, nil
}
