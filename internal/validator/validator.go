package validator

import (
	"fmt"

	"github.com/arcanaland/freecell/internal/board"
	"github.com/arcanaland/freecell/internal/card"
	"github.com/arcanaland/freecell/internal/deck"
	"github.com/arcanaland/freecell/internal/rules"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were found
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	Board   *board.Board
	Results ValidationResults
}

func NewValidator(b *board.Board) *Validator {
	return &Validator{
		Board:   b,
		Results: ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	if v.Board == nil {
		return v.Results, fmt.Errorf("no board to validate")
	}

	v.validateCardCount()
	v.validateCascades()
	v.validateFoundations()
	v.validateFreeCells()

	if v.Board.Solved() {
		v.Results.Warnings = append(v.Results.Warnings, "board is solved")
	}

	return v.Results, nil
}

// validateCardCount checks that every card of the deck is on the board exactly once
func (v *Validator) validateCardCount() {
	counts := make(map[card.Card]int)
	for _, c := range v.Board.Cards() {
		counts[c]++
	}

	for _, c := range deck.New() {
		switch n := counts[c]; {
		case n == 0:
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("card missing: %s", c))
		case n > 1:
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("card appears %d times: %s", n, c))
		}
		delete(counts, c)
	}

	// Anything left over is not a card of the deck
	for c, n := range counts {
		if c.IsEmpty() {
			continue
		}
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("unknown card token %q (%d)", c, n))
	}

	if total := len(v.Board.Cards()); total != deck.Size {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("board holds %d cards, expected %d", total, deck.Size))
	}
}

// validateCascades checks that cascades hold only real cards
func (v *Validator) validateCascades() {
	for i, cascade := range v.Board.Cascades {
		for j, c := range cascade {
			if c.IsEmpty() {
				v.Results.Errors = append(v.Results.Errors,
					fmt.Sprintf("cascade %d row %d holds an empty marker", i+1, j+1))
			}
		}
	}
}

// validateFoundations checks that each pile ascends by one in a single suit from an Ace
func (v *Validator) validateFoundations() {
	for i, pile := range v.Board.Foundations {
		for j, c := range pile {
			top := card.Empty
			if j > 0 {
				top = pile[j-1]
			}
			if !rules.CanMoveToFoundation(c, top) {
				v.Results.Errors = append(v.Results.Errors,
					fmt.Sprintf("foundation %d: %s cannot follow %q", i+1, c, top))
				break
			}
		}
	}
}

// validateFreeCells warns about cells whose card could already go home
func (v *Validator) validateFreeCells() {
	for i, c := range v.Board.Cells {
		if c.IsEmpty() {
			continue
		}
		for f := range v.Board.Foundations {
			if rules.CanMoveToFoundation(c, v.Board.FoundationTop(f)) {
				v.Results.Warnings = append(v.Results.Warnings,
					fmt.Sprintf("free cell %d: %s can be played to a foundation", i+1, c))
				break
			}
		}
	}
}
