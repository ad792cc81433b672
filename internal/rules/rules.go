// Package rules holds the FreeCell movement predicates. Everything here is
// pure and works on card tokens alone.
package rules

import "github.com/arcanaland/freecell/internal/card"

// CanMove reports whether picked may sit on top of dest in a cascade: one
// rank lower and the opposite colour.
func CanMove(picked, dest card.Card) bool {
	return picked.Value()+1 == dest.Value() && picked.Color() != dest.Color()
}

// CanMoveToFoundation reports whether c may be played on a foundation whose
// top card is top. An empty foundation only takes an Ace.
func CanMoveToFoundation(c, top card.Card) bool {
	if c.IsEmpty() {
		return false
	}
	if top.IsEmpty() {
		return c.Value() == 1
	}
	return c.Value() == top.Value()+1 && c.Suit() == top.Suit()
}

// ValidRun reports whether run is an alternating-colour descending sequence.
// Single cards are always valid; an empty run is not.
func ValidRun(run []card.Card) bool {
	if len(run) == 0 {
		return false
	}
	for i := 1; i < len(run); i++ {
		if !CanMove(run[i], run[i-1]) {
			return false
		}
	}
	return true
}

// MaxRunLength is the longest run that can be relocated in one move given
// the number of free cells and empty cascades. An empty destination cascade
// cannot also serve as staging space.
//
// The linear form counts one extra card per free cell or empty cascade.
// The supermove form doubles the capacity for every usable empty cascade.
func MaxRunLength(freeCells, emptyCascades int, destEmpty, supermove bool) int {
	usable := emptyCascades
	if destEmpty {
		usable--
	}
	if usable < 0 {
		usable = 0
	}
	if freeCells < 0 {
		freeCells = 0
	}

	if supermove {
		return (freeCells + 1) << usable
	}
	return 1 + freeCells + usable
}
