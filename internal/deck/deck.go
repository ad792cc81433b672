package deck

import (
	"fmt"
	"math/rand/v2"

	"github.com/arcanaland/freecell/internal/card"
)

const (
	// Size is the number of cards in a standard deck
	Size = 52

	// Cascades is the number of columns a deal is spread over
	Cascades = 8

	// MaxNumbered is the highest classic deal number
	MaxNumbered = 32000
)

// New returns an unshuffled deck, ranks Ace to King for each suit in
// card.Suits order.
func New() []card.Card {
	cards := make([]card.Card, 0, Size)
	for _, suit := range card.Suits {
		for rank := 1; rank <= 13; rank++ {
			cards = append(cards, card.New(rank, suit))
		}
	}
	return cards
}

// Shuffle permutes cards in place. The same seed always yields the same order.
func Shuffle(cards []card.Card, seed uint64) {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	r.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}

// Shuffled returns a new deck shuffled with seed
func Shuffled(seed uint64) []card.Card {
	cards := New()
	Shuffle(cards, seed)
	return cards
}

// Numbered returns the card order of a classic numbered deal (1..32000),
// the numbering shared by most FreeCell programs. Dealing the result
// round-robin with Deal reproduces the familiar layout.
func Numbered(n int) ([]card.Card, error) {
	if n < 1 || n > MaxNumbered {
		return nil, fmt.Errorf("deal number out of range: %d (1-%d)", n, MaxNumbered)
	}

	// Card index i is rank i/4 in clubs, diamonds, hearts, spades order.
	suits := []rune{card.Clubs, card.Diamonds, card.Hearts, card.Spades}

	state := uint32(n)
	next := func() uint32 {
		state = (214013*state + 2531011) & 0x7fffffff
		return state >> 16
	}

	indexes := make([]int, Size)
	for i := range indexes {
		indexes[i] = i
	}

	cards := make([]card.Card, 0, Size)
	for left := Size; left > 0; left-- {
		j := int(next() % uint32(left))
		idx := indexes[j]
		indexes[j] = indexes[left-1]
		cards = append(cards, card.New(idx/4+1, suits[idx%4]))
	}

	return cards, nil
}

// Deal spreads cards round-robin over the cascades: card i lands on
// cascade i mod Cascades.
func Deal(cards []card.Card) [Cascades][]card.Card {
	var cascades [Cascades][]card.Card
	for i, c := range cards {
		cascades[i%Cascades] = append(cascades[i%Cascades], c)
	}
	return cascades
}
