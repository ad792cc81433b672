package card

import (
	"fmt"
	"strings"
)

// Card is a playing card token: a 2-character rank prefix followed by a
// suit glyph, e.g. "A ♠", "10❤", "Q ♦".
type Card string

// Empty marks a slot (free cell, foundation, blank row) with no card in it.
const Empty Card = "   "

// Color is the colour class of a suit.
type Color int

const (
	// Black is also the neutral colour of an empty slot
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Suit glyphs
const (
	Spades   rune = '♠'
	Hearts   rune = '❤'
	Clubs    rune = '♣'
	Diamonds rune = '♦'
)

// Suits lists the suits in deck order
var Suits = []rune{Spades, Hearts, Clubs, Diamonds}

var rankPrefixes = []string{"A ", "2 ", "3 ", "4 ", "5 ", "6 ", "7 ", "8 ", "9 ", "10", "J ", "Q ", "K "}

// New builds the card of the given rank (1..13) and suit.
func New(rank int, suit rune) Card {
	if rank < 1 || rank > 13 {
		return Empty
	}
	return Card(rankPrefixes[rank-1] + string(suit))
}

// Value returns the rank of the card, Ace=1 .. King=13. Empty slots and
// anything unrecognised map to 0.
func (c Card) Value() int {
	if len(c) < 2 {
		return 0
	}
	prefix := string(c[:2])
	for i, p := range rankPrefixes {
		if p == prefix {
			return i + 1
		}
	}
	return 0
}

// Suit returns the suit glyph, or a space for an empty slot.
func (c Card) Suit() rune {
	runes := []rune(string(c))
	if len(runes) < 3 {
		return ' '
	}
	return runes[2]
}

// Color returns Red for hearts and diamonds, Black for everything else.
func (c Card) Color() Color {
	switch c.Suit() {
	case Hearts, Diamonds:
		return Red
	default:
		return Black
	}
}

// IsEmpty reports whether the token holds no card.
func (c Card) IsEmpty() bool {
	return c.Value() == 0
}

func (c Card) String() string {
	return string(c)
}

// Parse reads a short card notation such as "10h", "QS", "a♠" or "T d".
func Parse(s string) (Card, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	runes := []rune(s)
	if len(runes) < 2 {
		return Empty, fmt.Errorf("invalid card: %q", s)
	}

	rankPart := strings.ToUpper(string(runes[:len(runes)-1]))
	var rank int
	switch rankPart {
	case "A":
		rank = 1
	case "T", "10":
		rank = 10
	case "J":
		rank = 11
	case "Q":
		rank = 12
	case "K":
		rank = 13
	default:
		if len(rankPart) == 1 && rankPart[0] >= '2' && rankPart[0] <= '9' {
			rank = int(rankPart[0] - '0')
		}
	}
	if rank == 0 {
		return Empty, fmt.Errorf("invalid rank in card: %q", s)
	}

	var suit rune
	switch runes[len(runes)-1] {
	case 's', 'S', Spades:
		suit = Spades
	case 'h', 'H', Hearts, '♥':
		suit = Hearts
	case 'c', 'C', Clubs:
		suit = Clubs
	case 'd', 'D', Diamonds:
		suit = Diamonds
	default:
		return Empty, fmt.Errorf("invalid suit in card: %q", s)
	}

	return New(rank, suit), nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) Card {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}
