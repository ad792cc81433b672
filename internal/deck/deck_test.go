package deck

import (
	"slices"
	"testing"

	"github.com/arcanaland/freecell/internal/card"
)

func TestNewHasEveryCardOnce(t *testing.T) {
	cards := New()
	if len(cards) != Size {
		t.Fatalf("expected %d cards, got %d", Size, len(cards))
	}

	seen := make(map[card.Card]bool)
	for _, c := range cards {
		if c.IsEmpty() {
			t.Errorf("deck contains empty token %q", c)
		}
		if seen[c] {
			t.Errorf("duplicate card %q", c)
		}
		seen[c] = true
	}
}

func TestShuffleIsDeterministic(t *testing.T) {
	a := Shuffled(42)
	b := Shuffled(42)
	if !slices.Equal(a, b) {
		t.Error("same seed produced different orders")
	}

	c := Shuffled(43)
	if slices.Equal(a, c) {
		t.Error("different seeds produced the same order")
	}
}

func TestDealPartitionsDeck(t *testing.T) {
	cascades := Deal(Shuffled(7))

	seen := make(map[card.Card]int)
	total := 0
	for i, cascade := range cascades {
		want := 6
		if i < 4 {
			want = 7
		}
		if len(cascade) != want {
			t.Errorf("cascade %d has %d cards, want %d", i, len(cascade), want)
		}
		for _, c := range cascade {
			seen[c]++
			total++
		}
	}

	if total != Size {
		t.Errorf("dealt %d cards, want %d", total, Size)
	}
	for _, c := range New() {
		if seen[c] != 1 {
			t.Errorf("card %q dealt %d times", c, seen[c])
		}
	}
}

func TestNumberedDeal(t *testing.T) {
	tests := []struct {
		number   int
		firstRow []string
	}{
		{1, []string{"JD", "2D", "9H", "JC", "5D", "7H", "7C", "5H"}},
		{617, []string{"7D", "AD", "5C", "3S", "5S", "8C", "2D", "AH"}},
	}

	for _, tt := range tests {
		cards, err := Numbered(tt.number)
		if err != nil {
			t.Fatalf("Numbered(%d) failed: %v", tt.number, err)
		}
		if len(cards) != Size {
			t.Fatalf("Numbered(%d) returned %d cards", tt.number, len(cards))
		}

		cascades := Deal(cards)
		for col, short := range tt.firstRow {
			want := card.MustParse(short)
			if cascades[col][0] != want {
				t.Errorf("deal %d column %d starts with %q, want %q", tt.number, col, cascades[col][0], want)
			}
		}
	}
}

func TestNumberedDealSecondRow(t *testing.T) {
	cards, err := Numbered(1)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"KD", "KC", "9S", "5S", "AD", "QC", "KH", "3H"}
	for i, short := range want {
		if cards[8+i] != card.MustParse(short) {
			t.Errorf("card %d = %q, want %s", 8+i, cards[8+i], short)
		}
	}
}

func TestNumberedOutOfRange(t *testing.T) {
	for _, n := range []int{0, -1, MaxNumbered + 1} {
		if _, err := Numbered(n); err == nil {
			t.Errorf("Numbered(%d) should fail", n)
		}
	}
}
