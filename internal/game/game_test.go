package game

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/arcanaland/freecell/internal/board"
	"github.com/arcanaland/freecell/internal/card"
	"github.com/arcanaland/freecell/internal/deck"
)

func parse(shorts ...string) []card.Card {
	out := make([]card.Card, len(shorts))
	for i, s := range shorts {
		out[i] = card.MustParse(s)
	}
	return out
}

func createTestGame() *Game {
	var cascades [board.Columns][]card.Card
	cascades[0] = parse("KC", "9S", "2H")
	cascades[1] = parse("QD", "3S")
	cascades[2] = parse("5D", "TC", "9H", "8S")
	cascades[3] = parse("AH")
	cascades[4] = parse("4C", "JD")
	cascades[5] = parse("7C")
	cascades[6] = parse("6H", "KS")
	cascades[7] = parse("2C")
	return New(board.New(cascades), board.Options{RestrictMovement: true}, zerolog.Nop())
}

func press(g *Game, keys ...Key) {
	for _, k := range keys {
		g.HandleKey(k)
	}
}

func TestCursorClamping(t *testing.T) {
	g := createTestGame()

	press(g, KeyLeft, KeyUp)
	if g.Cursor != (board.Position{Col: 0, Row: 0}) {
		t.Errorf("cursor escaped the top left corner: %+v", g.Cursor)
	}

	press(g, KeyDown, KeyDown, KeyDown, KeyDown, KeyDown)
	if g.Cursor.Row != 3 {
		t.Errorf("row = %d, want 3 (height of cascade 0)", g.Cursor.Row)
	}

	// column 3 only holds one card
	press(g, KeyRight, KeyRight, KeyRight)
	if g.Cursor != (board.Position{Col: 3, Row: 1}) {
		t.Errorf("cursor = %+v, want col 3 row 1", g.Cursor)
	}

	for i := 0; i < 10; i++ {
		press(g, KeyRight)
	}
	if g.Cursor.Col != board.Columns-1 {
		t.Errorf("col = %d, want %d", g.Cursor.Col, board.Columns-1)
	}
}

func TestJumpKeys(t *testing.T) {
	g := createTestGame()
	press(g, KeyRight, KeyRight, KeyBottom)
	if g.Cursor.Row != 4 {
		t.Errorf("bottom jump row = %d, want 4", g.Cursor.Row)
	}
	press(g, KeyTop)
	if g.Cursor.Row != 0 {
		t.Errorf("top jump row = %d, want 0", g.Cursor.Row)
	}
}

func TestPickAndPlaceOntoCascade(t *testing.T) {
	g := createTestGame()

	// 2H onto 3S
	press(g, KeyBottom, KeyConfirm)
	if g.Phase != PhasePlace {
		t.Fatalf("phase = %v after picking", g.Phase)
	}
	if g.Picked != (board.Position{Col: 0, Row: 3}) {
		t.Fatalf("picked = %+v", g.Picked)
	}

	press(g, KeyRight, KeyConfirm)
	if g.Phase != PhasePick {
		t.Errorf("phase = %v after placing", g.Phase)
	}
	if g.Moves != 1 {
		t.Errorf("moves = %d, want 1", g.Moves)
	}
	if !reflect.DeepEqual(g.Board.Cascades[1], parse("QD", "3S", "2H")) {
		t.Errorf("cascade 1 = %v", g.Board.Cascades[1])
	}
	if !reflect.DeepEqual(g.Board.Cascades[0], parse("KC", "9S")) {
		t.Errorf("cascade 0 = %v", g.Board.Cascades[0])
	}
}

func TestInvalidPickStaysInPickPhase(t *testing.T) {
	g := createTestGame()

	// 5D heads a broken run
	press(g, KeyRight, KeyRight, KeyDown, KeyConfirm)
	if g.Phase != PhasePick {
		t.Errorf("phase = %v, invalid run should be rejected", g.Phase)
	}

	// foundations cannot be picked
	press(g, KeyRight, KeyRight, KeyTop, KeyConfirm)
	if g.Phase != PhasePick {
		t.Errorf("phase = %v, foundation pick should be rejected", g.Phase)
	}
}

func TestIllegalPlacementIsSilent(t *testing.T) {
	g := createTestGame()
	before := g.Board.Clone()

	// 2H onto 8S
	press(g, KeyBottom, KeyConfirm, KeyRight, KeyRight, KeyConfirm)
	if g.Phase != PhasePick {
		t.Errorf("phase = %v, turn should end", g.Phase)
	}
	if g.Moves != 0 {
		t.Errorf("moves = %d", g.Moves)
	}
	if !reflect.DeepEqual(g.Board, before) {
		t.Error("illegal placement changed the board")
	}
}

func TestCancelRestoresCursor(t *testing.T) {
	g := createTestGame()
	before := g.Board.Clone()

	press(g, KeyBottom, KeyConfirm, KeyRight, KeyRight, KeyUp, KeyCancel)
	if g.Phase != PhasePick || g.Top {
		t.Errorf("phase = %v top = %v after cancel", g.Phase, g.Top)
	}
	if g.Cursor != (board.Position{Col: 0, Row: 3}) {
		t.Errorf("cursor = %+v, want the picked card", g.Cursor)
	}
	if !reflect.DeepEqual(g.Board, before) {
		t.Error("cancel changed the board")
	}
}

func TestPlaceOnHeader(t *testing.T) {
	g := createTestGame()

	// AH to the second foundation
	press(g, KeyRight, KeyRight, KeyRight, KeyBottom, KeyConfirm)
	press(g, KeyRight, KeyRight, KeyUp, KeyConfirm)
	if g.Board.FoundationTop(1) != card.MustParse("AH") {
		t.Fatalf("foundation 2 = %q", g.Board.FoundationTop(1))
	}

	// KS to the first free cell, via the top jump
	press(g, KeyRight, KeyBottom, KeyConfirm)
	for i := 0; i < 6; i++ {
		press(g, KeyLeft)
	}
	press(g, KeyTop, KeyConfirm)
	if g.Board.Cells[0] != card.MustParse("KS") {
		t.Fatalf("free cell 1 = %q", g.Board.Cells[0])
	}
	if g.Moves != 2 {
		t.Errorf("moves = %d", g.Moves)
	}
}

func TestSelectDestinationOutsidePlacePhase(t *testing.T) {
	g := createTestGame()
	if g.SelectDestination(board.Destination{Col: 1}) {
		t.Error("placing without a pick should fail")
	}
}

func TestQuit(t *testing.T) {
	g := createTestGame()
	if !g.HandleKey(KeyDown) {
		t.Error("movement should not end the game")
	}
	if g.HandleKey(KeyQuit) {
		t.Error("quit should end the game")
	}
}

func TestMovesAreLogged(t *testing.T) {
	var buf bytes.Buffer
	b := board.Deal(deck.New())
	g := New(b, board.Options{}, zerolog.New(&buf).Level(zerolog.DebugLevel))

	// last card of cascade 0 to a free cell
	press(g, KeyBottom, KeyConfirm, KeyUp, KeyConfirm)
	if g.Moves != 1 {
		t.Fatalf("moves = %d", g.Moves)
	}

	out := buf.String()
	if !strings.Contains(out, `"message":"moved"`) {
		t.Errorf("move not logged: %s", out)
	}
	if strings.Contains(out, "invariant") {
		t.Errorf("legal move broke an invariant: %s", out)
	}
}

func TestMovesLogLevel(t *testing.T) {
	tests := []struct {
		name   string
		level  zerolog.Level
		logged bool
	}{
		{"debug", zerolog.DebugLevel, true},
		{"info", zerolog.InfoLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			g := New(board.Deal(deck.New()), board.Options{}, zerolog.New(&buf).Level(tt.level))

			press(g, KeyBottom, KeyConfirm, KeyUp, KeyConfirm)
			if g.Moves != 1 {
				t.Fatalf("moves = %d", g.Moves)
			}

			if got := strings.Contains(buf.String(), `"message":"moved"`); got != tt.logged {
				t.Errorf("move logged = %v, want %v: %s", got, tt.logged, buf.String())
			}
		})
	}
}
