package tui

import "github.com/arcanaland/freecell/internal/game"

// DecodeKey decodes the first key press in b and returns it with the number
// of bytes it used. A single read can carry several presses, so callers
// decode again from b[n:]. Unknown input decodes to game.KeyNone; n is zero
// only when b is empty.
func DecodeKey(b []byte) (game.Key, int) {
	if len(b) == 0 {
		return game.KeyNone, 0
	}

	if b[0] == 0x1b {
		if len(b) == 1 || (b[1] != '[' && b[1] != 'O') {
			return game.KeyCancel, 1
		}
		return decodeEscape(b)
	}

	switch b[0] {
	case 'h':
		return game.KeyLeft, 1
	case 'j':
		return game.KeyDown, 1
	case 'k':
		return game.KeyUp, 1
	case 'l':
		return game.KeyRight, 1
	case 'K':
		return game.KeyTop, 1
	case 'J':
		return game.KeyBottom, 1
	case ' ', '\r', '\n':
		return game.KeyConfirm, 1
	case 'q', 0x03: // q, Ctrl-C
		return game.KeyQuit, 1
	}
	return game.KeyNone, 1
}

// decodeEscape handles CSI and SS3 sequences: ESC [ A, ESC O A, ESC [ 5 ~
func decodeEscape(b []byte) (game.Key, int) {
	if len(b) < 3 {
		// truncated sequence
		return game.KeyNone, len(b)
	}

	switch b[2] {
	case 'A':
		return game.KeyUp, 3
	case 'B':
		return game.KeyDown, 3
	case 'C':
		return game.KeyRight, 3
	case 'D':
		return game.KeyLeft, 3
	case 'H':
		return game.KeyTop, 3
	case 'F':
		return game.KeyBottom, 3
	}

	if b[1] == 'O' {
		return game.KeyNone, 3
	}

	// CSI parameters run up to a final byte in 0x40-0x7e
	end := 2
	for end < len(b) && (b[end] < 0x40 || b[end] > 0x7e) {
		end++
	}
	if end == len(b) {
		return game.KeyNone, len(b)
	}

	if b[end] == '~' && end == 3 {
		switch b[2] {
		case '5':
			return game.KeyTop, 4
		case '6':
			return game.KeyBottom, 4
		}
	}
	return game.KeyNone, end + 1
}
