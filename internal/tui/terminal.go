package tui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/arcanaland/freecell/internal/game"
)

// ErrNotTerminal is returned when the game is not attached to an
// interactive terminal.
var ErrNotTerminal = errors.New("stdout is not an interactive terminal")

const (
	clearScreen = "\x1b[2J\x1b[H"
	showCursor  = "\x1b[?25h"
)

// Terminal is a raw-mode terminal session
type Terminal struct {
	in    *os.File
	out   *os.File
	state *term.State
	buf   []byte
	// pending holds bytes read but not yet decoded
	pending []byte
}

// Open puts in into raw mode. out must be a terminal too.
func Open(in, out *os.File) (*Terminal, error) {
	if !term.IsTerminal(int(out.Fd())) || !term.IsTerminal(int(in.Fd())) {
		return nil, ErrNotTerminal
	}

	state, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, fmt.Errorf("error enabling raw mode: %v", err)
	}

	t := &Terminal{
		in:    in,
		out:   out,
		state: state,
		buf:   make([]byte, 16),
	}
	if _, err := io.WriteString(out, clearScreen); err != nil {
		t.Close()
		return nil, fmt.Errorf("error clearing screen: %v", err)
	}
	return t, nil
}

// Size returns the terminal width and height, falling back to 80x24
func (t *Terminal) Size() (int, int) {
	width, height, err := term.GetSize(int(t.out.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return 80, 24
	}
	return width, height
}

// ReadKey blocks until the next key press
func (t *Terminal) ReadKey() (game.Key, error) {
	for {
		for len(t.pending) > 0 {
			k, n := DecodeKey(t.pending)
			t.pending = t.pending[n:]
			if k != game.KeyNone {
				return k, nil
			}
		}

		n, err := t.in.Read(t.buf)
		if err != nil {
			return game.KeyNone, fmt.Errorf("error reading key: %v", err)
		}
		t.pending = append(t.pending[:0], t.buf[:n]...)
	}
}

// Writer returns the terminal output
func (t *Terminal) Writer() io.Writer {
	return t.out
}

// Close clears the screen and restores the terminal mode. The mode is
// restored even when the screen cannot be cleared.
func (t *Terminal) Close() error {
	var errs []error
	if _, err := io.WriteString(t.out, clearScreen+showCursor); err != nil {
		errs = append(errs, fmt.Errorf("error clearing screen: %w", err))
	}
	if t.state != nil {
		if err := term.Restore(int(t.in.Fd()), t.state); err != nil {
			errs = append(errs, fmt.Errorf("error restoring terminal: %w", err))
		}
	}
	return errors.Join(errs...)
}
