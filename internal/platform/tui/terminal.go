package tui

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/vovakirdan/term-snake/internal/games/snake"
)

// ErrTerminalInit reports that no usable terminal could be acquired.
var ErrTerminalInit = errors.New("tui: cannot acquire terminal")

// CheckTerminal verifies that in and out are terminals and returns the size
// of out. Errors wrap ErrTerminalInit.
func CheckTerminal(in, out *os.File) (width, height int, err error) {
	if !term.IsTerminal(int(in.Fd())) {
		return 0, 0, errors.WithMessage(ErrTerminalInit, "stdin is not a terminal")
	}
	if !term.IsTerminal(int(out.Fd())) {
		return 0, 0, errors.WithMessage(ErrTerminalInit, "stdout is not a terminal")
	}
	width, height, err = term.GetSize(int(out.Fd()))
	if err != nil {
		return 0, 0, errors.WithMessagef(ErrTerminalInit, "get size: %v", err)
	}
	return width, height, nil
}

// FitsFrame reports whether a terminal of the given size can show the whole frame.
func FitsFrame(width, height int) bool {
	return width >= snake.FrameWidth && height >= snake.FrameHeight
}
