package session

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// clearScreen moves the cursor home and erases the display.
const clearScreen = "\033[H\033[2J"

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
