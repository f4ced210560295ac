package output

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stdout is attached to a terminal. CI runners are
// not, so spinners degrade to plain execution there.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
