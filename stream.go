package twirl

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Stream selects where the spinner draws. It is fixed at construction.
type Stream int

const (
	// Stdout draws the spinner on standard output. The default.
	Stdout Stream = iota
	// Stderr draws the spinner on standard error, keeping standard output
	// clean for the program's real data.
	Stderr
)

func (s Stream) writer() io.Writer {
	if s == Stderr {
		return os.Stderr
	}
	return os.Stdout
}

func (s Stream) String() string {
	if s == Stderr {
		return "stderr"
	}
	return "stdout"
}

// isTerminal reports whether w is an interactive terminal. CI environments
// are treated as non-terminals even when a pty is attached.
func isTerminal(w io.Writer) bool {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
