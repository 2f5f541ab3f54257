// Package terminal provides terminal detection utilities.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether stdin and stdout are both interactive terminals.
func IsInteractive() bool {
	return IsInteractiveStreams(os.Stdin, os.Stdout)
}

// IsInteractiveStreams reports whether in and out are both terminal-backed files.
// Buffers, pipes wrapped as readers, and nil streams are never interactive.
func IsInteractiveStreams(in io.Reader, out io.Writer) bool {
	return isTerminal(in) && isTerminal(out)
}

type fdHolder interface {
	Fd() uintptr
}

func isTerminal(stream any) bool {
	f, ok := stream.(fdHolder)
	if !ok {
		return false
	}
	if file, isFile := stream.(*os.File); isFile && file == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
