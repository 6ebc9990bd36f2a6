package format

import (
	"os"

	"golang.org/x/term"
)

// IsTTY determines if stderr status output should use terminal
// formatting. Returns false if stderr is piped, NO_COLOR is set, or
// TERM is "dumb" or empty. Status output goes to stderr, so that is
// the stream whose capabilities matter here.
func IsTTY() bool {
	// Check NO_COLOR environment variable
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check TERM environment variable
	termEnv := os.Getenv("TERM")
	if termEnv == "dumb" || termEnv == "" {
		return false
	}

	// Check if stderr is a terminal
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// StdinIsTTY reports whether stdin is attached to a terminal.
// Interactive prompts require it.
func StdinIsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
