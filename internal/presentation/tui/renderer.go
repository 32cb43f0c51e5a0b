package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// NewRenderer returns a function that renders markdown for w using glamour.
// Terminals get an auto-detected light/dark theme; pipes and files get the
// plain "notty" style so reports stay diffable.
func NewRenderer(w io.Writer) func(string) (string, error) {
	style := glamour.WithStandardStyle("notty")
	width := 100
	if IsTerminal(w) {
		style = glamour.WithAutoStyle()
		if cols, _, err := term.GetSize(int(w.(*os.File).Fd())); err == nil && cols > 20 {
			width = cols
		}
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return func(markdown string) (string, error) { return markdown, nil }
	}
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
