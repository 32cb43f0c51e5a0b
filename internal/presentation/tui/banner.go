package tui

import (
	"fmt"
	"io"

	"github.com/aretw0/bioreasoner/pkg/domain"
	"github.com/muesli/termenv"
)

// PrintBanner writes the BioReasoner banner to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.NewOutput(w).Profile
	// Green to teal, one shade per line.
	lines := []struct{ text, color string }{
		{"  ___  _      ___                              ", "#4ade80"},
		{" | _ )(_) ___| _ \\___ __ _ ___ ___ _ _  ___ _ _ ", "#34d399"},
		{" | _ \\| |/ _ \\   / -_) _` (_-</ _ \\ ' \\/ -_) '_|", "#2dd4bf"},
		{" |___/|_|\\___/_|_\\___\\__,_/__/\\___/_||_\\___|_|  ", "#22d3ee"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String("  deterministic pathway reasoning  v"+version).Faint())
	fmt.Fprintln(w)
}

// ConflictMarker renders a contradiction pair highlighted in red when w
// supports color.
func ConflictMarker(w io.Writer, p domain.Pair) string {
	profile := termenv.NewOutput(w).Profile
	return termenv.String("✗ " + p.String()).Foreground(profile.Color("#ef4444")).Bold().String()
}
