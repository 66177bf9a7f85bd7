package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/xiam/lene/stats"
)

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
)

// renderReport writes the table one depth at a time, most common tokens
// first. Styles are dropped when w is not a terminal.
func renderReport(w io.Writer, freq *stats.TokenFrequency) error {
	r := lipgloss.NewRenderer(w)

	headingStyle := r.NewStyle().
		Bold(true).
		Foreground(colorPrimary)

	countStyle := r.NewStyle().
		Foreground(colorMuted).
		Width(8).
		Align(lipgloss.Right)

	for _, depth := range freq.Depths() {
		if _, err := fmt.Fprintln(w, headingStyle.Render(fmt.Sprintf("depth %d", depth))); err != nil {
			return err
		}
		for _, bin := range freq.Depth(depth).MostCommon(0) {
			if _, err := fmt.Fprintf(w, "%s  %v\n", countStyle.Render(strconv.Itoa(bin.Count)), bin.Value); err != nil {
				return err
			}
		}
	}
	return nil
}
