package shared

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// SetupRenderer returns a lipgloss renderer for w. Colour is disabled when
// noColor is set; otherwise the profile is detected from the terminal.
func SetupRenderer(w io.Writer, noColor bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}
