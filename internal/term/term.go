// Package term resolves the console color mode and builds lipgloss renderers
// pinned to it.
//
// Styles are always rendered through a renderer returned by [Renderer], never
// the lipgloss default, so "--color never" and non-TTY output produce plain
// bytes that match the log file exactly.
package term

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	xterm "golang.org/x/term"

	"github.com/backmassage/muxscan/internal/config"
)

// Renderer returns a lipgloss renderer for w whose color profile is fixed by
// mode: ANSI256 when colors are enabled, Ascii (no escapes) otherwise.
func Renderer(w io.Writer, mode config.ColorMode) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if Enabled(mode, w) {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// Enabled determines whether colors should be used on w based on the
// configured mode, TTY detection, and the NO_COLOR env var
// (https://no-color.org).
func Enabled(mode config.ColorMode, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(w) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether w is an *os.File attached to a TTY.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	return xterm.IsTerminal(int(f.Fd()))
}
