// Package output provides utilities for creating termenv.Output and lipgloss
// renderers with consistent color profile and TTY handling across the CLI.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
	"go.trai.ch/wsg/internal/ui/style"
)

// ColorProfile returns the color profile to use.
// It checks if NO_COLOR is set, returning Ascii if so.
// Otherwise, it detects the terminal's capabilities automatically.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a new termenv.Output with the specific profile logic.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}

// NewRenderer creates a lipgloss renderer for w that follows ColorProfile.
func NewRenderer(w io.Writer) *lipgloss.Renderer {
	if w == nil {
		w = os.Stdout
	}

	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(ColorProfile())
	return r
}

// Width returns the column count of the terminal behind w.
// It falls back to style.DefaultWidth when w is not a terminal.
func Width(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return style.DefaultWidth
	}
	//nolint:gosec // File descriptors fit in int on supported platforms
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return style.DefaultWidth
	}
	return width
}
