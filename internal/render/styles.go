package render

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/michaelscutari/fspath/internal/entry"
)

var (
	// Colors
	colorPrimary   = lipgloss.Color("39")  // Blue
	colorSecondary = lipgloss.Color("245") // Gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorWarning   = lipgloss.Color("214") // Orange
	colorError     = lipgloss.Color("196") // Red

	// Styles
	dirStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	fileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	symlinkStyle = lipgloss.NewStyle().
			Foreground(colorHighlight)

	otherStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)
)

// FormatSize formats a byte count for display.
func FormatSize(bytes int64) string {
	return humanize.Bytes(uint64(bytes))
}

// FormatTime formats a modification time relative to now.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.Time(t)
}

// FormatCount formats a count for display.
func FormatCount(n int64) string {
	return humanize.Comma(n)
}

// Name renders an entry name in the style of its kind. Directories get a
// trailing slash.
func Name(e entry.Entry) string {
	switch e.Kind {
	case entry.KindDir:
		if e.IsDot() {
			return dirStyle.Render(e.Name)
		}
		return dirStyle.Render(e.Name + "/")
	case entry.KindSymlink:
		return symlinkStyle.Render(e.Name)
	case entry.KindFile:
		return fileStyle.Render(e.Name)
	default:
		return otherStyle.Render(e.Name)
	}
}

// Muted renders secondary text.
func Muted(s string) string {
	return mutedStyle.Render(s)
}

// Error renders a failure message.
func Error(s string) string {
	return errorStyle.Render(s)
}
