package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// SoundCloud orange, success green, error red, warning amber, muted grey.
var styles = NewPalette("#FF5500", "#04B575", "#FF0000", "#FFA500", "#626262")

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
	warn  lipgloss.Style
	help  lipgloss.Style
	label lipgloss.Style
	card  lipgloss.Style
}

func NewPalette(t, s, e, w, h string) *Palette {
	return &Palette{
		title: NewBold(t).MarginBottom(1),
		ok:    NewBold(s),
		err:   NewBold(e),
		warn:  NewStyle(w),
		help:  NewEm(h),
		label: NewStyle(h).Width(14),
		card:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(t)).Padding(0, 1),
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}

// Success renders msg in the success style.
func Success(msg string) string { return styles.ok.Render(msg) }

// Warning renders msg in the warning style.
func Warning(msg string) string { return styles.warn.Render(msg) }

// Error renders msg in the error style.
func Error(msg string) string { return styles.err.Render(msg) }

// Help renders msg in the muted help style.
func Help(msg string) string { return styles.help.Render(msg) }
