package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusKind indicates severity for notices.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusError
)

func (k StatusKind) color() lipgloss.Color {
	switch k {
	case StatusSuccess:
		return SuccessColor
	case StatusError:
		return ErrorColor
	default:
		return MutedColor
	}
}

// renderInputFrame draws a rounded bordered container around a rendered input view.
func renderInputFrame(inputView string, focused bool, contentWidth int) string {
	borderColor := MutedColor
	if focused {
		borderColor = AccentColor
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(contentWidth + 4).
		Render(inputView)
}

// renderButton draws the submit control. A disabled button is muted.
func renderButton(label string, disabled bool) string {
	style := lipgloss.NewStyle().
		Padding(0, 2).
		Bold(true)
	if disabled {
		return style.
			Foreground(MutedColor).
			Background(lipgloss.Color("#334155")).
			Render(label)
	}
	return style.
		Foreground(lipgloss.Color("#1A1A2E")).
		Background(PrimaryColor).
		Render(label)
}

// renderAlert draws a bordered notice block in the color of kind.
func renderAlert(kind StatusKind, text string, width int) string {
	style := lipgloss.NewStyle().
		Foreground(kind.color()).
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(kind.color()).
		Padding(0, 1)
	if width > 4 {
		style = style.Width(width - 2)
	}
	return style.Render(text)
}

// renderInline renders a short line in the color of kind, used under the input.
func renderInline(kind StatusKind, text string) string {
	return lipgloss.NewStyle().Foreground(kind.color()).Render(text)
}

// truncate shortens s to at most limit runes, ending with an ellipsis when
// anything was cut.
func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	if limit == 1 {
		return "…"
	}
	return strings.TrimRight(string(r[:limit-1]), " ") + "…"
}
