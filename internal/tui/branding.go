package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/pders01/quip/internal/config"
)

const AppName = "quip"

// LogoLines is the banner logo.
var LogoLines = []string{
	"  ▄▄▄▄  ▄▄  ▄▄ ▄▄ ▄▄▄▄▄ ",
	"▄█▀  ▀█▄ ██  ██ ██ ██  ▀█",
	"██    ██ ██  ██ ██ ██▄▄█▀",
	"▀█▄ ▀▄█▀ ▀█▄▄█▀ ██ ██    ",
	"  ▀▀▀ ▀▀   ▀▀   ▀▀ ▀▀    ",
}

// HeadingLines is the form heading.
var HeadingLines = []string{"MOTIVATIONAL", "QUOTES!"}

// Banner gradient colors
var BannerColors = []lipgloss.Color{
	lipgloss.Color("#FF6B6B"),
	lipgloss.Color("#FFA86B"),
	lipgloss.Color("#95E1D3"),
	lipgloss.Color("#4ECDC4"),
	lipgloss.Color("#FF6B6B"),
}

var (
	PrimaryColor   = lipgloss.Color("#FF6B6B")
	SecondaryColor = lipgloss.Color("#4ECDC4")
	AccentColor    = lipgloss.Color("#95E1D3")
	TextColor      = lipgloss.Color("#EAEAEA")
	MutedColor     = lipgloss.Color("#94A3B8")
	ErrorColor     = lipgloss.Color("#EF4444")
	SuccessColor   = lipgloss.Color("#10B981")
)

var (
	HeadingStyle lipgloss.Style
	LabelStyle   lipgloss.Style
	HelpStyle    lipgloss.Style
)

func init() {
	rebuildStyles()
}

// ApplyTheme replaces the palette with the configured colors. Empty values
// keep the current color.
func ApplyTheme(colors config.UIColors) {
	set := func(dst *lipgloss.Color, value string) {
		if value != "" {
			*dst = lipgloss.Color(value)
		}
	}
	set(&PrimaryColor, colors.Primary)
	set(&SecondaryColor, colors.Secondary)
	set(&AccentColor, colors.Accent)
	set(&TextColor, colors.Text)
	set(&MutedColor, colors.Muted)
	set(&ErrorColor, colors.Error)
	set(&SuccessColor, colors.Success)
	rebuildStyles()
}

func rebuildStyles() {
	HeadingStyle = lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true)

	LabelStyle = lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true)

	HelpStyle = lipgloss.NewStyle().
		Foreground(MutedColor).
		Italic(true)
}

// RenderHeading renders the form heading with one gradient color per line.
func RenderHeading() string {
	lines := make([]string, len(HeadingLines))
	for i, line := range HeadingLines {
		lines[i] = HeadingStyle.
			Foreground(BannerColors[i%len(BannerColors)]).
			Render(line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// ShowBanner prints the startup banner to stdout.
func ShowBanner(version string) {
	fmt.Println(Banner(version))
}

// Banner returns the bordered startup banner.
func Banner(version string) string {
	lines := make([]string, len(LogoLines)+1)
	copy(lines, LogoLines)

	tagline := "    Motivational Quotes"
	if version != "" && version != "dev" {
		if version[0] != 'v' && version[0] != 'V' {
			version = "v" + version
		}
		tagline += " " + version
	}
	lines = append(lines, tagline)

	var coloredLines []string
	for i, line := range lines {
		if line == "" {
			coloredLines = append(coloredLines, line)
			continue
		}
		style := lipgloss.NewStyle().
			Foreground(BannerColors[i%len(BannerColors)]).
			Bold(i < len(LogoLines))
		coloredLines = append(coloredLines, style.Render(line))
	}

	borderChars := lipgloss.Border{
		Top:         "═",
		Bottom:      "═",
		Left:        "║",
		Right:       "║",
		TopLeft:     "╔",
		TopRight:    "╗",
		BottomLeft:  "╚",
		BottomRight: "╝",
	}

	output := lipgloss.NewStyle().
		Border(borderChars).
		BorderForeground(SecondaryColor).
		Padding(1, 3).
		MarginTop(1).
		Render(lipgloss.JoinVertical(lipgloss.Center, coloredLines...))

	separator := lipgloss.NewStyle().
		Foreground(AccentColor).
		Render("◆ ◇ ◆ ◇ ◆")

	return lipgloss.JoinVertical(
		lipgloss.Center,
		lipgloss.NewStyle().Width(70).Align(lipgloss.Center).Render(output),
		lipgloss.NewStyle().Width(70).Align(lipgloss.Center).MarginBottom(1).Render(separator),
	)
}
