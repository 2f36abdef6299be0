package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ngmaloney/weather-terminal/internal/dashboard"
)

var (
	// Color palette
	colorPrimary = lipgloss.Color("#4B9FEA") // Splash blue
	colorSplash  = lipgloss.Color("#85C6FE")
	colorDanger  = lipgloss.Color("#FF6B6B")
	colorSuccess = lipgloss.Color("#6BCF7F")
	colorMuted   = lipgloss.Color("#6C757D")
	colorText    = lipgloss.Color("#FFFFFF")
	colorBorder  = lipgloss.Color("#4A90E2")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	splashTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorText).
				Background(colorPrimary).
				Padding(1, 4)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorText)

	bigValueStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0, 0, 0)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	boxHeaderStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Padding(0, 0, 1, 0)

	sectionBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 2)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2)

	loaderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSplash).
			Foreground(colorPrimary).
			Padding(0, 2)
)

// headerStyle paints the header in the first colour of the theme gradient
// and underlines it with the second.
func headerStyle(theme dashboard.Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(colorText).
		Background(lipgloss.Color(theme.Gradient[0])).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color(theme.Gradient[1])).
		Padding(0, 2)
}
