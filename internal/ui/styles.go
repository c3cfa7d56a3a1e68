package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/miles-w-3/signpad/internal/theme"
)

var (
	// Header styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.SmallLink).
			Padding(0, 1).
			MarginBottom(1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.ChartSelectedLink)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(theme.ChartLink)

	// Panel styles
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.CardBorder).
			Padding(0, 1)

	resultStyle = lipgloss.NewStyle().
			Foreground(theme.Text).
			Background(theme.SubCard).
			Padding(0, 1)

	separatorStyle = lipgloss.NewStyle().
			Foreground(theme.CardBorder)

	// Buttons
	buttonStyle = lipgloss.NewStyle().
			Foreground(theme.IconButton).
			Background(theme.IconButtonBack).
			Padding(0, 1)

	disabledButtonStyle = lipgloss.NewStyle().
				Foreground(theme.ChartLink).
				Background(theme.ProgressBackground).
				Padding(0, 1)

	pendingStyle = lipgloss.NewStyle().
			Foreground(theme.ProgressFirst)

	// Status styles
	statusBarStyle = lipgloss.NewStyle().
			Foreground(theme.ChartLink).
			Padding(0, 1).
			MarginTop(1)

	statusInfoStyle = lipgloss.NewStyle().
			Foreground(theme.ProgressSecond)

	statusErrorStyle = lipgloss.NewStyle().
				Foreground(theme.Danger).
				Bold(true)

	// Help text styles
	helpStyle = lipgloss.NewStyle().
			Foreground(theme.ChartLink).
			Italic(true)

	keyStyle = lipgloss.NewStyle().
			Foreground(theme.SmallLink).
			Bold(true)
)
