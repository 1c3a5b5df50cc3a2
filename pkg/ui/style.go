package ui

import (
	"rowstore/pkg/ui/base"

	"github.com/charmbracelet/lipgloss"
)

var (
	palette = base.DarkPalette

	primaryColor   = palette.Primary
	secondaryColor = palette.Secondary
	accentColor    = palette.Accent
	errorColor     = palette.Error

	bgDark   = lipgloss.Color("#0F172A")
	bgMedium = lipgloss.Color("#1E293B")
	bgLight  = lipgloss.Color("#334155")

	textPrimary   = lipgloss.Color("#F8FAFC")
	textSecondary = lipgloss.Color("#CBD5E1")
	textMuted     = palette.Muted
)

var (
	appStyle = lipgloss.NewStyle().
			Foreground(textPrimary).
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 2)

	dbBadgeStyle = lipgloss.NewStyle().
			Background(secondaryColor).
			Foreground(bgDark).
			Bold(true).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Background(bgMedium).
			Foreground(textSecondary).
			Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	errorLineStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	okLineStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)

	transcriptStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(bgLight).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2).
			Background(bgMedium)
)
