package tui

import "github.com/charmbracelet/lipgloss"

// Theme colors - "Indigo & Slate" palette
var (
	PrimaryColor   = lipgloss.Color("#6366F1") // Indigo 500
	SecondaryColor = lipgloss.Color("#0EA5E9") // Sky 500
	AccentColor    = lipgloss.Color("#F59E0B") // Amber 500
	SuccessColor   = lipgloss.Color("#10B981") // Emerald 500
	ErrorColor     = lipgloss.Color("#EF4444") // Red 500
	MutedColor     = lipgloss.Color("#64748B") // Slate 500

	BgDark = lipgloss.Color("#1E293B") // Slate 800

	TextPrimary   = lipgloss.Color("#F8FAFC") // Slate 50
	TextSecondary = lipgloss.Color("#94A3B8") // Slate 400
	TextMuted     = lipgloss.Color("#475569") // Slate 600
)

// Shared styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			Padding(0, 1)

	TabStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 1)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Background(BgDark).
			Bold(true).
			Padding(0, 1)

	ResultBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SuccessColor).
			Padding(0, 2)

	InputBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(PrimaryColor).
				Padding(0, 1)

	ErrorBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ErrorColor).
			Padding(0, 2)

	ErrorMsgStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	SuccessMsgStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	LoadingStyle = lipgloss.NewStyle().
			Foreground(TextSecondary).
			Italic(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(TextMuted)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextSecondary).
			Background(BgDark).
			Padding(0, 1)
)
