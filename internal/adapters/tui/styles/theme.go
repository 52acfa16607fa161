package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Relationship colors
	RelFriend       = lipgloss.Color("#10B981") // Green
	RelFamily       = lipgloss.Color("#8B5CF6") // Violet
	RelColleague    = lipgloss.Color("#60A5FA") // Blue
	RelAcquaintance = lipgloss.Color("#F97316") // Orange

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Roster table styles
	TableHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Secondary)

	TableHeaderActive = lipgloss.NewStyle().
				Bold(true).
				Foreground(Primary).
				Underline(true)

	RowSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	CellMissing = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	BirthdaySoon = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Search
	SearchMatch = lipgloss.NewStyle().
			Background(Warning).
			Foreground(Black)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// RelationshipColor returns the color for a relationship value
func RelationshipColor(relationship string) lipgloss.Color {
	switch relationship {
	case "friend":
		return RelFriend
	case "family":
		return RelFamily
	case "colleague":
		return RelColleague
	case "acquaintance":
		return RelAcquaintance
	default:
		return Muted
	}
}
