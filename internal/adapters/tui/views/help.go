package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"friendtracker/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToRosterMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Friend Tracker Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Contacts live as markdown files you can edit anywhere."))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Roster"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("Enter", "Open contact"))
	b.WriteString(helpLine("1-6", "Sort by column (again to flip)"))
	b.WriteString(helpLine("/", "Filter by name"))
	b.WriteString(helpLine("r", "Cycle relationship filter"))
	b.WriteString(helpLine("s", "Full-text search"))
	b.WriteString(helpLine("n", "New contact"))
	b.WriteString(helpLine("d", "Move contact to trash"))
	b.WriteString(helpLine("c / y", "Copy email / phone"))
	b.WriteString(helpLine("R", "Reload from disk"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Contact page"))
	b.WriteString("\n")
	b.WriteString(helpLine("Enter / e", "Edit selected field or entry"))
	b.WriteString(helpLine("a", "Log an interaction"))
	b.WriteString(helpLine("f", "Add a custom field"))
	b.WriteString(helpLine("d", "Delete selected interaction"))
	b.WriteString(helpLine("c", "Copy selected value"))
	b.WriteString(helpLine("Esc", "Back to roster"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Document format"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  ---"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  name: Ada Lovelace"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  birthday: \"1815-12-10\""))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  ---"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  Free-form notes below the header are never touched."))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}
