package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"friendtracker/internal/adapters/tui/styles"
	"friendtracker/internal/application/commands"
	"friendtracker/internal/domain"
	"friendtracker/internal/ports"
)

// SearchKeyMap defines key bindings for the search view
type SearchKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Submit key.Binding
	Back   key.Binding
}

var SearchKeys = SearchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+k"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+j"),
		key.WithHelp("↓", "down"),
	),
	Open: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "open contact"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "search"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

// SearchModel is the full-text search view over the contact index
type SearchModel struct {
	ViewState
	index ports.ContactIndex

	input   textinput.Model
	results []domain.SearchResult
	cursor  int
	ran     bool
}

// NewSearchModel creates a new search view model
func NewSearchModel(index ports.ContactIndex) *SearchModel {
	input := textinput.New()
	input.Placeholder = "search names, notes, interactions..."
	input.CharLimit = 100

	return &SearchModel{
		index: index,
		input: input,
	}
}

// Reset clears the previous search
func (m *SearchModel) Reset() {
	m.input.SetValue("")
	m.input.Focus()
	m.results = nil
	m.cursor = 0
	m.ran = false
	m.ClearMessage()
}

// Init initializes the search view
func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the search view
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case searchResultsMsg:
		m.results = msg.results
		m.cursor = 0
		m.ran = true
		return m, nil

	case searchErrMsg:
		m.SetError(msg.err)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, SearchKeys.Back):
			return m, func() tea.Msg {
				return SwitchToRosterMsg{}
			}

		case key.Matches(msg, SearchKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Down):
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Open):
			if m.cursor < len(m.results) {
				path := m.results[m.cursor].Path
				return m, func() tea.Msg {
					return SwitchToContactMsg{Path: path}
				}
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Submit):
			return m, m.search()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *SearchModel) search() tea.Cmd {
	query := strings.TrimSpace(m.input.Value())
	return func() tea.Msg {
		cmd := commands.NewSearchCommand(m.index, query)
		results, err := cmd.Execute(context.Background())
		if err != nil {
			return searchErrMsg{err}
		}
		return searchResultsMsg{results}
	}
}

type searchResultsMsg struct {
	results []domain.SearchResult
}

type searchErrMsg struct {
	err error
}

// View renders the search view
func (m *SearchModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Search"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	switch {
	case m.ran && len(m.results) == 0:
		b.WriteString(styles.MutedText.Render("No matches."))
		b.WriteString("\n")
	case len(m.results) > 0:
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d matches", len(m.results))))
		b.WriteString("\n")
		for i, r := range m.results {
			b.WriteString(m.renderResult(r, i == m.cursor))
			b.WriteString("\n")
		}
	}

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
	}

	b.WriteString("\n")
	b.WriteString(RenderHelpLine(SearchKeys.Submit, SearchKeys.Open, SearchKeys.Back))

	return styles.App.Render(b.String())
}

func (m *SearchModel) renderResult(r domain.SearchResult, selected bool) string {
	line := fmt.Sprintf("%s  %s  %s",
		padRight(r.Name, 22), padRight(r.Field, 13), r.Snippet)
	if selected {
		return styles.RowSelected.Render(line)
	}
	return padRight(r.Name, 22) + "  " +
		styles.MutedText.Render(padRight(r.Field, 13)) + "  " + r.Snippet
}
