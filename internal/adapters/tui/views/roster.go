package views

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"friendtracker/internal/adapters/tui/styles"
	"friendtracker/internal/application"
	"friendtracker/internal/domain"
)

// RosterKeyMap defines key bindings for the roster view
type RosterKeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Open         key.Binding
	New          key.Binding
	Trash        key.Binding
	Filter       key.Binding
	Relationship key.Binding
	Search       key.Binding
	CopyEmail    key.Binding
	CopyPhone    key.Binding
	Refresh      key.Binding
	Help         key.Binding
	Quit         key.Binding
}

var RosterKeys = RosterKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	Trash: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "trash"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Relationship: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "relationship"),
	),
	Search: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "search"),
	),
	CopyEmail: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy email"),
	),
	CopyPhone: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy phone"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "refresh"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// sortKeyColumns maps the number row onto the roster columns
var sortKeyColumns = map[string]domain.SortColumn{
	"1": domain.SortByName,
	"2": domain.SortByAge,
	"3": domain.SortByBirthday,
	"4": domain.SortByDaysUntilBirthday,
	"5": domain.SortByRelationship,
	"6": domain.SortByLastInteraction,
}

type rosterColumn struct {
	label  string
	column domain.SortColumn
	width  int
}

var rosterColumns = []rosterColumn{
	{"1 Name", domain.SortByName, 22},
	{"2 Age", domain.SortByAge, 7},
	{"3 Birthday", domain.SortByBirthday, 14},
	{"4 In", domain.SortByDaysUntilBirthday, 8},
	{"5 Relationship", domain.SortByRelationship, 16},
	{"6 Last seen", domain.SortByLastInteraction, 12},
}

// missingCell marks a value a contact does not carry
const missingCell = "N/A"

// RosterModel is the sortable, filterable contact list view
type RosterModel struct {
	ViewState
	agg *application.Aggregator

	all     []domain.Contact
	visible []domain.Contact
	cursor  int

	sort   domain.SortConfig
	filter domain.Filter

	// configured vocabulary plus values currently in use, for the
	// filter cycle
	vocabulary        []string
	relationshipTypes []string

	filterInput   textinput.Model
	filtering     bool
	folderMissing bool

	// refresh latch: at most one reload in flight
	loading bool
}

// NewRosterModel creates a new roster model. The vocabulary seeds the
// relationship filter cycle; values found in use are appended to it.
func NewRosterModel(agg *application.Aggregator, sort domain.SortConfig, vocabulary []string) *RosterModel {
	input := textinput.New()
	input.Placeholder = "name contains..."
	input.CharLimit = 60

	return &RosterModel{
		agg:               agg,
		sort:              sort,
		vocabulary:        vocabulary,
		relationshipTypes: slices.Clone(vocabulary),
		filterInput:       input,
	}
}

// Init initializes the roster
func (m *RosterModel) Init() tea.Cmd {
	return m.Refresh()
}

// Refresh requests a reload of the contact list. Requests arriving while a
// reload is in flight are dropped; the next file-change or focus trigger
// reconciles whatever the dropped request would have picked up.
func (m *RosterModel) Refresh() tea.Cmd {
	if m.loading {
		return nil
	}
	m.loading = true
	return m.loadContacts
}

func (m *RosterModel) loadContacts() tea.Msg {
	contacts, err := m.agg.Contacts()
	if err != nil {
		return contactsErrMsg{err}
	}
	return contactsLoadedMsg{
		contacts:          contacts,
		relationshipTypes: application.RelationshipTypes(contacts),
	}
}

type contactsLoadedMsg struct {
	contacts          []domain.Contact
	relationshipTypes []string
}

type contactsErrMsg struct {
	err error
}

// Update handles messages for the roster
func (m *RosterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case contactsLoadedMsg:
		m.loading = false
		m.folderMissing = false
		m.all = msg.contacts
		m.relationshipTypes = mergeRelationshipTypes(m.vocabulary, msg.relationshipTypes)
		m.applySortFilter()
		return m, nil

	case contactsErrMsg:
		m.loading = false
		if msg.err == application.ErrFolderNotFound {
			m.folderMissing = true
			m.all = nil
			m.applySortFilter()
			return m, nil
		}
		m.SetError(msg.err)
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilterInput(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *RosterModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.ClearMessage()

	if column, ok := sortKeyColumns[msg.String()]; ok {
		m.sort.Toggle(column)
		m.applySortFilter()
		return m, nil
	}

	switch {
	case key.Matches(msg, RosterKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, RosterKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, RosterKeys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, RosterKeys.Open):
		if c := m.selected(); c != nil {
			path := c.Path
			return m, func() tea.Msg {
				return SwitchToContactMsg{Path: path}
			}
		}
		return m, nil

	case key.Matches(msg, RosterKeys.New):
		return m, func() tea.Msg {
			return SwitchToCreateMsg{}
		}

	case key.Matches(msg, RosterKeys.Trash):
		if c := m.selected(); c != nil {
			contact := *c
			return m, func() tea.Msg {
				return SwitchToTrashMsg{Contact: contact}
			}
		}
		return m, nil

	case key.Matches(msg, RosterKeys.Filter):
		m.filtering = true
		m.filterInput.SetValue(m.filter.Search)
		m.filterInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, RosterKeys.Relationship):
		m.cycleRelationship()
		return m, nil

	case key.Matches(msg, RosterKeys.Search):
		return m, func() tea.Msg {
			return SwitchToSearchMsg{}
		}

	case key.Matches(msg, RosterKeys.CopyEmail):
		return m, m.copyField("email")

	case key.Matches(msg, RosterKeys.CopyPhone):
		return m, m.copyField("phone")

	case key.Matches(msg, RosterKeys.Refresh):
		return m, m.Refresh()

	case key.Matches(msg, RosterKeys.Help):
		return m, func() tea.Msg {
			return SwitchToHelpMsg{}
		}
	}

	return m, nil
}

func (m *RosterModel) updateFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filterInput.Blur()
		m.filter.Search = ""
		m.applySortFilter()
		return m, nil
	case "enter":
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.filter.Search = m.filterInput.Value()
	m.applySortFilter()
	return m, cmd
}

// mergeRelationshipTypes keeps the configured vocabulary order and
// appends any values in use that the vocabulary does not carry.
func mergeRelationshipTypes(vocabulary, inUse []string) []string {
	merged := slices.Clone(vocabulary)
	for _, rel := range inUse {
		if !slices.Contains(merged, rel) {
			merged = append(merged, rel)
		}
	}
	return merged
}

// cycleRelationship advances the relationship filter: all, then each
// known value, then back to all.
func (m *RosterModel) cycleRelationship() {
	if len(m.relationshipTypes) == 0 {
		return
	}
	if m.filter.Relationship == domain.RelationshipAll {
		m.filter.Relationship = m.relationshipTypes[0]
	} else {
		next := domain.RelationshipAll
		for i, rel := range m.relationshipTypes {
			if rel == m.filter.Relationship && i+1 < len(m.relationshipTypes) {
				next = m.relationshipTypes[i+1]
				break
			}
		}
		m.filter.Relationship = next
	}
	m.applySortFilter()
}

func (m *RosterModel) copyField(field string) tea.Cmd {
	c := m.selected()
	if c == nil {
		return nil
	}
	value := c.Email
	if field == "phone" {
		value = c.Phone
	}
	if value == "" {
		m.SetMessage(fmt.Sprintf("%s has no %s", c.Name, field), true)
		return nil
	}
	if err := clipboard.WriteAll(value); err != nil {
		m.SetMessage(fmt.Sprintf("clipboard: %v", err), true)
		return nil
	}
	m.SetMessage(fmt.Sprintf("Copied %s for %s", field, c.Name), false)
	return nil
}

func (m *RosterModel) selected() *domain.Contact {
	if m.cursor >= 0 && m.cursor < len(m.visible) {
		return &m.visible[m.cursor]
	}
	return nil
}

// applySortFilter rebuilds the visible list: sort the full roster, then
// filter without reordering.
func (m *RosterModel) applySortFilter() {
	domain.SortContacts(m.all, m.sort)
	m.visible = domain.FilterContacts(m.all, m.filter)

	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Sort returns the current sort configuration
func (m *RosterModel) Sort() domain.SortConfig {
	return m.sort
}

// View renders the roster
func (m *RosterModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Friend Tracker"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d contacts", len(m.visible))))
	b.WriteString("\n\n")

	if m.folderMissing {
		b.WriteString(styles.ErrorMsg.Render("Contacts folder not found."))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("Create the folder or point FRIENDTRACKER_FOLDER at it, then press R."))
		b.WriteString("\n\n")
		b.WriteString(m.renderHelpLine())
		return styles.App.Render(b.String())
	}

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if len(m.visible) == 0 {
		b.WriteString(styles.MutedText.Render("No contacts match."))
		b.WriteString("\n")
	}
	for i, c := range m.visible {
		b.WriteString(m.renderRow(c, i == m.cursor))
		b.WriteString("\n")
	}

	if m.filtering || m.filter.Search != "" || m.filter.Relationship != domain.RelationshipAll {
		b.WriteString("\n")
		b.WriteString(m.renderFilterLine())
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

func (m *RosterModel) renderHeader() string {
	var parts []string
	for _, col := range rosterColumns {
		label := col.label
		style := styles.TableHeader
		if col.column == m.sort.Column {
			style = styles.TableHeaderActive
			if m.sort.Direction == domain.Ascending {
				label += " ↑"
			} else {
				label += " ↓"
			}
		}
		parts = append(parts, style.Render(padRight(label, col.width)))
	}
	return strings.Join(parts, "")
}

func (m *RosterModel) renderRow(c domain.Contact, selected bool) string {
	cells := []string{
		padRight(c.Name, rosterColumns[0].width),
		padRight(ageCell(c), rosterColumns[1].width),
		padRight(birthdayCell(c), rosterColumns[2].width),
		padRight(countdownCell(c), rosterColumns[3].width),
		padRight(relationshipCell(c), rosterColumns[4].width),
		padRight(lastSeenCell(c), rosterColumns[5].width),
	}

	if selected {
		return styles.RowSelected.Render(strings.Join(cells, ""))
	}

	// Style cells individually when not selected
	out := []string{cells[0]}
	out = append(out, styleMissing(cells[1], ageCell(c)))
	out = append(out, styleMissing(cells[2], birthdayCell(c)))

	countdown := countdownCell(c)
	if c.DaysUntilBirthday != nil && *c.DaysUntilBirthday <= 7 {
		out = append(out, styles.BirthdaySoon.Render(cells[3]))
	} else {
		out = append(out, styleMissing(cells[3], countdown))
	}

	if c.Relationship != "" {
		out = append(out, lipgloss.NewStyle().
			Foreground(styles.RelationshipColor(c.Relationship)).
			Render(cells[4]))
	} else {
		out = append(out, styles.CellMissing.Render(cells[4]))
	}
	out = append(out, styleMissing(cells[5], lastSeenCell(c)))

	return strings.Join(out, "")
}

func styleMissing(padded, raw string) string {
	if raw == missingCell {
		return styles.CellMissing.Render(padded)
	}
	return padded
}

func ageCell(c domain.Contact) string {
	if c.Age == nil {
		return missingCell
	}
	return strconv.Itoa(*c.Age)
}

func birthdayCell(c domain.Contact) string {
	if c.FormattedBirthday == "" {
		return missingCell
	}
	return c.FormattedBirthday
}

func countdownCell(c domain.Contact) string {
	if c.DaysUntilBirthday == nil {
		return missingCell
	}
	if *c.DaysUntilBirthday == 0 {
		return "today!"
	}
	return fmt.Sprintf("%dd", *c.DaysUntilBirthday)
}

func relationshipCell(c domain.Contact) string {
	if c.Relationship == "" {
		return missingCell
	}
	return c.Relationship
}

func lastSeenCell(c domain.Contact) string {
	if c.LastInteraction == "" {
		return missingCell
	}
	return c.LastInteraction
}

func (m *RosterModel) renderFilterLine() string {
	var parts []string
	if m.filtering {
		parts = append(parts, styles.InputLabel.Render("Filter:")+" "+m.filterInput.View())
	} else if m.filter.Search != "" {
		parts = append(parts, styles.InputLabel.Render("Filter:")+" "+m.filter.Search)
	}
	if m.filter.Relationship != domain.RelationshipAll {
		parts = append(parts, styles.InputLabel.Render("Relationship:")+" "+m.filter.Relationship)
	}
	return strings.Join(parts, "  ")
}

func (m *RosterModel) renderHelpLine() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"j/k", "navigate"},
		{"enter", "open"},
		{"n", "new"},
		{"d", "trash"},
		{"1-6", "sort"},
		{"/", "filter"},
		{"r", "relationship"},
		{"s", "search"},
		{"?", "help"},
		{"q", "quit"},
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(k.key),
			styles.HelpDesc.Render(k.desc),
		))
	}

	return strings.Join(parts, styles.HelpSeparator.String())
}

// Messages for view switching
type SwitchToContactMsg struct {
	Path string
}

type SwitchToCreateMsg struct{}

type SwitchToTrashMsg struct {
	Contact domain.Contact
}

type SwitchToSearchMsg struct{}

type SwitchToHelpMsg struct{}

type SwitchToRosterMsg struct {
	// Refresh forces a reload on return, for flows that wrote to disk
	Refresh bool
}
