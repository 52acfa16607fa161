package views

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"friendtracker/internal/adapters/tui/styles"
	"friendtracker/internal/application/commands"
	"friendtracker/internal/domain"
	"friendtracker/internal/ports"
)

// ContactKeyMap defines key bindings for the contact page
type ContactKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Edit     key.Binding
	Add      key.Binding
	NewField key.Binding
	Delete   key.Binding
	Copy     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

var ContactKeys = ContactKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Edit: key.NewBinding(
		key.WithKeys("enter", "e"),
		key.WithHelp("enter", "edit"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "log interaction"),
	),
	NewField: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "add field"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete entry"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// headerFields are the built-in fields shown on every contact, in order
var headerFields = []struct {
	label string
	key   string
}{
	{"Name", "name"},
	{"Birthday", "birthday"},
	{"Email", "email"},
	{"Phone", "phone"},
	{"Address", "address"},
	{"Relationship", "relationship"},
	{"Notes", "notes"},
}

type fieldRow struct {
	label string
	key   string
	value string
}

// ContactModel is the single-contact detail view: editable fields on
// top, the dated interaction log below.
type ContactModel struct {
	ViewState
	store ports.ContactStore
	clock domain.Clock

	path   string
	rec    *domain.Record
	fields []fieldRow
	cursor int
}

// NewContactModel creates a new contact page model
func NewContactModel(store ports.ContactStore, clock domain.Clock) *ContactModel {
	return &ContactModel{store: store, clock: clock}
}

// SetTarget points the page at a contact document
func (m *ContactModel) SetTarget(path string) {
	m.path = path
	m.rec = nil
	m.cursor = 0
	m.ClearMessage()
}

// Init loads the targeted contact
func (m *ContactModel) Init() tea.Cmd {
	return m.load
}

func (m *ContactModel) load() tea.Msg {
	rec, _, err := m.store.Read(m.path)
	if err != nil {
		return contactErrMsg{err}
	}
	if rec == nil {
		return contactErrMsg{fmt.Errorf("document has no contact header")}
	}
	return contactLoadedMsg{rec}
}

type contactLoadedMsg struct {
	rec *domain.Record
}

type contactErrMsg struct {
	err error
}

// Update handles messages for the contact page
func (m *ContactModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case contactLoadedMsg:
		m.rec = msg.rec
		m.rebuildFields()
		return m, nil

	case contactErrMsg:
		m.SetError(msg.err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *ContactModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.ClearMessage()

	switch {
	case key.Matches(msg, ContactKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, ContactKeys.Back):
		return m, func() tea.Msg {
			return SwitchToRosterMsg{Refresh: true}
		}

	case key.Matches(msg, ContactKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, ContactKeys.Down):
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, ContactKeys.Edit):
		return m, m.editSelected()

	case key.Matches(msg, ContactKeys.Add):
		path := m.path
		return m, func() tea.Msg {
			return SwitchToInteractionMsg{Path: path, Index: -1}
		}

	case key.Matches(msg, ContactKeys.NewField):
		path := m.path
		return m, func() tea.Msg {
			return SwitchToFieldMsg{Path: path}
		}

	case key.Matches(msg, ContactKeys.Delete):
		if i, ok := m.selectedInteraction(); ok {
			return m, m.deleteInteraction(i)
		}
		return m, nil

	case key.Matches(msg, ContactKeys.Copy):
		m.copySelected()
		return m, nil
	}

	return m, nil
}

// rowCount is the field rows plus one row per logged interaction
func (m *ContactModel) rowCount() int {
	if m.rec == nil {
		return 0
	}
	return len(m.fields) + len(m.rec.Interactions)
}

// selectedInteraction returns the interaction index under the cursor
func (m *ContactModel) selectedInteraction() (int, bool) {
	if m.rec == nil || m.cursor < len(m.fields) {
		return 0, false
	}
	return m.cursor - len(m.fields), true
}

func (m *ContactModel) editSelected() tea.Cmd {
	if m.rec == nil {
		return nil
	}
	path := m.path

	if i, ok := m.selectedInteraction(); ok {
		in := m.rec.Interactions[i]
		return func() tea.Msg {
			return SwitchToInteractionMsg{Path: path, Index: i, Date: in.Date, Text: in.Text}
		}
	}

	row := m.fields[m.cursor]
	return func() tea.Msg {
		return SwitchToFieldMsg{Path: path, Field: row.key, Value: row.value}
	}
}

func (m *ContactModel) deleteInteraction(index int) tea.Cmd {
	return func() tea.Msg {
		cmd := commands.NewDeleteInteractionCommand(m.store, m.path, index)
		if _, err := cmd.Execute(context.Background()); err != nil {
			return contactErrMsg{err}
		}
		return m.load()
	}
}

func (m *ContactModel) copySelected() {
	if m.rec == nil {
		return
	}

	var value string
	if i, ok := m.selectedInteraction(); ok {
		in := m.rec.Interactions[i]
		value = in.Date + " " + in.Text
	} else {
		value = m.fields[m.cursor].value
	}

	if value == "" {
		m.SetMessage("nothing to copy", true)
		return
	}
	if err := clipboard.WriteAll(value); err != nil {
		m.SetMessage(fmt.Sprintf("clipboard: %v", err), true)
		return
	}
	m.SetMessage("Copied", false)
}

// rebuildFields lays out the built-in fields followed by any custom
// fields the document carries, in key order.
func (m *ContactModel) rebuildFields() {
	m.fields = m.fields[:0]
	for _, f := range headerFields {
		m.fields = append(m.fields, fieldRow{
			label: f.label,
			key:   f.key,
			value: m.rec.Field(f.key),
		})
	}
	for _, k := range slices.Sorted(maps.Keys(m.rec.Extras)) {
		m.fields = append(m.fields, fieldRow{
			label: k,
			key:   k,
			value: m.rec.Field(k),
		})
	}

	if m.cursor >= m.rowCount() {
		m.cursor = m.rowCount() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the contact page
func (m *ContactModel) View() string {
	if m.rec == nil {
		if m.Message != "" {
			return styles.App.Render(RenderMessage(m.Message, m.MessageErr))
		}
		return styles.App.Render("Loading...")
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render(m.rec.Name))
	b.WriteString("\n")
	if detail := domain.DetailedAge(m.clock.Now(), m.rec.Birthday); detail != "" {
		b.WriteString(styles.Subtitle.Render(detail))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, row := range m.fields {
		b.WriteString(m.renderFieldRow(row, i == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.InputLabel.Render("Interactions"))
	b.WriteString("\n")
	if len(m.rec.Interactions) == 0 {
		b.WriteString(styles.MutedText.Render("  none logged"))
		b.WriteString("\n")
	}
	for i, in := range m.rec.Interactions {
		b.WriteString(m.renderInteractionRow(in, m.cursor == len(m.fields)+i))
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
	}

	b.WriteString("\n")
	b.WriteString(RenderHelpLine(ContactKeys.Edit, ContactKeys.Add,
		ContactKeys.NewField, ContactKeys.Delete, ContactKeys.Copy, ContactKeys.Back))

	return styles.App.Render(b.String())
}

func (m *ContactModel) renderFieldRow(row fieldRow, selected bool) string {
	value := row.value
	if value == "" {
		value = missingCell
	}
	line := fmt.Sprintf("%s %s", padRight(row.label+":", 14), value)
	if selected {
		return styles.RowSelected.Render(line)
	}
	if row.value == "" {
		return styles.InputLabel.Render(padRight(row.label+":", 14)) + " " +
			styles.CellMissing.Render(missingCell)
	}
	return styles.InputLabel.Render(padRight(row.label+":", 14)) + " " + row.value
}

func (m *ContactModel) renderInteractionRow(in domain.Interaction, selected bool) string {
	line := fmt.Sprintf("  %s  %s", in.Date, in.Text)
	if selected {
		return styles.RowSelected.Render(line)
	}
	return styles.MutedText.Render("  "+in.Date) + "  " + in.Text
}

// Messages for contact page flows
type SwitchToFieldMsg struct {
	Path  string
	Field string
	Value string
}

type SwitchToInteractionMsg struct {
	Path string
	// Index is the interaction to edit, or -1 to add a new entry
	Index int
	Date  string
	Text  string
}
