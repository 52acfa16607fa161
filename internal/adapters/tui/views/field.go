package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"friendtracker/internal/application/commands"
	"friendtracker/internal/ports"
)

// FieldModel edits one header field of a contact. Editing the name
// renames the document along with it. An empty field name switches the
// form into add mode, where the user names a new custom field.
type FieldModel struct {
	ViewState
	store ports.ContactStore

	path  string
	field string
	form  *InputForm
}

// NewFieldModel creates a new field edit model
func NewFieldModel(store ports.ContactStore) *FieldModel {
	return &FieldModel{
		store: store,
		form:  NewInputForm(NewInputField("Value", "", 200)),
	}
}

// SetTarget points the form at one field of a contact document. An empty
// field name targets a new custom field instead.
func (m *FieldModel) SetTarget(path, field, value string) {
	m.path = path
	m.field = field
	if field == "" {
		m.form = NewInputForm(
			NewInputField("Field", "e.g. nickname", 60),
			NewInputField("Value", "", 200),
		)
	} else {
		m.form = NewInputForm(NewInputField(field, "", 200))
		m.form.SetValue(0, value)
	}
	m.ClearMessage()
}

func (m *FieldModel) adding() bool {
	return m.field == ""
}

// Init initializes the field view
func (m *FieldModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the field view
func (m *FieldModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			path := m.path
			return m, func() tea.Msg {
				return SwitchToContactMsg{Path: path}
			}
		case key.Matches(msg, m.form.Keys.Submit):
			return m, m.save()
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *FieldModel) save() tea.Cmd {
	return func() tea.Msg {
		field := m.field
		value := m.form.Value(0)
		if m.adding() {
			field = strings.ToLower(m.form.Value(0))
			value = m.form.Value(1)
		}

		// The name field doubles as the filename, so it goes through
		// the rename flow.
		if field == "name" {
			cmd := commands.NewRenameContactCommand(m.store, m.path, value)
			result, err := cmd.Execute(context.Background())
			if err != nil {
				return FieldErrMsg{Err: err}
			}
			return FieldSavedMsg{Path: result.NewPath, Message: result.Message}
		}

		cmd := commands.NewSetFieldCommand(m.store, m.path, field, value)
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return FieldErrMsg{Err: err}
		}
		return FieldSavedMsg{Path: m.path, Message: result.Message}
	}
}

// FieldSavedMsg indicates the field was written. Path carries the
// possibly-renamed document location.
type FieldSavedMsg struct {
	Path    string
	Message string
}

// FieldErrMsg indicates an error while saving
type FieldErrMsg struct {
	Err error
}

// View renders the field view
func (m *FieldModel) View() string {
	b := NewViewBuilder()
	if m.adding() {
		b.Title("Add Field")
	} else {
		b.Title("Edit Field")
	}
	for i := range m.form.Fields {
		b.Line(m.form.RenderField(i))
	}
	return b.
		BlankLine().
		Message(m.Message, m.MessageErr).
		Raw(m.form.RenderHelp("save")).
		String()
}
