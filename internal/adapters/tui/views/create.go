package views

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"friendtracker/internal/application/commands"
	"friendtracker/internal/ports"
)

// Field order in the create form
const (
	createFieldName = iota
	createFieldBirthday
	createFieldEmail
	createFieldPhone
	createFieldRelationship
)

// CreateModel is the new-contact form
type CreateModel struct {
	ViewState
	store ports.ContactStore
	form  *InputForm
}

// NewCreateModel creates a new create view model
func NewCreateModel(store ports.ContactStore) *CreateModel {
	return &CreateModel{
		store: store,
		form: NewInputForm(
			NewInputField("Name", "Ada Lovelace", 100),
			NewInputField("Birthday", "YYYY-MM-DD", 10),
			NewInputField("Email", "ada@example.com", 100),
			NewInputField("Phone", "+44 ...", 40),
			NewInputField("Relationship", "friend, family, colleague...", 40),
		),
	}
}

// Reset clears the form for a fresh contact
func (m *CreateModel) Reset() {
	m.form.Reset()
	m.ClearMessage()
}

// Init initializes the create view
func (m *CreateModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the create view
func (m *CreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, func() tea.Msg {
				return SwitchToRosterMsg{}
			}
		case key.Matches(msg, m.form.Keys.Submit):
			return m, m.create()
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *CreateModel) create() tea.Cmd {
	return func() tea.Msg {
		cmd := commands.NewCreateContactCommand(m.store, m.form.Value(createFieldName))
		cmd.Birthday = m.form.Value(createFieldBirthday)
		cmd.Email = m.form.Value(createFieldEmail)
		cmd.Phone = m.form.Value(createFieldPhone)
		cmd.Relationship = m.form.Value(createFieldRelationship)

		result, err := cmd.Execute(context.Background())
		if err != nil {
			return CreateErrMsg{Err: err}
		}
		return CreateSuccessMsg{Path: result.Path, Message: result.Message}
	}
}

// CreateSuccessMsg indicates successful creation
type CreateSuccessMsg struct {
	Path    string
	Message string
}

// CreateErrMsg indicates an error during creation
type CreateErrMsg struct {
	Err error
}

// View renders the create view
func (m *CreateModel) View() string {
	v := NewViewBuilder().
		Title("New Contact").
		Subtitle("Only the name is required.")

	for i := range m.form.Fields {
		v.Line(m.form.RenderField(i)).BlankLine()
	}

	v.Message(m.Message, m.MessageErr)
	v.Raw(m.form.RenderHelp("create"))
	return v.String()
}
