package views

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"friendtracker/internal/application/commands"
	"friendtracker/internal/domain"
	"friendtracker/internal/ports"
)

const (
	interactionFieldDate = iota
	interactionFieldText
)

// InteractionModel is the add/edit form for one interaction log entry
type InteractionModel struct {
	ViewState
	store ports.ContactStore
	clock domain.Clock

	path  string
	index int // -1 when adding
	form  *InputForm
}

// NewInteractionModel creates a new interaction form model
func NewInteractionModel(store ports.ContactStore, clock domain.Clock) *InteractionModel {
	return &InteractionModel{
		store: store,
		clock: clock,
		index: -1,
		form: NewInputForm(
			NewInputField("Date", "YYYY-MM-DD", 10),
			NewInputField("What happened", "coffee, call, dinner...", 200),
		),
	}
}

// SetTarget points the form at an entry. Index -1 starts a new entry
// dated today.
func (m *InteractionModel) SetTarget(path string, index int, date, text string) {
	m.path = path
	m.index = index
	m.form.Reset()
	if index < 0 && date == "" {
		date = m.clock.Now().Format(domain.BirthdayLayout)
	}
	m.form.SetValue(interactionFieldDate, date)
	m.form.SetValue(interactionFieldText, text)
	m.ClearMessage()

	// Date is usually right already; start on the text.
	if text == "" && date != "" {
		m.form.NextField()
	}
}

// Init initializes the interaction view
func (m *InteractionModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the interaction view
func (m *InteractionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m *InteractionModel) save() tea.Cmd {
	return func() tea.Msg {
		date := m.form.Value(interactionFieldDate)
		text := m.form.Value(interactionFieldText)
		ctx := context.Background()

		var result *commands.InteractionResult
		var err error
		if m.index < 0 {
			result, err = commands.NewAddInteractionCommand(m.store, m.path, date, text).Execute(ctx)
		} else {
			result, err = commands.NewEditInteractionCommand(m.store, m.path, m.index, date, text).Execute(ctx)
		}
		if err != nil {
			return InteractionErrMsg{Err: err}
		}
		return InteractionSavedMsg{Path: m.path, Message: result.Message}
	}
}

// InteractionSavedMsg indicates the log entry was written
type InteractionSavedMsg struct {
	Path    string
	Message string
}

// InteractionErrMsg indicates an error while saving
type InteractionErrMsg struct {
	Err error
}

// View renders the interaction view
func (m *InteractionModel) View() string {
	title := "Log Interaction"
	if m.index >= 0 {
		title = "Edit Interaction"
	}

	v := NewViewBuilder().Title(title)
	for i := range m.form.Fields {
		v.Line(m.form.RenderField(i)).BlankLine()
	}
	v.Message(m.Message, m.MessageErr)
	v.Raw(m.form.RenderHelp("save"))
	return v.String()
}
