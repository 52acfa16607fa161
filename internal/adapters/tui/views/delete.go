package views

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"friendtracker/internal/adapters/tui/styles"
	"friendtracker/internal/application/commands"
	"friendtracker/internal/ports"
)

// TrashModel is the trash confirmation view
type TrashModel struct {
	ConfirmationModel
	store ports.ContactStore
}

// NewTrashModel creates a new trash view model
func NewTrashModel(store ports.ContactStore) *TrashModel {
	return &TrashModel{
		ConfirmationModel: NewConfirmationModel(),
		store:             store,
	}
}

// Init initializes the trash view
func (m *TrashModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the trash view
func (m *TrashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg,
			func() tea.Msg { return m.doTrash() },
			func() tea.Msg { return SwitchToRosterMsg{} },
		)
		if handled {
			return m, cmd
		}
	}

	return m, nil
}

func (m *TrashModel) doTrash() tea.Msg {
	cmd := commands.NewTrashContactCommand(m.store, m.Target.Path)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		return TrashErrMsg{Err: err}
	}
	return TrashSuccessMsg{Message: result.Message}
}

// TrashSuccessMsg indicates the contact was moved to the trash folder
type TrashSuccessMsg struct {
	Message string
}

// TrashErrMsg indicates an error while trashing
type TrashErrMsg struct {
	Err error
}

// View renders the trash confirmation view
func (m *TrashModel) View() string {
	contact := m.Target.Name
	if m.Target.Relationship != "" {
		contact += "  " + styles.MutedText.Render("("+m.Target.Relationship+")")
	}

	return NewViewBuilder().
		Title("Move to Trash").
		Line(RenderLabelValue("Contact", contact)).
		BlankLine().
		Muted(fmt.Sprintf("The document moves to the folder's %q subfolder; nothing is deleted.",
			".trash")).
		BlankLine().
		Raw(RenderConfirmPrompt("Move to trash?")).
		String()
}
