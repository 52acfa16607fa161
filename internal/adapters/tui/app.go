package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"friendtracker/internal/adapters/tui/views"
	"friendtracker/internal/application"
	"friendtracker/internal/domain"
	"friendtracker/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewRoster ViewState = iota
	ViewContact
	ViewCreate
	ViewTrash
	ViewField
	ViewInteraction
	ViewSearch
	ViewHelp
)

// FileChangedMsg is injected from outside the program when the contact
// folder changes on disk.
type FileChangedMsg struct{}

// App is the main TUI application model
type App struct {
	state ViewState

	roster      *views.RosterModel
	contact     *views.ContactModel
	create      *views.CreateModel
	trash       *views.TrashModel
	field       *views.FieldModel
	interaction *views.InteractionModel
	search      *views.SearchModel
	help        *views.HelpModel

	// set when the folder changed while a non-roster view was open
	rosterStale bool

	width  int
	height int
}

// NewApp creates a new TUI application. The vocabulary is the configured
// relationship types offered by the roster's filter.
func NewApp(store ports.ContactStore, index ports.ContactIndex, agg *application.Aggregator, sort domain.SortConfig, vocabulary []string) *App {
	return &App{
		state:       ViewRoster,
		roster:      views.NewRosterModel(agg, sort, vocabulary),
		contact:     views.NewContactModel(store, agg.Clock),
		create:      views.NewCreateModel(store),
		trash:       views.NewTrashModel(store),
		field:       views.NewFieldModel(store),
		interaction: views.NewInteractionModel(store, agg.Clock),
		search:      views.NewSearchModel(index),
		help:        views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.roster.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.roster.SetSize(msg.Width, msg.Height)
		a.contact.SetSize(msg.Width, msg.Height)
		a.create.SetSize(msg.Width, msg.Height)
		a.trash.SetSize(msg.Width, msg.Height)
		a.field.SetSize(msg.Width, msg.Height)
		a.interaction.SetSize(msg.Width, msg.Height)
		a.search.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case FileChangedMsg:
		// Only the roster rereads immediately; other views pick the
		// change up when the user returns.
		if a.state == ViewRoster {
			return a, a.roster.Refresh()
		}
		a.rosterStale = true
		return a, nil

	case tea.FocusMsg:
		// Coming back from another window: contacts may have changed.
		if a.state == ViewRoster {
			return a, a.roster.Refresh()
		}
		a.rosterStale = true
		return a, nil

	// View switching messages
	case views.SwitchToRosterMsg:
		a.state = ViewRoster
		if msg.Refresh || a.rosterStale {
			a.rosterStale = false
			return a, a.roster.Refresh()
		}
		return a, nil

	case views.SwitchToContactMsg:
		a.state = ViewContact
		a.contact.SetTarget(msg.Path)
		return a, a.contact.Init()

	case views.SwitchToCreateMsg:
		a.state = ViewCreate
		a.create.Reset()
		return a, a.create.Init()

	case views.SwitchToTrashMsg:
		a.state = ViewTrash
		a.trash.SetTarget(msg.Contact)
		return a, nil

	case views.SwitchToFieldMsg:
		a.state = ViewField
		a.field.SetTarget(msg.Path, msg.Field, msg.Value)
		return a, a.field.Init()

	case views.SwitchToInteractionMsg:
		a.state = ViewInteraction
		a.interaction.SetTarget(msg.Path, msg.Index, msg.Date, msg.Text)
		return a, a.interaction.Init()

	case views.SwitchToSearchMsg:
		a.state = ViewSearch
		a.search.Reset()
		return a, a.search.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	// Flow results
	case views.CreateSuccessMsg:
		a.state = ViewRoster
		a.roster.SetMessage(msg.Message, false)
		return a, a.roster.Refresh()

	case views.CreateErrMsg:
		a.create.SetError(msg.Err)
		return a, nil

	case views.TrashSuccessMsg:
		a.state = ViewRoster
		a.roster.SetMessage(msg.Message, false)
		return a, a.roster.Refresh()

	case views.TrashErrMsg:
		a.state = ViewRoster
		a.roster.SetError(msg.Err)
		return a, nil

	case views.FieldSavedMsg:
		a.state = ViewContact
		a.rosterStale = true
		a.contact.SetTarget(msg.Path)
		a.contact.SetMessage(msg.Message, false)
		return a, a.contact.Init()

	case views.FieldErrMsg:
		a.field.SetError(msg.Err)
		return a, nil

	case views.InteractionSavedMsg:
		a.state = ViewContact
		a.rosterStale = true
		a.contact.SetTarget(msg.Path)
		a.contact.SetMessage(msg.Message, false)
		return a, a.contact.Init()

	case views.InteractionErrMsg:
		a.interaction.SetError(msg.Err)
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewRoster:
		_, cmd = a.roster.Update(msg)
	default:
		// A roster reload may still be in flight when the user switches
		// views; its result has to reach the roster or the reload latch
		// never releases.
		if _, isKey := msg.(tea.KeyMsg); !isKey {
			if _, rosterCmd := a.roster.Update(msg); rosterCmd != nil {
				return a, rosterCmd
			}
		}
	}
	switch a.state {
	case ViewContact:
		_, cmd = a.contact.Update(msg)
	case ViewCreate:
		_, cmd = a.create.Update(msg)
	case ViewTrash:
		_, cmd = a.trash.Update(msg)
	case ViewField:
		_, cmd = a.field.Update(msg)
	case ViewInteraction:
		_, cmd = a.interaction.Update(msg)
	case ViewSearch:
		_, cmd = a.search.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewContact:
		return a.contact.View()
	case ViewCreate:
		return a.create.View()
	case ViewTrash:
		return a.trash.View()
	case ViewField:
		return a.field.View()
	case ViewInteraction:
		return a.interaction.View()
	case ViewSearch:
		return a.search.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.roster.View()
	}
}

// Sort exposes the roster's current sort configuration for persisting
// on exit.
func (a *App) Sort() domain.SortConfig {
	return a.roster.Sort()
}
