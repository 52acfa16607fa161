package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"friendtracker/internal/adapters/filesystem"
	"friendtracker/internal/adapters/sqlite"
	"friendtracker/internal/adapters/tui"
	"friendtracker/internal/adapters/watcher"
	"friendtracker/internal/application"
	"friendtracker/internal/config"
)

func main() {
	setupLogging()

	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := filesystem.NewRepository(settings.ContactsFolder)
	agg := application.NewAggregator(store)

	index := sqlite.NewIndex(store)
	if err := index.Open(settings.ContactsFolder); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer index.Close()

	app := tui.NewApp(store, index, agg, settings.SortConfig(), settings.RelationshipTypes)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithReportFocus())

	// External edits to the contact folder trigger a roster refresh.
	w, err := watcher.NewFolderWatcher(store.Root(), func() {
		p.Send(tui.FileChangedMsg{})
	})
	if err == nil {
		if err := w.Start(); err != nil {
			slog.Warn("folder watch unavailable", "error", err)
		}
		defer w.Stop()
	} else {
		slog.Warn("folder watch unavailable", "error", err)
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Persist the sort the user ended on.
	sort := app.Sort()
	settings.DefaultSortColumn = string(sort.Column)
	settings.DefaultSortDirection = string(sort.Direction)
	if err := config.Save(settings); err != nil {
		slog.Warn("could not save settings", "error", err)
	}
}

// setupLogging sends slog to a file; stdout belongs to the TUI.
func setupLogging() {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, _ := os.UserHomeDir()
		stateHome = filepath.Join(home, ".local", "state")
	}
	logDir := filepath.Join(stateHome, "friendtracker")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return
	}

	f, err := os.OpenFile(filepath.Join(logDir, "friendtracker.log"),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}
