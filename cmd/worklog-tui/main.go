package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"worklog/internal/adapters/clipboard"
	"worklog/internal/adapters/sqlite"
	"worklog/internal/adapters/tui"
	"worklog/internal/application"
	"worklog/internal/config"
)

func main() {
	cfg := config.LoadOrDefault()

	storage, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer storage.Close()

	store, err := application.OpenStore(storage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app := tui.NewApp(store, clipboard.New(), cfg.PageSize)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
