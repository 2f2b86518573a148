package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/streamui/internal/config"
	"github.com/jask/streamui/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if _, err := config.EnsureFile(cfg); err != nil {
		log.Printf("warn: could not write default config: %v", err)
	}

	// the terminal belongs to the UI, so diagnostics go to a file
	f, err := tea.LogToFile(cfg.Log.Path, "streamui")
	if err != nil {
		log.Fatalf("log file: %v", err)
	}
	defer f.Close()
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: config.ParseLevel(cfg.Log.Level)}))
	slog.SetDefault(logger)

	m, err := tui.New(cfg, logger)
	if err != nil {
		log.Fatalf("build ui: %v", err)
	}

	if err := run(m); err != nil {
		fmt.Printf("error: %v\n", err)
		f.Close()
		os.Exit(1)
	}
}

func run(m *tui.Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return m.Err()
}
