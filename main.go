package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"findbackend/internal/config"
	"findbackend/internal/model"
	"findbackend/internal/scan"
	"findbackend/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if cfg.Help {
		cfg.Usage()
		return
	}

	if cfg.Version {
		fmt.Printf("findbackend version %s\n", model.Version)
		return
	}

	scanner := scan.New(scan.Options{
		Excludes: cfg.Excludes,
		Ignore:   cfg.Ignore,
		Logger:   newLogger(cfg.Verbose),
	})

	if cfg.TUI {
		runTuiMode(scanner, cfg.Root)
		return
	}

	if cfg.JSON {
		runJsonMode(scanner, cfg.Root)
		return
	}

	color := !cfg.NoColor && isatty.IsTerminal(os.Stdout.Fd())
	runReportMode(scanner, cfg.Root, color)
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func runReportMode(scanner *scan.Scanner, root string, color bool) {
	result := scanner.Run(root)
	fmt.Print(scan.GenerateReport(result, color))
}

func runJsonMode(scanner *scan.Scanner, root string) {
	result := scanner.Run(root)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding results: %v\n", err)
	}
}

func runTuiMode(scanner *scan.Scanner, root string) {
	m := tui.InitialModel(scanner, root)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
