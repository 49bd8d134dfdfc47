package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zachkp/portfolio/internal/assets"
	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/tui"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "config file (YAML)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := runTUI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cfg config.Config) error {
	// Log lines would tear the alt screen.
	if path := os.Getenv("PORTFOLIO_TUI_LOG"); path != "" {
		f, err := tea.LogToFile(path, "portfolio")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	content, err := catalog.Load(cfg.ContentPath)
	if err != nil {
		return err
	}
	store, err := catalog.Open(context.Background(), content)
	if err != nil {
		return err
	}
	defer store.Close()

	model := tui.New(content, store, tui.Options{
		Timing:    cfg.Timing(),
		Images:    assets.NewProbe(cfg.ImagesDir),
		Submitter: contact.Simulated{Delay: cfg.ContactDelay},
	})
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
