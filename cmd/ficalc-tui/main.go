package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/rgehrsitz/ficalc/internal/config"
	"github.com/rgehrsitz/ficalc/internal/tui"
	"github.com/rgehrsitz/ficalc/internal/wizard"
)

func main() {
	// Optional input file; without one the wizard starts from the defaults
	inputPath := ""
	if len(os.Args) > 2 {
		fmt.Println("Usage: ficalc-tui [input-file]")
		os.Exit(1)
	}
	if len(os.Args) == 2 {
		inputPath = os.Args[1]
		if _, err := os.Stat(inputPath); os.IsNotExist(err) {
			fmt.Printf("Error: Input file not found: %s\n", inputPath)
			os.Exit(1)
		}
	}

	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// The alternate screen owns the terminal, so logs only go to a file when debugging
	var logOut io.Writer = io.Discard
	if settings.Debug {
		f, err := tea.LogToFile("ficalc-debug.log", "")
		if err != nil {
			fmt.Printf("Error opening debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.NewWithOptions(logOut, log.Options{
		Prefix:          "ficalc-tui",
		Level:           log.DebugLevel,
		ReportTimestamp: true,
	})

	w := wizard.New()
	w.SetLogger(logger)

	p := tea.NewProgram(
		tui.NewModel(w, inputPath),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
