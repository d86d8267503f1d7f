package tui

import "github.com/rgehrsitz/ficalc/internal/domain"

// InputLoadedMsg carries inputs read from a file at startup
type InputLoadedMsg struct {
	Input domain.CalculatorInput
	Path  string
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ShareCompleteMsg reports the outcome of copying the share text
type ShareCompleteMsg struct {
	Text string
	Err  error
}
