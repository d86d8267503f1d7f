package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/ficalc/internal/compare"
	"github.com/rgehrsitz/ficalc/internal/config"
	"github.com/rgehrsitz/ficalc/internal/output"
	"github.com/rgehrsitz/ficalc/internal/wizard"
)

// Model represents the entire application state
type Model struct {
	wizard *wizard.Wizard
	keys   keyMap
	help   help.Model
	editor textinput.Model

	// Terminal dimensions
	width  int
	height int

	inputPath string
	loading   bool

	// Focused field on the current input stage
	focus   int
	editing bool

	showHelp    bool
	showCompare bool

	status string
	err    error

	copyToClipboard func(string) error
}

// NewModel creates a model driving w; a nil wizard starts a fresh session.
// When inputPath is set the inputs are loaded from it on Init.
func NewModel(w *wizard.Wizard, inputPath string) Model {
	if w == nil {
		w = wizard.New()
	}

	editor := textinput.New()
	editor.CharLimit = 16
	editor.Width = 16

	return Model{
		wizard:          w,
		keys:            defaultKeyMap(),
		help:            help.New(),
		editor:          editor,
		width:           80,
		height:          24,
		inputPath:       inputPath,
		loading:         inputPath != "",
		copyToClipboard: clipboard.WriteAll,
	}
}

// WithClipboard replaces the function used to copy the share text
func (m Model) WithClipboard(copyFn func(string) error) Model {
	m.copyToClipboard = copyFn
	return m
}

// Wizard exposes the session being driven
func (m Model) Wizard() *wizard.Wizard {
	return m.wizard
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	if m.inputPath == "" {
		return nil
	}
	return loadInputCmd(m.inputPath)
}

// loadInputCmd returns a command that loads calculator inputs from a file
func loadInputCmd(path string) tea.Cmd {
	return func() tea.Msg {
		input, err := config.NewInputParser().LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return InputLoadedMsg{Input: input, Path: path}
	}
}

// shareCmd copies the share text for the current result
func shareCmd(text string, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		return ShareCompleteMsg{Text: text, Err: copyFn(text)}
	}
}

// fields returns the controls of the current stage
func (m Model) fields() []field {
	return stageFields(m.wizard.CurrentStage())
}

// comparison runs every catalog strategy against the current inputs
func (m Model) comparison() *compare.ComparisonSet {
	return compare.NewCompareEngine(nil).Compare(m.wizard.Input())
}

// shareText is the one-line summary copied by the share key
func (m Model) shareText() string {
	return output.ShareText(m.wizard.Result())
}
