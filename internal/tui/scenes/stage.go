package scenes

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/ficalc/internal/tui/components"
	"github.com/rgehrsitz/ficalc/internal/tui/tuistyles"
)

// FieldKind selects how a field is drawn and edited
type FieldKind int

const (
	KindNumber FieldKind = iota // typed amount, arrow keys step it
	KindSlider                  // bounded percentage
	KindToggle                  // checkbox, space flips it
	KindChoice                  // one of a fixed list, arrow keys cycle it
)

// FieldView is a field ready for drawing
type FieldView struct {
	Label   string
	Kind    FieldKind
	Value   string
	Focused bool
	Slider  *components.Slider // set for KindSlider
	Editor  string             // rendered text input while the field is being edited
}

// StageView is everything an input stage renders
type StageView struct {
	Title       string
	Description string
	Step        int
	Total       int
	Fields      []FieldView
	Summary     []string
	Width       int
}

const labelWidth = 34

// RenderStage draws the step header, the field list and the live summary
func RenderStage(v StageView) string {
	header := lipgloss.JoinVertical(lipgloss.Left,
		components.StepIndicator(v.Step, v.Total),
		"",
		lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render(v.Title),
		tuistyles.SubtitleStyle.Render(v.Description),
	)

	rows := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		rows = append(rows, renderField(f))
	}

	sections := []string{header, "", strings.Join(rows, "\n")}
	if len(v.Summary) > 0 {
		lines := make([]string, len(v.Summary))
		for i, s := range v.Summary {
			lines[i] = tuistyles.InfoStyle.Render(s)
		}
		sections = append(sections, "", strings.Join(lines, "\n"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderField(f FieldView) string {
	cursor := "  "
	if f.Focused {
		cursor = tuistyles.SelectedItemStyle.Render("▸ ")
	}

	if f.Focused && f.Editor != "" {
		return cursor + tuistyles.ParameterLabelStyle.Width(labelWidth).Render(f.Label) + " " + f.Editor
	}

	if f.Kind == KindSlider && f.Slider != nil {
		return cursor + f.Slider.SetFocused(f.Focused).Render(labelWidth)
	}

	labelStyle := tuistyles.UnselectedItemStyle
	valueStyle := tuistyles.ParameterValueStyle
	if f.Focused {
		labelStyle = tuistyles.SelectedItemStyle
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}

	switch f.Kind {
	case KindToggle:
		return cursor + valueStyle.Render(f.Value) + " " + labelStyle.Render(f.Label)
	case KindChoice:
		return cursor + labelStyle.Width(labelWidth).Render(f.Label) + " " + valueStyle.Render("‹ "+f.Value+" ›")
	default:
		return cursor + labelStyle.Width(labelWidth).Render(f.Label) + " " + valueStyle.Render(f.Value)
	}
}
