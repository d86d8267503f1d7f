package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/ficalc/internal/calculation"
	"github.com/rgehrsitz/ficalc/internal/domain"
	"github.com/rgehrsitz/ficalc/internal/tui/components"
	"github.com/rgehrsitz/ficalc/internal/tui/scenes"
	"github.com/rgehrsitz/ficalc/internal/wizard"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.loading {
		return m.renderApp(BorderStyle.Render("⠋ Loading " + m.inputPath + "..."))
	}

	if m.err != nil {
		return m.renderError()
	}

	if m.showHelp {
		return m.renderApp(BorderStyle.Render(m.help.FullHelpView(m.keys.FullHelp())))
	}

	if m.wizard.IsComplete() {
		return m.renderApp(m.renderResults())
	}
	return m.renderApp(m.renderStage())
}

// renderApp wraps content with title bar, status bar, and main container
func (m Model) renderApp(content string) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		"",
		AppStyle.Render(content),
		"",
		m.renderStatusBar(),
	)
}

// renderTitleBar renders the application title and current step
func (m Model) renderTitleBar() string {
	stage := m.wizard.CurrentStage()
	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Render("FICALC - Financial Independence Calculator"),
		SubtitleStyle.Render(fmt.Sprintf("%s / %s", stage.Title(), stage.Description())),
	)
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	bindings := m.keys.ShortHelp()
	switch {
	case m.editing:
		bindings = []key.Binding{m.keys.Confirm, m.keys.Cancel}
	case m.wizard.IsComplete():
		bindings = []key.Binding{m.keys.Prev, m.keys.Share, m.keys.Compare, m.keys.Reset, m.keys.Quit}
	}

	shortcuts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		shortcuts = append(shortcuts, formatShortcut(b.Help().Key, b.Help().Desc))
	}
	statusText := strings.Join(shortcuts, " • ")

	if m.status != "" {
		statusText += "\n" + InfoStyle.Render(m.status)
	}

	return StatusBarStyle.Width(m.width).Render(statusText)
}

// formatShortcut formats a keyboard shortcut with key and description
func formatShortcut(k, desc string) string {
	return StatusKeyStyle.Render(k) + " " + desc
}

// renderError renders an error message
func (m Model) renderError() string {
	content := ErrorStyle.Render(
		fmt.Sprintf("Error: %s\n\nPress any key to continue with default inputs...", m.err),
	)
	return m.renderApp(content)
}

// renderStage renders the field list of an input stage
func (m Model) renderStage() string {
	stage := m.wizard.CurrentStage()
	in := m.wizard.Input()

	fields := m.fields()
	views := make([]scenes.FieldView, len(fields))
	for i, f := range fields {
		v := scenes.FieldView{
			Label:   f.label,
			Kind:    f.kind,
			Value:   f.value(in),
			Focused: i == m.focus,
		}
		if f.kind == scenes.KindSlider {
			v.Slider = components.NewSlider(f.label, f.current(in), f.low(), f.high())
		}
		if v.Focused && m.editing {
			v.Editor = m.editor.View()
		}
		views[i] = v
	}

	return scenes.RenderStage(scenes.StageView{
		Title:       stage.Title(),
		Description: stage.Description(),
		Step:        int(stage),
		Total:       wizard.StageCount,
		Fields:      views,
		Summary:     stageSummary(stage, in),
		Width:       m.width,
	})
}

// renderResults renders the results stage
func (m Model) renderResults() string {
	result := m.wizard.Result()
	view := scenes.ResultsView{
		Result: result,
		Growth: calculation.GrowthPath(result),
		Width:  m.width,
	}
	if m.showCompare {
		view.Comparison = m.comparison()
	}
	return scenes.RenderResults(view)
}

// stageSummary is the live feedback shown under each stage's fields
func stageSummary(stage wizard.Stage, in domain.CalculatorInput) []string {
	switch stage {
	case wizard.StageLifeExpectancy:
		le := in.LifeExpectancy
		return []string{fmt.Sprintf("Adjusted life expectancy: %d (+%d years from health factors)",
			le.AdjustedAge, calculation.TotalHealthAdjustment(le.HealthFactors))}

	case wizard.StageLegacy:
		if in.Legacy.DieWithZero {
			return []string{"Planning to spend everything: no legacy is added to your FI number"}
		}
		return []string{"Total legacy goal: " + FormatCurrency(in.Legacy.Total())}

	case wizard.StagePortfolio:
		total := in.Portfolio.Assets.Total()
		return []string{fmt.Sprintf("Allocated %s%% (%s%% unallocated)",
			total.String(), hundred.Sub(total).String())}

	case wizard.StageIncome:
		return []string{fmt.Sprintf("Guaranteed income: %s/month, %s/year from age %d",
			FormatCurrency(calculation.MonthlyIncome(in.Income)),
			FormatCurrency(calculation.AnnualIncome(in.Income)),
			in.Income.StartAge)}

	case wizard.StageRisk:
		rate := in.Risk.WithdrawalRate
		return []string{fmt.Sprintf("%s risk, ~%s%% estimated success, %sx portfolio multiplier",
			calculation.ClassifyRiskLevel(rate),
			calculation.SuccessRateEstimate(rate).String(),
			calculation.PortfolioMultiplier(rate).StringFixed(1))}

	case wizard.StageSpending:
		return []string{"Average annual spending: " + FormatCurrency(calculation.AverageAnnualSpending(in.Spending))}
	}
	return nil
}
