package wizard

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/ficalc/internal/domain"
)

func TestWizard_Navigation(t *testing.T) {
	w := New()
	assert.Equal(t, StageLifeExpectancy, w.CurrentStage())

	assert.Equal(t, StageLifeExpectancy, w.Retreat(), "retreat on the first stage is a no-op")

	for want := StageLegacy; want <= StageResults; want++ {
		assert.Equal(t, want, w.Advance())
	}
	assert.True(t, w.IsComplete())
	assert.Equal(t, StageResults, w.Advance(), "advance on the results stage is a no-op")
	assert.Equal(t, float64(100), w.StageProgress())

	assert.Equal(t, StageSpending, w.Retreat())
	assert.False(t, w.IsComplete())
}

func TestWizard_StageValuesAreAlwaysInRange(t *testing.T) {
	w := New()
	moves := []bool{true, true, false, true, true, true, true, true, true, true, false, false, false, false, false, false, false, false, true}
	for _, forward := range moves {
		if forward {
			w.Advance()
		} else {
			w.Retreat()
		}
		assert.True(t, w.CurrentStage().Valid())
	}
}

func TestWizard_NavigationKeepsInput(t *testing.T) {
	w := New()
	w.SetAge("40")
	w.Advance()
	w.Advance()
	w.Retreat()
	w.Retreat()
	assert.Equal(t, 40, w.Input().LifeExpectancy.Age)
}

func TestWizard_UpdateStageMismatchIsNoOp(t *testing.T) {
	logger := &recordingLogger{}
	w := New()
	w.SetLogger(logger)
	before := w.Input()

	after := w.UpdateStage(StageLegacy, domain.Income{StartAge: 70})
	assert.Equal(t, before, after)

	after = w.UpdateStage(StageResults, domain.Legacy{DieWithZero: true})
	assert.Equal(t, before, after, "the results stage owns no record")

	after = w.UpdateStage(StageIncome, "not a record")
	assert.Equal(t, before, after)

	assert.Len(t, logger.warnings, 3)
}

func TestWizard_UpdateStageReturnsCopy(t *testing.T) {
	w := New()
	got := w.UpdateStage(StageLifeExpectancy, domain.LifeExpectancy{
		Age:           30,
		HealthFactors: []domain.HealthFactorID{domain.FactorExercise},
	})
	got.LifeExpectancy.HealthFactors[0] = domain.FactorNonSmoker

	assert.Equal(t, []domain.HealthFactorID{domain.FactorExercise}, w.Input().LifeExpectancy.HealthFactors)
}

func TestWizard_Reset(t *testing.T) {
	w := New()
	w.SetPortfolioValue("250000")
	w.Advance()
	w.Reset()

	assert.Equal(t, StageLifeExpectancy, w.CurrentStage())
	assert.Equal(t, domain.DefaultInput(), w.Input())
}

func TestNewWithInput(t *testing.T) {
	input := domain.DefaultInput()
	input.LifeExpectancy.Age = 150
	input.Income.StartAge = 65
	input.Portfolio.Assets.Cash = decimal.NewFromInt(50)

	w := NewWithInput(input)
	got := w.Input()

	assert.Equal(t, domain.MaxAge, got.LifeExpectancy.Age)
	assert.Equal(t, 110, got.LifeExpectancy.AdjustedAge)
	assert.Equal(t, 67, got.Income.StartAge, "unsupported start age keeps the default")
	assert.Equal(t, domain.DefaultInput().Portfolio, got.Portfolio, "over-allocated portfolio is rejected")
	assert.Equal(t, StageLifeExpectancy, w.CurrentStage())
}

func TestWizard_LoadKeepsLogger(t *testing.T) {
	logger := &recordingLogger{}
	w := New()
	w.SetLogger(logger)
	w.Advance()
	w.Advance()

	input := domain.DefaultInput()
	input.Portfolio.TotalValue = decimal.NewFromInt(250000)
	input.Income.StartAge = 64
	got := w.Load(input)

	assert.Equal(t, StageLifeExpectancy, w.CurrentStage())
	assert.Equal(t, "250000", got.Portfolio.TotalValue.String())
	assert.Equal(t, 67, got.Income.StartAge)
	assert.NotEmpty(t, logger.debugs, "reset is logged through the existing logger")
}

// Scenario A: health factors raise life expectancy through the wizard
func TestWizard_ScenarioHealthFactors(t *testing.T) {
	w := New()
	w.SetAge("25")
	w.ToggleHealthFactor(domain.FactorExercise, true)
	got := w.ToggleHealthFactor(domain.FactorNonSmoker, true)

	assert.Equal(t, 90, got.LifeExpectancy.AdjustedAge)

	got = w.ToggleHealthFactor(domain.FactorExercise, false)
	assert.Equal(t, 87, got.LifeExpectancy.AdjustedAge)
	assert.Equal(t, []domain.HealthFactorID{domain.FactorNonSmoker}, got.LifeExpectancy.HealthFactors)
}

// The planning horizon floor applies to older users
func TestWizard_ScenarioHorizonFloor(t *testing.T) {
	w := New()
	w.SetAge("78")
	got := w.ToggleHealthFactor(domain.FactorExercise, true)

	assert.Equal(t, 88, got.LifeExpectancy.AdjustedAge)
	assert.Equal(t, 10, w.Result().PlanningHorizonYears)
}

// Scenarios C and D: defaults walked through every stage
func TestWizard_ScenarioDefaults(t *testing.T) {
	w := New()
	for !w.IsComplete() {
		w.Advance()
	}
	result := w.Result()

	assert.Equal(t, "462500", result.FINumber.String())
	assert.Equal(t, "21.6", result.ProgressPercentage.Round(1).String())
	assert.Equal(t, 23, result.YearsToFI.Years)
	require.NotNil(t, result.FIAge)
	assert.Equal(t, 48, *result.FIAge)
}

// Scenario E: an empty portfolio never reaches FI
func TestWizard_ScenarioEmptyPortfolio(t *testing.T) {
	w := New()
	w.SetPortfolioValue("0")
	result := w.Result()

	assert.True(t, result.YearsToFI.Unbounded)
	assert.Nil(t, result.FIAge)
	assert.True(t, result.ProgressPercentage.IsZero())
}

func TestWizard_ResultDoesNotMutateInput(t *testing.T) {
	w := New()
	w.ToggleHealthFactor(domain.FactorPreventiveCare, true)
	before := w.Input()
	w.Result()
	assert.Equal(t, before, w.Input())
}

func TestWizard_DebugLogsEngineSteps(t *testing.T) {
	logger := &recordingLogger{}
	w := New()
	w.SetLogger(logger)
	w.SetDebug(true)
	w.Result()
	assert.NotEmpty(t, logger.debugs)

	w.SetLogger(nil)
	assert.NotPanics(t, func() { w.Result() })
}

type recordingLogger struct {
	debugs   []string
	warnings []string
}

func (l *recordingLogger) Debugf(format string, args ...interface{}) {
	l.debugs = append(l.debugs, format)
}

func (l *recordingLogger) Infof(format string, args ...interface{}) {}

func (l *recordingLogger) Warnf(format string, args ...interface{}) {
	l.warnings = append(l.warnings, format)
}

func (l *recordingLogger) Errorf(format string, args ...interface{}) {}
