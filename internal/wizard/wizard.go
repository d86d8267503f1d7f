package wizard

import (
	"fmt"

	"github.com/rgehrsitz/ficalc/internal/calculation"
	"github.com/rgehrsitz/ficalc/internal/domain"
)

// Wizard holds the current stage and the accumulated input of one planning session.
// It is owned by a single caller and is not safe for concurrent use.
type Wizard struct {
	stage  Stage
	input  domain.CalculatorInput
	engine *calculation.ProjectionEngine
	logger calculation.Logger
}

// New starts a session at stage 1 with default inputs
func New() *Wizard {
	return &Wizard{
		stage:  FirstStage,
		input:  domain.DefaultInput(),
		engine: calculation.NewProjectionEngine(),
		logger: calculation.NopLogger{},
	}
}

// NewWithInput starts a session seeded from existing inputs. Each sub-record goes
// through its stage validator, so invalid sections fall back to the defaults.
func NewWithInput(input domain.CalculatorInput) *Wizard {
	w := New()
	w.Load(input)
	return w
}

// Load resets the session and replays every sub-record of input through its stage
// validator. The logger and debug setting are kept.
func (w *Wizard) Load(input domain.CalculatorInput) domain.CalculatorInput {
	w.Reset()
	w.UpdateStage(StageLifeExpectancy, input.LifeExpectancy)
	w.UpdateStage(StageLegacy, input.Legacy)
	w.UpdateStage(StagePortfolio, input.Portfolio)
	w.UpdateStage(StageIncome, input.Income)
	w.UpdateStage(StageRisk, input.Risk)
	w.UpdateStage(StageSpending, input.Spending)
	return w.Input()
}

// SetLogger sets the logger used by the wizard and its engine; nil disables logging
func (w *Wizard) SetLogger(l calculation.Logger) {
	if l == nil {
		l = calculation.NopLogger{}
	}
	w.logger = l
	w.engine.SetLogger(l)
}

// SetDebug toggles step-by-step engine logging
func (w *Wizard) SetDebug(debug bool) {
	w.engine.Debug = debug
}

// CurrentStage returns the stage being shown
func (w *Wizard) CurrentStage() Stage {
	return w.stage
}

// Advance moves to the next stage. It is a no-op on the results stage.
func (w *Wizard) Advance() Stage {
	if w.stage < LastStage {
		w.stage++
		w.logger.Debugf("advanced to stage %d (%s)", w.stage, w.stage)
	}
	return w.stage
}

// Retreat moves to the previous stage. It is a no-op on the first stage.
func (w *Wizard) Retreat() Stage {
	if w.stage > FirstStage {
		w.stage--
		w.logger.Debugf("retreated to stage %d (%s)", w.stage, w.stage)
	}
	return w.stage
}

// IsComplete reports whether the wizard reached the results stage
func (w *Wizard) IsComplete() bool {
	return w.stage == LastStage
}

// StageProgress is the share of the wizard completed, in percent
func (w *Wizard) StageProgress() float64 {
	return float64(w.stage) / float64(StageCount) * 100
}

// Reset discards all inputs and returns to the first stage
func (w *Wizard) Reset() {
	w.stage = FirstStage
	w.input = domain.DefaultInput()
	w.logger.Debugf("wizard reset to defaults")
}

// Input returns a copy of the accumulated inputs
func (w *Wizard) Input() domain.CalculatorInput {
	return w.input.Clone()
}

// Result computes the derived figures for the current inputs
func (w *Wizard) Result() domain.DerivedResult {
	return w.engine.Compute(w.input.Clone())
}

// UpdateStage replaces the sub-record owned by stage with partial once the stage
// validator accepts it, and returns a copy of the resulting aggregate. A record of
// the wrong type, a stage without a record, or a rejected record leaves the
// aggregate unchanged.
func (w *Wizard) UpdateStage(stage Stage, partial any) domain.CalculatorInput {
	if err := w.apply(stage, partial); err != nil {
		w.logger.Warnf("stage %s update ignored: %v", stage, err)
	}
	return w.Input()
}

func (w *Wizard) apply(stage Stage, partial any) error {
	if !stageOwns(stage, partial) {
		return fmt.Errorf("%w: %T sent to %s", ErrStageMismatch, partial, stage)
	}

	next := w.input
	var err error
	switch rec := partial.(type) {
	case domain.LifeExpectancy:
		next.LifeExpectancy, err = ValidateLifeExpectancy(w.input.LifeExpectancy, cloneLifeExpectancy(rec))
	case domain.Legacy:
		next.Legacy, err = ValidateLegacy(w.input.Legacy, rec)
	case domain.Portfolio:
		next.Portfolio, err = ValidatePortfolio(w.input.Portfolio, rec)
	case domain.Income:
		next.Income, err = ValidateIncome(w.input.Income, rec)
	case domain.Risk:
		next.Risk, err = ValidateRisk(w.input.Risk, rec)
	case domain.Spending:
		next.Spending, err = ValidateSpending(w.input.Spending, rec)
	}
	if err != nil {
		return err
	}
	w.input = next
	return nil
}

// stageOwns reports whether partial is the record type that stage collects
func stageOwns(stage Stage, partial any) bool {
	switch partial.(type) {
	case domain.LifeExpectancy:
		return stage == StageLifeExpectancy
	case domain.Legacy:
		return stage == StageLegacy
	case domain.Portfolio:
		return stage == StagePortfolio
	case domain.Income:
		return stage == StageIncome
	case domain.Risk:
		return stage == StageRisk
	case domain.Spending:
		return stage == StageSpending
	}
	return false
}

func cloneLifeExpectancy(le domain.LifeExpectancy) domain.LifeExpectancy {
	le.HealthFactors = append([]domain.HealthFactorID(nil), le.HealthFactors...)
	return le
}
