package transform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/ficalc/internal/domain"
	"github.com/rgehrsitz/ficalc/internal/wizard"
)

func TestApplyEdits_NilWizard(t *testing.T) {
	edit, err := NewEditRegistry().Create("age", "40")
	require.NoError(t, err)

	err = ApplyEdits(nil, []InputEdit{edit})
	assert.Error(t, err)
}

func TestApplyEdits_NilEdit(t *testing.T) {
	err := ApplyEdits(wizard.New(), []InputEdit{nil})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index 0")
}

func TestApplyEdits_Empty(t *testing.T) {
	w := wizard.New()
	require.NoError(t, ApplyEdits(w, nil))
	assert.Equal(t, domain.DefaultInput(), w.Input())
}

func TestApplyEdits_InOrder(t *testing.T) {
	registry := NewEditRegistry()
	edits, err := registry.ParseEditSpecs([]string{
		"assets.stocks=50",
		"assets.cash=23",
		"strategy=guardrails",
		"withdrawal_rate=3.2",
	})
	require.NoError(t, err)

	w := wizard.New()
	require.NoError(t, ApplyEdits(w, edits))

	got := w.Input()
	assert.Equal(t, "23", got.Portfolio.Assets.Cash.String())
	assert.Equal(t, domain.StrategyCustom, got.Risk.Strategy, "a manual rate after a strategy relabels it")
	assert.Equal(t, "3.2", got.Risk.WithdrawalRate.String())
}

func TestApplyEdits_AllocationRejected(t *testing.T) {
	edit, err := NewEditRegistry().Create("assets.cash", "10")
	require.NoError(t, err)

	w := wizard.New()
	err = ApplyEdits(w, []InputEdit{edit})
	require.Error(t, err)
	assert.True(t, errors.Is(err, wizard.ErrAllocationExceeded))

	var editErr *EditError
	require.True(t, errors.As(err, &editErr))
	assert.Equal(t, "assets.cash", editErr.Key)
	assert.Equal(t, "apply", editErr.Operation)
	assert.Equal(t, "3", w.Input().Portfolio.Assets.Cash.String())
}

func TestApplyEdits_LegacyBlockedByDieWithZero(t *testing.T) {
	edits, err := NewEditRegistry().ParseEditSpecs([]string{"die_with_zero=true", "legacy_amount=5000"})
	require.NoError(t, err)

	err = ApplyEdits(wizard.New(), edits)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "value kept at 0")
}

func TestEditError(t *testing.T) {
	inner := errors.New("boom")
	err := NewEditError("age", "parse", "invalid age value", inner)

	assert.Equal(t, "edit age (parse): invalid age value: boom", err.Error())
	assert.True(t, errors.Is(err, inner))

	err = NewEditError("age", "parse", "out of range", nil)
	assert.Equal(t, "edit age (parse): out of range", err.Error())
}
