package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/ficalc/internal/domain"
	"github.com/rgehrsitz/ficalc/internal/wizard"
)

func TestEditRegistry_List(t *testing.T) {
	keys := NewEditRegistry().List()

	assert.Contains(t, keys, "age")
	assert.Contains(t, keys, "assets.real_estate")
	assert.Contains(t, keys, "projections.eighties")
	assert.IsIncreasing(t, keys)
}

func TestEditRegistry_UnknownKey(t *testing.T) {
	_, err := NewEditRegistry().Create("salary", "100")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown field: salary")
}

func TestEditRegistry_ParseEditSpec(t *testing.T) {
	registry := NewEditRegistry()

	edit, err := registry.ParseEditSpec(" portfolio_value = 250000 ")
	require.NoError(t, err)
	assert.Equal(t, "portfolio_value", edit.Name())
	assert.Equal(t, "Set portfolio value to 250000", edit.Description())

	_, err = registry.ParseEditSpec("portfolio_value")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 'key=value'")
}

func TestEditRegistry_ParseErrors(t *testing.T) {
	tests := []struct {
		spec    string
		wantErr string
	}{
		{"age=old", "invalid age value"},
		{"age=12", "age must be between 18 and 100"},
		{"health_factors=exercise,juggling", `unknown health factor "juggling"`},
		{"die_with_zero=maybe", "invalid boolean value"},
		{"pension=-1", "amount cannot be negative"},
		{"portfolio_value=lots", "invalid amount"},
		{"portfolio_value=1e999999999", "invalid amount"},
		{"portfolio_value=1000000000000000", "invalid amount"},
		{"charitable_giving=0.00000000001", "invalid amount"},
		{"withdrawal_rate=4e0", "invalid percentage"},
		{"assets.stocks=101", "must be between 0 and 100"},
		{"start_age=65", "start age must be one of [62 67 70]"},
		{"tolerance=reckless", "invalid tolerance"},
		{"strategy=custom", `unknown strategy "custom"`},
		{"withdrawal_rate=7", "must be between 2.5 and 6"},
		{"projections.sixties=200%", "must be between 30 and 150"},
	}

	registry := NewEditRegistry()
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			_, err := registry.ParseEditSpec(tt.spec)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEditRegistry_EveryField(t *testing.T) {
	specs := []string{
		"age=40",
		"health_factors=exercise, nonsmoker",
		"legacy_amount=100000",
		"charitable_giving=25000",
		"portfolio_value=300000",
		"assets.stocks=60",
		"assets.bonds=25",
		"assets.real_estate=5",
		"assets.cash=5",
		"assets.other=5",
		"social_security=1800",
		"pension=400",
		"other_income=100",
		"start_age=70",
		"tolerance=aggressive",
		"strategy=dynamic-45",
		"current_spending=60000",
		"projections.fifties=110%",
		"projections.sixties=95",
		"projections.seventies=85",
		"projections.eighties=75",
	}

	registry := NewEditRegistry()
	edits, err := registry.ParseEditSpecs(specs)
	require.NoError(t, err)

	w := wizard.New()
	require.NoError(t, ApplyEdits(w, edits))
	got := w.Input()

	assert.Equal(t, 40, got.LifeExpectancy.Age)
	assert.Equal(t, 90, got.LifeExpectancy.AdjustedAge)
	assert.Equal(t, "125000", got.Legacy.Total().String())
	assert.Equal(t, "300000", got.Portfolio.TotalValue.String())
	assert.Equal(t, "100", got.Portfolio.Assets.Total().String())
	assert.Equal(t, "2300", got.Income.SocialSecurity.Add(got.Income.Pension).Add(got.Income.OtherIncome).String())
	assert.Equal(t, 70, got.Income.StartAge)
	assert.Equal(t, domain.ToleranceAggressive, got.Risk.Tolerance)
	assert.Equal(t, domain.StrategyDynamic45, got.Risk.Strategy)
	assert.Equal(t, "4.5", got.Risk.WithdrawalRate.String())
	assert.Equal(t, "60000", got.Spending.CurrentAnnual.String())
	assert.Equal(t, "110", got.Spending.Projections.Fifties.String())

	reset, err := registry.Create("health_factors", "none")
	require.NoError(t, err)
	require.NoError(t, reset.Apply(w))
	assert.Empty(t, w.Input().LifeExpectancy.HealthFactors)
}
