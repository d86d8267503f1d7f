package wizard

// Stage is a position in the linear wizard. Stages 1-6 collect input, 7 shows results.
type Stage int

const (
	StageLifeExpectancy Stage = iota + 1
	StageLegacy
	StagePortfolio
	StageIncome
	StageRisk
	StageSpending
	StageResults
)

const (
	FirstStage = StageLifeExpectancy
	LastStage  = StageResults
	StageCount = int(LastStage)
)

// Stages lists every stage in order
var Stages = []Stage{
	StageLifeExpectancy,
	StageLegacy,
	StagePortfolio,
	StageIncome,
	StageRisk,
	StageSpending,
	StageResults,
}

func (s Stage) String() string {
	switch s {
	case StageLifeExpectancy:
		return "life_expectancy"
	case StageLegacy:
		return "legacy"
	case StagePortfolio:
		return "portfolio"
	case StageIncome:
		return "income"
	case StageRisk:
		return "risk"
	case StageSpending:
		return "spending"
	case StageResults:
		return "results"
	default:
		return "unknown"
	}
}

// Title returns the step heading
func (s Stage) Title() string {
	switch s {
	case StageLifeExpectancy:
		return "Life Expectancy"
	case StageLegacy:
		return "Legacy Planning"
	case StagePortfolio:
		return "Current Portfolio"
	case StageIncome:
		return "Future Income"
	case StageRisk:
		return "Risk & Withdrawal"
	case StageSpending:
		return "Spending Analysis"
	case StageResults:
		return "Your Results"
	default:
		return "Unknown"
	}
}

// Description returns the one-line step summary
func (s Stage) Description() string {
	switch s {
	case StageLifeExpectancy:
		return "Estimate your lifespan"
	case StageLegacy:
		return "End-of-life financial goals"
	case StagePortfolio:
		return "Your assets today"
	case StageIncome:
		return "Non-portfolio income sources"
	case StageRisk:
		return "Investment strategy"
	case StageSpending:
		return "Lifestyle projections"
	case StageResults:
		return "Your FI number"
	default:
		return ""
	}
}

// Valid reports whether s is within the wizard
func (s Stage) Valid() bool {
	return s >= FirstStage && s <= LastStage
}

// CollectsInput reports whether the stage owns a sub-record of the input
func (s Stage) CollectsInput() bool {
	return s >= FirstStage && s < StageResults
}
