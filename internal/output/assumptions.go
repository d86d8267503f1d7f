package output

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Portfolio growth: 7.0% annually, no further contributions",
	"Life expectancy: 82 years plus health adjustments, at least 10 years out",
	"Spending: average of the four decade projections",
	"Guaranteed income offsets spending in full regardless of start age",
	"Legacy and charitable goals are added to the FI number unless die-with-zero is set",
}
