package domain

import (
	"fmt"
	"strings"
)

// RiskTolerance is the investor's stated appetite for portfolio volatility
type RiskTolerance int

const (
	ToleranceConservative RiskTolerance = iota
	ToleranceModerate
	ToleranceAggressive
)

// RiskTolerances lists tolerances in display order
var RiskTolerances = []RiskTolerance{ToleranceConservative, ToleranceModerate, ToleranceAggressive}

func (rt RiskTolerance) String() string {
	switch rt {
	case ToleranceConservative:
		return "conservative"
	case ToleranceModerate:
		return "moderate"
	case ToleranceAggressive:
		return "aggressive"
	default:
		return "unknown"
	}
}

// Label returns the display label used by the risk stage
func (rt RiskTolerance) Label() string {
	switch rt {
	case ToleranceConservative:
		return "Conservative (Low Risk)"
	case ToleranceModerate:
		return "Moderate (Balanced Risk)"
	case ToleranceAggressive:
		return "Aggressive (High Risk)"
	default:
		return "Unknown"
	}
}

// Valid reports whether rt is one of the defined tolerances
func (rt RiskTolerance) Valid() bool {
	return rt >= ToleranceConservative && rt <= ToleranceAggressive
}

// ParseRiskTolerance converts a tolerance name into its enum value
func ParseRiskTolerance(s string) (RiskTolerance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "conservative":
		return ToleranceConservative, nil
	case "moderate":
		return ToleranceModerate, nil
	case "aggressive":
		return ToleranceAggressive, nil
	default:
		return ToleranceModerate, fmt.Errorf("unknown risk tolerance %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (rt RiskTolerance) MarshalText() ([]byte, error) {
	if !rt.Valid() {
		return nil, fmt.Errorf("invalid risk tolerance %d", int(rt))
	}
	return []byte(rt.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (rt *RiskTolerance) UnmarshalText(text []byte) error {
	parsed, err := ParseRiskTolerance(string(text))
	if err != nil {
		return err
	}
	*rt = parsed
	return nil
}

// RiskLevel classifies how aggressive a withdrawal rate is
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "Low"
	RiskLevelMedium RiskLevel = "Medium"
	RiskLevelHigh   RiskLevel = "High"
)
