package risk

import (
	"github.com/hwangtab/artcontract/model"
)

// Aggregate maps the accumulated findings to one overall risk level.
// Any critical error, or two danger findings, is critical; one danger
// is high; two plain warnings are medium; anything less is low.
func Aggregate(criticalErrors []string, warnings []model.Warning) model.RiskLevel {
	var dangerCount, warnCount int
	for _, w := range warnings {
		switch w.Severity {
		case model.SeverityDanger:
			dangerCount++
		case model.SeverityWarning:
			warnCount++
		}
	}

	switch {
	case len(criticalErrors) > 0 || dangerCount >= 2:
		return model.RiskCritical
	case dangerCount >= 1:
		return model.RiskHigh
	case warnCount >= 2:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}
