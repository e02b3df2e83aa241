package model

// Severity of a single risk finding
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// RiskLevel is the aggregate classification of a snapshot
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Collapse maps the internal four-level scale onto the three-level
// scale external consumers understand: critical folds into high.
func (r RiskLevel) Collapse() RiskLevel {
	if r == RiskCritical {
		return RiskHigh
	}
	return r
}

// Warning is one risk finding. ID is deterministic per rule: the same
// input always yields the same id, so callers can de-duplicate and
// diff warning sets across evaluations.
type Warning struct {
	ID           string   `json:"id"`
	Severity     Severity `json:"severity"`
	Message      string   `json:"message"`
	Suggestion   string   `json:"suggestion,omitempty"`
	Dismissible  bool     `json:"dismissible"`
	RelatedField string   `json:"related_field,omitempty"`
}
