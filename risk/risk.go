// Package risk is the contract risk-detection engine: a pure,
// deterministic battery of rule checks over a contract snapshot.
// Evaluation never performs I/O, never mutates its input, and never
// fails; partial or malformed fields are treated as undecided.
package risk

import (
	"time"

	"github.com/hwangtab/artcontract/model"
)

// Result is one full evaluation of a snapshot.
type Result struct {
	RiskLevel      model.RiskLevel `json:"risk_level"`
	Warnings       []model.Warning `json:"warnings"`
	CriticalErrors []string        `json:"critical_errors,omitempty"`
	Completeness   int             `json:"completeness"`
	Suggestions    []string        `json:"suggestions,omitempty"`
}

// Evaluate runs the full rule battery against the snapshot at the
// current time. Called by the wizard after every field mutation.
func Evaluate(s *model.ContractSnapshot) Result {
	return EvaluateAt(s, time.Now())
}

// EvaluateAt is Evaluate with an explicit clock for the deadline rules.
func EvaluateAt(s *model.ContractSnapshot, now time.Time) Result {
	e := &evaluation{s: s, now: now, warnings: []model.Warning{}}

	// Rule groups run in a fixed order so warning ordering is stable
	// across evaluations of the same snapshot.
	e.copyrightRules()
	e.paymentRules()
	e.revisionRules()
	e.timelineRules()
	e.usageRules()
	e.workItemRules()

	suggestions := make([]string, 0, len(e.warnings))
	for _, w := range e.warnings {
		if w.Suggestion != "" {
			suggestions = append(suggestions, w.Suggestion)
		}
	}

	return Result{
		RiskLevel:      Aggregate(e.critical, e.warnings),
		Warnings:       e.warnings,
		CriticalErrors: e.critical,
		Completeness:   ScoreCompleteness(s),
		Suggestions:    suggestions,
	}
}

// evaluation accumulates findings while the rule groups run.
type evaluation struct {
	s        *model.ContractSnapshot
	now      time.Time
	warnings []model.Warning
	critical []string
}

func (e *evaluation) emit(id string, severity model.Severity, message, suggestion string, dismissible bool, relatedField string) {
	e.warnings = append(e.warnings, model.Warning{
		ID:           id,
		Severity:     severity,
		Message:      message,
		Suggestion:   suggestion,
		Dismissible:  dismissible,
		RelatedField: relatedField,
	})
}

func (e *evaluation) emitCritical(msg string) {
	e.critical = append(e.critical, msg)
}
