package risk

import (
	"math"

	"github.com/hwangtab/artcontract/model"
)

const (
	requiredWeight = 1.5
	optionalWeight = 1.0
)

// ScoreCompleteness computes the 0–100 fill score of a snapshot: a
// weighted presence check over required fields (work field, work
// type/description, payment amount, revision policy), optional fields
// (client name, deadline, usage scope), and a work-items bonus that
// only participates when items exist. Filling any checked field never
// lowers the score.
func ScoreCompleteness(s *model.ContractSnapshot) int {
	required := []bool{
		s.Field != "",
		s.WorkType != "" || s.WorkDescription != "",
		hasAmount(s),
		s.Revisions != nil,
	}
	optional := []bool{
		s.ClientName != "",
		s.Timeline != nil && s.Timeline.Deadline != "",
		len(s.UsageScope) > 0,
	}

	denominator := float64(len(required))*requiredWeight + float64(len(optional))*optionalWeight
	var numerator float64
	for _, ok := range required {
		if ok {
			numerator += requiredWeight
		}
	}
	for _, ok := range optional {
		if ok {
			numerator += optionalWeight
		}
	}

	// Work items only count when the contract has any: presence earns a
	// bonus, absence is never penalized.
	if len(s.WorkItems) > 0 {
		numerator += optionalWeight
		denominator += optionalWeight
	}

	score := math.Round(math.Min(100, 100*numerator/denominator))
	return int(score)
}

// hasAmount reports whether any payment amount has been decided at all,
// zero included. Zero-amount risk is the payment rules' concern, not
// the completeness scorer's.
func hasAmount(s *model.ContractSnapshot) bool {
	if s.EnhancedPayment != nil {
		return true
	}
	return s.Payment != nil && s.Payment.Amount != nil
}
