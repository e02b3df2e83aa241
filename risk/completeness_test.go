package risk

import (
	"testing"

	"github.com/hwangtab/artcontract/model"
)

func TestScoreCompletenessEmpty(t *testing.T) {
	if score := ScoreCompleteness(&model.ContractSnapshot{}); score != 0 {
		t.Errorf("Expected 0 for empty snapshot, got %d", score)
	}
}

func TestScoreCompletenessFull(t *testing.T) {
	s := &model.ContractSnapshot{
		Field:      model.FieldDesign,
		WorkType:   "로고 디자인",
		ClientName: "주식회사 달빛",
		Payment:    &model.Payment{Amount: f64(500000), Currency: "KRW"},
		Revisions:  model.NewRevisionCount(3),
		Timeline:   &model.Timeline{Deadline: "2026-03-11"},
		UsageScope: []model.UsageKind{model.UsageCommercial},
		WorkItems: []model.WorkItem{
			{ID: "a", Title: "로고", Description: "메인 로고", Subtotal: f64(500000)},
		},
	}

	score := ScoreCompleteness(s)
	if score != 100 {
		t.Errorf("Expected 100 for full snapshot, got %d", score)
	}
	if score < 80 {
		t.Errorf("Expected completeness >= 80, got %d", score)
	}
}

func TestScoreCompletenessZeroAmountCounts(t *testing.T) {
	// Presence is what counts for the scorer; a zero amount is the
	// payment rules' problem.
	withZero := &model.ContractSnapshot{
		Payment: &model.Payment{Amount: f64(0), Currency: "KRW"},
	}
	without := &model.ContractSnapshot{}

	if ScoreCompleteness(withZero) <= ScoreCompleteness(without) {
		t.Error("Expected a zero amount to still count as a decided payment")
	}
}

func TestScoreCompletenessRevisionStates(t *testing.T) {
	base := ScoreCompleteness(&model.ContractSnapshot{})

	zero := ScoreCompleteness(&model.ContractSnapshot{Revisions: model.NewRevisionCount(0)})
	unlimited := ScoreCompleteness(&model.ContractSnapshot{Revisions: model.NewRevisionUnlimited()})

	if zero <= base {
		t.Error("Expected 0 revisions to count as decided")
	}
	if unlimited <= base {
		t.Error("Expected unlimited revisions to count as decided")
	}
	if zero != unlimited {
		t.Errorf("Expected equal scores for any decided policy, got %d vs %d", zero, unlimited)
	}
}

// Filling in fields one by one must never decrease the score.
func TestScoreCompletenessMonotonic(t *testing.T) {
	steps := []func(*model.ContractSnapshot){
		func(s *model.ContractSnapshot) { s.Field = model.FieldVideo },
		func(s *model.ContractSnapshot) { s.WorkDescription = "홍보 영상 편집" },
		func(s *model.ContractSnapshot) { s.Payment = &model.Payment{Amount: f64(800000), Currency: "KRW"} },
		func(s *model.ContractSnapshot) { s.Revisions = model.NewRevisionCount(2) },
		func(s *model.ContractSnapshot) { s.ClientName = "스튜디오 한별" },
		func(s *model.ContractSnapshot) { s.Timeline = &model.Timeline{Deadline: "2026-04-01"} },
		func(s *model.ContractSnapshot) { s.UsageScope = []model.UsageKind{model.UsageOnline} },
		func(s *model.ContractSnapshot) {
			s.WorkItems = []model.WorkItem{{ID: "a", Title: "편집", Description: "90초 분량", Subtotal: f64(800000)}}
		},
	}

	s := &model.ContractSnapshot{}
	prev := ScoreCompleteness(s)
	for i, step := range steps {
		step(s)
		score := ScoreCompleteness(s)
		if score < prev {
			t.Errorf("Step %d: score decreased from %d to %d", i+1, prev, score)
		}
		prev = score
	}

	if prev != 100 {
		t.Errorf("Expected 100 after all steps, got %d", prev)
	}
}

func TestScoreCompletenessWorkItemsNeverPenalize(t *testing.T) {
	s := &model.ContractSnapshot{
		Field:      model.FieldDesign,
		WorkType:   "로고 디자인",
		ClientName: "주식회사 달빛",
		Payment:    &model.Payment{Amount: f64(500000), Currency: "KRW"},
		Revisions:  model.NewRevisionCount(3),
		Timeline:   &model.Timeline{Deadline: "2026-03-11"},
		UsageScope: []model.UsageKind{model.UsageCommercial},
	}

	// Everything filled, no work items: still a perfect score.
	if score := ScoreCompleteness(s); score != 100 {
		t.Errorf("Expected 100 without work items, got %d", score)
	}
}
