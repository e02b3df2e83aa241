package risk

import (
	"math"

	"github.com/hwangtab/artcontract/model"
	"github.com/hwangtab/artcontract/pkg/format"
)

const (
	rushDeadlineDays  = 1
	tightDeadlineDays = 7
	longTermDays      = 30
)

// timelineRules checks deadline pressure. An absent or unparseable
// deadline skips the whole group. A bad date is "undecided", never an
// evaluation failure.
func (e *evaluation) timelineRules() {
	tl := e.s.Timeline
	if tl == nil || tl.Deadline == "" {
		return
	}

	deadline, err := format.ParseDate(tl.Deadline)
	if err != nil {
		return
	}

	days := int(math.Ceil(deadline.Sub(e.now).Hours() / 24))

	switch {
	case days <= rushDeadlineDays:
		e.emit("rush_deadline", model.SeverityDanger,
			"마감까지 하루도 남지 않았습니다.",
			"일정이 촉박한 작업에는 긴급 작업 할증을 반영하세요.",
			true, "timeline.deadline")
	case days <= tightDeadlineDays:
		e.emit("tight_deadline", model.SeverityWarning,
			"마감까지 일주일이 채 남지 않았습니다.",
			"일정 연장 또는 촉박한 일정에 대한 추가 비용을 협의하세요.",
			true, "timeline.deadline")
	case days >= longTermDays:
		e.emit("long_term_project", model.SeverityInfo,
			"한 달 이상 걸리는 장기 프로젝트입니다.",
			"중간 점검 일정과 중도금 지급 시점을 함께 정해두세요.",
			true, "timeline.deadline")
	}
}
