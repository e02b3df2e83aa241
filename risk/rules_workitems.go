package risk

import (
	"github.com/hwangtab/artcontract/model"
)

// workItemRules checks the quality of the line-item breakdown. Both
// rules fire at most once no matter how many items are deficient.
func (e *evaluation) workItemRules() {
	items := e.s.WorkItems
	if len(items) == 0 {
		return
	}

	var missingDescription, missingPricing bool
	for i := range items {
		if items[i].Description == "" {
			missingDescription = true
		}
		if _, ok := items[i].LineValue(); !ok {
			missingPricing = true
		}
	}

	if missingDescription {
		e.emit("work_items_missing_description", model.SeverityWarning,
			"설명이 비어 있는 작업 항목이 있습니다.",
			"각 작업 항목에 결과물과 범위를 구체적으로 적으세요.",
			true, "work_items")
	}

	if missingPricing {
		e.emit("work_items_missing_pricing", model.SeverityWarning,
			"금액이 정해지지 않은 작업 항목이 있습니다.",
			"항목별 단가나 소계를 입력해 총액 근거를 남기세요.",
			true, "work_items")
	}
}
