package risk

import (
	"github.com/hwangtab/artcontract/model"
)

const tooManyRevisions = 10

// revisionRules checks the revision agreement. An undecided policy
// (nil) emits nothing here; only the completeness score reflects it.
func (e *evaluation) revisionRules() {
	r := e.s.Revisions
	if r == nil {
		return
	}

	if r.Unlimited {
		e.emit("unlimited_revisions", model.SeverityDanger,
			"수정 횟수가 무제한으로 설정되어 있습니다.",
			"수정 횟수를 2~3회로 제한하고 초과분은 추가 비용을 받으세요.",
			false, "revisions")
		return
	}

	switch {
	case r.Count == 0:
		e.emit("zero_revisions", model.SeverityWarning,
			"수정 횟수가 0회입니다.",
			"가벼운 수정 1~2회는 허용하는 편이 분쟁을 줄입니다.",
			true, "revisions")
	case r.Count >= tooManyRevisions:
		e.emit("too_many_revisions", model.SeverityWarning,
			"수정 횟수가 10회 이상입니다.",
			"수정 범위와 횟수를 현실적인 수준으로 줄이세요.",
			true, "revisions")
	}

	hasModClause := e.s.ProtectionClauses != nil && e.s.ProtectionClauses.ModificationRights != nil
	if r.Count > 0 && e.s.AdditionalRevisionFee == nil && !hasModClause {
		e.emit("no_additional_fee", model.SeverityInfo,
			"초과 수정에 대한 추가 비용이 정해져 있지 않습니다.",
			"합의한 횟수를 넘는 수정의 회당 비용을 미리 정해두세요.",
			true, "additional_revision_fee")
	}
}
