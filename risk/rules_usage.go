package risk

import (
	"github.com/hwangtab/artcontract/model"
)

// usageRules checks usage scope and creator-protection clauses.
func (e *evaluation) usageRules() {
	s := e.s

	hasCreditClause := s.ProtectionClauses != nil && s.ProtectionClauses.CreditAttribution != nil
	if !hasCreditClause {
		e.emit("no_credit_clause", model.SeverityInfo,
			"크레딧(저작자 표기) 조항이 없습니다.",
			"결과물 사용 시 창작자 이름을 표기하는 조항을 넣으세요.",
			true, "protection_clauses.credit_attribution")
	}

	if len(s.UsageScope) == 0 && s.CopyrightTerms == nil {
		e.emit("no_usage_scope", model.SeverityWarning,
			"결과물의 사용 범위가 정해지지 않았습니다.",
			"개인용·상업용·온라인·인쇄 중 허용 범위를 명시하세요.",
			true, "usage_scope")
	}

	if s.HasUsage(model.UsageUnlimited) {
		e.emit("unlimited_usage", model.SeverityWarning,
			"사용 범위가 무제한으로 설정되어 있습니다.",
			"무제한 사용은 사실상 권리 양도에 가깝습니다. 범위를 구체적으로 제한하세요.",
			true, "usage_scope")
	}

	if s.ClientName == "" {
		e.emit("no_client_info", model.SeverityWarning,
			"클라이언트 정보가 없습니다.",
			"계약 상대방의 이름 또는 상호를 반드시 기재하세요.",
			false, "client_name")
	}
}
