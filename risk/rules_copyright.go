package risk

import (
	"github.com/hwangtab/artcontract/model"
)

const (
	fullTransferFloor   = 1_000_000
	perpetualUsageFloor = 500_000
)

// copyrightRules checks the enhanced rights block. Moral-rights
// retention is the one absolute legal invariant in the system: a
// contract that purports to transfer them is critically invalid no
// matter what else it says.
func (e *evaluation) copyrightRules() {
	ct := e.s.CopyrightTerms
	if ct == nil {
		return
	}

	if !ct.MoralRights.Retained() {
		e.emitCritical("저작인격권은 법적으로 양도할 수 없습니다!")
		e.emit("moral_rights_transfer", model.SeverityDanger,
			"저작인격권(성명표시권·동일성유지권·공표권)을 양도하는 내용이 포함되어 있습니다.",
			"저작인격권은 항상 창작자에게 유보되도록 조항을 수정하세요.",
			false, "copyright_terms.moral_rights")
	}

	if dw := ct.DerivativeWorks; dw != nil && dw.Included && dw.AdditionalFee == nil && !dw.SeparateNegotiation {
		e.emit("derivative_works_no_fee", model.SeverityDanger,
			"2차적 저작물 작성권을 넘기면서 추가 대금도, 별도 협의 조건도 없습니다.",
			"2차 활용에 대한 추가 비용을 정하거나 별도 협의 조항을 추가하세요.",
			false, "copyright_terms.derivative_works")
	}

	amount := e.s.EffectiveAmount()

	if ct.RightsType == model.RightsFullTransfer && amount < fullTransferFloor {
		e.emit("full_transfer_low_price", model.SeverityDanger,
			"저작재산권 전부를 100만원 미만 금액에 양도하는 계약입니다.",
			"전부 양도 대신 이용 허락 방식을 고려하거나 대금을 다시 협상하세요.",
			true, "copyright_terms.rights_type")
	}

	if up := ct.UsagePeriod; up != nil && up.Perpetual && amount < perpetualUsageFloor {
		e.emit("perpetual_low_price", model.SeverityWarning,
			"영구 사용을 허락하면서 대금이 50만원 미만입니다.",
			"사용 기간을 제한하거나 영구 사용에 걸맞은 대금을 책정하세요.",
			true, "copyright_terms.usage_period")
	}
}
