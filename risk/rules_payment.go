package risk

import (
	"math"

	"github.com/hwangtab/artcontract/model"
)

const (
	veryLowPaymentCeiling = 50_000
	depositThreshold      = 100_000
	highValueThreshold    = 1_000_000
	mismatchRatio         = 0.25
)

// paymentRules checks the resolved contract value. When no amount has
// been decided at all, no_payment supersedes the amount-band rules.
func (e *evaluation) paymentRules() {
	s := e.s
	itemsTotal := s.ItemsTotal()

	if !hasAmount(s) {
		e.emit("no_payment", model.SeverityDanger,
			"대금 조건이 아직 정해지지 않았습니다.",
			"작업 대금과 지급 방식을 먼저 합의하세요.",
			false, "payment")
	} else {
		amount := s.EffectiveAmount()

		switch {
		case amount == 0:
			e.emitCritical("대금이 0원인 계약은 창작자를 보호할 수 없습니다!")
			e.emit("zero_payment", model.SeverityDanger,
				"계약 대금이 0원으로 설정되어 있습니다.",
				"무상 작업이 아니라면 대금을 입력하세요.",
				false, "payment.amount")
		case amount < veryLowPaymentCeiling:
			e.emit("very_low_payment", model.SeverityDanger,
				"계약 대금이 5만원 미만입니다.",
				"작업 범위에 비해 대금이 적절한지 다시 확인하세요.",
				true, "payment.amount")
		}

		// A quarter or more of drift between the declared total and the
		// work-item sum usually means one of the two is stale. Zero-cost
		// item lists never trigger this.
		if itemsTotal > 0 && amount > 0 {
			if math.Abs(amount-itemsTotal)/itemsTotal >= mismatchRatio {
				e.emit("work_items_amount_mismatch", model.SeverityWarning,
					"계약 대금과 작업 항목 합계가 25% 이상 차이 납니다.",
					"총 대금 또는 작업 항목 단가를 다시 확인하세요.",
					true, "work_items")
			}
		}

		if amount >= highValueThreshold {
			e.emit("high_value_legal_consult", model.SeverityInfo,
				"고액 계약입니다.",
				"체결 전에 법률 전문가의 검토를 받아보는 것을 권합니다.",
				true, "payment.amount")
		}

		if amount >= depositThreshold && !s.HasDeposit() {
			e.emit("no_down_payment", model.SeverityWarning,
				"10만원 이상 계약인데 계약금(선금)이 없습니다.",
				"전체 대금의 30~50%를 계약금으로 받는 것이 안전합니다.",
				true, "payment.deposit")
		}
	}

	if s.EnhancedPayment != nil && s.EnhancedPayment.BankAccount == "" {
		e.emit("no_bank_account", model.SeverityWarning,
			"분할 지급 조건은 있지만 입금 계좌가 없습니다.",
			"대금을 받을 계좌 정보를 계약서에 명시하세요.",
			true, "enhanced_payment.bank_account")
	}

	if itemsTotal > 0 && s.EffectiveAmount() == 0 {
		e.emit("work_items_without_payment", model.SeverityDanger,
			"작업 항목에는 금액이 있는데 계약 대금이 비어 있습니다.",
			"작업 항목 합계를 계약 대금에 반영하세요.",
			false, "payment.amount")
	}
}
