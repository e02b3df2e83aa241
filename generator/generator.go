// Package generator renders the final contract document from a
// snapshot. Like the risk engine it is pure: no I/O and no errors.
// Undecided fields render as placeholder text instead of failing.
package generator

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hwangtab/artcontract/model"
	"github.com/hwangtab/artcontract/pkg/format"
	"github.com/hwangtab/artcontract/risk"
)

// Generate renders the document for the snapshot. Snapshots carrying
// any enhanced block (copyright terms, installment payment, protection
// clauses, termination, dispute resolution) get the standard numbered-
// article document; everything else gets the basic template document.
// A nil template falls back to the generic default.
func Generate(s *model.ContractSnapshot, tmpl *Template) *model.GeneratedContract {
	return GenerateAt(s, tmpl, time.Now())
}

// GenerateAt is Generate with an explicit clock.
func GenerateAt(s *model.ContractSnapshot, tmpl *Template, now time.Time) *model.GeneratedContract {
	if tmpl == nil {
		tmpl = DefaultTemplate()
	}

	var content string
	enhanced := s.Enhanced()
	if enhanced {
		content = renderEnhanced(s)
	} else {
		content = renderBasic(s, tmpl)
	}
	content += renderFooter(s, now)

	eval := risk.EvaluateAt(s, now)

	return &model.GeneratedContract{
		ID:           uuid.New().String(),
		Content:      content,
		Enhanced:     enhanced,
		CreatedAt:    now,
		Completeness: eval.Completeness,
		Warnings:     eval.Warnings,
	}
}

var tokenPattern = regexp.MustCompile(`\{([a-zA-Z_]+)\}`)

func renderBasic(s *model.ContractSnapshot, tmpl *Template) string {
	values := tokenValues(s)

	var b strings.Builder
	b.WriteString(tmpl.Title)
	b.WriteString("\n\n")

	for _, section := range tmpl.Sections {
		b.WriteString(section.Heading)
		b.WriteString("\n")
		body := tokenPattern.ReplaceAllStringFunc(section.Body, func(token string) string {
			name := strings.Trim(token, "{}")
			if v, ok := values[name]; ok {
				return v
			}
			return "[미정]"
		})
		b.WriteString(body)
		b.WriteString("\n\n")
	}

	return b.String()
}

// tokenValues resolves every basic-template token, substituting
// "[<label> 미정]" for anything not yet decided.
func tokenValues(s *model.ContractSnapshot) map[string]string {
	currency := "KRW"
	if s.Payment != nil && s.Payment.Currency != "" {
		currency = s.Payment.Currency
	}

	values := map[string]string{
		"clientName":            orPending(s.ClientName, "클라이언트명"),
		"workType":              orPending(s.WorkType, "작업 유형"),
		"workDescription":       orPending(s.WorkDescription, "작업 내용"),
		"field":                 orPending(fieldLabel(s.Field), "작업 분야"),
		"startDate":             pendingText("작업 시작일"),
		"deadline":              pendingText("마감일"),
		"amount":                pendingText("대금"),
		"deposit":               pendingText("계약금"),
		"revisions":             pendingText("수정 횟수"),
		"additionalRevisionFee": pendingText("추가 수정 비용"),
		"usageScope":            pendingText("사용 범위"),
	}

	if s.Timeline != nil {
		if t, err := format.ParseDate(s.Timeline.StartDate); err == nil {
			values["startDate"] = format.Date(t)
		}
		if t, err := format.ParseDate(s.Timeline.Deadline); err == nil {
			values["deadline"] = format.Date(t)
		}
	}

	if s.EnhancedPayment != nil {
		values["amount"] = format.Currency(s.EnhancedPayment.TotalAmount, currency)
		values["deposit"] = format.Currency(s.EnhancedPayment.Installments.DownPayment, currency)
	} else if s.Payment != nil {
		if s.Payment.Amount != nil {
			values["amount"] = format.Currency(*s.Payment.Amount, currency)
		}
		if s.Payment.Deposit != nil {
			values["deposit"] = format.Currency(*s.Payment.Deposit, currency)
		}
	}

	if s.Revisions != nil {
		values["revisions"] = revisionText(s.Revisions)
	}
	if s.AdditionalRevisionFee != nil {
		values["additionalRevisionFee"] = format.Currency(*s.AdditionalRevisionFee, currency)
	}
	if len(s.UsageScope) > 0 {
		values["usageScope"] = usageScopeText(s.UsageScope)
	}

	return values
}

func renderEnhanced(s *model.ContractSnapshot) string {
	currency := "KRW"
	if s.Payment != nil && s.Payment.Currency != "" {
		currency = s.Payment.Currency
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s 용역 표준 계약서\n\n", orPending(fieldLabel(s.Field), "작업 분야")))

	article := 0
	writeArticle := func(title string, lines ...string) {
		article++
		b.WriteString(fmt.Sprintf("제%d조 (%s)\n", article, title))
		for _, line := range lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	writeArticle("계약 당사자",
		fmt.Sprintf("본 계약은 창작자(이하 \"창작자\")와 %s(이하 \"클라이언트\") 사이에 체결된다.",
			orPending(s.ClientName, "클라이언트명")))

	scopeLines := []string{
		fmt.Sprintf("① 작업 내용: %s", orPending(firstNonEmpty(s.WorkType, s.WorkDescription), "작업 내용")),
	}
	for i := range s.WorkItems {
		item := &s.WorkItems[i]
		line := fmt.Sprintf("  %d. %s", i+1, orPending(item.Title, "항목명"))
		if v, ok := item.LineValue(); ok {
			line += fmt.Sprintf(" — %s", format.Currency(v, currency))
		}
		scopeLines = append(scopeLines, line)
	}
	writeArticle("작업 범위", scopeLines...)

	if s.Timeline != nil && (s.Timeline.StartDate != "" || s.Timeline.Deadline != "") {
		writeArticle("작업 기간",
			fmt.Sprintf("① 작업 시작일: %s", dateText(s.Timeline.StartDate, "작업 시작일")),
			fmt.Sprintf("② 납품 마감일: %s", dateText(s.Timeline.Deadline, "마감일")))
	}

	payLines := []string{
		fmt.Sprintf("① 총 계약 대금: %s", amountText(s, currency)),
	}
	if ep := s.EnhancedPayment; ep != nil {
		payLines = append(payLines,
			fmt.Sprintf("② 계약금: %s (계약 체결 시)", format.Currency(ep.Installments.DownPayment, currency)))
		clause := 3
		if ep.Installments.MidPayment != nil {
			payLines = append(payLines,
				fmt.Sprintf("③ 중도금: %s", format.Currency(*ep.Installments.MidPayment, currency)))
			clause = 4
		}
		payLines = append(payLines,
			fmt.Sprintf("%s 잔금: %s (납품 완료 시)", circled(clause), format.Currency(ep.Installments.FinalPayment, currency)))
		if ep.BankAccount != "" {
			payLines = append(payLines, fmt.Sprintf("· 입금 계좌: %s", ep.BankAccount))
		}
	} else if s.Payment != nil && s.Payment.Deposit != nil {
		payLines = append(payLines,
			fmt.Sprintf("② 계약금: %s (계약 체결 시)", format.Currency(*s.Payment.Deposit, currency)))
	}
	writeArticle("대금 및 지급 방법", payLines...)

	revLine := fmt.Sprintf("① 수정 횟수: %s", pendingText("수정 횟수"))
	if s.Revisions != nil {
		revLine = fmt.Sprintf("① 수정 횟수: %s", revisionText(s.Revisions))
	}
	revLines := []string{revLine}
	if s.AdditionalRevisionFee != nil {
		revLines = append(revLines,
			fmt.Sprintf("② 초과 수정 비용: 회당 %s", format.Currency(*s.AdditionalRevisionFee, currency)))
	}
	writeArticle("수정", revLines...)

	if ct := s.CopyrightTerms; ct != nil {
		rightsLines := []string{
			fmt.Sprintf("① 권리 형태: %s", orPending(rightsTypeLabel(ct.RightsType), "권리 형태")),
			"② 저작인격권(성명표시권·동일성유지권·공표권)은 양도할 수 없으며 항상 창작자에게 유보된다.",
		}
		if granted := economicRightsText(ct.EconomicRights); granted != "" {
			rightsLines = append(rightsLines, fmt.Sprintf("③ 허락/양도되는 저작재산권: %s", granted))
		}
		if ct.UsageRegion != "" {
			rightsLines = append(rightsLines, fmt.Sprintf("· 사용 지역: %s", ct.UsageRegion))
		}
		if up := ct.UsagePeriod; up != nil {
			if up.Perpetual {
				rightsLines = append(rightsLines, "· 사용 기간: 영구")
			} else {
				rightsLines = append(rightsLines,
					fmt.Sprintf("· 사용 기간: %s ~ %s", dateText(up.Start, "시작일"), dateText(up.End, "종료일")))
			}
		}
		writeArticle("저작권", rightsLines...)

		if dw := ct.DerivativeWorks; dw != nil {
			var line string
			switch {
			case !dw.Included:
				line = "① 2차적 저작물 작성권은 본 계약에 포함되지 않는다."
			case dw.AdditionalFee != nil:
				line = fmt.Sprintf("① 2차적 저작물 작성권을 포함하며, 추가 대금은 %s로 한다.",
					format.Currency(*dw.AdditionalFee, currency))
			case dw.SeparateNegotiation:
				line = "① 2차적 저작물의 작성·이용 조건은 별도 협의로 정한다."
			default:
				line = "① 2차적 저작물 작성권을 포함한다."
			}
			writeArticle("2차적 저작물", line)
		}
	} else if len(s.UsageScope) > 0 {
		writeArticle("사용 범위",
			fmt.Sprintf("① 클라이언트는 결과물을 다음 범위에서 사용할 수 있다: %s", usageScopeText(s.UsageScope)))
	}

	if pc := s.ProtectionClauses; pc != nil {
		if ca := pc.CreditAttribution; ca != nil && ca.Required {
			creditLine := "① 클라이언트는 결과물 사용 시 창작자의 이름을 표기한다."
			if ca.Format != "" {
				creditLine += fmt.Sprintf(" 표기 형식: %s", ca.Format)
			}
			writeArticle("크레딧 표기", creditLine)
		}
		if mr := pc.ModificationRights; mr != nil {
			modLines := []string{}
			if mr.AllowedRounds != nil {
				modLines = append(modLines,
					fmt.Sprintf("① 클라이언트가 요청할 수 있는 수정은 %d회까지로 한다.", *mr.AllowedRounds))
			}
			if mr.FeePerExtra != nil {
				modLines = append(modLines,
					fmt.Sprintf("② 이를 초과하는 수정은 회당 %s의 비용을 지급한다.", format.Currency(*mr.FeePerExtra, currency)))
			}
			if len(modLines) > 0 {
				writeArticle("수정 요청의 한계", modLines...)
			}
		}
		if cf := pc.Confidentiality; cf != nil {
			nda := "① 양 당사자는 본 계약 과정에서 알게 된 상대방의 비밀 정보를 제3자에게 누설하지 않는다."
			if !cf.Mutual {
				nda = "① 창작자는 본 계약 과정에서 알게 된 클라이언트의 비밀 정보를 제3자에게 누설하지 않는다."
			}
			ndaLines := []string{nda}
			if cf.DurationYears != nil {
				ndaLines = append(ndaLines,
					fmt.Sprintf("② 비밀 유지 의무는 계약 종료 후 %d년간 존속한다.", *cf.DurationYears))
			}
			writeArticle("비밀 유지", ndaLines...)
		}
	}

	if tt := s.TerminationTerms; tt != nil {
		termLines := []string{}
		if tt.NoticeDays != nil {
			termLines = append(termLines,
				fmt.Sprintf("① 계약 해지는 %d일 전 서면 통지로 한다.", *tt.NoticeDays))
		}
		if tt.KillFeePercent != nil {
			termLines = append(termLines,
				fmt.Sprintf("② 클라이언트 사정으로 해지하는 경우 기성 작업분과 총 대금의 %.0f%%를 지급한다.", *tt.KillFeePercent))
		}
		if len(termLines) == 0 {
			termLines = append(termLines, "① 계약 해지 조건은 양 당사자가 서면으로 합의하여 정한다.")
		}
		writeArticle("계약 해지", termLines...)
	}

	if dr := s.DisputeResolution; dr != nil {
		disputeLine := "① 본 계약에 관한 분쟁은 우선 상호 협의로 해결한다."
		switch dr.Method {
		case "mediation":
			disputeLine = "① 본 계약에 관한 분쟁은 한국저작권위원회의 조정을 통해 해결한다."
		case "arbitration":
			disputeLine = "① 본 계약에 관한 분쟁은 중재로 해결하며, 중재 판정은 최종적이다."
		case "litigation":
			disputeLine = "① 본 계약에 관한 분쟁은 소송으로 해결한다."
		}
		disputeLines := []string{disputeLine}
		if dr.Jurisdiction != "" {
			disputeLines = append(disputeLines, fmt.Sprintf("② 관할: %s", dr.Jurisdiction))
		}
		writeArticle("분쟁 해결", disputeLines...)
	}

	return b.String()
}

// renderFooter appends the fixed disclaimer and signature block every
// document carries, basic or standard.
func renderFooter(s *model.ContractSnapshot, now time.Time) string {
	var b strings.Builder
	b.WriteString("────────────────────────\n")
	b.WriteString("본 계약서는 참고용 초안입니다. 법적 효력을 갖추려면 양 당사자의 서명이 필요하며,\n")
	b.WriteString("중요한 계약은 체결 전 법률 전문가의 검토를 권합니다.\n\n")
	b.WriteString(fmt.Sprintf("계약일: %s\n\n", format.Date(now)))
	b.WriteString("창작자: ____________________ (서명)\n")
	b.WriteString(fmt.Sprintf("클라이언트: %s ____________________ (서명)\n", orPending(s.ClientName, "클라이언트명")))
	return b.String()
}

func orPending(value, label string) string {
	if value == "" {
		return pendingText(label)
	}
	return value
}

func pendingText(label string) string {
	return "[" + label + " 미정]"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func dateText(raw, label string) string {
	if t, err := format.ParseDate(raw); err == nil {
		return format.Date(t)
	}
	return pendingText(label)
}

func amountText(s *model.ContractSnapshot, currency string) string {
	if s.EnhancedPayment == nil && (s.Payment == nil || s.Payment.Amount == nil) {
		return pendingText("대금")
	}
	return format.Currency(s.EffectiveAmount(), currency)
}

// revisionText renders the revision policy; unlimited carries the
// warning marker so the risk stays visible in the document itself.
func revisionText(r *model.RevisionPolicy) string {
	if r.Unlimited {
		return "무제한 ⚠️"
	}
	return fmt.Sprintf("%d회", r.Count)
}

func usageScopeText(scope []model.UsageKind) string {
	labels := make([]string, 0, len(scope))
	for _, kind := range scope {
		labels = append(labels, usageKindLabel(kind))
	}
	return strings.Join(labels, ", ")
}

func usageKindLabel(kind model.UsageKind) string {
	switch kind {
	case model.UsagePersonal:
		return "개인적 사용"
	case model.UsageCommercial:
		return "상업적 사용"
	case model.UsageOnline:
		return "온라인 사용"
	case model.UsagePrint:
		return "인쇄물 사용"
	case model.UsageUnlimited:
		return "무제한 사용"
	default:
		return string(kind)
	}
}

func fieldLabel(field model.WorkField) string {
	switch field {
	case model.FieldDesign:
		return "디자인"
	case model.FieldPhotography:
		return "사진"
	case model.FieldWriting:
		return "글·출판"
	case model.FieldMusic:
		return "음악"
	case model.FieldVideo:
		return "영상"
	case model.FieldVoice:
		return "성우·더빙"
	case model.FieldTranslation:
		return "번역"
	case model.FieldOther:
		return "기타"
	default:
		return ""
	}
}

func rightsTypeLabel(rt model.RightsType) string {
	switch rt {
	case model.RightsNonExclusiveLicense:
		return "비독점적 이용 허락"
	case model.RightsExclusiveLicense:
		return "독점적 이용 허락"
	case model.RightsPartialTransfer:
		return "저작재산권 일부 양도"
	case model.RightsFullTransfer:
		return "저작재산권 전부 양도"
	default:
		return ""
	}
}

func economicRightsText(er model.EconomicRights) string {
	var granted []string
	if er.Reproduction {
		granted = append(granted, "복제권")
	}
	if er.Distribution {
		granted = append(granted, "배포권")
	}
	if er.Performance {
		granted = append(granted, "공연권")
	}
	if er.Transmission {
		granted = append(granted, "공중송신권")
	}
	if er.Exhibition {
		granted = append(granted, "전시권")
	}
	if er.Rental {
		granted = append(granted, "대여권")
	}
	return strings.Join(granted, ", ")
}

func circled(n int) string {
	circles := []string{"①", "②", "③", "④", "⑤", "⑥", "⑦", "⑧", "⑨", "⑩"}
	if n >= 1 && n <= len(circles) {
		return circles[n-1]
	}
	return fmt.Sprintf("(%d)", n)
}
