package model

// WorkField classifies the creator's discipline
type WorkField string

const (
	FieldDesign      WorkField = "design"
	FieldPhotography WorkField = "photography"
	FieldWriting     WorkField = "writing"
	FieldMusic       WorkField = "music"
	FieldVideo       WorkField = "video"
	FieldVoice       WorkField = "voice"
	FieldTranslation WorkField = "translation"
	FieldOther       WorkField = "other"
)

// ClientType classifies the counterparty
type ClientType string

const (
	ClientIndividual    ClientType = "individual"
	ClientSmallBusiness ClientType = "small_business"
	ClientEnterprise    ClientType = "enterprise"
	ClientUnknown       ClientType = "unknown"
)

// UsageKind is one entry of the usage scope set
type UsageKind string

const (
	UsagePersonal   UsageKind = "personal"
	UsageCommercial UsageKind = "commercial"
	UsageOnline     UsageKind = "online"
	UsagePrint      UsageKind = "print"
	UsageUnlimited  UsageKind = "unlimited"
)

// RightsType is the copyright disposition agreed in enhanced contracts
type RightsType string

const (
	RightsNonExclusiveLicense RightsType = "non_exclusive_license"
	RightsExclusiveLicense    RightsType = "exclusive_license"
	RightsPartialTransfer     RightsType = "partial_transfer"
	RightsFullTransfer        RightsType = "full_transfer"
)

// WorkItem is one line item of the commissioned work.
// Effective line value is Subtotal when set, otherwise Quantity×UnitPrice
// when both are set, otherwise undefined (contributes nothing to totals).
type WorkItem struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Quantity     *int     `json:"quantity,omitempty"`
	UnitPrice    *float64 `json:"unit_price,omitempty"`
	Subtotal     *float64 `json:"subtotal,omitempty"`
	Deliverables []string `json:"deliverables,omitempty"`
}

// LineValue returns the effective value of the item and whether it is priced.
func (w *WorkItem) LineValue() (float64, bool) {
	if w.Subtotal != nil {
		return *w.Subtotal, true
	}
	if w.Quantity != nil && w.UnitPrice != nil {
		return float64(*w.Quantity) * *w.UnitPrice, true
	}
	return 0, false
}

// Timeline holds the project dates. Dates stay as strings at the model
// boundary so malformed wizard input never fails decoding; rules parse
// them lazily and skip on failure.
type Timeline struct {
	StartDate string `json:"start_date,omitempty"`
	Deadline  string `json:"deadline,omitempty"`
}

// Payment is the simple single-amount payment block.
type Payment struct {
	Amount   *float64 `json:"amount,omitempty"`
	Currency string   `json:"currency,omitempty"`
	Deposit  *float64 `json:"deposit,omitempty"`
}

// Installments splits an enhanced payment into stages.
type Installments struct {
	DownPayment  float64  `json:"down_payment"`
	MidPayment   *float64 `json:"mid_payment,omitempty"`
	FinalPayment float64  `json:"final_payment"`
}

// EnhancedPayment is the multi-installment payment block; its presence
// switches the generator into the enhanced document.
type EnhancedPayment struct {
	TotalAmount  float64      `json:"total_amount"`
	Installments Installments `json:"installments"`
	BankAccount  string       `json:"bank_account,omitempty"`
}

// MoralRights are the creator's personal rights. All three must remain
// true. They are legally non-transferable.
type MoralRights struct {
	Attribution bool `json:"attribution"`
	Integrity   bool `json:"integrity"`
	Disclosure  bool `json:"disclosure"`
}

// Retained reports whether every moral right stays with the creator.
func (m MoralRights) Retained() bool {
	return m.Attribution && m.Integrity && m.Disclosure
}

// EconomicRights are the transferable exploitation rights.
type EconomicRights struct {
	Reproduction bool `json:"reproduction"`
	Distribution bool `json:"distribution"`
	Performance  bool `json:"performance"`
	Transmission bool `json:"transmission"`
	Exhibition   bool `json:"exhibition"`
	Rental       bool `json:"rental"`
}

// DerivativeWorks governs adaptation rights.
type DerivativeWorks struct {
	Included            bool     `json:"included"`
	SeparateNegotiation bool     `json:"separate_negotiation"`
	AdditionalFee       *float64 `json:"additional_fee,omitempty"`
}

// UsagePeriod bounds how long the client may use the work.
type UsagePeriod struct {
	Start     string `json:"start,omitempty"`
	End       string `json:"end,omitempty"`
	Perpetual bool   `json:"perpetual"`
}

// CopyrightTerms is the enhanced-mode rights block.
type CopyrightTerms struct {
	RightsType      RightsType       `json:"rights_type,omitempty"`
	MoralRights     MoralRights      `json:"moral_rights"`
	EconomicRights  EconomicRights   `json:"economic_rights"`
	DerivativeWorks *DerivativeWorks `json:"derivative_works,omitempty"`
	UsagePeriod     *UsagePeriod     `json:"usage_period,omitempty"`
	UsageRegion     string           `json:"usage_region,omitempty"`
}

// CreditAttribution is the credit clause of the protection block.
type CreditAttribution struct {
	Required bool   `json:"required"`
	Format   string `json:"format,omitempty"`
}

// ModificationRights caps post-delivery change requests.
type ModificationRights struct {
	AllowedRounds *int     `json:"allowed_rounds,omitempty"`
	FeePerExtra   *float64 `json:"fee_per_extra,omitempty"`
}

// Confidentiality is the NDA clause of the protection block.
type Confidentiality struct {
	Mutual        bool `json:"mutual"`
	DurationYears *int `json:"duration_years,omitempty"`
}

// ProtectionClauses is the enhanced-mode creator-protection block.
type ProtectionClauses struct {
	CreditAttribution  *CreditAttribution  `json:"credit_attribution,omitempty"`
	ModificationRights *ModificationRights `json:"modification_rights,omitempty"`
	Confidentiality    *Confidentiality    `json:"confidentiality,omitempty"`
}

// TerminationTerms is the enhanced-mode termination clause.
type TerminationTerms struct {
	NoticeDays     *int     `json:"notice_days,omitempty"`
	KillFeePercent *float64 `json:"kill_fee_percent,omitempty"`
	ClientBreach   string   `json:"client_breach,omitempty"`
	CreatorBreach  string   `json:"creator_breach,omitempty"`
}

// DisputeResolution is the enhanced-mode dispute clause.
type DisputeResolution struct {
	Method       string `json:"method,omitempty"` // negotiation, mediation, arbitration, litigation
	Jurisdiction string `json:"jurisdiction,omitempty"`
}

// ContractSnapshot is the single aggregate the wizard mutates field by
// field and the risk engine evaluates after every mutation. All fields
// are optional; absence means "undecided", never an error.
type ContractSnapshot struct {
	Field           WorkField  `json:"field,omitempty"`
	WorkType        string     `json:"work_type,omitempty"`
	WorkDescription string     `json:"work_description,omitempty"`
	WorkItems       []WorkItem `json:"work_items,omitempty"`

	ClientType    ClientType `json:"client_type,omitempty"`
	ClientName    string     `json:"client_name,omitempty"`
	ClientContact string     `json:"client_contact,omitempty"`

	Timeline *Timeline `json:"timeline,omitempty"`

	Payment         *Payment         `json:"payment,omitempty"`
	EnhancedPayment *EnhancedPayment `json:"enhanced_payment,omitempty"`

	Revisions             *RevisionPolicy `json:"revisions,omitempty"`
	AdditionalRevisionFee *float64        `json:"additional_revision_fee,omitempty"`

	UsageScope      []UsageKind `json:"usage_scope,omitempty"`
	CommercialUse   bool        `json:"commercial_use,omitempty"`
	ExclusiveRights bool        `json:"exclusive_rights,omitempty"`

	CopyrightTerms    *CopyrightTerms    `json:"copyright_terms,omitempty"`
	ProtectionClauses *ProtectionClauses `json:"protection_clauses,omitempty"`
	TerminationTerms  *TerminationTerms  `json:"termination_terms,omitempty"`
	DisputeResolution *DisputeResolution `json:"dispute_resolution,omitempty"`

	// Cached evaluation result, written back by the caller after each
	// evaluation. Never an input to the engine.
	Completeness int       `json:"completeness"`
	RiskLevel    RiskLevel `json:"risk_level,omitempty"`
	Warnings     []Warning `json:"warnings,omitempty"`
}

// EffectiveAmount resolves the contract value, preferring the enhanced
// installment total over the simple amount field.
func (s *ContractSnapshot) EffectiveAmount() float64 {
	if s.EnhancedPayment != nil {
		return s.EnhancedPayment.TotalAmount
	}
	if s.Payment != nil && s.Payment.Amount != nil {
		return *s.Payment.Amount
	}
	return 0
}

// ItemsTotal sums the effective values of all priced work items.
func (s *ContractSnapshot) ItemsTotal() float64 {
	var total float64
	for i := range s.WorkItems {
		if v, ok := s.WorkItems[i].LineValue(); ok {
			total += v
		}
	}
	return total
}

// PricedItemCount counts items that carry a computable value.
func (s *ContractSnapshot) PricedItemCount() int {
	n := 0
	for i := range s.WorkItems {
		if _, ok := s.WorkItems[i].LineValue(); ok {
			n++
		}
	}
	return n
}

// HasDeposit reports whether any down payment is agreed, plain or enhanced.
func (s *ContractSnapshot) HasDeposit() bool {
	if s.EnhancedPayment != nil && s.EnhancedPayment.Installments.DownPayment > 0 {
		return true
	}
	return s.Payment != nil && s.Payment.Deposit != nil && *s.Payment.Deposit > 0
}

// HasUsage reports whether the usage scope includes the given kind.
func (s *ContractSnapshot) HasUsage(kind UsageKind) bool {
	for _, u := range s.UsageScope {
		if u == kind {
			return true
		}
	}
	return false
}

// Enhanced reports whether any enhanced-mode block is present. The
// generator switches between the basic and standard document on this.
func (s *ContractSnapshot) Enhanced() bool {
	return s.CopyrightTerms != nil ||
		s.EnhancedPayment != nil ||
		s.ProtectionClauses != nil ||
		s.TerminationTerms != nil ||
		s.DisputeResolution != nil
}
