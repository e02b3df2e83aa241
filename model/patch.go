package model

// SnapshotPatch is one wizard mutation: every field is optional and
// only present fields are applied. Fields named in Clear are reset to
// undecided, which is how the wizard takes a decision back.
type SnapshotPatch struct {
	Field           *WorkField  `json:"field,omitempty"`
	WorkType        *string     `json:"work_type,omitempty"`
	WorkDescription *string     `json:"work_description,omitempty"`
	WorkItems       *[]WorkItem `json:"work_items,omitempty"`

	ClientType    *ClientType `json:"client_type,omitempty"`
	ClientName    *string     `json:"client_name,omitempty"`
	ClientContact *string     `json:"client_contact,omitempty"`

	Timeline *Timeline `json:"timeline,omitempty"`

	Payment         *Payment         `json:"payment,omitempty"`
	EnhancedPayment *EnhancedPayment `json:"enhanced_payment,omitempty"`

	Revisions             *RevisionPolicy `json:"revisions,omitempty"`
	AdditionalRevisionFee *float64        `json:"additional_revision_fee,omitempty"`

	UsageScope      *[]UsageKind `json:"usage_scope,omitempty"`
	CommercialUse   *bool        `json:"commercial_use,omitempty"`
	ExclusiveRights *bool        `json:"exclusive_rights,omitempty"`

	CopyrightTerms    *CopyrightTerms    `json:"copyright_terms,omitempty"`
	ProtectionClauses *ProtectionClauses `json:"protection_clauses,omitempty"`
	TerminationTerms  *TerminationTerms  `json:"termination_terms,omitempty"`
	DisputeResolution *DisputeResolution `json:"dispute_resolution,omitempty"`

	Clear []string `json:"clear,omitempty"`
}

// Apply merges the patch into the snapshot.
func (p *SnapshotPatch) Apply(s *ContractSnapshot) {
	if p.Field != nil {
		s.Field = *p.Field
	}
	if p.WorkType != nil {
		s.WorkType = *p.WorkType
	}
	if p.WorkDescription != nil {
		s.WorkDescription = *p.WorkDescription
	}
	if p.WorkItems != nil {
		s.WorkItems = *p.WorkItems
	}
	if p.ClientType != nil {
		s.ClientType = *p.ClientType
	}
	if p.ClientName != nil {
		s.ClientName = *p.ClientName
	}
	if p.ClientContact != nil {
		s.ClientContact = *p.ClientContact
	}
	if p.Timeline != nil {
		s.Timeline = p.Timeline
	}
	if p.Payment != nil {
		s.Payment = p.Payment
	}
	if p.EnhancedPayment != nil {
		s.EnhancedPayment = p.EnhancedPayment
	}
	if p.Revisions != nil {
		s.Revisions = p.Revisions
	}
	if p.AdditionalRevisionFee != nil {
		s.AdditionalRevisionFee = p.AdditionalRevisionFee
	}
	if p.UsageScope != nil {
		s.UsageScope = *p.UsageScope
	}
	if p.CommercialUse != nil {
		s.CommercialUse = *p.CommercialUse
	}
	if p.ExclusiveRights != nil {
		s.ExclusiveRights = *p.ExclusiveRights
	}
	if p.CopyrightTerms != nil {
		s.CopyrightTerms = p.CopyrightTerms
	}
	if p.ProtectionClauses != nil {
		s.ProtectionClauses = p.ProtectionClauses
	}
	if p.TerminationTerms != nil {
		s.TerminationTerms = p.TerminationTerms
	}
	if p.DisputeResolution != nil {
		s.DisputeResolution = p.DisputeResolution
	}

	for _, name := range p.Clear {
		clearField(s, name)
	}
}

func clearField(s *ContractSnapshot, name string) {
	switch name {
	case "field":
		s.Field = ""
	case "work_type":
		s.WorkType = ""
	case "work_description":
		s.WorkDescription = ""
	case "work_items":
		s.WorkItems = nil
	case "client_type":
		s.ClientType = ""
	case "client_name":
		s.ClientName = ""
	case "client_contact":
		s.ClientContact = ""
	case "timeline":
		s.Timeline = nil
	case "payment":
		s.Payment = nil
	case "enhanced_payment":
		s.EnhancedPayment = nil
	case "revisions":
		s.Revisions = nil
	case "additional_revision_fee":
		s.AdditionalRevisionFee = nil
	case "usage_scope":
		s.UsageScope = nil
	case "commercial_use":
		s.CommercialUse = false
	case "exclusive_rights":
		s.ExclusiveRights = false
	case "copyright_terms":
		s.CopyrightTerms = nil
	case "protection_clauses":
		s.ProtectionClauses = nil
	case "termination_terms":
		s.TerminationTerms = nil
	case "dispute_resolution":
		s.DisputeResolution = nil
	}
}
