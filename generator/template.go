package generator

// Template is a basic-mode document template: section bodies with
// {token} placeholders the generator substitutes from the snapshot.
// Templates are keyed by work field and supplied by the template store;
// the generator itself never loads them.
type Template struct {
	Field    string    `yaml:"field" json:"field"`
	Title    string    `yaml:"title" json:"title"`
	Sections []Section `yaml:"sections" json:"sections"`
}

// Section is one titled block of a basic template.
type Section struct {
	Heading string `yaml:"heading" json:"heading"`
	Body    string `yaml:"body" json:"body"`
}

// DefaultTemplate is the generic fallback used when no field-specific
// template exists.
func DefaultTemplate() *Template {
	return &Template{
		Field: "other",
		Title: "용역 계약서",
		Sections: []Section{
			{
				Heading: "1. 계약 당사자",
				Body:    "본 계약은 창작자와 클라이언트 {clientName} 사이에 체결된다.",
			},
			{
				Heading: "2. 작업 내용",
				Body:    "창작자는 다음 작업을 수행한다: {workType}\n세부 내용: {workDescription}",
			},
			{
				Heading: "3. 작업 기간",
				Body:    "작업 시작일: {startDate}\n납품 마감일: {deadline}",
			},
			{
				Heading: "4. 대금",
				Body:    "총 계약 대금: {amount}\n계약금: {deposit}",
			},
			{
				Heading: "5. 수정",
				Body:    "수정 횟수: {revisions}\n초과 수정 비용: 회당 {additionalRevisionFee}",
			},
			{
				Heading: "6. 사용 범위",
				Body:    "클라이언트는 결과물을 다음 범위에서 사용할 수 있다: {usageScope}",
			},
		},
	}
}
