package dto

// CPDCreateRequest validates continuing-education entries. The CPD
// resource has no routes yet; the schema is kept in step with the
// cpd_entries table for when it gets wired.
type CPDCreateRequest struct {
	Title          string   `json:"title" validate:"required,min=1,max=200"`
	Description    *string  `json:"description" validate:"omitempty,max=1000"`
	Category       string   `json:"category" validate:"required,max=100"`
	Hours          *float64 `json:"hours" validate:"required,gte=0,lte=1000"`
	DateCompleted  string   `json:"dateCompleted" validate:"required,datetime=2006-01-02"`
	Provider       *string  `json:"provider" validate:"omitempty,max=200"`
	CertificateURL *string  `json:"certificateUrl" validate:"omitempty,url"`
}
