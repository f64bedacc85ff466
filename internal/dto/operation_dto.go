package dto

import (
	"time"

	"github.com/google/uuid"
)

type OperationCreateRequest struct {
	PatientID     string  `json:"patientId" validate:"required,min=1,max=50"`
	DateOfBirth   *string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Age           *int    `json:"age" validate:"required,gte=0,lte=150"`
	OperationDate string  `json:"operationDate" validate:"required,datetime=2006-01-02"`
	OperatorName  string  `json:"operatorName" validate:"required,min=1,max=200"`
	OperatorLevel string  `json:"operatorLevel" validate:"required,oneof=Consultant 'Specialist Registrar' 'Core Trainee' 'Foundation Doctor' 'Medical Student' Other"`
	Urgency       *string `json:"urgency" validate:"omitempty,oneof=Elective Urgent Emergency Immediate"`
	ASAGrade      *string `json:"asaGrade" validate:"omitempty,oneof='ASA I' 'ASA II' 'ASA III' 'ASA IV' 'ASA V' 'ASA VI'"`
	Operation     string  `json:"operation" validate:"required,min=1,max=500"`
	Hospital      string  `json:"hospital" validate:"required,min=1,max=200"`
	Notes         *string `json:"notes" validate:"omitempty,max=2000"`
	Complications *string `json:"complications" validate:"omitempty,max=2000"`
	IsPrivate     *bool   `json:"isPrivate" validate:"required"`
}

// OperationUpdateRequest is the partial-update shape: only fields that
// are present in the payload are applied.
type OperationUpdateRequest struct {
	PatientID     *string `json:"patientId" validate:"omitempty,min=1,max=50"`
	DateOfBirth   *string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Age           *int    `json:"age" validate:"omitempty,gte=0,lte=150"`
	OperationDate *string `json:"operationDate" validate:"omitempty,datetime=2006-01-02"`
	OperatorName  *string `json:"operatorName" validate:"omitempty,min=1,max=200"`
	OperatorLevel *string `json:"operatorLevel" validate:"omitempty,oneof=Consultant 'Specialist Registrar' 'Core Trainee' 'Foundation Doctor' 'Medical Student' Other"`
	Urgency       *string `json:"urgency" validate:"omitempty,oneof=Elective Urgent Emergency Immediate"`
	ASAGrade      *string `json:"asaGrade" validate:"omitempty,oneof='ASA I' 'ASA II' 'ASA III' 'ASA IV' 'ASA V' 'ASA VI'"`
	Operation     *string `json:"operation" validate:"omitempty,min=1,max=500"`
	Hospital      *string `json:"hospital" validate:"omitempty,min=1,max=200"`
	Notes         *string `json:"notes" validate:"omitempty,max=2000"`
	Complications *string `json:"complications" validate:"omitempty,max=2000"`
	IsPrivate     *bool   `json:"isPrivate"`
}

type PaginationQuery struct {
	Page      int    `query:"page" validate:"omitempty,gte=1"`
	Limit     int    `query:"limit" validate:"omitempty,gte=1,lte=100"`
	Search    string `query:"search" validate:"omitempty,max=100"`
	SortBy    string `query:"sortBy" validate:"omitempty,oneof=operation_date operation_name hospital created_at"`
	SortOrder string `query:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

// OperationResponse is the wire format for a stored operation. Field
// names follow the client convention (camelCase, storage columns
// renamed).
type OperationResponse struct {
	ID            uuid.UUID `json:"id"`
	PatientID     string    `json:"patientId"`
	Age           int       `json:"age"`
	Operation     string    `json:"operation"`
	Hospital      string    `json:"hospital"`
	Date          string    `json:"date"`
	OperatorLevel string    `json:"operatorLevel"`
	OperatorName  string    `json:"operatorName"`
	Urgency       *string   `json:"urgency,omitempty"`
	ASAGrade      *string   `json:"asaGrade,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	Complications *string   `json:"complications,omitempty"`
	IsPrivate     bool      `json:"isPrivate"`
	CreatedAt     time.Time `json:"createdAt"`
}

type StatsResponse struct {
	TotalOperations   int64               `json:"totalOperations"`
	OperationsByLevel map[string]int64    `json:"operationsByLevel"`
	OperationsByMonth map[string]int64    `json:"operationsByMonth"`
	RecentOperations  []OperationResponse `json:"recentOperations"`
}
