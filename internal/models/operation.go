package models

import (
	"time"

	"github.com/google/uuid"
)

// Fixed enumerations for operation fields. Values are case-sensitive
// and match what the mobile client sends.
var (
	OperatorLevels = []string{
		"Consultant",
		"Specialist Registrar",
		"Core Trainee",
		"Foundation Doctor",
		"Medical Student",
		"Other",
	}

	UrgencyGrades = []string{"Elective", "Urgent", "Emergency", "Immediate"}

	ASAGrades = []string{"ASA I", "ASA II", "ASA III", "ASA IV", "ASA V", "ASA VI"}
)

// Operation is a single surgical case entry. Every operation belongs to
// exactly one user; ownership never changes after creation.
type Operation struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	User          User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	PatientID     string     `gorm:"size:50;not null" json:"patient_id"`
	PatientAge    int        `gorm:"not null" json:"patient_age"`
	DateOfBirth   *time.Time `json:"date_of_birth,omitempty"`
	OperationDate time.Time  `gorm:"not null;index" json:"operation_date"`
	OperatorName  string     `gorm:"size:200;not null" json:"operator_name"`
	OperatorLevel string     `gorm:"size:50;not null" json:"operator_level"`
	Urgency       *string    `gorm:"size:20" json:"urgency,omitempty"`
	ASAGrade      *string    `gorm:"column:asa_grade;size:10" json:"asa_grade,omitempty"`
	OperationName string     `gorm:"size:500;not null" json:"operation_name"`
	Hospital      string     `gorm:"size:200;not null" json:"hospital"`
	Notes         *string    `gorm:"type:text" json:"notes,omitempty"`
	Complications *string    `gorm:"type:text" json:"complications,omitempty"`
	IsPrivate     bool       `gorm:"not null;default:false" json:"is_private"`
	CreatedAt     time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
