package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered clinician. UserID is the human-chosen login
// identifier; Email is optional but unique when present.
type User struct {
	ID                  uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID              string    `gorm:"size:100;not null;uniqueIndex" json:"user_id"`
	PasswordHash        string    `gorm:"not null" json:"-"`
	FullName            *string   `gorm:"size:200" json:"full_name,omitempty"`
	Email               *string   `gorm:"size:255;uniqueIndex" json:"email,omitempty"`
	Specialty           *string   `gorm:"size:100" json:"specialty,omitempty"`
	HospitalAffiliation *string   `gorm:"size:200" json:"hospital_affiliation,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
