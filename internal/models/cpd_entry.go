package models

import (
	"time"

	"github.com/google/uuid"
)

// CPDEntry is a continuing professional development record. The table
// is migrated with the rest of the schema but no routes are exposed for
// it yet.
type CPDEntry struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User           User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Title          string    `gorm:"size:200;not null" json:"title"`
	Description    *string   `gorm:"size:1000" json:"description,omitempty"`
	Category       string    `gorm:"size:100;not null" json:"category"`
	Hours          float64   `gorm:"type:decimal(5,2);not null" json:"hours"`
	DateCompleted  time.Time `gorm:"not null" json:"date_completed"`
	Provider       *string   `gorm:"size:200" json:"provider,omitempty"`
	CertificateURL *string   `gorm:"size:500" json:"certificate_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
