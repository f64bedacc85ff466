// Package repository owns all persistence against the users and
// operations tables. Every operation-level query is scoped by owner id
// so cross-user access cannot be expressed.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/theatrelog/api/internal/models"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// sortColumns is the allow-list for ListParams.SortBy. Anything else
// falls back to the default column.
var sortColumns = map[string]bool{
	"operation_date": true,
	"operation_name": true,
	"hospital":       true,
	"created_at":     true,
}

// ListParams describes pagination, search and sorting for owner-scoped
// listings.
type ListParams struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
}

// Normalize applies defaults and clamps out-of-range values.
func (p *ListParams) Normalize() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if !sortColumns[p.SortBy] {
		p.SortBy = "operation_date"
	}
	if p.SortOrder != "asc" && p.SortOrder != "desc" {
		p.SortOrder = "desc"
	}
}

func (p *ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// OperationUpdate carries a partial update: nil fields are left
// untouched, non-nil fields are written.
type OperationUpdate struct {
	PatientID     *string
	PatientAge    *int
	DateOfBirth   *time.Time
	OperationDate *time.Time
	OperatorName  *string
	OperatorLevel *string
	Urgency       *string
	ASAGrade      *string
	OperationName *string
	Hospital      *string
	Notes         *string
	Complications *string
	IsPrivate     *bool
}

// OperationStats aggregates one owner's logbook.
type OperationStats struct {
	Total   int64
	ByLevel map[string]int64
	ByMonth map[string]int64
	Recent  []models.Operation
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByUserID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type OperationRepository interface {
	Create(ctx context.Context, op *models.Operation) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Operation, error)
	ListByOwner(ctx context.Context, owner uuid.UUID, p ListParams) ([]models.Operation, int64, error)
	// Update applies the partial update to the row matching id AND
	// owner; gorm.ErrRecordNotFound when no such row exists.
	Update(ctx context.Context, id, owner uuid.UUID, upd OperationUpdate) (*models.Operation, error)
	// Delete removes the row matching id AND owner;
	// gorm.ErrRecordNotFound when nothing was deleted.
	Delete(ctx context.Context, id, owner uuid.UUID) error
	Stats(ctx context.Context, owner uuid.UUID, now time.Time) (*OperationStats, error)
}
