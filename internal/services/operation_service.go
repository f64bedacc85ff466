package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/theatrelog/api/internal/dto"
	"github.com/theatrelog/api/internal/models"
	"github.com/theatrelog/api/internal/repository"
)

var (
	ErrOperationNotFound = errors.New("Operation not found")
	// ErrNotOwner is returned by Get when the row exists but belongs to
	// someone else. Update and Delete collapse that case into
	// ErrOperationNotOwned instead.
	ErrNotOwner          = errors.New("Access denied")
	ErrOperationNotOwned = errors.New("Operation not found or access denied")
)

const dateLayout = "2006-01-02"

type OperationService struct {
	ops repository.OperationRepository
}

func NewOperationService(ops repository.OperationRepository) *OperationService {
	return &OperationService{ops: ops}
}

func (s *OperationService) Create(ctx context.Context, owner uuid.UUID, req *dto.OperationCreateRequest) (*models.Operation, error) {
	operationDate, err := time.Parse(dateLayout, req.OperationDate)
	if err != nil {
		return nil, err
	}

	op := models.Operation{
		ID:            uuid.New(),
		UserID:        owner,
		PatientID:     req.PatientID,
		PatientAge:    *req.Age,
		OperationDate: operationDate,
		OperatorName:  req.OperatorName,
		OperatorLevel: req.OperatorLevel,
		Urgency:       req.Urgency,
		ASAGrade:      req.ASAGrade,
		OperationName: req.Operation,
		Hospital:      req.Hospital,
		Notes:         req.Notes,
		Complications: req.Complications,
		IsPrivate:     *req.IsPrivate,
	}

	if req.DateOfBirth != nil {
		dob, err := time.Parse(dateLayout, *req.DateOfBirth)
		if err != nil {
			return nil, err
		}
		op.DateOfBirth = &dob
	}

	if err := s.ops.Create(ctx, &op); err != nil {
		return nil, err
	}
	return &op, nil
}

// List returns one page of the owner's operations plus the normalized
// paging parameters for the response's pagination block.
func (s *OperationService) List(ctx context.Context, owner uuid.UUID, q *dto.PaginationQuery) ([]models.Operation, int64, repository.ListParams, error) {
	p := repository.ListParams{
		Page:      q.Page,
		Limit:     q.Limit,
		Search:    q.Search,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
	}
	p.Normalize()

	items, total, err := s.ops.ListByOwner(ctx, owner, p)
	return items, total, p, err
}

func (s *OperationService) Get(ctx context.Context, owner, id uuid.UUID) (*models.Operation, error) {
	op, err := s.ops.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOperationNotFound
		}
		return nil, err
	}

	if op.UserID != owner {
		return nil, ErrNotOwner
	}
	return op, nil
}

func (s *OperationService) Update(ctx context.Context, owner, id uuid.UUID, req *dto.OperationUpdateRequest) (*models.Operation, error) {
	upd := repository.OperationUpdate{
		PatientID:     req.PatientID,
		PatientAge:    req.Age,
		OperatorName:  req.OperatorName,
		OperatorLevel: req.OperatorLevel,
		Urgency:       req.Urgency,
		ASAGrade:      req.ASAGrade,
		OperationName: req.Operation,
		Hospital:      req.Hospital,
		Notes:         req.Notes,
		Complications: req.Complications,
		IsPrivate:     req.IsPrivate,
	}

	if req.OperationDate != nil {
		d, err := time.Parse(dateLayout, *req.OperationDate)
		if err != nil {
			return nil, err
		}
		upd.OperationDate = &d
	}
	if req.DateOfBirth != nil {
		d, err := time.Parse(dateLayout, *req.DateOfBirth)
		if err != nil {
			return nil, err
		}
		upd.DateOfBirth = &d
	}

	op, err := s.ops.Update(ctx, id, owner, upd)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOperationNotOwned
		}
		return nil, err
	}
	return op, nil
}

func (s *OperationService) Delete(ctx context.Context, owner, id uuid.UUID) error {
	if err := s.ops.Delete(ctx, id, owner); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOperationNotOwned
		}
		return err
	}
	return nil
}

func (s *OperationService) Stats(ctx context.Context, owner uuid.UUID) (*repository.OperationStats, error) {
	return s.ops.Stats(ctx, owner, time.Now().UTC())
}
