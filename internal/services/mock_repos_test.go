package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/theatrelog/api/internal/models"
	"github.com/theatrelog/api/internal/repository"
)

// ── mock UserRepository ──

type mockUserRepo struct {
	users map[uuid.UUID]*models.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *models.User) error {
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *mockUserRepo) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) FindByUserID(_ context.Context, userID string) (*models.User, error) {
	for _, u := range m.users {
		if u.UserID == userID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email != nil && *u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *models.User) error {
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.users, id)
	return nil
}

// ── mock OperationRepository ──

type mockOperationRepo struct {
	ops map[uuid.UUID]*models.Operation
	seq int
}

func newMockOperationRepo() *mockOperationRepo {
	return &mockOperationRepo{ops: make(map[uuid.UUID]*models.Operation)}
}

func (m *mockOperationRepo) Create(_ context.Context, op *models.Operation) error {
	m.seq++
	// Monotonic creation times so "most recent" ordering is stable.
	op.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(m.seq) * time.Second)
	op.UpdatedAt = op.CreatedAt
	cp := *op
	m.ops[op.ID] = &cp
	return nil
}

func (m *mockOperationRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Operation, error) {
	if op, ok := m.ops[id]; ok {
		cp := *op
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOperationRepo) ListByOwner(_ context.Context, owner uuid.UUID, p repository.ListParams) ([]models.Operation, int64, error) {
	p.Normalize()

	var matched []models.Operation
	for _, op := range m.ops {
		if op.UserID != owner {
			continue
		}
		if p.Search != "" && !matchesSearch(op, p.Search) {
			continue
		}
		matched = append(matched, *op)
	}

	sort.Slice(matched, func(i, j int) bool {
		less := sortLess(&matched[i], &matched[j], p.SortBy)
		if p.SortOrder == "desc" {
			return !less
		}
		return less
	})

	total := int64(len(matched))
	start := p.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + p.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func matchesSearch(op *models.Operation, search string) bool {
	s := strings.ToLower(search)
	for _, field := range []string{op.OperationName, op.Hospital, op.PatientID, op.OperatorName} {
		if strings.Contains(strings.ToLower(field), s) {
			return true
		}
	}
	return false
}

func sortLess(a, b *models.Operation, sortBy string) bool {
	switch sortBy {
	case "operation_name":
		return a.OperationName < b.OperationName
	case "hospital":
		return a.Hospital < b.Hospital
	case "created_at":
		return a.CreatedAt.Before(b.CreatedAt)
	default: // operation_date
		return a.OperationDate.Before(b.OperationDate)
	}
}

func (m *mockOperationRepo) Update(_ context.Context, id, owner uuid.UUID, upd repository.OperationUpdate) (*models.Operation, error) {
	op, ok := m.ops[id]
	if !ok || op.UserID != owner {
		return nil, gorm.ErrRecordNotFound
	}

	if upd.PatientID != nil {
		op.PatientID = *upd.PatientID
	}
	if upd.PatientAge != nil {
		op.PatientAge = *upd.PatientAge
	}
	if upd.DateOfBirth != nil {
		op.DateOfBirth = upd.DateOfBirth
	}
	if upd.OperationDate != nil {
		op.OperationDate = *upd.OperationDate
	}
	if upd.OperatorName != nil {
		op.OperatorName = *upd.OperatorName
	}
	if upd.OperatorLevel != nil {
		op.OperatorLevel = *upd.OperatorLevel
	}
	if upd.Urgency != nil {
		op.Urgency = upd.Urgency
	}
	if upd.ASAGrade != nil {
		op.ASAGrade = upd.ASAGrade
	}
	if upd.OperationName != nil {
		op.OperationName = *upd.OperationName
	}
	if upd.Hospital != nil {
		op.Hospital = *upd.Hospital
	}
	if upd.Notes != nil {
		op.Notes = upd.Notes
	}
	if upd.Complications != nil {
		op.Complications = upd.Complications
	}
	if upd.IsPrivate != nil {
		op.IsPrivate = *upd.IsPrivate
	}
	op.UpdatedAt = time.Now()

	cp := *op
	return &cp, nil
}

func (m *mockOperationRepo) Delete(_ context.Context, id, owner uuid.UUID) error {
	op, ok := m.ops[id]
	if !ok || op.UserID != owner {
		return gorm.ErrRecordNotFound
	}
	delete(m.ops, id)
	return nil
}

func (m *mockOperationRepo) Stats(_ context.Context, owner uuid.UUID, now time.Time) (*repository.OperationStats, error) {
	stats := &repository.OperationStats{
		ByLevel: map[string]int64{},
		ByMonth: map[string]int64{},
	}

	cutoff := now.AddDate(-1, 0, 0)
	var owned []models.Operation
	for _, op := range m.ops {
		if op.UserID != owner {
			continue
		}
		owned = append(owned, *op)
		stats.Total++
		stats.ByLevel[op.OperatorLevel]++
		if !op.OperationDate.Before(cutoff) {
			stats.ByMonth[op.OperationDate.Format("2006-01")]++
		}
	}

	sort.Slice(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})
	if len(owned) > 5 {
		owned = owned[:5]
	}
	stats.Recent = owned

	return stats, nil
}
