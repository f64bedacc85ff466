package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/theatrelog/api/internal/models"
)

type operationRepo struct {
	db *gorm.DB
}

func NewOperationRepository(db *gorm.DB) OperationRepository {
	return &operationRepo{db: db}
}

func (r *operationRepo) Create(ctx context.Context, op *models.Operation) error {
	return r.db.WithContext(ctx).Create(op).Error
}

func (r *operationRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Operation, error) {
	var op models.Operation
	if err := r.db.WithContext(ctx).First(&op, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &op, nil
}

func (r *operationRepo) ListByOwner(ctx context.Context, owner uuid.UUID, p ListParams) ([]models.Operation, int64, error) {
	p.Normalize()

	q := r.db.WithContext(ctx).Model(&models.Operation{}).Where("user_id = ?", owner)

	if p.Search != "" {
		pattern := "%" + p.Search + "%"
		q = q.Where(
			"operation_name ILIKE ? OR hospital ILIKE ? OR patient_id ILIKE ? OR operator_name ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ops []models.Operation
	// SortBy/SortOrder come out of Normalize's allow-list, safe to
	// interpolate.
	err := q.Order(p.SortBy + " " + p.SortOrder).
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&ops).Error
	if err != nil {
		return nil, 0, err
	}

	return ops, total, nil
}

func (r *operationRepo) Update(ctx context.Context, id, owner uuid.UUID, upd OperationUpdate) (*models.Operation, error) {
	var op models.Operation
	if err := r.db.WithContext(ctx).First(&op, "id = ? AND user_id = ?", id, owner).Error; err != nil {
		return nil, err
	}

	changes := map[string]interface{}{}
	if upd.PatientID != nil {
		changes["patient_id"] = *upd.PatientID
	}
	if upd.PatientAge != nil {
		changes["patient_age"] = *upd.PatientAge
	}
	if upd.DateOfBirth != nil {
		changes["date_of_birth"] = *upd.DateOfBirth
	}
	if upd.OperationDate != nil {
		changes["operation_date"] = *upd.OperationDate
	}
	if upd.OperatorName != nil {
		changes["operator_name"] = *upd.OperatorName
	}
	if upd.OperatorLevel != nil {
		changes["operator_level"] = *upd.OperatorLevel
	}
	if upd.Urgency != nil {
		changes["urgency"] = *upd.Urgency
	}
	if upd.ASAGrade != nil {
		changes["asa_grade"] = *upd.ASAGrade
	}
	if upd.OperationName != nil {
		changes["operation_name"] = *upd.OperationName
	}
	if upd.Hospital != nil {
		changes["hospital"] = *upd.Hospital
	}
	if upd.Notes != nil {
		changes["notes"] = *upd.Notes
	}
	if upd.Complications != nil {
		changes["complications"] = *upd.Complications
	}
	if upd.IsPrivate != nil {
		changes["is_private"] = *upd.IsPrivate
	}

	if len(changes) > 0 {
		if err := r.db.WithContext(ctx).Model(&op).Updates(changes).Error; err != nil {
			return nil, err
		}
	}

	if err := r.db.WithContext(ctx).First(&op, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &op, nil
}

func (r *operationRepo) Delete(ctx context.Context, id, owner uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Operation{}, "id = ? AND user_id = ?", id, owner)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type levelCount struct {
	OperatorLevel string
	Count         int64
}

type monthCount struct {
	Month string
	Count int64
}

// Stats aggregates the owner's logbook: total count, count per operator
// level, count per calendar month over the trailing 12 months, and the
// five most recently created entries.
func (r *operationRepo) Stats(ctx context.Context, owner uuid.UUID, now time.Time) (*OperationStats, error) {
	stats := &OperationStats{
		ByLevel: map[string]int64{},
		ByMonth: map[string]int64{},
	}

	base := r.db.WithContext(ctx).Model(&models.Operation{}).Where("user_id = ?", owner)

	if err := base.Session(&gorm.Session{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	var levels []levelCount
	err := base.Session(&gorm.Session{}).
		Select("operator_level, count(*) AS count").
		Group("operator_level").
		Scan(&levels).Error
	if err != nil {
		return nil, err
	}
	for _, l := range levels {
		stats.ByLevel[l.OperatorLevel] = l.Count
	}

	var months []monthCount
	err = base.Session(&gorm.Session{}).
		Select("to_char(operation_date, 'YYYY-MM') AS month, count(*) AS count").
		Where("operation_date >= ?", now.AddDate(-1, 0, 0)).
		Group("month").
		Order("month").
		Scan(&months).Error
	if err != nil {
		return nil, err
	}
	for _, m := range months {
		stats.ByMonth[m.Month] = m.Count
	}

	err = r.db.WithContext(ctx).
		Where("user_id = ?", owner).
		Order("created_at DESC").
		Limit(5).
		Find(&stats.Recent).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
