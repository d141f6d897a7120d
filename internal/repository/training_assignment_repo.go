package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tlodholz/OpsReadyAPI/internal/model"
)

// TrainingAssignmentRepository assignment data access plus the
// assignment ⋈ record read paths
type TrainingAssignmentRepository interface {
	Create(ctx context.Context, a *model.TrainingAssignment) error
	GetByID(ctx context.Context, id int64) (*model.TrainingAssignment, error)
	ExistsByPair(ctx context.Context, eventID, userID int64) (bool, error)
	UpdateModified(ctx context.Context, a *model.TrainingAssignment) error
	ListUserIDsByEvent(ctx context.Context, eventID int64) ([]int64, error)
	ListRecordsByEvent(ctx context.Context, eventID int64) ([]model.TrainingRecord, error)
	ListRecordsByUser(ctx context.Context, userID int64) ([]model.TrainingRecord, error)
	ListRecordDetailsByEvent(ctx context.Context, eventID int64) ([]model.TrainingRecordDetail, error)
	ListRecordDetailsByUser(ctx context.Context, userID int64) ([]model.TrainingRecordDetail, error)
}

type trainingAssignmentRepo struct {
	db *gorm.DB
}

// NewTrainingAssignmentRepo creates a TrainingAssignmentRepository
func NewTrainingAssignmentRepo(db *gorm.DB) TrainingAssignmentRepository {
	return &trainingAssignmentRepo{db: db}
}

// Create inserts a; a unique (event, user) violation yields pkgerrors.ErrDuplicate
func (r *trainingAssignmentRepo) Create(ctx context.Context, a *model.TrainingAssignment) error {
	return translateError(r.db.WithContext(ctx).Create(a).Error)
}

func (r *trainingAssignmentRepo) GetByID(ctx context.Context, id int64) (*model.TrainingAssignment, error) {
	var a model.TrainingAssignment
	err := r.db.WithContext(ctx).
		Where("assignment_id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *trainingAssignmentRepo) ExistsByPair(ctx context.Context, eventID, userID int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.TrainingAssignment{}).
		Where("training_event_id = ? AND user_id = ?", eventID, userID).
		Count(&n).Error
	return n > 0, err
}

// UpdateModified writes only modified_by_user_id and modified_date
func (r *trainingAssignmentRepo) UpdateModified(ctx context.Context, a *model.TrainingAssignment) error {
	result := r.db.WithContext(ctx).
		Model(a).
		Select("modified_by_user_id", "modified_date").
		Updates(map[string]interface{}{
			"modified_by_user_id": a.ModifiedByUserID,
			"modified_date":       a.ModifiedDate,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *trainingAssignmentRepo) ListUserIDsByEvent(ctx context.Context, eventID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&model.TrainingAssignment{}).
		Where("training_event_id = ?", eventID).
		Distinct().
		Order("user_id ASC").
		Pluck("user_id", &ids).Error
	return ids, err
}

// ── assignment ⋈ record ──

func (r *trainingAssignmentRepo) recordsJoin(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.TrainingRecord{}).
		Distinct("training_records.*").
		Joins("JOIN training_assignments ON training_assignments.assignment_id = training_records.training_assignment_id").
		Order("training_records.training_assignment_id ASC, training_records.training_record_id ASC")
}

func (r *trainingAssignmentRepo) ListRecordsByEvent(ctx context.Context, eventID int64) ([]model.TrainingRecord, error) {
	var records []model.TrainingRecord
	err := r.recordsJoin(ctx).
		Where("training_assignments.training_event_id = ?", eventID).
		Find(&records).Error
	return records, err
}

func (r *trainingAssignmentRepo) ListRecordsByUser(ctx context.Context, userID int64) ([]model.TrainingRecord, error) {
	var records []model.TrainingRecord
	err := r.recordsJoin(ctx).
		Where("training_assignments.user_id = ?", userID).
		Find(&records).Error
	return records, err
}

const recordDetailColumns = `r.training_record_id, r.training_assignment_id,
	a.training_event_id, a.user_id, a.assigned_date,
	r.attendance, r.status, r.training_outcome, r.score,
	r.hours_completed, r.completed, r.completion_date,
	r.certification_number, r.expiration_date,
	p.first_name, p.last_name, p.preferred_name, p.badge_number, p.rank`

func (r *trainingAssignmentRepo) recordDetails(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("training_assignments AS a").
		Select(recordDetailColumns).
		Joins("JOIN training_records AS r ON r.training_assignment_id = a.assignment_id").
		Joins("LEFT JOIN user_profiles AS p ON p.user_id = a.user_id").
		Order("a.assignment_id ASC, r.training_record_id ASC")
}

func (r *trainingAssignmentRepo) ListRecordDetailsByEvent(ctx context.Context, eventID int64) ([]model.TrainingRecordDetail, error) {
	var rows []model.TrainingRecordDetail
	err := r.recordDetails(ctx).
		Where("a.training_event_id = ?", eventID).
		Scan(&rows).Error
	return rows, err
}

func (r *trainingAssignmentRepo) ListRecordDetailsByUser(ctx context.Context, userID int64) ([]model.TrainingRecordDetail, error) {
	var rows []model.TrainingRecordDetail
	err := r.recordDetails(ctx).
		Where("a.user_id = ?", userID).
		Scan(&rows).Error
	return rows, err
}
