package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tlodholz/OpsReadyAPI/internal/model"
)

// TrainingRecordFilter list filters; zero values are ignored
type TrainingRecordFilter struct {
	UserID          *int64
	TrainingEventID *int64
	Completed       *bool
	EvaluatorID     *int64
	From            *time.Time // completion_date >= From
	To              *time.Time // completion_date <= To
}

// TrainingRecordRepository outcome record data access
type TrainingRecordRepository interface {
	Create(ctx context.Context, rec *model.TrainingRecord) error
	GetByID(ctx context.Context, id int64) (*model.TrainingRecord, error)
	List(ctx context.Context, f TrainingRecordFilter) ([]model.TrainingRecord, error)
	ListCertificationExpiringBetween(ctx context.Context, from, to time.Time) ([]model.TrainingRecord, error)
	Update(ctx context.Context, rec *model.TrainingRecord) error
	Delete(ctx context.Context, id int64) error
}

type trainingRecordRepo struct {
	db *gorm.DB
}

// NewTrainingRecordRepo creates a TrainingRecordRepository
func NewTrainingRecordRepo(db *gorm.DB) TrainingRecordRepository {
	return &trainingRecordRepo{db: db}
}

func (r *trainingRecordRepo) Create(ctx context.Context, rec *model.TrainingRecord) error {
	return translateError(r.db.WithContext(ctx).Create(rec).Error)
}

func (r *trainingRecordRepo) GetByID(ctx context.Context, id int64) (*model.TrainingRecord, error) {
	var rec model.TrainingRecord
	err := r.db.WithContext(ctx).
		Where("training_record_id = ?", id).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *trainingRecordRepo) List(ctx context.Context, f TrainingRecordFilter) ([]model.TrainingRecord, error) {
	var records []model.TrainingRecord
	db := r.db.WithContext(ctx)

	if f.UserID != nil {
		db = db.Where("user_id = ?", *f.UserID)
	}
	if f.TrainingEventID != nil {
		db = db.Where("training_event_id = ?", *f.TrainingEventID)
	}
	if f.Completed != nil {
		db = db.Where("completed = ?", *f.Completed)
	}
	if f.EvaluatorID != nil {
		db = db.Where("evaluator_id = ?", *f.EvaluatorID)
	}
	if f.From != nil {
		db = db.Where("completion_date >= ?", *f.From)
	}
	if f.To != nil {
		db = db.Where("completion_date <= ?", *f.To)
	}

	err := db.Order("training_record_id ASC").Find(&records).Error
	return records, err
}

// ListCertificationExpiringBetween completed records whose certification
// expires in [from, to)
func (r *trainingRecordRepo) ListCertificationExpiringBetween(ctx context.Context, from, to time.Time) ([]model.TrainingRecord, error) {
	var records []model.TrainingRecord
	err := r.db.WithContext(ctx).
		Where("completed = ?", true).
		Where("certification_expiry_date >= ? AND certification_expiry_date < ?", from, to).
		Order("certification_expiry_date ASC, training_record_id ASC").
		Find(&records).Error
	return records, err
}

func (r *trainingRecordRepo) Update(ctx context.Context, rec *model.TrainingRecord) error {
	return translateError(r.db.WithContext(ctx).Save(rec).Error)
}

func (r *trainingRecordRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("training_record_id = ?", id).Delete(&model.TrainingRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
