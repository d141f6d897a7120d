package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tlodholz/OpsReadyAPI/internal/model"
)

// TrainingEventFilter list filters; zero values are ignored
type TrainingEventFilter struct {
	From  *time.Time // start_date >= From
	To    *time.Time // end_date <= To
	Title string
}

// TrainingEventRepository training event data access
type TrainingEventRepository interface {
	Create(ctx context.Context, e *model.TrainingEvent) error
	GetByID(ctx context.Context, id int64) (*model.TrainingEvent, error)
	List(ctx context.Context, f TrainingEventFilter) ([]model.TrainingEvent, error)
	Update(ctx context.Context, e *model.TrainingEvent) error
	Delete(ctx context.Context, id int64) error
}

type trainingEventRepo struct {
	db *gorm.DB
}

// NewTrainingEventRepo creates a TrainingEventRepository
func NewTrainingEventRepo(db *gorm.DB) TrainingEventRepository {
	return &trainingEventRepo{db: db}
}

func (r *trainingEventRepo) Create(ctx context.Context, e *model.TrainingEvent) error {
	return translateError(r.db.WithContext(ctx).Create(e).Error)
}

func (r *trainingEventRepo) GetByID(ctx context.Context, id int64) (*model.TrainingEvent, error) {
	var e model.TrainingEvent
	err := r.db.WithContext(ctx).
		Where("training_event_id = ?", id).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *trainingEventRepo) List(ctx context.Context, f TrainingEventFilter) ([]model.TrainingEvent, error) {
	var events []model.TrainingEvent
	db := r.db.WithContext(ctx)

	if f.From != nil {
		db = db.Where("start_date >= ?", *f.From)
	}
	if f.To != nil {
		db = db.Where("end_date <= ?", *f.To)
	}
	if f.Title != "" {
		db = db.Where("title LIKE ?", likePattern(f.Title))
	}

	err := db.Order("start_date ASC, training_event_id ASC").Find(&events).Error
	return events, err
}

func (r *trainingEventRepo) Update(ctx context.Context, e *model.TrainingEvent) error {
	return translateError(r.db.WithContext(ctx).Save(e).Error)
}

func (r *trainingEventRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("training_event_id = ?", id).Delete(&model.TrainingEvent{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
