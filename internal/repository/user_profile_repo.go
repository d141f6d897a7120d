package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tlodholz/OpsReadyAPI/internal/model"
)

// UserProfileFilter list filters; zero values are ignored
type UserProfileFilter struct {
	UserID       *int64
	BadgeNumber  string
	Name         string
	IsActiveDuty *bool
}

// UserProfileRepository profile data access
type UserProfileRepository interface {
	Create(ctx context.Context, p *model.UserProfile) error
	GetByID(ctx context.Context, id int64) (*model.UserProfile, error)
	List(ctx context.Context, f UserProfileFilter) ([]model.UserProfile, error)
	ListByUserIDs(ctx context.Context, userIDs []int64) ([]model.UserProfile, error)
	Update(ctx context.Context, p *model.UserProfile) error
	Delete(ctx context.Context, id int64) error
}

type userProfileRepo struct {
	db *gorm.DB
}

// NewUserProfileRepo creates a UserProfileRepository
func NewUserProfileRepo(db *gorm.DB) UserProfileRepository {
	return &userProfileRepo{db: db}
}

func (r *userProfileRepo) Create(ctx context.Context, p *model.UserProfile) error {
	return translateError(r.db.WithContext(ctx).Create(p).Error)
}

func (r *userProfileRepo) GetByID(ctx context.Context, id int64) (*model.UserProfile, error) {
	var p model.UserProfile
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *userProfileRepo) List(ctx context.Context, f UserProfileFilter) ([]model.UserProfile, error) {
	var profiles []model.UserProfile
	db := r.db.WithContext(ctx)

	if f.UserID != nil {
		db = db.Where("user_id = ?", *f.UserID)
	}
	if f.BadgeNumber != "" {
		db = db.Where("badge_number = ?", f.BadgeNumber)
	}
	if f.Name != "" {
		p := likePattern(f.Name)
		db = db.Where("first_name LIKE ? OR last_name LIKE ? OR preferred_name LIKE ?", p, p, p)
	}
	if f.IsActiveDuty != nil {
		db = db.Where("is_active_duty = ?", *f.IsActiveDuty)
	}

	err := db.Order("profile_id ASC").Find(&profiles).Error
	return profiles, err
}

func (r *userProfileRepo) ListByUserIDs(ctx context.Context, userIDs []int64) ([]model.UserProfile, error) {
	var profiles []model.UserProfile
	if len(userIDs) == 0 {
		return profiles, nil
	}
	err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("user_id ASC").
		Find(&profiles).Error
	return profiles, err
}

func (r *userProfileRepo) Update(ctx context.Context, p *model.UserProfile) error {
	return translateError(r.db.WithContext(ctx).Save(p).Error)
}

func (r *userProfileRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("profile_id = ?", id).Delete(&model.UserProfile{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
