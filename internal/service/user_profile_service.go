package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tlodholz/OpsReadyAPI/internal/dto"
	"github.com/tlodholz/OpsReadyAPI/internal/model"
	"github.com/tlodholz/OpsReadyAPI/internal/repository"
	pkgerrors "github.com/tlodholz/OpsReadyAPI/pkg/errors"
)

// ── user profile errors ──

var (
	ErrUserProfileNotFound = errors.New("user profile not found")
	ErrUserProfileExists   = errors.New("user already has a profile")
)

// UserProfileService officer profile CRUD
type UserProfileService interface {
	Create(ctx context.Context, req *dto.UserProfileRequest, actor string) (*model.UserProfile, error)
	GetByID(ctx context.Context, id int64) (*model.UserProfile, error)
	List(ctx context.Context, req *dto.UserProfileListRequest) ([]model.UserProfile, error)
	Update(ctx context.Context, id int64, req *dto.UserProfileRequest, actor string) (*model.UserProfile, error)
	Delete(ctx context.Context, id int64) error
}

type userProfileService struct {
	repo   *repository.Repository
	now    Clock
	logger *zap.Logger
}

// NewUserProfileService creates a UserProfileService
func NewUserProfileService(repo *repository.Repository, now Clock, logger *zap.Logger) UserProfileService {
	return &userProfileService{repo: repo, now: now, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *userProfileService) Create(ctx context.Context, req *dto.UserProfileRequest, actor string) (*model.UserProfile, error) {
	if req == nil {
		return nil, ErrInvalidInput
	}

	p := &model.UserProfile{}
	applyUserProfileInput(p, req)
	p.RecordCreatedBy = req.RecordCreatedBy
	p.RecordUpdatedBy = req.RecordUpdatedBy
	p.StampCreate(actor, s.now())

	if err := s.repo.UserProfile.Create(ctx, p); err != nil {
		if errors.Is(err, pkgerrors.ErrDuplicate) {
			return nil, ErrUserProfileExists
		}
		s.logger.Error("failed to create user profile", zap.Int64("user_id", req.UserID), zap.Error(err))
		return nil, err
	}
	return p, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *userProfileService) GetByID(ctx context.Context, id int64) (*model.UserProfile, error) {
	p, err := s.repo.UserProfile.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserProfileNotFound
		}
		s.logger.Error("failed to load user profile", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return p, nil
}

// ────────────────────── List ──────────────────────

func (s *userProfileService) List(ctx context.Context, req *dto.UserProfileListRequest) ([]model.UserProfile, error) {
	var f repository.UserProfileFilter
	if req != nil {
		f = repository.UserProfileFilter{
			UserID:       req.UserID,
			BadgeNumber:  req.BadgeNumber,
			Name:         req.Name,
			IsActiveDuty: req.IsActiveDuty,
		}
	}

	profiles, err := s.repo.UserProfile.List(ctx, f)
	if err != nil {
		s.logger.Error("failed to list user profiles", zap.Error(err))
		return nil, err
	}
	if profiles == nil {
		profiles = []model.UserProfile{}
	}
	return profiles, nil
}

// ────────────────────── Update ──────────────────────

func (s *userProfileService) Update(ctx context.Context, id int64, req *dto.UserProfileRequest, actor string) (*model.UserProfile, error) {
	if req == nil {
		return nil, ErrInvalidInput
	}
	if req.ProfileID != id {
		return nil, ErrIDMismatch
	}

	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyUserProfileInput(p, req)
	p.StampUpdate(actor, s.now())

	if err := s.repo.UserProfile.Update(ctx, p); err != nil {
		if errors.Is(err, pkgerrors.ErrDuplicate) {
			return nil, ErrUserProfileExists
		}
		s.logger.Error("failed to update user profile", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return p, nil
}

// ────────────────────── Delete ──────────────────────

func (s *userProfileService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.UserProfile.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserProfileNotFound
		}
		s.logger.Error("failed to delete user profile", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// applyUserProfileInput copies the client-writable fields; ids and audit
// columns stay untouched
func applyUserProfileInput(p *model.UserProfile, req *dto.UserProfileRequest) {
	p.UserID = req.UserID
	p.FirstName = req.FirstName
	p.LastName = req.LastName
	p.PreferredName = req.PreferredName
	p.BadgeNumber = req.BadgeNumber
	p.Position = req.Position
	p.Department = req.Department
	p.Location = req.Location
	p.Address1 = req.Address1
	p.Address2 = req.Address2
	p.City = req.City
	p.State = req.State
	p.ZipCode = req.ZipCode
	p.Skills = req.Skills
	p.Status = req.Status
	p.Rank = req.Rank
	p.Bio = req.Bio
	p.PhoneNumber = req.PhoneNumber
	p.EmailAddress = req.EmailAddress
	p.DateOfBirth = req.DateOfBirth
	p.DateOfHire = req.DateOfHire
	p.Gender = req.Gender
	p.ShiftSchedule = req.ShiftSchedule
	p.SupervisorBadgeNumber = req.SupervisorBadgeNumber
	p.StationLocation = req.StationLocation
	p.LanguageFluency = req.LanguageFluency
	p.SpecialClearances = req.SpecialClearances
	p.IsActiveDuty = req.IsActiveDuty
	p.CommandingOfficerBadgeNumber = req.CommandingOfficerBadgeNumber
	p.Notes = req.Notes
}
