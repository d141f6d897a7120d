package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tlodholz/OpsReadyAPI/internal/dto"
	"github.com/tlodholz/OpsReadyAPI/internal/model"
	"github.com/tlodholz/OpsReadyAPI/internal/repository"
	pkgerrors "github.com/tlodholz/OpsReadyAPI/pkg/errors"
)

// ── training assignment errors ──

var (
	ErrAssignmentDuplicate = errors.New("user is already assigned to this training event")
	ErrAssignmentNotFound  = errors.New("training assignment not found")
)

// TrainingAssignmentService assignment workflow.
//
// Every assignment is created together with its placeholder training record
// in one transaction. A batch is one transaction as a whole; duplicates are
// skipped, any other failure discards the batch.
type TrainingAssignmentService interface {
	AssignOne(ctx context.Context, req *dto.AssignTrainingRequest, actor string, now time.Time) (*dto.AssignTrainingResponse, error)
	AssignMany(ctx context.Context, reqs []*dto.AssignTrainingRequest, actor string, now time.Time) (*dto.BulkAssignResponse, error)
	UpdateAssignment(ctx context.Context, id int64, req *dto.UpdateAssignmentRequest, now time.Time) (*dto.TrainingAssignmentResponse, error)
	ListAssignedUserProfiles(ctx context.Context, eventID int64) ([]model.UserProfile, error)
	ListRecordsForEvent(ctx context.Context, eventID int64) ([]model.TrainingRecord, error)
	ListRecordsForUser(ctx context.Context, userID int64) ([]model.TrainingRecord, error)
	ListRecordDetailsForEvent(ctx context.Context, eventID int64) ([]model.TrainingRecordDetail, error)
	ListRecordDetailsForUser(ctx context.Context, userID int64) ([]model.TrainingRecordDetail, error)
}

type trainingAssignmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTrainingAssignmentService creates a TrainingAssignmentService
func NewTrainingAssignmentService(repo *repository.Repository, logger *zap.Logger) TrainingAssignmentService {
	return &trainingAssignmentService{repo: repo, logger: logger}
}

// ────────────────────── AssignOne ──────────────────────

func (s *trainingAssignmentService) AssignOne(ctx context.Context, req *dto.AssignTrainingRequest, actor string, now time.Time) (*dto.AssignTrainingResponse, error) {
	if req == nil {
		return nil, ErrInvalidInput
	}

	var resp *dto.AssignTrainingResponse
	err := runInTx(ctx, s.repo, s.logger, func(txRepo *repository.Repository) error {
		a, rec, err := s.assign(ctx, txRepo, req, actor, now)
		if err != nil {
			return err
		}
		resp = &dto.AssignTrainingResponse{
			Assignment:       toAssignmentResponse(a),
			TrainingRecordID: rec.TrainingRecordID,
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrAssignmentDuplicate) {
			s.logger.Error("failed to assign training",
				zap.Int64("training_event_id", req.TrainingEventID),
				zap.Int64("user_id", req.UserID),
				zap.Error(err))
		}
		return nil, err
	}

	return resp, nil
}

// ────────────────────── AssignMany ──────────────────────

func (s *trainingAssignmentService) AssignMany(ctx context.Context, reqs []*dto.AssignTrainingRequest, actor string, now time.Time) (*dto.BulkAssignResponse, error) {
	if len(reqs) == 0 {
		return nil, ErrInvalidInput
	}
	for _, req := range reqs {
		if req == nil {
			return nil, ErrInvalidInput
		}
	}

	resp := &dto.BulkAssignResponse{
		Created: []dto.AssignmentCreated{},
		Skipped: []dto.AssignmentSkipped{},
	}

	err := runInTx(ctx, s.repo, s.logger, func(txRepo *repository.Repository) error {
		for i, req := range reqs {
			// a unique violation aborts the surrounding transaction on
			// postgres; the savepoint confines it to this item
			sp := fmt.Sprintf("assign_%d", i)
			if err := txRepo.SavePoint(sp); err != nil {
				return err
			}

			a, rec, err := s.assign(ctx, txRepo, req, actor, now)
			switch {
			case err == nil:
				resp.Created = append(resp.Created, dto.AssignmentCreated{
					AssignmentID:     a.AssignmentID,
					UserID:           a.UserID,
					TrainingEventID:  a.TrainingEventID,
					TrainingRecordID: rec.TrainingRecordID,
				})
			case errors.Is(err, ErrAssignmentDuplicate):
				if err := txRepo.RollbackTo(sp); err != nil {
					return err
				}
				resp.Skipped = append(resp.Skipped, dto.AssignmentSkipped{
					UserID:          req.UserID,
					TrainingEventID: req.TrainingEventID,
				})
			default:
				s.logger.Error("batch assignment failed, rolling back",
					zap.Int("item", i),
					zap.Int64("training_event_id", req.TrainingEventID),
					zap.Int64("user_id", req.UserID),
					zap.Error(err))
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("batch assignment committed",
		zap.Int("created", len(resp.Created)),
		zap.Int("skipped", len(resp.Skipped)))
	return resp, nil
}

// assign inserts one assignment and its placeholder record on txRepo
func (s *trainingAssignmentService) assign(ctx context.Context, txRepo *repository.Repository, req *dto.AssignTrainingRequest, actor string, now time.Time) (*model.TrainingAssignment, *model.TrainingRecord, error) {
	// 1. pre-check; also sees rows written earlier in the same transaction
	exists, err := txRepo.TrainingAssignment.ExistsByPair(ctx, req.TrainingEventID, req.UserID)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, ErrAssignmentDuplicate
	}

	// 2. assignment; the unique index catches concurrent writers
	a := &model.TrainingAssignment{
		TrainingEventID:  req.TrainingEventID,
		UserID:           req.UserID,
		AssignedDate:     now,
		AssignedByUserID: req.AssignedByUserID,
		CreatedDate:      now,
	}
	if err := txRepo.TrainingAssignment.Create(ctx, a); err != nil {
		if errors.Is(err, pkgerrors.ErrDuplicate) {
			return nil, nil, ErrAssignmentDuplicate
		}
		return nil, nil, err
	}

	// 3. placeholder outcome record
	rec := model.NewPlaceholderRecord(a, actor, now)
	if err := txRepo.TrainingRecord.Create(ctx, rec); err != nil {
		return nil, nil, err
	}

	return a, rec, nil
}

// ────────────────────── UpdateAssignment ──────────────────────

func (s *trainingAssignmentService) UpdateAssignment(ctx context.Context, id int64, req *dto.UpdateAssignmentRequest, now time.Time) (*dto.TrainingAssignmentResponse, error) {
	if req == nil {
		return nil, ErrInvalidInput
	}

	a, err := s.repo.TrainingAssignment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("failed to load training assignment", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	if req.Status != nil {
		s.logger.Debug("status on assignment update is not stored",
			zap.Int64("id", id), zap.String("status", *req.Status))
	}

	// only the modification stamp changes
	a.ModifiedByUserID = req.ModifiedByUserID
	modified := now
	a.ModifiedDate = &modified

	if err := s.repo.TrainingAssignment.UpdateModified(ctx, a); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("failed to update training assignment", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	resp := toAssignmentResponse(a)
	return &resp, nil
}

// ────────────────────── Queries ──────────────────────

func (s *trainingAssignmentService) ListAssignedUserProfiles(ctx context.Context, eventID int64) ([]model.UserProfile, error) {
	userIDs, err := s.repo.TrainingAssignment.ListUserIDsByEvent(ctx, eventID)
	if err != nil {
		s.logger.Error("failed to list assigned users", zap.Int64("training_event_id", eventID), zap.Error(err))
		return nil, err
	}
	if len(userIDs) == 0 {
		return []model.UserProfile{}, nil
	}

	profiles, err := s.repo.UserProfile.ListByUserIDs(ctx, userIDs)
	if err != nil {
		s.logger.Error("failed to load assigned profiles", zap.Int64("training_event_id", eventID), zap.Error(err))
		return nil, err
	}
	if profiles == nil {
		profiles = []model.UserProfile{}
	}
	return profiles, nil
}

func (s *trainingAssignmentService) ListRecordsForEvent(ctx context.Context, eventID int64) ([]model.TrainingRecord, error) {
	records, err := s.repo.TrainingAssignment.ListRecordsByEvent(ctx, eventID)
	if err != nil {
		s.logger.Error("failed to list event records", zap.Int64("training_event_id", eventID), zap.Error(err))
		return nil, err
	}
	return nonNilRecords(records), nil
}

func (s *trainingAssignmentService) ListRecordsForUser(ctx context.Context, userID int64) ([]model.TrainingRecord, error) {
	records, err := s.repo.TrainingAssignment.ListRecordsByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list user records", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	return nonNilRecords(records), nil
}

func (s *trainingAssignmentService) ListRecordDetailsForEvent(ctx context.Context, eventID int64) ([]model.TrainingRecordDetail, error) {
	rows, err := s.repo.TrainingAssignment.ListRecordDetailsByEvent(ctx, eventID)
	if err != nil {
		s.logger.Error("failed to list event record details", zap.Int64("training_event_id", eventID), zap.Error(err))
		return nil, err
	}
	if rows == nil {
		rows = []model.TrainingRecordDetail{}
	}
	return rows, nil
}

func (s *trainingAssignmentService) ListRecordDetailsForUser(ctx context.Context, userID int64) ([]model.TrainingRecordDetail, error) {
	rows, err := s.repo.TrainingAssignment.ListRecordDetailsByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list user record details", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	if rows == nil {
		rows = []model.TrainingRecordDetail{}
	}
	return rows, nil
}

// ── conversion ──

func toAssignmentResponse(a *model.TrainingAssignment) dto.TrainingAssignmentResponse {
	return dto.TrainingAssignmentResponse{
		AssignmentID:     a.AssignmentID,
		TrainingEventID:  a.TrainingEventID,
		UserID:           a.UserID,
		AssignedDate:     a.AssignedDate,
		AssignedByUserID: a.AssignedByUserID,
		CreatedDate:      a.CreatedDate,
		ModifiedByUserID: a.ModifiedByUserID,
		ModifiedDate:     a.ModifiedDate,
	}
}

func nonNilRecords(records []model.TrainingRecord) []model.TrainingRecord {
	if records == nil {
		return []model.TrainingRecord{}
	}
	return records
}
