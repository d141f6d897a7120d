package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tlodholz/OpsReadyAPI/internal/dto"
	"github.com/tlodholz/OpsReadyAPI/internal/model"
	"github.com/tlodholz/OpsReadyAPI/internal/repository"
	pkgerrors "github.com/tlodholz/OpsReadyAPI/pkg/errors"
)

// ── training record errors ──

var (
	ErrTrainingRecordNotFound          = errors.New("training record not found")
	ErrTrainingRecordAssignmentMissing = errors.New("training_assignment_id does not reference an assignment")
)

// TrainingRecordService outcome record CRUD
type TrainingRecordService interface {
	Create(ctx context.Context, req *dto.TrainingRecordRequest, actor string) (*model.TrainingRecord, error)
	GetByID(ctx context.Context, id int64) (*model.TrainingRecord, error)
	List(ctx context.Context, req *dto.TrainingRecordListRequest) ([]model.TrainingRecord, error)
	Update(ctx context.Context, id int64, req *dto.TrainingRecordRequest, actor string) (*model.TrainingRecord, error)
	Delete(ctx context.Context, id int64) error
	// ListExpiringCertifications completed records whose certification expires in [from, to)
	ListExpiringCertifications(ctx context.Context, from, to time.Time) ([]model.TrainingRecord, error)
}

type trainingRecordService struct {
	repo   *repository.Repository
	now    Clock
	logger *zap.Logger
}

// NewTrainingRecordService creates a TrainingRecordService
func NewTrainingRecordService(repo *repository.Repository, now Clock, logger *zap.Logger) TrainingRecordService {
	return &trainingRecordService{repo: repo, now: now, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *trainingRecordService) Create(ctx context.Context, req *dto.TrainingRecordRequest, actor string) (*model.TrainingRecord, error) {
	if req == nil {
		return nil, ErrInvalidInput
	}

	// the back-reference must resolve
	if _, err := s.repo.TrainingAssignment.GetByID(ctx, req.TrainingAssignmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrainingRecordAssignmentMissing
		}
		s.logger.Error("failed to load training assignment", zap.Int64("id", req.TrainingAssignmentID), zap.Error(err))
		return nil, err
	}

	now := s.now()
	rec := &model.TrainingRecord{}
	applyTrainingRecordInput(rec, req, now)
	rec.RecordCreatedBy = req.RecordCreatedBy
	rec.RecordUpdatedBy = req.RecordUpdatedBy
	rec.StampCreate(actor, now)

	if err := s.repo.TrainingRecord.Create(ctx, rec); err != nil {
		if errors.Is(err, pkgerrors.ErrConstraint) {
			return nil, ErrTrainingRecordAssignmentMissing
		}
		s.logger.Error("failed to create training record", zap.Error(err))
		return nil, err
	}
	return rec, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *trainingRecordService) GetByID(ctx context.Context, id int64) (*model.TrainingRecord, error) {
	rec, err := s.repo.TrainingRecord.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrainingRecordNotFound
		}
		s.logger.Error("failed to load training record", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return rec, nil
}

// ────────────────────── List ──────────────────────

func (s *trainingRecordService) List(ctx context.Context, req *dto.TrainingRecordListRequest) ([]model.TrainingRecord, error) {
	var f repository.TrainingRecordFilter
	if req != nil {
		f = repository.TrainingRecordFilter{
			UserID:          req.UserID,
			TrainingEventID: req.TrainingEventID,
			Completed:       req.Completed,
			EvaluatorID:     req.EvaluatorID,
			From:            req.From,
			To:              req.To,
		}
	}

	records, err := s.repo.TrainingRecord.List(ctx, f)
	if err != nil {
		s.logger.Error("failed to list training records", zap.Error(err))
		return nil, err
	}
	return nonNilRecords(records), nil
}

// ────────────────────── Update ──────────────────────

func (s *trainingRecordService) Update(ctx context.Context, id int64, req *dto.TrainingRecordRequest, actor string) (*model.TrainingRecord, error) {
	if req == nil {
		return nil, ErrInvalidInput
	}
	if req.TrainingRecordID != id {
		return nil, ErrIDMismatch
	}

	rec, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	applyTrainingRecordInput(rec, req, now)
	rec.StampUpdate(actor, now)

	if err := s.repo.TrainingRecord.Update(ctx, rec); err != nil {
		if errors.Is(err, pkgerrors.ErrConstraint) {
			return nil, ErrTrainingRecordAssignmentMissing
		}
		s.logger.Error("failed to update training record", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return rec, nil
}

// ────────────────────── Delete ──────────────────────

func (s *trainingRecordService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.TrainingRecord.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTrainingRecordNotFound
		}
		s.logger.Error("failed to delete training record", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── Expiring certifications ──────────────────────

func (s *trainingRecordService) ListExpiringCertifications(ctx context.Context, from, to time.Time) ([]model.TrainingRecord, error) {
	records, err := s.repo.TrainingRecord.ListCertificationExpiringBetween(ctx, from, to)
	if err != nil {
		s.logger.Error("failed to list expiring certifications", zap.Error(err))
		return nil, err
	}
	return nonNilRecords(records), nil
}

// applyTrainingRecordInput copies the client-writable fields. Missing dates
// take now, the expiration date keeps the date part only.
func applyTrainingRecordInput(rec *model.TrainingRecord, req *dto.TrainingRecordRequest, now time.Time) {
	rec.TrainingAssignmentID = req.TrainingAssignmentID
	rec.TrainingEventID = req.TrainingEventID
	rec.UserID = req.UserID
	rec.AssignedBy = req.AssignedBy
	rec.Attendance = req.Attendance
	rec.Status = req.Status
	rec.TrainingOutcome = req.TrainingOutcome
	rec.Score = req.Score
	rec.CertificationNumber = req.CertificationNumber
	rec.SkillLevelAchieved = req.SkillLevelAchieved
	rec.ProficiencyLevel = req.ProficiencyLevel
	rec.Notes = req.Notes
	rec.HoursCompleted = req.HoursCompleted
	rec.Completed = req.Completed
	rec.Strengths = req.Strengths
	rec.AreasForImprovement = req.AreasForImprovement
	rec.FollowUpRequired = req.FollowUpRequired
	rec.EvaluatorID = req.EvaluatorID
	rec.Evaluator = req.Evaluator
	rec.EvaluatorBadgeNumber = req.EvaluatorBadgeNumber
	rec.EvaluationComments = req.EvaluationComments
	rec.EvaluationType = req.EvaluationType
	rec.OfficialComments = req.OfficialComments
	rec.EnrollmentDate = timeOr(req.EnrollmentDate, now)
	rec.EvaluationDate = timeOr(req.EvaluationDate, now)
	rec.FollowUpDate = timeOr(req.FollowUpDate, now)
	exp := timeOr(req.ExpirationDate, now)
	rec.ExpirationDate = time.Date(exp.Year(), exp.Month(), exp.Day(), 0, 0, 0, 0, exp.Location())
	rec.CertificationIssuedDate = timeOr(req.CertificationIssuedDate, now)
	rec.CertificationExpiryDate = timeOr(req.CertificationExpiryDate, now)
	rec.CompletionDate = timeOr(req.CompletionDate, now)
}

func timeOr(t *time.Time, fallback time.Time) time.Time {
	if t == nil {
		return fallback
	}
	return *t
}
