package service

import (
	"context"
	"errors"
	"io"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tlodholz/OpsReadyAPI/internal/dto"
	"github.com/tlodholz/OpsReadyAPI/internal/model"
	"github.com/tlodholz/OpsReadyAPI/internal/repository"
)

// ── training event errors ──

var (
	ErrTrainingEventNotFound  = errors.New("training event not found")
	ErrTrainingEventDateRange = errors.New("end_date must not be before start_date")
	ErrTrainingEventICSEmpty  = errors.New("calendar contains no usable events")
)

// TrainingEventService training event CRUD plus iCalendar feed and import
type TrainingEventService interface {
	Create(ctx context.Context, req *dto.TrainingEventRequest, actor string) (*model.TrainingEvent, error)
	GetByID(ctx context.Context, id int64) (*model.TrainingEvent, error)
	List(ctx context.Context, req *dto.TrainingEventListRequest) ([]model.TrainingEvent, error)
	Update(ctx context.Context, id int64, req *dto.TrainingEventRequest, actor string) (*model.TrainingEvent, error)
	Delete(ctx context.Context, id int64) error
	Calendar(ctx context.Context, req *dto.TrainingEventListRequest) (string, error)
	ImportICS(ctx context.Context, reader io.Reader, actor string) (*dto.ImportTrainingEventsResponse, error)
}

type trainingEventService struct {
	repo   *repository.Repository
	now    Clock
	logger *zap.Logger
}

// NewTrainingEventService creates a TrainingEventService
func NewTrainingEventService(repo *repository.Repository, now Clock, logger *zap.Logger) TrainingEventService {
	return &trainingEventService{repo: repo, now: now, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *trainingEventService) Create(ctx context.Context, req *dto.TrainingEventRequest, actor string) (*model.TrainingEvent, error) {
	if req == nil {
		return nil, ErrInvalidInput
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, ErrTrainingEventDateRange
	}

	e := &model.TrainingEvent{}
	applyTrainingEventInput(e, req)
	e.RecordCreatedBy = req.RecordCreatedBy
	e.RecordUpdatedBy = req.RecordUpdatedBy
	e.StampCreate(actor, s.now())

	if err := s.repo.TrainingEvent.Create(ctx, e); err != nil {
		s.logger.Error("failed to create training event", zap.Error(err))
		return nil, err
	}
	return e, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *trainingEventService) GetByID(ctx context.Context, id int64) (*model.TrainingEvent, error) {
	e, err := s.repo.TrainingEvent.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrainingEventNotFound
		}
		s.logger.Error("failed to load training event", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return e, nil
}

// ────────────────────── List ──────────────────────

func (s *trainingEventService) List(ctx context.Context, req *dto.TrainingEventListRequest) ([]model.TrainingEvent, error) {
	var f repository.TrainingEventFilter
	if req != nil {
		f = repository.TrainingEventFilter{From: req.From, To: req.To, Title: req.Title}
	}

	events, err := s.repo.TrainingEvent.List(ctx, f)
	if err != nil {
		s.logger.Error("failed to list training events", zap.Error(err))
		return nil, err
	}
	if events == nil {
		events = []model.TrainingEvent{}
	}
	return events, nil
}

// ────────────────────── Update ──────────────────────

func (s *trainingEventService) Update(ctx context.Context, id int64, req *dto.TrainingEventRequest, actor string) (*model.TrainingEvent, error) {
	if req == nil {
		return nil, ErrInvalidInput
	}
	if req.TrainingEventID != id {
		return nil, ErrIDMismatch
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, ErrTrainingEventDateRange
	}

	e, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyTrainingEventInput(e, req)
	e.StampUpdate(actor, s.now())

	if err := s.repo.TrainingEvent.Update(ctx, e); err != nil {
		s.logger.Error("failed to update training event", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return e, nil
}

// ────────────────────── Delete ──────────────────────

func (s *trainingEventService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.TrainingEvent.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTrainingEventNotFound
		}
		s.logger.Error("failed to delete training event", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── Calendar ──────────────────────

func (s *trainingEventService) Calendar(ctx context.Context, req *dto.TrainingEventListRequest) (string, error) {
	events, err := s.List(ctx, req)
	if err != nil {
		return "", err
	}
	return BuildTrainingCalendar(events, s.now()), nil
}

// ────────────────────── ImportICS ──────────────────────

func (s *trainingEventService) ImportICS(ctx context.Context, reader io.Reader, actor string) (*dto.ImportTrainingEventsResponse, error) {
	// 1. parse
	events, skipped, err := ParseTrainingEventsICS(reader, time.UTC)
	if err != nil {
		return nil, ErrInvalidInput
	}
	if len(events) == 0 {
		return nil, ErrTrainingEventICSEmpty
	}

	// 2. insert all or nothing
	now := s.now()
	resp := &dto.ImportTrainingEventsResponse{Skipped: skipped, EventIDs: make([]int64, 0, len(events))}
	err = runInTx(ctx, s.repo, s.logger, func(txRepo *repository.Repository) error {
		for i := range events {
			e := &events[i]
			e.StampCreate(actor, now)
			if err := txRepo.TrainingEvent.Create(ctx, e); err != nil {
				return err
			}
			resp.EventIDs = append(resp.EventIDs, e.TrainingEventID)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("training event import rolled back", zap.Error(err))
		return nil, err
	}

	resp.Imported = len(resp.EventIDs)
	s.logger.Info("training events imported", zap.Int("imported", resp.Imported), zap.Int("skipped", skipped))
	return resp, nil
}

func applyTrainingEventInput(e *model.TrainingEvent, req *dto.TrainingEventRequest) {
	e.Title = req.Title
	e.Description = req.Description
	e.RecordedDate = req.RecordedDate
	e.StartDate = req.StartDate
	e.EndDate = req.EndDate
	e.Location = req.Location
	e.Instructor = req.Instructor
	e.DurationHours = req.DurationHours
	e.CertificationIssued = req.CertificationIssued
	e.CertificationIssuedBy = req.CertificationIssuedBy
	e.CertificationExpiryDate = req.CertificationExpiryDate
}
