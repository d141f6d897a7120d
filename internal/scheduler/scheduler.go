// Package scheduler runs the background jobs of the API process.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/tlodholz/OpsReadyAPI/config"
	"github.com/tlodholz/OpsReadyAPI/internal/model"
)

const sweepTimeout = 5 * time.Minute

// ExpiringCertificationLister source of records whose certification expires in [from, to)
type ExpiringCertificationLister interface {
	ListExpiringCertifications(ctx context.Context, from, to time.Time) ([]model.TrainingRecord, error)
}

// Scheduler cron-driven background jobs
type Scheduler struct {
	cron    *cron.Cron
	records ExpiringCertificationLister
	window  time.Duration
	now     func() time.Time
	logger  *zap.Logger
}

// New registers the certification expiry sweep on cfg.ExpirySweepSpec
// (standard 5-field cron, UTC)
func New(cfg *config.SchedulerConfig, records ExpiringCertificationLister, logger *zap.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(cron.WithLocation(time.UTC)),
		records: records,
		window:  time.Duration(cfg.ExpiryWindowDays) * 24 * time.Hour,
		now:     func() time.Time { return time.Now().UTC() },
		logger:  logger.Named("scheduler"),
	}

	if _, err := s.cron.AddFunc(cfg.ExpirySweepSpec, s.runExpirySweep); err != nil {
		return nil, fmt.Errorf("invalid expiry sweep spec %q: %w", cfg.ExpirySweepSpec, err)
	}
	return s, nil
}

// Start runs the jobs in the background
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler started", zap.Int("jobs", len(s.cron.Entries())))
}

// Stop prevents new runs and waits for a running job until ctx is done
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("scheduler stopped")
	case <-ctx.Done():
		s.logger.Warn("scheduler stop timed out, job still running")
	}
}

func (s *Scheduler) runExpirySweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("expiry sweep panicked", zap.Any("panic", r))
		}
	}()

	if _, err := s.SweepExpiringCertifications(ctx); err != nil {
		s.logger.Error("expiry sweep failed", zap.Error(err))
	}
}

// SweepExpiringCertifications logs every completed record whose certification
// expires within the window and returns how many were found
func (s *Scheduler) SweepExpiringCertifications(ctx context.Context) (int, error) {
	from := s.now()
	to := from.Add(s.window)

	records, err := s.records.ListExpiringCertifications(ctx, from, to)
	if err != nil {
		return 0, err
	}

	for i := range records {
		rec := &records[i]
		s.logger.Info("certification expiring",
			zap.Int64("training_record_id", rec.TrainingRecordID),
			zap.Int64("training_assignment_id", rec.TrainingAssignmentID),
			zap.String("certification_number", rec.CertificationNumber),
			zap.Time("certification_expiry_date", rec.CertificationExpiryDate))
	}

	s.logger.Info("expiry sweep finished",
		zap.Int("expiring", len(records)),
		zap.Time("from", from),
		zap.Time("to", to))
	return len(records), nil
}
