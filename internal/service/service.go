package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/tlodholz/OpsReadyAPI/config"
	"github.com/tlodholz/OpsReadyAPI/internal/repository"
	"github.com/tlodholz/OpsReadyAPI/pkg/jwt"
	"github.com/tlodholz/OpsReadyAPI/pkg/redis"
)

// ErrInvalidInput request was nil, empty or malformed
var ErrInvalidInput = errors.New("invalid input")

// ErrIDMismatch body id differs from the path id
var ErrIDMismatch = errors.New("id in body does not match id in path")

// Clock source of the current time
type Clock func() time.Time

// UTCNow default clock
func UTCNow() time.Time { return time.Now().UTC() }

// Service aggregate of every business service
type Service struct {
	Auth               AuthService
	UserProfile        UserProfileService
	TrainingEvent      TrainingEventService
	TrainingAssignment TrainingAssignmentService
	TrainingRecord     TrainingRecordService
	Vehicle            VehicleService
	VehicleMaintenance VehicleMaintenanceService
	Export             ExportService
}

// NewService wires the aggregate. rdb may be nil; logout then only
// acknowledges and the blacklist is not consulted.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:               NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		UserProfile:        NewUserProfileService(repo, UTCNow, logger),
		TrainingEvent:      NewTrainingEventService(repo, UTCNow, logger),
		TrainingAssignment: NewTrainingAssignmentService(repo, logger),
		TrainingRecord:     NewTrainingRecordService(repo, UTCNow, logger),
		Vehicle:            NewVehicleService(repo, UTCNow, logger),
		VehicleMaintenance: NewVehicleMaintenanceService(repo, UTCNow, logger),
		Export:             NewExportService(repo, logger),
	}
}

// runInTx runs fn on a transaction-bound repository. An error from fn or a
// panic rolls the whole transaction back.
func runInTx(ctx context.Context, repo *repository.Repository, logger *zap.Logger, fn func(txRepo *repository.Repository) error) error {
	tx, err := repo.BeginTx(ctx)
	if err != nil {
		logger.Error("failed to begin transaction", zap.Error(err))
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			if tx != nil {
				tx.Rollback()
			}
			panic(r)
		}
	}()

	if err := fn(repo.WithTx(tx)); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		return err
	}

	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			logger.Error("failed to commit transaction", zap.Error(err))
			return err
		}
	}
	return nil
}
