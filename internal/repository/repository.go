package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	pkgerrors "github.com/tlodholz/OpsReadyAPI/pkg/errors"
)

// Repository aggregate of every data access interface.
// A Repository built with a nil db has no transaction support: BeginTx
// returns a nil tx and WithTx hands back the same aggregate.
type Repository struct {
	db *gorm.DB

	User               UserRepository
	UserProfile        UserProfileRepository
	TrainingEvent      TrainingEventRepository
	TrainingAssignment TrainingAssignmentRepository
	TrainingRecord     TrainingRecordRepository
	Vehicle            VehicleRepository
	VehicleMaintenance VehicleMaintenanceRepository
}

// NewRepository builds the aggregate over db
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:                 db,
		User:               NewUserRepo(db),
		UserProfile:        NewUserProfileRepo(db),
		TrainingEvent:      NewTrainingEventRepo(db),
		TrainingAssignment: NewTrainingAssignmentRepo(db),
		TrainingRecord:     NewTrainingRecordRepo(db),
		Vehicle:            NewVehicleRepo(db),
		VehicleMaintenance: NewVehicleMaintenanceRepo(db),
	}
}

// BeginTx starts a transaction bound to ctx
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	if r.db == nil {
		return nil, nil
	}
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return tx, nil
}

// WithTx returns an aggregate whose repositories run inside tx
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return NewRepository(tx)
}

// SavePoint marks a savepoint in the current transaction
func (r *Repository) SavePoint(name string) error {
	if r.db == nil {
		return nil
	}
	return r.db.SavePoint(name).Error
}

// RollbackTo undoes everything after the named savepoint; the transaction stays open
func (r *Repository) RollbackTo(name string) error {
	if r.db == nil {
		return nil
	}
	return r.db.RollbackTo(name).Error
}

// translateError maps driver-neutral gorm errors onto pkg/errors sentinels
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return pkgerrors.ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated), errors.Is(err, gorm.ErrCheckConstraintViolated):
		return pkgerrors.ErrConstraint
	default:
		return err
	}
}

// likePattern wraps s for a substring LIKE match
func likePattern(s string) string {
	return "%" + s + "%"
}
