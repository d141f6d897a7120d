package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tlodholz/OpsReadyAPI/internal/dto"
	"github.com/tlodholz/OpsReadyAPI/internal/model"
	"github.com/tlodholz/OpsReadyAPI/internal/repository"
)

// ── vehicle maintenance errors ──

var (
	ErrVehicleMaintenanceNotFound = errors.New("maintenance entry not found")
	ErrMaintenanceVehicleMissing  = errors.New("vehicle_id does not reference a vehicle")
	ErrMaintenanceNegativeCost    = errors.New("labor_cost and parts_cost must not be negative")
)

// VehicleMaintenanceService maintenance log CRUD. TotalCost is always
// labor + parts.
type VehicleMaintenanceService interface {
	Create(ctx context.Context, req *dto.VehicleMaintenanceRequest, actor string) (*model.VehicleMaintenance, error)
	GetByID(ctx context.Context, id int64) (*model.VehicleMaintenance, error)
	List(ctx context.Context, req *dto.VehicleMaintenanceListRequest) ([]model.VehicleMaintenance, error)
	Update(ctx context.Context, id int64, req *dto.VehicleMaintenanceRequest, actor string) (*model.VehicleMaintenance, error)
	Delete(ctx context.Context, id int64) error
}

type vehicleMaintenanceService struct {
	repo   *repository.Repository
	now    Clock
	logger *zap.Logger
}

// NewVehicleMaintenanceService creates a VehicleMaintenanceService
func NewVehicleMaintenanceService(repo *repository.Repository, now Clock, logger *zap.Logger) VehicleMaintenanceService {
	return &vehicleMaintenanceService{repo: repo, now: now, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *vehicleMaintenanceService) Create(ctx context.Context, req *dto.VehicleMaintenanceRequest, actor string) (*model.VehicleMaintenance, error) {
	if req == nil {
		return nil, ErrInvalidInput
	}
	if req.LaborCost.IsNegative() || req.PartsCost.IsNegative() {
		return nil, ErrMaintenanceNegativeCost
	}

	// 1. vehicle must exist; unit number defaults from it
	v, err := s.repo.Vehicle.GetByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMaintenanceVehicleMissing
		}
		s.logger.Error("failed to load vehicle", zap.Int64("vehicle_id", req.VehicleID), zap.Error(err))
		return nil, err
	}

	// 2. build entry
	m := &model.VehicleMaintenance{}
	applyVehicleMaintenanceInput(m, req)
	if m.UnitNumber == "" {
		m.UnitNumber = v.UnitNumber
	}
	m.RecordCreatedBy = req.RecordCreatedBy
	m.RecordUpdatedBy = req.RecordUpdatedBy
	m.StampCreate(actor, s.now())

	if err := s.repo.VehicleMaintenance.Create(ctx, m); err != nil {
		s.logger.Error("failed to create maintenance entry", zap.Int64("vehicle_id", req.VehicleID), zap.Error(err))
		return nil, err
	}
	return m, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *vehicleMaintenanceService) GetByID(ctx context.Context, id int64) (*model.VehicleMaintenance, error) {
	m, err := s.repo.VehicleMaintenance.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleMaintenanceNotFound
		}
		s.logger.Error("failed to load maintenance entry", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return m, nil
}

// ────────────────────── List ──────────────────────

func (s *vehicleMaintenanceService) List(ctx context.Context, req *dto.VehicleMaintenanceListRequest) ([]model.VehicleMaintenance, error) {
	var f repository.VehicleMaintenanceFilter
	if req != nil {
		f = repository.VehicleMaintenanceFilter{
			VehicleID:        req.VehicleID,
			UnitNumber:       req.UnitNumber,
			ServiceType:      req.ServiceType,
			PassedInspection: req.PassedInspection,
			From:             req.From,
			To:               req.To,
		}
	}

	entries, err := s.repo.VehicleMaintenance.List(ctx, f)
	if err != nil {
		s.logger.Error("failed to list maintenance entries", zap.Error(err))
		return nil, err
	}
	if entries == nil {
		entries = []model.VehicleMaintenance{}
	}
	return entries, nil
}

// ────────────────────── Update ──────────────────────

func (s *vehicleMaintenanceService) Update(ctx context.Context, id int64, req *dto.VehicleMaintenanceRequest, actor string) (*model.VehicleMaintenance, error) {
	if req == nil {
		return nil, ErrInvalidInput
	}
	if req.MaintenanceID != id {
		return nil, ErrIDMismatch
	}
	if req.LaborCost.IsNegative() || req.PartsCost.IsNegative() {
		return nil, ErrMaintenanceNegativeCost
	}

	m, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.VehicleID != m.VehicleID {
		if _, err := s.repo.Vehicle.GetByID(ctx, req.VehicleID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrMaintenanceVehicleMissing
			}
			return nil, err
		}
	}

	applyVehicleMaintenanceInput(m, req)
	m.StampUpdate(actor, s.now())

	if err := s.repo.VehicleMaintenance.Update(ctx, m); err != nil {
		s.logger.Error("failed to update maintenance entry", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return m, nil
}

// ────────────────────── Delete ──────────────────────

func (s *vehicleMaintenanceService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.VehicleMaintenance.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVehicleMaintenanceNotFound
		}
		s.logger.Error("failed to delete maintenance entry", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func applyVehicleMaintenanceInput(m *model.VehicleMaintenance, req *dto.VehicleMaintenanceRequest) {
	m.VehicleID = req.VehicleID
	m.UnitNumber = req.UnitNumber
	m.ServiceDate = req.ServiceDate
	m.ServiceType = req.ServiceType
	m.Description = req.Description
	m.OdometerReading = req.OdometerReading
	m.IsScheduledService = req.IsScheduledService
	m.IsRepair = req.IsRepair
	m.IsUpgrade = req.IsUpgrade
	m.PartsReplaced = req.PartsReplaced
	m.LaborPerformedBy = req.LaborPerformedBy
	m.LaborCost = req.LaborCost.Round(2)
	m.PartsCost = req.PartsCost.Round(2)
	m.PassedInspection = req.PassedInspection
	m.InspectionNotes = req.InspectionNotes
	m.NextInspectionDue = req.NextInspectionDue
	m.RecomputeTotal()
}
