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

// ── vehicle errors ──

var (
	ErrVehicleNotFound      = errors.New("vehicle not found")
	ErrVehicleNegativePrice = errors.New("purchase_price must not be negative")
)

// VehicleService fleet vehicle CRUD
type VehicleService interface {
	Create(ctx context.Context, req *dto.VehicleRequest, actor string) (*model.Vehicle, error)
	GetByID(ctx context.Context, id int64) (*model.Vehicle, error)
	List(ctx context.Context, req *dto.VehicleListRequest) ([]model.Vehicle, error)
	Update(ctx context.Context, id int64, req *dto.VehicleRequest, actor string) (*model.Vehicle, error)
	Delete(ctx context.Context, id int64) error
}

type vehicleService struct {
	repo   *repository.Repository
	now    Clock
	logger *zap.Logger
}

// NewVehicleService creates a VehicleService
func NewVehicleService(repo *repository.Repository, now Clock, logger *zap.Logger) VehicleService {
	return &vehicleService{repo: repo, now: now, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *vehicleService) Create(ctx context.Context, req *dto.VehicleRequest, actor string) (*model.Vehicle, error) {
	if req == nil {
		return nil, ErrInvalidInput
	}
	if req.PurchasePrice.IsNegative() {
		return nil, ErrVehicleNegativePrice
	}

	v := &model.Vehicle{IsOperational: true}
	applyVehicleInput(v, req)
	v.RecordCreatedBy = req.RecordCreatedBy
	v.RecordUpdatedBy = req.RecordUpdatedBy
	v.StampCreate(actor, s.now())

	if err := s.repo.Vehicle.Create(ctx, v); err != nil {
		s.logger.Error("failed to create vehicle", zap.String("unit_number", req.UnitNumber), zap.Error(err))
		return nil, err
	}
	return v, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *vehicleService) GetByID(ctx context.Context, id int64) (*model.Vehicle, error) {
	v, err := s.repo.Vehicle.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("failed to load vehicle", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return v, nil
}

// ────────────────────── List ──────────────────────

func (s *vehicleService) List(ctx context.Context, req *dto.VehicleListRequest) ([]model.Vehicle, error) {
	var f repository.VehicleFilter
	if req != nil {
		f = repository.VehicleFilter{
			UnitNumber:        req.UnitNumber,
			VIN:               req.VIN,
			AssignedOfficerID: req.AssignedOfficerID,
			Status:            req.Status,
			VehicleGroupID:    req.VehicleGroupID,
			IsOperational:     req.IsOperational,
		}
	}

	vehicles, err := s.repo.Vehicle.List(ctx, f)
	if err != nil {
		s.logger.Error("failed to list vehicles", zap.Error(err))
		return nil, err
	}
	if vehicles == nil {
		vehicles = []model.Vehicle{}
	}
	return vehicles, nil
}

// ────────────────────── Update ──────────────────────

func (s *vehicleService) Update(ctx context.Context, id int64, req *dto.VehicleRequest, actor string) (*model.Vehicle, error) {
	if req == nil {
		return nil, ErrInvalidInput
	}
	if req.VehicleID != id {
		return nil, ErrIDMismatch
	}
	if req.PurchasePrice.IsNegative() {
		return nil, ErrVehicleNegativePrice
	}

	v, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyVehicleInput(v, req)
	v.StampUpdate(actor, s.now())

	if err := s.repo.Vehicle.Update(ctx, v); err != nil {
		s.logger.Error("failed to update vehicle", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return v, nil
}

// ────────────────────── Delete ──────────────────────

func (s *vehicleService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Vehicle.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVehicleNotFound
		}
		s.logger.Error("failed to delete vehicle", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// applyVehicleInput copies the client-writable fields. IsOperational is only
// changed when the client sends it.
func applyVehicleInput(v *model.Vehicle, req *dto.VehicleRequest) {
	v.UnitNumber = req.UnitNumber
	v.VIN = req.VIN
	v.LicensePlate = req.LicensePlate
	v.Make = req.Make
	v.Model = req.Model
	v.Year = req.Year
	v.Color = req.Color
	v.DepartmentalAssetTag = req.DepartmentalAssetTag
	v.PurchaseDate = req.PurchaseDate
	v.PurchasePrice = req.PurchasePrice.Round(2)
	v.FuelType = req.FuelType
	v.VehicleType = req.VehicleType
	v.IsK9Unit = req.IsK9Unit
	v.Status = req.Status
	v.AssignedOfficerID = req.AssignedOfficerID
	v.AssignedUnit = req.AssignedUnit
	v.AssignmentDate = req.AssignmentDate
	v.ReturnDate = req.ReturnDate
	v.CurrentOdometer = req.CurrentOdometer
	v.LastServiceDate = req.LastServiceDate
	v.NextServiceDue = req.NextServiceDue
	if req.IsOperational != nil {
		v.IsOperational = *req.IsOperational
	}
	v.HasBodyCamDock = req.HasBodyCamDock
	v.HasInCarCamera = req.HasInCarCamera
	v.HasEmergencyLights = req.HasEmergencyLights
	v.HasSiren = req.HasSiren
	v.RadioID = req.RadioID
	v.MDTSerial = req.MDTSerial
	v.GPSUnitID = req.GPSUnitID
	v.VehicleGroupID = req.VehicleGroupID
	v.DecommissionedDate = req.DecommissionedDate
	v.DecommissionReason = req.DecommissionReason
	v.InsurancePolicyNumber = req.InsurancePolicyNumber
	v.InsuranceExpiryDate = req.InsuranceExpiryDate
	v.Notes = req.Notes
}
