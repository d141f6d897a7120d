package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tlodholz/OpsReadyAPI/internal/model"
)

// VehicleMaintenanceFilter list filters; zero values are ignored
type VehicleMaintenanceFilter struct {
	VehicleID        *int64
	UnitNumber       string
	ServiceType      string
	PassedInspection *bool
	From             *time.Time // service_date >= From
	To               *time.Time // service_date <= To
}

// VehicleMaintenanceRepository maintenance log data access
type VehicleMaintenanceRepository interface {
	Create(ctx context.Context, m *model.VehicleMaintenance) error
	GetByID(ctx context.Context, id int64) (*model.VehicleMaintenance, error)
	List(ctx context.Context, f VehicleMaintenanceFilter) ([]model.VehicleMaintenance, error)
	Update(ctx context.Context, m *model.VehicleMaintenance) error
	Delete(ctx context.Context, id int64) error
}

type vehicleMaintenanceRepo struct {
	db *gorm.DB
}

// NewVehicleMaintenanceRepo creates a VehicleMaintenanceRepository
func NewVehicleMaintenanceRepo(db *gorm.DB) VehicleMaintenanceRepository {
	return &vehicleMaintenanceRepo{db: db}
}

func (r *vehicleMaintenanceRepo) Create(ctx context.Context, m *model.VehicleMaintenance) error {
	return translateError(r.db.WithContext(ctx).Create(m).Error)
}

func (r *vehicleMaintenanceRepo) GetByID(ctx context.Context, id int64) (*model.VehicleMaintenance, error) {
	var m model.VehicleMaintenance
	err := r.db.WithContext(ctx).
		Where("maintenance_id = ?", id).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *vehicleMaintenanceRepo) List(ctx context.Context, f VehicleMaintenanceFilter) ([]model.VehicleMaintenance, error) {
	var entries []model.VehicleMaintenance
	db := r.db.WithContext(ctx)

	if f.VehicleID != nil {
		db = db.Where("vehicle_id = ?", *f.VehicleID)
	}
	if f.UnitNumber != "" {
		db = db.Where("unit_number LIKE ?", likePattern(f.UnitNumber))
	}
	if f.ServiceType != "" {
		db = db.Where("service_type LIKE ?", likePattern(f.ServiceType))
	}
	if f.PassedInspection != nil {
		db = db.Where("passed_inspection = ?", *f.PassedInspection)
	}
	if f.From != nil {
		db = db.Where("service_date >= ?", *f.From)
	}
	if f.To != nil {
		db = db.Where("service_date <= ?", *f.To)
	}

	err := db.Order("service_date DESC, maintenance_id DESC").Find(&entries).Error
	return entries, err
}

func (r *vehicleMaintenanceRepo) Update(ctx context.Context, m *model.VehicleMaintenance) error {
	return translateError(r.db.WithContext(ctx).Save(m).Error)
}

func (r *vehicleMaintenanceRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("maintenance_id = ?", id).Delete(&model.VehicleMaintenance{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
