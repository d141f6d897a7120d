package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tlodholz/OpsReadyAPI/internal/model"
)

// VehicleFilter list filters; zero values are ignored
type VehicleFilter struct {
	UnitNumber        string
	VIN               string
	AssignedOfficerID *int64
	Status            string
	VehicleGroupID    *int64
	IsOperational     *bool
}

// VehicleRepository fleet vehicle data access
type VehicleRepository interface {
	Create(ctx context.Context, v *model.Vehicle) error
	GetByID(ctx context.Context, id int64) (*model.Vehicle, error)
	List(ctx context.Context, f VehicleFilter) ([]model.Vehicle, error)
	Update(ctx context.Context, v *model.Vehicle) error
	Delete(ctx context.Context, id int64) error
}

type vehicleRepo struct {
	db *gorm.DB
}

// NewVehicleRepo creates a VehicleRepository
func NewVehicleRepo(db *gorm.DB) VehicleRepository {
	return &vehicleRepo{db: db}
}

func (r *vehicleRepo) Create(ctx context.Context, v *model.Vehicle) error {
	return translateError(r.db.WithContext(ctx).Create(v).Error)
}

func (r *vehicleRepo) GetByID(ctx context.Context, id int64) (*model.Vehicle, error) {
	var v model.Vehicle
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", id).
		First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vehicleRepo) List(ctx context.Context, f VehicleFilter) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	db := r.db.WithContext(ctx)

	if f.UnitNumber != "" {
		db = db.Where("unit_number LIKE ?", likePattern(f.UnitNumber))
	}
	if f.VIN != "" {
		db = db.Where("vin LIKE ?", likePattern(f.VIN))
	}
	if f.AssignedOfficerID != nil {
		db = db.Where("assigned_officer_id = ?", *f.AssignedOfficerID)
	}
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.VehicleGroupID != nil {
		db = db.Where("vehicle_group_id = ?", *f.VehicleGroupID)
	}
	if f.IsOperational != nil {
		db = db.Where("is_operational = ?", *f.IsOperational)
	}

	err := db.Order("unit_number ASC, vehicle_id ASC").Find(&vehicles).Error
	return vehicles, err
}

func (r *vehicleRepo) Update(ctx context.Context, v *model.Vehicle) error {
	return translateError(r.db.WithContext(ctx).Save(v).Error)
}

func (r *vehicleRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("vehicle_id = ?", id).Delete(&model.Vehicle{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
