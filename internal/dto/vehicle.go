package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// VehicleListRequest list filters
type VehicleListRequest struct {
	UnitNumber        string `form:"unitNumber" binding:"omitempty,max=50"`
	VIN               string `form:"vin"        binding:"omitempty,max=50"`
	AssignedOfficerID *int64 `form:"assignedOfficerId"`
	Status            string `form:"status"     binding:"omitempty,max=50"`
	VehicleGroupID    *int64 `form:"vehicleGroupId"`
	IsOperational     *bool  `form:"isOperational"`
}

// VehicleRequest create / update body
type VehicleRequest struct {
	VehicleID             int64           `json:"vehicle_id"`
	UnitNumber            string          `json:"unit_number"             binding:"required,max=50"`
	VIN                   string          `json:"vin"                     binding:"omitempty,max=50"`
	LicensePlate          string          `json:"license_plate"           binding:"omitempty,max=20"`
	Make                  string          `json:"make"                    binding:"omitempty,max=50"`
	Model                 string          `json:"model"                   binding:"omitempty,max=50"`
	Year                  int             `json:"year"                    binding:"omitempty,gte=1900,lte=2100"`
	Color                 string          `json:"color"                   binding:"omitempty,max=50"`
	DepartmentalAssetTag  string          `json:"departmental_asset_tag"  binding:"omitempty,max=50"`
	PurchaseDate          *time.Time      `json:"purchase_date"`
	PurchasePrice         decimal.Decimal `json:"purchase_price"`
	FuelType              string          `json:"fuel_type"               binding:"omitempty,max=50"`
	VehicleType           string          `json:"vehicle_type"            binding:"omitempty,max=50"`
	IsK9Unit              bool            `json:"is_k9_unit"`
	Status                string          `json:"status"                  binding:"omitempty,max=50"`
	AssignedOfficerID     *int64          `json:"assigned_officer_id"`
	AssignedUnit          string          `json:"assigned_unit"           binding:"omitempty,max=100"`
	AssignmentDate        *time.Time      `json:"assignment_date"`
	ReturnDate            *time.Time      `json:"return_date"`
	CurrentOdometer       int             `json:"current_odometer"        binding:"gte=0"`
	LastServiceDate       *time.Time      `json:"last_service_date"`
	NextServiceDue        *time.Time      `json:"next_service_due"`
	IsOperational         *bool           `json:"is_operational"`
	HasBodyCamDock        bool            `json:"has_body_cam_dock"`
	HasInCarCamera        bool            `json:"has_in_car_camera"`
	HasEmergencyLights    bool            `json:"has_emergency_lights"`
	HasSiren              bool            `json:"has_siren"`
	RadioID               string          `json:"radio_id"                binding:"omitempty,max=50"`
	MDTSerial             string          `json:"mdt_serial"              binding:"omitempty,max=50"`
	GPSUnitID             string          `json:"gps_unit_id"             binding:"omitempty,max=50"`
	VehicleGroupID        *int64          `json:"vehicle_group_id"`
	DecommissionedDate    *time.Time      `json:"decommissioned_date"`
	DecommissionReason    string          `json:"decommission_reason"     binding:"omitempty,max=200"`
	InsurancePolicyNumber string          `json:"insurance_policy_number" binding:"omitempty,max=100"`
	InsuranceExpiryDate   *time.Time      `json:"insurance_expiry_date"`
	Notes                 string          `json:"notes"`
	AuditInput
}
