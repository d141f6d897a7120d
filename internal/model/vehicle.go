package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vehicle fleet vehicle (vehicles)
type Vehicle struct {
	VehicleID             int64           `gorm:"primaryKey;autoIncrement"          json:"vehicle_id"`
	UnitNumber            string          `gorm:"type:varchar(50);index"            json:"unit_number"`
	VIN                   string          `gorm:"column:vin;type:varchar(50)"       json:"vin"`
	LicensePlate          string          `gorm:"type:varchar(20)"                  json:"license_plate"`
	Make                  string          `gorm:"type:varchar(50)"                  json:"make"`
	Model                 string          `gorm:"type:varchar(50)"                  json:"model"`
	Year                  int             `gorm:"not null;default:0"                json:"year"`
	Color                 string          `gorm:"type:varchar(50)"                  json:"color"`
	DepartmentalAssetTag  string          `gorm:"type:varchar(50)"                  json:"departmental_asset_tag"`
	PurchaseDate          *time.Time      `json:"purchase_date,omitempty"`
	PurchasePrice         decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"purchase_price"`
	FuelType              string          `gorm:"type:varchar(50)"                  json:"fuel_type"`
	VehicleType           string          `gorm:"type:varchar(50)"                  json:"vehicle_type"`
	IsK9Unit              bool            `gorm:"column:is_k9_unit;not null;default:false" json:"is_k9_unit"`
	Status                string          `gorm:"type:varchar(50);index"            json:"status"`
	AssignedOfficerID     *int64          `gorm:"index"                             json:"assigned_officer_id,omitempty"`
	AssignedUnit          string          `gorm:"type:varchar(100)"                 json:"assigned_unit"`
	AssignmentDate        *time.Time      `json:"assignment_date,omitempty"`
	ReturnDate            *time.Time      `json:"return_date,omitempty"`
	CurrentOdometer       int             `gorm:"not null;default:0"                json:"current_odometer"`
	LastServiceDate       *time.Time      `json:"last_service_date,omitempty"`
	NextServiceDue        *time.Time      `json:"next_service_due,omitempty"`
	IsOperational         bool            `gorm:"not null"                          json:"is_operational"`
	HasBodyCamDock        bool            `gorm:"not null;default:false"            json:"has_body_cam_dock"`
	HasInCarCamera        bool            `gorm:"not null;default:false"            json:"has_in_car_camera"`
	HasEmergencyLights    bool            `gorm:"not null;default:false"            json:"has_emergency_lights"`
	HasSiren              bool            `gorm:"not null;default:false"            json:"has_siren"`
	RadioID               string          `gorm:"column:radio_id;type:varchar(50)"  json:"radio_id"`
	MDTSerial             string          `gorm:"column:mdt_serial;type:varchar(50)" json:"mdt_serial"`
	GPSUnitID             string          `gorm:"column:gps_unit_id;type:varchar(50)" json:"gps_unit_id"`
	VehicleGroupID        *int64          `gorm:"index"                             json:"vehicle_group_id,omitempty"`
	DecommissionedDate    *time.Time      `json:"decommissioned_date,omitempty"`
	DecommissionReason    string          `gorm:"type:varchar(200)"                 json:"decommission_reason"`
	InsurancePolicyNumber string          `gorm:"type:varchar(100)"                 json:"insurance_policy_number"`
	InsuranceExpiryDate   *time.Time      `json:"insurance_expiry_date,omitempty"`
	Notes                 string          `gorm:"type:text"                         json:"notes"`
	AuditModel
}

// TableName table name
func (Vehicle) TableName() string { return "vehicles" }
