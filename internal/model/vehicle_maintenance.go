package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// VehicleMaintenance service/repair entry for a vehicle (vehicle_maintenance)
type VehicleMaintenance struct {
	MaintenanceID      int64           `gorm:"primaryKey;autoIncrement"               json:"maintenance_id"`
	VehicleID          int64           `gorm:"not null;index"                         json:"vehicle_id"`
	UnitNumber         string          `gorm:"type:varchar(50)"                       json:"unit_number"`
	ServiceDate        time.Time       `gorm:"not null;index"                         json:"service_date"`
	ServiceType        string          `gorm:"type:varchar(100)"                      json:"service_type"`
	Description        string          `gorm:"type:text"                              json:"description"`
	OdometerReading    int             `gorm:"not null;default:0"                     json:"odometer_reading"`
	IsScheduledService bool            `gorm:"not null;default:false"                 json:"is_scheduled_service"`
	IsRepair           bool            `gorm:"not null;default:false"                 json:"is_repair"`
	IsUpgrade          bool            `gorm:"not null;default:false"                 json:"is_upgrade"`
	PartsReplaced      string          `gorm:"type:text"                              json:"parts_replaced"`
	LaborPerformedBy   string          `gorm:"type:varchar(200)"                      json:"labor_performed_by"`
	LaborCost          decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"  json:"labor_cost"`
	PartsCost          decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"  json:"parts_cost"`
	TotalCost          decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"  json:"total_cost"` // labor + parts
	PassedInspection   bool            `gorm:"not null;default:false"                 json:"passed_inspection"`
	InspectionNotes    string          `gorm:"type:text"                              json:"inspection_notes"`
	NextInspectionDue  *time.Time      `json:"next_inspection_due,omitempty"`
	AuditModel
}

// TableName table name
func (VehicleMaintenance) TableName() string { return "vehicle_maintenance" }

// RecomputeTotal sets TotalCost from labor and parts
func (m *VehicleMaintenance) RecomputeTotal() {
	m.TotalCost = m.LaborCost.Add(m.PartsCost)
}
