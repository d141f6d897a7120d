package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// VehicleMaintenanceListRequest list filters
type VehicleMaintenanceListRequest struct {
	VehicleID        *int64     `form:"vehicleId"`
	UnitNumber       string     `form:"unitNumber"  binding:"omitempty,max=50"`
	ServiceType      string     `form:"serviceType" binding:"omitempty,max=100"`
	PassedInspection *bool      `form:"passedInspection"`
	From             *time.Time `form:"from" time_format:"2006-01-02"`
	To               *time.Time `form:"to"   time_format:"2006-01-02"`
}

// VehicleMaintenanceRequest create / update body.
// Total cost is derived from labor and parts and cannot be supplied.
type VehicleMaintenanceRequest struct {
	MaintenanceID      int64           `json:"maintenance_id"`
	VehicleID          int64           `json:"vehicle_id"           binding:"required,gt=0"`
	UnitNumber         string          `json:"unit_number"          binding:"omitempty,max=50"`
	ServiceDate        time.Time       `json:"service_date"         binding:"required"`
	ServiceType        string          `json:"service_type"         binding:"omitempty,max=100"`
	Description        string          `json:"description"`
	OdometerReading    int             `json:"odometer_reading"     binding:"gte=0"`
	IsScheduledService bool            `json:"is_scheduled_service"`
	IsRepair           bool            `json:"is_repair"`
	IsUpgrade          bool            `json:"is_upgrade"`
	PartsReplaced      string          `json:"parts_replaced"`
	LaborPerformedBy   string          `json:"labor_performed_by"   binding:"omitempty,max=200"`
	LaborCost          decimal.Decimal `json:"labor_cost"`
	PartsCost          decimal.Decimal `json:"parts_cost"`
	PassedInspection   bool            `json:"passed_inspection"`
	InspectionNotes    string          `json:"inspection_notes"`
	NextInspectionDue  *time.Time      `json:"next_inspection_due"`
	AuditInput
}
