package model

import "time"

// TrainingEvent scheduled training session (training_events)
type TrainingEvent struct {
	TrainingEventID         int64      `gorm:"primaryKey;autoIncrement"    json:"training_event_id"`
	Title                   string     `gorm:"type:varchar(200);not null"  json:"title"`
	Description             string     `gorm:"type:text"                   json:"description"`
	RecordedDate            *time.Time `json:"recorded_date,omitempty"`
	StartDate               time.Time  `gorm:"not null"                    json:"start_date"`
	EndDate                 time.Time  `gorm:"not null"                    json:"end_date"`
	Location                string     `gorm:"type:varchar(200)"           json:"location"`
	Instructor              string     `gorm:"type:varchar(200)"           json:"instructor"`
	DurationHours           float64    `gorm:"not null;default:0"          json:"duration_hours"`
	CertificationIssued     bool       `gorm:"not null;default:false"      json:"certification_issued"`
	CertificationIssuedBy   string     `gorm:"type:varchar(200)"           json:"certification_issued_by"`
	CertificationExpiryDate *time.Time `json:"certification_expiry_date,omitempty"`
	AuditModel
}

// TableName table name
func (TrainingEvent) TableName() string { return "training_events" }
