package dto

import "time"

// TrainingEventListRequest list filters
type TrainingEventListRequest struct {
	From  *time.Time `form:"from"  time_format:"2006-01-02"`
	To    *time.Time `form:"to"    time_format:"2006-01-02"`
	Title string     `form:"title" binding:"omitempty,max=200"`
}

// TrainingEventRequest create / update body
type TrainingEventRequest struct {
	TrainingEventID         int64      `json:"training_event_id"`
	Title                   string     `json:"title"                     binding:"required,max=200"`
	Description             string     `json:"description"`
	RecordedDate            *time.Time `json:"recorded_date"`
	StartDate               time.Time  `json:"start_date"                binding:"required"`
	EndDate                 time.Time  `json:"end_date"                  binding:"required"`
	Location                string     `json:"location"                  binding:"omitempty,max=200"`
	Instructor              string     `json:"instructor"                binding:"omitempty,max=200"`
	DurationHours           float64    `json:"duration_hours"            binding:"gte=0"`
	CertificationIssued     bool       `json:"certification_issued"`
	CertificationIssuedBy   string     `json:"certification_issued_by"   binding:"omitempty,max=200"`
	CertificationExpiryDate *time.Time `json:"certification_expiry_date"`
	AuditInput
}

// ImportTrainingEventsResponse result of an iCalendar import
type ImportTrainingEventsResponse struct {
	Imported int     `json:"imported"`
	Skipped  int     `json:"skipped"` // VEVENTs without summary or start
	EventIDs []int64 `json:"training_event_ids"`
}
