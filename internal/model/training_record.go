package model

import (
	"strconv"
	"time"
)

// TrainingRecord outcome of one training assignment (training_records)
type TrainingRecord struct {
	TrainingRecordID        int64     `gorm:"primaryKey;autoIncrement"       json:"training_record_id"`
	TrainingAssignmentID    int64     `gorm:"not null;index"                 json:"training_assignment_id"`
	TrainingEventID         *int64    `gorm:"index"                          json:"training_event_id,omitempty"`
	UserID                  *int64    `gorm:"index"                          json:"user_id,omitempty"`
	AssignedBy              string    `gorm:"type:varchar(100)"              json:"assigned_by"`
	Attendance              string    `gorm:"type:varchar(50)"               json:"attendance"`
	Status                  string    `gorm:"type:varchar(50)"               json:"status"`
	TrainingOutcome         string    `gorm:"type:varchar(100)"              json:"training_outcome"`
	Score                   string    `gorm:"type:varchar(50)"               json:"score"`
	CertificationNumber     string    `gorm:"type:varchar(100)"              json:"certification_number"`
	SkillLevelAchieved      string    `gorm:"type:varchar(100)"              json:"skill_level_achieved"`
	ProficiencyLevel        string    `gorm:"type:varchar(100)"              json:"proficiency_level"`
	Notes                   string    `gorm:"type:text"                      json:"notes"`
	HoursCompleted          float64   `gorm:"not null;default:0"             json:"hours_completed"`
	Completed               bool      `gorm:"not null;default:false"         json:"completed"`
	Strengths               string    `gorm:"type:text"                      json:"strengths"`
	AreasForImprovement     string    `gorm:"type:text"                      json:"areas_for_improvement"`
	FollowUpRequired        bool      `gorm:"not null;default:false"         json:"follow_up_required"`
	EvaluatorID             int64     `gorm:"not null;default:0;index"       json:"evaluator_id"`
	Evaluator               string    `gorm:"type:varchar(200)"              json:"evaluator"`
	EvaluatorBadgeNumber    string    `gorm:"type:varchar(50)"               json:"evaluator_badge_number"`
	EvaluationComments      string    `gorm:"type:text"                      json:"evaluation_comments"`
	EvaluationType          string    `gorm:"type:varchar(100)"              json:"evaluation_type"`
	OfficialComments        string    `gorm:"type:text"                      json:"official_comments"`
	EnrollmentDate          time.Time `gorm:"not null"                       json:"enrollment_date"`
	EvaluationDate          time.Time `gorm:"not null"                       json:"evaluation_date"`
	FollowUpDate            time.Time `gorm:"not null"                       json:"follow_up_date"`
	ExpirationDate          time.Time `gorm:"type:date;not null"             json:"expiration_date"`
	CertificationIssuedDate time.Time `gorm:"not null"                       json:"certification_issued_date"`
	CertificationExpiryDate time.Time `gorm:"not null;index"                 json:"certification_expiry_date"`
	CompletionDate          time.Time `gorm:"not null"                       json:"completion_date"`
	AuditModel
}

// TableName table name
func (TrainingRecord) TableName() string { return "training_records" }

// NewPlaceholderRecord builds the empty outcome record that accompanies a new
// assignment. Every date field takes now; ExpirationDate keeps the date only.
func NewPlaceholderRecord(a *TrainingAssignment, actor string, now time.Time) *TrainingRecord {
	rec := &TrainingRecord{
		TrainingAssignmentID:    a.AssignmentID,
		AssignedBy:              strconv.FormatInt(a.AssignedByUserID, 10),
		EnrollmentDate:          now,
		EvaluationDate:          now,
		FollowUpDate:            now,
		ExpirationDate:          time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		CertificationIssuedDate: now,
		CertificationExpiryDate: now,
		CompletionDate:          now,
	}
	rec.StampCreate(actor, now)
	return rec
}

// TrainingRecordDetail assignment ⋈ record row, outer-joined with the user's profile
type TrainingRecordDetail struct {
	TrainingRecordID     int64     `json:"training_record_id"`
	TrainingAssignmentID int64     `json:"training_assignment_id"`
	TrainingEventID      int64     `json:"training_event_id"`
	UserID               int64     `json:"user_id"`
	AssignedDate         time.Time `json:"assigned_date"`
	Attendance           string    `json:"attendance"`
	Status               string    `json:"status"`
	TrainingOutcome      string    `json:"training_outcome"`
	Score                string    `json:"score"`
	HoursCompleted       float64   `json:"hours_completed"`
	Completed            bool      `json:"completed"`
	CompletionDate       time.Time `json:"completion_date"`
	CertificationNumber  string    `json:"certification_number"`
	ExpirationDate       time.Time `json:"expiration_date"`
	FirstName            *string   `json:"first_name"`
	LastName             *string   `json:"last_name"`
	PreferredName        *string   `json:"preferred_name"`
	BadgeNumber          *string   `json:"badge_number"`
	Rank                 *string   `json:"rank"`
}
