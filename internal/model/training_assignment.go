package model

import "time"

// TrainingAssignment one user's enrollment in one training event (training_assignments)
// (training_event_id, user_id) is unique.
type TrainingAssignment struct {
	AssignmentID     int64      `gorm:"primaryKey;autoIncrement"                                           json:"assignment_id"`
	TrainingEventID  int64      `gorm:"not null;uniqueIndex:idx_training_assignments_event_user,priority:1" json:"training_event_id"`
	UserID           int64      `gorm:"not null;uniqueIndex:idx_training_assignments_event_user,priority:2;index" json:"user_id"`
	AssignedDate     time.Time  `gorm:"not null"                                                           json:"assigned_date"`
	AssignedByUserID int64      `gorm:"not null"                                                           json:"assigned_by_user_id"`
	CreatedDate      time.Time  `gorm:"not null"                                                           json:"created_date"`
	ModifiedByUserID *int64     `json:"modified_by_user_id,omitempty"`
	ModifiedDate     *time.Time `json:"modified_date,omitempty"`
}

// TableName table name
func (TrainingAssignment) TableName() string { return "training_assignments" }
