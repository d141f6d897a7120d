package dto

import "time"

// ── training assignment requests ──

// AssignTrainingRequest one (event, user) enrollment
type AssignTrainingRequest struct {
	TrainingEventID  int64 `json:"training_event_id"   binding:"required,gt=0"`
	UserID           int64 `json:"user_id"             binding:"required,gt=0"`
	AssignedByUserID int64 `json:"assigned_by_user_id" binding:"gte=0"`
}

// UpdateAssignmentRequest assignment patch.
// Only ModifiedByUserID is applied. Status is accepted and ignored.
type UpdateAssignmentRequest struct {
	ModifiedByUserID *int64  `json:"modified_by_user_id"`
	Status           *string `json:"status"`
}

// ── training assignment responses ──

// TrainingAssignmentResponse stored assignment
type TrainingAssignmentResponse struct {
	AssignmentID     int64      `json:"assignment_id"`
	TrainingEventID  int64      `json:"training_event_id"`
	UserID           int64      `json:"user_id"`
	AssignedDate     time.Time  `json:"assigned_date"`
	AssignedByUserID int64      `json:"assigned_by_user_id"`
	CreatedDate      time.Time  `json:"created_date"`
	ModifiedByUserID *int64     `json:"modified_by_user_id"`
	ModifiedDate     *time.Time `json:"modified_date"`
}

// AssignTrainingResponse result of a single assignment
type AssignTrainingResponse struct {
	Assignment       TrainingAssignmentResponse `json:"assignment"`
	TrainingRecordID int64                      `json:"training_record_id"`
}

// AssignmentCreated one created pair in a batch
type AssignmentCreated struct {
	AssignmentID     int64 `json:"assignment_id"`
	UserID           int64 `json:"user_id"`
	TrainingEventID  int64 `json:"training_event_id"`
	TrainingRecordID int64 `json:"training_record_id"`
}

// AssignmentSkipped one duplicate pair in a batch
type AssignmentSkipped struct {
	UserID          int64 `json:"user_id"`
	TrainingEventID int64 `json:"training_event_id"`
}

// BulkAssignResponse result of a batch, in submission order
type BulkAssignResponse struct {
	Created []AssignmentCreated `json:"created"`
	Skipped []AssignmentSkipped `json:"skipped"`
}
