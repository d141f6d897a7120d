package dto

// AuditInput optional audit values a client may supply on create.
// Empty values fall back to the calling actor.
type AuditInput struct {
	RecordCreatedBy string `json:"record_created_by" binding:"omitempty,max=100"`
	RecordUpdatedBy string `json:"record_updated_by" binding:"omitempty,max=100"`
}

// DeleteResponse id of a removed row
type DeleteResponse struct {
	ID int64 `json:"id"`
}
