package model

import "time"

// SystemActor is recorded when a write has no authenticated caller
const SystemActor = "system"

// AuditModel record audit columns shared by every table
type AuditModel struct {
	RecordCreatedBy   string    `gorm:"type:varchar(100);not null;default:''" json:"record_created_by"`
	RecordCreatedDate time.Time `gorm:"not null"                              json:"record_created_date"`
	RecordUpdatedBy   string    `gorm:"type:varchar(100);not null;default:''" json:"record_updated_by"`
	RecordUpdatedDate time.Time `gorm:"not null"                              json:"record_updated_date"`
}

// StampCreate fills the audit columns of a new row.
// Caller-supplied created/updated by values are kept.
func (a *AuditModel) StampCreate(actor string, now time.Time) {
	if a.RecordCreatedBy == "" {
		a.RecordCreatedBy = actor
	}
	if a.RecordUpdatedBy == "" {
		a.RecordUpdatedBy = actor
	}
	a.RecordCreatedDate = now
	a.RecordUpdatedDate = now
}

// StampUpdate records the actor and time of a modification
func (a *AuditModel) StampUpdate(actor string, now time.Time) {
	a.RecordUpdatedBy = actor
	a.RecordUpdatedDate = now
}
