package dto

import "time"

// TrainingRecordListRequest list filters
type TrainingRecordListRequest struct {
	UserID          *int64     `form:"userId"`
	TrainingEventID *int64     `form:"trainingEventId"`
	Completed       *bool      `form:"completed"`
	EvaluatorID     *int64     `form:"evaluatorId"`
	From            *time.Time `form:"from" time_format:"2006-01-02"`
	To              *time.Time `form:"to"   time_format:"2006-01-02"`
}

// TrainingRecordRequest create / update body. Missing dates default to now.
type TrainingRecordRequest struct {
	TrainingRecordID        int64      `json:"training_record_id"`
	TrainingAssignmentID    int64      `json:"training_assignment_id"  binding:"required,gt=0"`
	TrainingEventID         *int64     `json:"training_event_id"`
	UserID                  *int64     `json:"user_id"`
	AssignedBy              string     `json:"assigned_by"             binding:"omitempty,max=100"`
	Attendance              string     `json:"attendance"              binding:"omitempty,max=50"`
	Status                  string     `json:"status"                  binding:"omitempty,max=50"`
	TrainingOutcome         string     `json:"training_outcome"        binding:"omitempty,max=100"`
	Score                   string     `json:"score"                   binding:"omitempty,max=50"`
	CertificationNumber     string     `json:"certification_number"    binding:"omitempty,max=100"`
	SkillLevelAchieved      string     `json:"skill_level_achieved"    binding:"omitempty,max=100"`
	ProficiencyLevel        string     `json:"proficiency_level"       binding:"omitempty,max=100"`
	Notes                   string     `json:"notes"`
	HoursCompleted          float64    `json:"hours_completed"         binding:"gte=0"`
	Completed               bool       `json:"completed"`
	Strengths               string     `json:"strengths"`
	AreasForImprovement     string     `json:"areas_for_improvement"`
	FollowUpRequired        bool       `json:"follow_up_required"`
	EvaluatorID             int64      `json:"evaluator_id"            binding:"gte=0"`
	Evaluator               string     `json:"evaluator"               binding:"omitempty,max=200"`
	EvaluatorBadgeNumber    string     `json:"evaluator_badge_number"  binding:"omitempty,max=50"`
	EvaluationComments      string     `json:"evaluation_comments"`
	EvaluationType          string     `json:"evaluation_type"         binding:"omitempty,max=100"`
	OfficialComments        string     `json:"official_comments"`
	EnrollmentDate          *time.Time `json:"enrollment_date"`
	EvaluationDate          *time.Time `json:"evaluation_date"`
	FollowUpDate            *time.Time `json:"follow_up_date"`
	ExpirationDate          *time.Time `json:"expiration_date"`
	CertificationIssuedDate *time.Time `json:"certification_issued_date"`
	CertificationExpiryDate *time.Time `json:"certification_expiry_date"`
	CompletionDate          *time.Time `json:"completion_date"`
	AuditInput
}
