package dto

import "time"

// UserProfileListRequest list filters
type UserProfileListRequest struct {
	UserID       *int64 `form:"userId"`
	BadgeNumber  string `form:"badgeNumber"  binding:"omitempty,max=50"`
	Name         string `form:"name"         binding:"omitempty,max=100"`
	IsActiveDuty *bool  `form:"isActiveDuty"`
}

// UserProfileRequest create / update body
type UserProfileRequest struct {
	ProfileID                    int64      `json:"profile_id"`
	UserID                       int64      `json:"user_id"                          binding:"required,gt=0"`
	FirstName                    string     `json:"first_name"                       binding:"omitempty,max=100"`
	LastName                     string     `json:"last_name"                        binding:"omitempty,max=100"`
	PreferredName                string     `json:"preferred_name"                   binding:"omitempty,max=100"`
	BadgeNumber                  string     `json:"badge_number"                     binding:"omitempty,max=50"`
	Position                     string     `json:"position"                         binding:"omitempty,max=100"`
	Department                   string     `json:"department"                       binding:"omitempty,max=100"`
	Location                     string     `json:"location"                         binding:"omitempty,max=100"`
	Address1                     string     `json:"address1"                         binding:"omitempty,max=200"`
	Address2                     string     `json:"address2"                         binding:"omitempty,max=200"`
	City                         string     `json:"city"                             binding:"omitempty,max=100"`
	State                        string     `json:"state"                            binding:"omitempty,max=50"`
	ZipCode                      string     `json:"zip_code"                         binding:"omitempty,max=20"`
	Skills                       string     `json:"skills"`
	Status                       string     `json:"status"                           binding:"omitempty,max=50"`
	Rank                         string     `json:"rank"                             binding:"omitempty,max=50"`
	Bio                          string     `json:"bio"`
	PhoneNumber                  string     `json:"phone_number"                     binding:"omitempty,max=50"`
	EmailAddress                 string     `json:"email_address"                    binding:"omitempty,email"`
	DateOfBirth                  *time.Time `json:"date_of_birth"`
	DateOfHire                   *time.Time `json:"date_of_hire"`
	Gender                       string     `json:"gender"                           binding:"omitempty,max=50"`
	ShiftSchedule                string     `json:"shift_schedule"                   binding:"omitempty,max=100"`
	SupervisorBadgeNumber        string     `json:"supervisor_badge_number"          binding:"omitempty,max=50"`
	StationLocation              string     `json:"station_location"                 binding:"omitempty,max=100"`
	LanguageFluency              string     `json:"language_fluency"                 binding:"omitempty,max=200"`
	SpecialClearances            string     `json:"special_clearances"               binding:"omitempty,max=200"`
	IsActiveDuty                 bool       `json:"is_active_duty"`
	CommandingOfficerBadgeNumber string     `json:"commanding_officer_badge_number"  binding:"omitempty,max=50"`
	Notes                        string     `json:"notes"`
	AuditInput
}
