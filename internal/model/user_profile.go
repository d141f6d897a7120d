package model

import "time"

// UserProfile officer profile (user_profiles)
type UserProfile struct {
	ProfileID                    int64      `gorm:"primaryKey;autoIncrement"           json:"profile_id"`
	UserID                       int64      `gorm:"not null;uniqueIndex"               json:"user_id"`
	FirstName                    string     `gorm:"type:varchar(100)"                  json:"first_name"`
	LastName                     string     `gorm:"type:varchar(100)"                  json:"last_name"`
	PreferredName                string     `gorm:"type:varchar(100)"                  json:"preferred_name"`
	BadgeNumber                  string     `gorm:"type:varchar(50);index"             json:"badge_number"`
	Position                     string     `gorm:"type:varchar(100)"                  json:"position"`
	Department                   string     `gorm:"type:varchar(100)"                  json:"department"`
	Location                     string     `gorm:"type:varchar(100)"                  json:"location"`
	Address1                     string     `gorm:"type:varchar(200)"                  json:"address1"`
	Address2                     string     `gorm:"type:varchar(200)"                  json:"address2"`
	City                         string     `gorm:"type:varchar(100)"                  json:"city"`
	State                        string     `gorm:"type:varchar(50)"                   json:"state"`
	ZipCode                      string     `gorm:"type:varchar(20)"                   json:"zip_code"`
	Skills                       string     `gorm:"type:text"                          json:"skills"`
	Status                       string     `gorm:"type:varchar(50)"                   json:"status"` // Active | Suspended | Retired ...
	Rank                         string     `gorm:"type:varchar(50)"                   json:"rank"`
	Bio                          string     `gorm:"type:text"                          json:"bio"`
	PhoneNumber                  string     `gorm:"type:varchar(50)"                   json:"phone_number"`
	EmailAddress                 string     `gorm:"type:varchar(255)"                  json:"email_address"`
	DateOfBirth                  *time.Time `json:"date_of_birth,omitempty"`
	DateOfHire                   *time.Time `json:"date_of_hire,omitempty"`
	Gender                       string     `gorm:"type:varchar(50)"                   json:"gender"`
	ShiftSchedule                string     `gorm:"type:varchar(100)"                  json:"shift_schedule"`
	SupervisorBadgeNumber        string     `gorm:"type:varchar(50)"                   json:"supervisor_badge_number"`
	StationLocation              string     `gorm:"type:varchar(100)"                  json:"station_location"`
	LanguageFluency              string     `gorm:"type:varchar(200)"                  json:"language_fluency"`
	SpecialClearances            string     `gorm:"type:varchar(200)"                  json:"special_clearances"`
	IsActiveDuty                 bool       `gorm:"not null;default:false"             json:"is_active_duty"`
	CommandingOfficerBadgeNumber string     `gorm:"type:varchar(50)"                   json:"commanding_officer_badge_number"`
	Notes                        string     `gorm:"type:text"                          json:"notes"`
	AuditModel
}

// TableName table name
func (UserProfile) TableName() string { return "user_profiles" }
