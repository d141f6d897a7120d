package model

import "time"

// User application login account (users)
type User struct {
	UserID       int64     `gorm:"primaryKey;autoIncrement"                    json:"user_id"`
	Username     string    `gorm:"type:varchar(100);not null;uniqueIndex"      json:"username"`
	Email        string    `gorm:"type:varchar(255);not null"                  json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null"                  json:"-"`
	Role         string    `gorm:"type:varchar(50);not null;default:'User'"    json:"role"`
	BadgeLevel   string    `gorm:"type:varchar(50);not null;default:'Level1'"  json:"badge_level"`
	IsActive     bool      `gorm:"not null;default:true"                       json:"is_active"`
	CreatedAt    time.Time `gorm:"not null"                                    json:"created_at"`
}

// TableName table name
func (User) TableName() string { return "users" }
