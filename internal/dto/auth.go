package dto

// ── auth requests ──

// RegisterRequest new account
type RegisterRequest struct {
	Username   string `json:"username"    binding:"required,min=3,max=100"`
	Email      string `json:"email"       binding:"required,email"`
	Password   string `json:"password"    binding:"required,min=8,max=72"`
	Role       string `json:"role"        binding:"omitempty,oneof=User Supervisor Admin"`
	BadgeLevel string `json:"badge_level" binding:"omitempty,max=50"`
}

// LoginRequest credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ── auth responses ──

// LoginResponse issued access token
type LoginResponse struct {
	Token     string `json:"token"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	ExpiresIn int    `json:"expires_in"` // seconds
}

// UserResponse account without credentials
type UserResponse struct {
	UserID     int64  `json:"user_id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	BadgeLevel string `json:"badge_level"`
	IsActive   bool   `json:"is_active"`
	CreatedAt  string `json:"created_at"`
}
