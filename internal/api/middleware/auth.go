package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tlodholz/OpsReadyAPI/pkg/jwt"
	"github.com/tlodholz/OpsReadyAPI/pkg/redis"
	"github.com/tlodholz/OpsReadyAPI/pkg/response"
)

// context keys set by the auth middleware
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextRole     = "role"
	ContextTokenID  = "token_id"
	ContextTokenExp = "token_expires_at"
)

// JWTAuth requires a valid, non-revoked access token in
// Authorization: Bearer <token>. rdb may be nil; revocation is then not checked.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			response.Unauthorized(c, 10002, "missing or malformed authorization header")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(token)
		if err != nil {
			response.Unauthorized(c, 10002, "token invalid or expired")
			c.Abort()
			return
		}

		if revoked(c, rdb, claims.ID, logger) {
			response.Unauthorized(c, 10002, "token has been revoked")
			c.Abort()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalJWTAuth attaches the caller when a valid token is present and lets
// anonymous requests through; writes then record the system actor
func OptionalJWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := jwtMgr.ParseToken(token)
		if err != nil || revoked(c, rdb, claims.ID, logger) {
			c.Next()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// RoleAuth allows only the given roles; must run after JWTAuth
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			response.Unauthorized(c, 10002, "not authenticated")
			c.Abort()
			return
		}

		userRole, _ := role.(string)
		for _, r := range allowedRoles {
			if userRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "insufficient role")
		c.Abort()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// revoked reports whether jti is blacklisted; redis errors degrade open
func revoked(c *gin.Context, rdb *redis.Client, jti string, logger *zap.Logger) bool {
	if rdb == nil || jti == "" {
		return false
	}
	blacklisted, err := rdb.IsBlacklisted(c.Request.Context(), jti)
	if err != nil {
		logger.Warn("token blacklist lookup failed", zap.Error(err))
		return false
	}
	return blacklisted
}

func setClaims(c *gin.Context, claims *jwt.Claims) {
	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextUsername, claims.Username)
	c.Set(ContextRole, claims.Role)
	c.Set(ContextTokenID, claims.ID)
	if claims.ExpiresAt != nil {
		c.Set(ContextTokenExp, claims.ExpiresAt.Time)
	}
}
