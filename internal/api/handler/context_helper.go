package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tlodholz/OpsReadyAPI/internal/api/middleware"
	"github.com/tlodholz/OpsReadyAPI/internal/model"
	"github.com/tlodholz/OpsReadyAPI/pkg/response"
)

// actorFrom the authenticated username, or the system actor for anonymous callers
func actorFrom(c *gin.Context) string {
	if v, ok := c.Get(middleware.ContextUsername); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return model.SystemActor
}

// MustGetTokenID extracts the token id and expiry set by JWTAuth.
// Writes a 401 and returns false when they are missing.
func MustGetTokenID(c *gin.Context) (string, time.Time, bool) {
	jti, _ := c.Get(middleware.ContextTokenID)
	exp, _ := c.Get(middleware.ContextTokenExp)
	id, ok1 := jti.(string)
	expiresAt, ok2 := exp.(time.Time)
	if !ok1 || !ok2 || id == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", time.Time{}, false
	}
	return id, expiresAt, true
}

// pathID parses a positive int64 path parameter; writes a 400 on failure
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, 10001, name+" must be a positive integer")
		return 0, false
	}
	return id, true
}

// bindFailed answers a binding error: 413 when the body limit was hit,
// 400 with the validation detail otherwise
func bindFailed(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		response.Error(c, http.StatusRequestEntityTooLarge, 10005, "request body too large")
		return
	}
	response.ErrorWithDetails(c, http.StatusBadRequest, 10001, "invalid request parameters", err.Error())
}
