package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tlodholz/OpsReadyAPI/internal/dto"
	"github.com/tlodholz/OpsReadyAPI/internal/service"
	"github.com/tlodholz/OpsReadyAPI/pkg/response"
)

// UserProfileHandler officer profile endpoints
type UserProfileHandler struct {
	profileSvc service.UserProfileService
}

// NewUserProfileHandler creates a UserProfileHandler
func NewUserProfileHandler(profileSvc service.UserProfileService) *UserProfileHandler {
	return &UserProfileHandler{profileSvc: profileSvc}
}

// List GET /api/userprofile
func (h *UserProfileHandler) List(c *gin.Context) {
	var req dto.UserProfileListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}

	profiles, err := h.profileSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, profiles)
}

// Get GET /api/userprofile/:id
func (h *UserProfileHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	profile, err := h.profileSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleUserProfileError(c, err)
		return
	}

	response.OK(c, profile)
}

// Create POST /api/userprofile
func (h *UserProfileHandler) Create(c *gin.Context) {
	var req dto.UserProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	profile, err := h.profileSvc.Create(c.Request.Context(), &req, actorFrom(c))
	if err != nil {
		h.handleUserProfileError(c, err)
		return
	}

	response.OK(c, profile)
}

// Update PUT /api/userprofile/:id
func (h *UserProfileHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UserProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	profile, err := h.profileSvc.Update(c.Request.Context(), id, &req, actorFrom(c))
	if err != nil {
		h.handleUserProfileError(c, err)
		return
	}

	response.OK(c, profile)
}

// Delete DELETE /api/userprofile/:id
func (h *UserProfileHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.profileSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleUserProfileError(c, err)
		return
	}

	response.OK(c, dto.DeleteResponse{ID: id})
}

func (h *UserProfileHandler) handleUserProfileError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		response.BadRequest(c, 10001, "invalid request parameters")
	case errors.Is(err, service.ErrIDMismatch):
		response.BadRequest(c, 10001, "profile_id in body does not match path")
	case errors.Is(err, service.ErrUserProfileNotFound):
		response.NotFound(c, 12001, "user profile not found")
	case errors.Is(err, service.ErrUserProfileExists):
		response.Conflict(c, 12002, "user already has a profile")
	default:
		response.InternalError(c)
	}
}
