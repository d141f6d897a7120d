package handler

import (
	"bytes"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/tlodholz/OpsReadyAPI/internal/dto"
	"github.com/tlodholz/OpsReadyAPI/internal/service"
	"github.com/tlodholz/OpsReadyAPI/pkg/response"
)

// TrainingAssignmentHandler assignment workflow endpoints
type TrainingAssignmentHandler struct {
	assignSvc service.TrainingAssignmentService
	now       service.Clock
}

// NewTrainingAssignmentHandler creates a TrainingAssignmentHandler
func NewTrainingAssignmentHandler(assignSvc service.TrainingAssignmentService, now service.Clock) *TrainingAssignmentHandler {
	return &TrainingAssignmentHandler{assignSvc: assignSvc, now: now}
}

// Assign one assignment for an object body, a batch for an array body
// POST /api/trainingassignment
func (h *TrainingAssignmentHandler) Assign(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		bindFailed(c, err)
		return
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		response.BadRequest(c, 10001, "request body is required")
		return
	}

	ctx := c.Request.Context()
	actor := actorFrom(c)
	now := h.now()

	switch trimmed[0] {
	case '[':
		var items []dto.AssignTrainingRequest
		if err := binding.JSON.BindBody(trimmed, &items); err != nil {
			bindFailed(c, err)
			return
		}
		reqs := make([]*dto.AssignTrainingRequest, len(items))
		for i := range items {
			reqs[i] = &items[i]
		}
		result, err := h.assignSvc.AssignMany(ctx, reqs, actor, now)
		if err != nil {
			h.handleTrainingAssignmentError(c, err)
			return
		}
		response.OK(c, result)

	case '{':
		var req dto.AssignTrainingRequest
		if err := binding.JSON.BindBody(trimmed, &req); err != nil {
			bindFailed(c, err)
			return
		}
		result, err := h.assignSvc.AssignOne(ctx, &req, actor, now)
		if err != nil {
			h.handleTrainingAssignmentError(c, err)
			return
		}
		response.OK(c, result)

	default:
		response.BadRequest(c, 10001, "body must be an assignment object or an array of them")
	}
}

// Update stamps the modifier; status is accepted but not stored
// PUT /api/trainingassignment/:id
func (h *TrainingAssignmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.assignSvc.UpdateAssignment(c.Request.Context(), id, &req, h.now())
	if err != nil {
		h.handleTrainingAssignmentError(c, err)
		return
	}

	response.OK(c, result)
}

// EventProfiles profiles of every user assigned to the event
// GET /api/trainingassignment/event/:eventId/profiles
func (h *TrainingAssignmentHandler) EventProfiles(c *gin.Context) {
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	profiles, err := h.assignSvc.ListAssignedUserProfiles(c.Request.Context(), eventID)
	if err != nil {
		h.handleTrainingAssignmentError(c, err)
		return
	}

	response.OK(c, profiles)
}

// EventRecords outcome records of the event, enriched with ?detailed=true
// GET /api/trainingassignment/event/:eventId/records
func (h *TrainingAssignmentHandler) EventRecords(c *gin.Context) {
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if detailed(c) {
		rows, err := h.assignSvc.ListRecordDetailsForEvent(ctx, eventID)
		if err != nil {
			h.handleTrainingAssignmentError(c, err)
			return
		}
		response.OK(c, rows)
		return
	}

	records, err := h.assignSvc.ListRecordsForEvent(ctx, eventID)
	if err != nil {
		h.handleTrainingAssignmentError(c, err)
		return
	}
	response.OK(c, records)
}

// UserRecords outcome records of the user, enriched with ?detailed=true
// GET /api/trainingassignment/user/:userId/records
func (h *TrainingAssignmentHandler) UserRecords(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if detailed(c) {
		rows, err := h.assignSvc.ListRecordDetailsForUser(ctx, userID)
		if err != nil {
			h.handleTrainingAssignmentError(c, err)
			return
		}
		response.OK(c, rows)
		return
	}

	records, err := h.assignSvc.ListRecordsForUser(ctx, userID)
	if err != nil {
		h.handleTrainingAssignmentError(c, err)
		return
	}
	response.OK(c, records)
}

func detailed(c *gin.Context) bool {
	return c.Query("detailed") == "true"
}

func (h *TrainingAssignmentHandler) handleTrainingAssignmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		response.BadRequest(c, 10001, "invalid request parameters")
	case errors.Is(err, service.ErrAssignmentDuplicate):
		response.BadRequest(c, 14001, "user is already assigned to this training event")
	case errors.Is(err, service.ErrAssignmentNotFound):
		response.NotFound(c, 14002, "training assignment not found")
	default:
		response.InternalError(c)
	}
}
