package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tlodholz/OpsReadyAPI/internal/dto"
	"github.com/tlodholz/OpsReadyAPI/internal/service"
	"github.com/tlodholz/OpsReadyAPI/pkg/response"
)

// ICSUploadLimit largest accepted iCalendar upload
const ICSUploadLimit = 5 << 20

// TrainingEventHandler training event endpoints
type TrainingEventHandler struct {
	eventSvc service.TrainingEventService
}

// NewTrainingEventHandler creates a TrainingEventHandler
func NewTrainingEventHandler(eventSvc service.TrainingEventService) *TrainingEventHandler {
	return &TrainingEventHandler{eventSvc: eventSvc}
}

// List GET /api/trainingevent
func (h *TrainingEventHandler) List(c *gin.Context) {
	var req dto.TrainingEventListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}

	events, err := h.eventSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, events)
}

// Get GET /api/trainingevent/:id
func (h *TrainingEventHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	event, err := h.eventSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleTrainingEventError(c, err)
		return
	}

	response.OK(c, event)
}

// Create POST /api/trainingevent
func (h *TrainingEventHandler) Create(c *gin.Context) {
	var req dto.TrainingEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	event, err := h.eventSvc.Create(c.Request.Context(), &req, actorFrom(c))
	if err != nil {
		h.handleTrainingEventError(c, err)
		return
	}

	response.OK(c, event)
}

// Update PUT /api/trainingevent/:id
func (h *TrainingEventHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.TrainingEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	event, err := h.eventSvc.Update(c.Request.Context(), id, &req, actorFrom(c))
	if err != nil {
		h.handleTrainingEventError(c, err)
		return
	}

	response.OK(c, event)
}

// Delete DELETE /api/trainingevent/:id
func (h *TrainingEventHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.eventSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleTrainingEventError(c, err)
		return
	}

	response.OK(c, dto.DeleteResponse{ID: id})
}

// Calendar iCalendar feed of the filtered events
// GET /api/trainingevent/calendar.ics
func (h *TrainingEventHandler) Calendar(c *gin.Context) {
	var req dto.TrainingEventListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}

	cal, err := h.eventSvc.Calendar(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.File(c, "text/calendar; charset=utf-8", "training-events.ics", []byte(cal))
}

// Import creates one event per usable VEVENT of the uploaded file
// POST /api/trainingevent/import (multipart field "file")
func (h *TrainingEventHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		bindFailed(c, err)
		return
	}
	if fileHeader.Size > ICSUploadLimit {
		response.Error(c, http.StatusRequestEntityTooLarge, 10005, "calendar file exceeds 5MB")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, 10001, "cannot read uploaded file")
		return
	}
	defer file.Close()

	result, err := h.eventSvc.ImportICS(c.Request.Context(), file, actorFrom(c))
	if err != nil {
		h.handleTrainingEventError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *TrainingEventHandler) handleTrainingEventError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		response.BadRequest(c, 10001, "invalid request parameters")
	case errors.Is(err, service.ErrIDMismatch):
		response.BadRequest(c, 10001, "training_event_id in body does not match path")
	case errors.Is(err, service.ErrTrainingEventNotFound):
		response.NotFound(c, 13001, "training event not found")
	case errors.Is(err, service.ErrTrainingEventDateRange):
		response.BadRequest(c, 13002, "end_date must not be before start_date")
	case errors.Is(err, service.ErrTrainingEventICSEmpty):
		response.BadRequest(c, 13003, "calendar contains no usable events")
	default:
		response.InternalError(c)
	}
}
