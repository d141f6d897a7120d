package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tlodholz/OpsReadyAPI/internal/dto"
	"github.com/tlodholz/OpsReadyAPI/internal/service"
	"github.com/tlodholz/OpsReadyAPI/pkg/response"
)

// TrainingRecordHandler outcome record endpoints
type TrainingRecordHandler struct {
	recordSvc service.TrainingRecordService
}

// NewTrainingRecordHandler creates a TrainingRecordHandler
func NewTrainingRecordHandler(recordSvc service.TrainingRecordService) *TrainingRecordHandler {
	return &TrainingRecordHandler{recordSvc: recordSvc}
}

// List GET /api/trainingrecord
func (h *TrainingRecordHandler) List(c *gin.Context) {
	var req dto.TrainingRecordListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}

	records, err := h.recordSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, records)
}

// Get GET /api/trainingrecord/:id
func (h *TrainingRecordHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	rec, err := h.recordSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleTrainingRecordError(c, err)
		return
	}

	response.OK(c, rec)
}

// Create POST /api/trainingrecord
func (h *TrainingRecordHandler) Create(c *gin.Context) {
	var req dto.TrainingRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	rec, err := h.recordSvc.Create(c.Request.Context(), &req, actorFrom(c))
	if err != nil {
		h.handleTrainingRecordError(c, err)
		return
	}

	response.OK(c, rec)
}

// Update PUT /api/trainingrecord/:id
func (h *TrainingRecordHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.TrainingRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	rec, err := h.recordSvc.Update(c.Request.Context(), id, &req, actorFrom(c))
	if err != nil {
		h.handleTrainingRecordError(c, err)
		return
	}

	response.OK(c, rec)
}

// Delete DELETE /api/trainingrecord/:id
func (h *TrainingRecordHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.recordSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleTrainingRecordError(c, err)
		return
	}

	response.OK(c, dto.DeleteResponse{ID: id})
}

func (h *TrainingRecordHandler) handleTrainingRecordError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		response.BadRequest(c, 10001, "invalid request parameters")
	case errors.Is(err, service.ErrIDMismatch):
		response.BadRequest(c, 10001, "training_record_id in body does not match path")
	case errors.Is(err, service.ErrTrainingRecordNotFound):
		response.NotFound(c, 15001, "training record not found")
	case errors.Is(err, service.ErrTrainingRecordAssignmentMissing):
		response.BadRequest(c, 15002, "training_assignment_id does not reference an assignment")
	default:
		response.InternalError(c)
	}
}
