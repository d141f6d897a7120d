package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tlodholz/OpsReadyAPI/internal/dto"
	"github.com/tlodholz/OpsReadyAPI/internal/service"
	"github.com/tlodholz/OpsReadyAPI/pkg/response"
)

// VehicleHandler fleet vehicle endpoints
type VehicleHandler struct {
	vehicleSvc service.VehicleService
}

// NewVehicleHandler creates a VehicleHandler
func NewVehicleHandler(vehicleSvc service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleSvc: vehicleSvc}
}

// List GET /api/vehicle
func (h *VehicleHandler) List(c *gin.Context) {
	var req dto.VehicleListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}

	vehicles, err := h.vehicleSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, vehicles)
}

// Get GET /api/vehicle/:id
func (h *VehicleHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	v, err := h.vehicleSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleVehicleError(c, err)
		return
	}

	response.OK(c, v)
}

// Create POST /api/vehicle
func (h *VehicleHandler) Create(c *gin.Context) {
	var req dto.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	v, err := h.vehicleSvc.Create(c.Request.Context(), &req, actorFrom(c))
	if err != nil {
		h.handleVehicleError(c, err)
		return
	}

	response.OK(c, v)
}

// Update PUT /api/vehicle/:id
func (h *VehicleHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	v, err := h.vehicleSvc.Update(c.Request.Context(), id, &req, actorFrom(c))
	if err != nil {
		h.handleVehicleError(c, err)
		return
	}

	response.OK(c, v)
}

// Delete DELETE /api/vehicle/:id
func (h *VehicleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.vehicleSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleVehicleError(c, err)
		return
	}

	response.OK(c, dto.DeleteResponse{ID: id})
}

func (h *VehicleHandler) handleVehicleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		response.BadRequest(c, 10001, "invalid request parameters")
	case errors.Is(err, service.ErrIDMismatch):
		response.BadRequest(c, 10001, "vehicle_id in body does not match path")
	case errors.Is(err, service.ErrVehicleNotFound):
		response.NotFound(c, 16001, "vehicle not found")
	case errors.Is(err, service.ErrVehicleNegativePrice):
		response.BadRequest(c, 16002, "purchase_price must not be negative")
	default:
		response.InternalError(c)
	}
}
