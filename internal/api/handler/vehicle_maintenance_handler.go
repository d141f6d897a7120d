package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tlodholz/OpsReadyAPI/internal/dto"
	"github.com/tlodholz/OpsReadyAPI/internal/service"
	"github.com/tlodholz/OpsReadyAPI/pkg/response"
)

// VehicleMaintenanceHandler maintenance log endpoints
type VehicleMaintenanceHandler struct {
	maintenanceSvc service.VehicleMaintenanceService
}

// NewVehicleMaintenanceHandler creates a VehicleMaintenanceHandler
func NewVehicleMaintenanceHandler(maintenanceSvc service.VehicleMaintenanceService) *VehicleMaintenanceHandler {
	return &VehicleMaintenanceHandler{maintenanceSvc: maintenanceSvc}
}

// List GET /api/vehiclemaintenance
func (h *VehicleMaintenanceHandler) List(c *gin.Context) {
	var req dto.VehicleMaintenanceListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}

	entries, err := h.maintenanceSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, entries)
}

// Get GET /api/vehiclemaintenance/:id
func (h *VehicleMaintenanceHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	m, err := h.maintenanceSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleMaintenanceError(c, err)
		return
	}

	response.OK(c, m)
}

// Create POST /api/vehiclemaintenance
func (h *VehicleMaintenanceHandler) Create(c *gin.Context) {
	var req dto.VehicleMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	m, err := h.maintenanceSvc.Create(c.Request.Context(), &req, actorFrom(c))
	if err != nil {
		h.handleMaintenanceError(c, err)
		return
	}

	response.OK(c, m)
}

// Update PUT /api/vehiclemaintenance/:id
func (h *VehicleMaintenanceHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.VehicleMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	m, err := h.maintenanceSvc.Update(c.Request.Context(), id, &req, actorFrom(c))
	if err != nil {
		h.handleMaintenanceError(c, err)
		return
	}

	response.OK(c, m)
}

// Delete DELETE /api/vehiclemaintenance/:id
func (h *VehicleMaintenanceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.maintenanceSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleMaintenanceError(c, err)
		return
	}

	response.OK(c, dto.DeleteResponse{ID: id})
}

func (h *VehicleMaintenanceHandler) handleMaintenanceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		response.BadRequest(c, 10001, "invalid request parameters")
	case errors.Is(err, service.ErrIDMismatch):
		response.BadRequest(c, 10001, "maintenance_id in body does not match path")
	case errors.Is(err, service.ErrVehicleMaintenanceNotFound):
		response.NotFound(c, 17001, "maintenance entry not found")
	case errors.Is(err, service.ErrMaintenanceVehicleMissing):
		response.BadRequest(c, 17002, "vehicle_id does not reference a vehicle")
	case errors.Is(err, service.ErrMaintenanceNegativeCost):
		response.BadRequest(c, 17003, "labor_cost and parts_cost must not be negative")
	default:
		response.InternalError(c)
	}
}
