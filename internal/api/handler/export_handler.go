package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tlodholz/OpsReadyAPI/internal/service"
	"github.com/tlodholz/OpsReadyAPI/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler spreadsheet export endpoints
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportEventRecords downloads the enriched records of an event as xlsx
// GET /api/trainingassignment/event/:eventId/records/export
func (h *ExportHandler) ExportEventRecords(c *gin.Context) {
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportEventRecords(c.Request.Context(), eventID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	response.File(c, xlsxContentType, filename, buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportEventNotFound):
		response.NotFound(c, 18001, "training event not found")
	case errors.Is(err, service.ErrExportNoRecords):
		response.BadRequest(c, 18002, "training event has no assigned records")
	default:
		response.InternalError(c)
	}
}
