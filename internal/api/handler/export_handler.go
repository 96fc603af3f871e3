package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/service"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler downloads contest results as an .xlsx file.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates the ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ContestResults exports the result sheet for a contest.
// GET /api/v1/contests/:id/export
func (h *ExportHandler) ContestResults(c *gin.Context) {
	contestID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportContestResults(c.Request.Context(), contestID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContestNotFound):
			response.NotFound(c, 14001, "contest not found")
		case errors.Is(err, service.ErrExportNoResults):
			response.BadRequest(c, 14004, "contest has no registered participants")
		default:
			response.InternalError(c)
		}
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
