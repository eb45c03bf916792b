package handlers

import (
	"fmt"
	"net/http"

	portssvc "github.com/MboaHealth/hospital_admin_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// exportRowLimit caps how many records a single export may contain.
const exportRowLimit = 10000

// parseExportFormat reads the format query parameter, defaulting to xlsx.
// It aborts the request with 400 on an unknown format.
func parseExportFormat(c *gin.Context) (portssvc.ExportFormat, bool) {
	switch c.DefaultQuery("format", string(portssvc.ExportXLSX)) {
	case string(portssvc.ExportXLSX):
		return portssvc.ExportXLSX, true
	case string(portssvc.ExportPDF):
		return portssvc.ExportPDF, true
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Format d'export inconnu"})
		return "", false
	}
}

// writeExportFile streams a generated export as a download.
func writeExportFile(c *gin.Context, file *portssvc.ExportFile) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
