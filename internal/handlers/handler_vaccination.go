package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/MboaHealth/hospital_admin_app/internal/core/ports/services"
	"github.com/MboaHealth/hospital_admin_app/internal/dto"
	"github.com/MboaHealth/hospital_admin_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// vaccinationHandler handles HTTP requests related to vaccination records.
type vaccinationHandler struct {
	vaccinationService portssvc.VaccinationSvcFacade
	exportService      portssvc.ExportSvcFacade
}

func newVaccinationHandler(vs portssvc.VaccinationSvcFacade, es portssvc.ExportSvcFacade) *vaccinationHandler {
	return &vaccinationHandler{
		vaccinationService: vs,
		exportService:      es,
	}
}

// registerVaccinationRoutes registers routes related to vaccination records.
func registerVaccinationRoutes(rg *gin.RouterGroup, vaccinationService portssvc.VaccinationSvcFacade, exportService portssvc.ExportSvcFacade) {
	h := newVaccinationHandler(vaccinationService, exportService)

	vaccinations := rg.Group("/vaccinations")
	{
		vaccinations.POST("", h.createVaccination)
		vaccinations.GET("", h.listVaccinations)
		vaccinations.GET("/export", h.exportVaccinations)
		vaccinations.GET("/:id", h.getVaccination)
		vaccinations.PUT("/:id", h.updateVaccination)
		vaccinations.DELETE("/:id", h.deleteVaccination)
	}
}

// createVaccination godoc
// @Summary Record a vaccination
// @Description Records an administered vaccine dose for a child or a pregnant woman.
// @Tags vaccinations
// @Accept json
// @Produce json
// @Param vaccination body dto.CreateVaccinationRequest true "Vaccination details"
// @Success 201 {object} dto.VaccinationResponse
// @Failure 400 {object} ErrorResponse "Missing birth date for a child record"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /vaccinations [post]
func (h *vaccinationHandler) createVaccination(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateVaccinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	record, err := h.vaccinationService.CreateVaccination(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create vaccination record")
		return
	}

	logger.Info("Vaccination recorded", slog.String("record_id", record.RecordID))
	c.JSON(http.StatusCreated, dto.ToVaccinationResponse(record))
}

// listVaccinations godoc
// @Summary List vaccination records
// @Tags vaccinations
// @Produce json
// @Param category query string false "CHILD or PREGNANT_WOMAN"
// @Param search query string false "Patient name pattern"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListVaccinationsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /vaccinations [get]
func (h *vaccinationHandler) listVaccinations(c *gin.Context) {
	var params dto.ListVaccinationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	records, err := h.vaccinationService.ListVaccinations(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list vaccination records")
		return
	}

	c.JSON(http.StatusOK, dto.ToListVaccinationsResponse(records))
}

// exportVaccinations godoc
// @Summary Export vaccination records
// @Tags vaccinations
// @Produce octet-stream
// @Param format query string false "xlsx or pdf" default(xlsx)
// @Param category query string false "CHILD or PREGNANT_WOMAN"
// @Param search query string false "Patient name pattern"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /vaccinations/export [get]
func (h *vaccinationHandler) exportVaccinations(c *gin.Context) {
	format, ok := parseExportFormat(c)
	if !ok {
		return
	}

	var params dto.ListVaccinationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}
	params.Limit = exportRowLimit
	params.Offset = 0

	records, err := h.vaccinationService.ListVaccinations(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list vaccination records for export")
		return
	}

	file, err := h.exportService.ExportVaccinations(c.Request.Context(), records, format)
	if err != nil {
		respondServiceError(c, err, "Failed to export vaccination records")
		return
	}

	writeExportFile(c, file)
}

// getVaccination godoc
// @Summary Get a vaccination record by ID
// @Tags vaccinations
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} dto.VaccinationResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /vaccinations/{id} [get]
func (h *vaccinationHandler) getVaccination(c *gin.Context) {
	record, err := h.vaccinationService.GetVaccinationByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to get vaccination record")
		return
	}

	c.JSON(http.StatusOK, dto.ToVaccinationResponse(record))
}

// updateVaccination godoc
// @Summary Update a vaccination record
// @Tags vaccinations
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param vaccination body dto.UpdateVaccinationRequest true "Fields to update"
// @Success 200 {object} dto.VaccinationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /vaccinations/{id} [put]
func (h *vaccinationHandler) updateVaccination(c *gin.Context) {
	var req dto.UpdateVaccinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	record, err := h.vaccinationService.UpdateVaccination(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update vaccination record")
		return
	}

	c.JSON(http.StatusOK, dto.ToVaccinationResponse(record))
}

// deleteVaccination godoc
// @Summary Delete a vaccination record
// @Tags vaccinations
// @Produce json
// @Param id path string true "Record ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /vaccinations/{id} [delete]
func (h *vaccinationHandler) deleteVaccination(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.vaccinationService.DeleteVaccination(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondServiceError(c, err, "Failed to delete vaccination record")
		return
	}

	c.Status(http.StatusNoContent)
}
