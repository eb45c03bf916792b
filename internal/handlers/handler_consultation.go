package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/MboaHealth/hospital_admin_app/internal/core/ports/services"
	"github.com/MboaHealth/hospital_admin_app/internal/dto"
	"github.com/MboaHealth/hospital_admin_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// consultationHandler handles HTTP requests related to maternity consultations.
type consultationHandler struct {
	consultationService portssvc.ConsultationSvcFacade
	exportService       portssvc.ExportSvcFacade
}

func newConsultationHandler(cs portssvc.ConsultationSvcFacade, es portssvc.ExportSvcFacade) *consultationHandler {
	return &consultationHandler{
		consultationService: cs,
		exportService:       es,
	}
}

// registerConsultationRoutes registers routes related to maternity consultations.
func registerConsultationRoutes(rg *gin.RouterGroup, consultationService portssvc.ConsultationSvcFacade, exportService portssvc.ExportSvcFacade) {
	h := newConsultationHandler(consultationService, exportService)

	consultations := rg.Group("/consultations")
	{
		consultations.POST("", h.createConsultation)
		consultations.GET("", h.listConsultations)
		consultations.GET("/export", h.exportConsultations)
		consultations.GET("/:id", h.getConsultation)
		consultations.PUT("/:id", h.updateConsultation)
		consultations.DELETE("/:id", h.deleteConsultation)
	}
}

// createConsultation godoc
// @Summary Record a maternity consultation
// @Tags consultations
// @Accept json
// @Produce json
// @Param consultation body dto.CreateConsultationRequest true "Consultation details"
// @Success 201 {object} dto.ConsultationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /consultations [post]
func (h *consultationHandler) createConsultation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	consultation, err := h.consultationService.CreateConsultation(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create consultation")
		return
	}

	logger.Info("Consultation recorded", slog.String("consultation_id", consultation.ConsultationID))
	c.JSON(http.StatusCreated, dto.ToConsultationResponse(consultation))
}

// listConsultations godoc
// @Summary List maternity consultations
// @Tags consultations
// @Produce json
// @Param search query string false "Patient name pattern"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListConsultationsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /consultations [get]
func (h *consultationHandler) listConsultations(c *gin.Context) {
	var params dto.ListConsultationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	consultations, err := h.consultationService.ListConsultations(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list consultations")
		return
	}

	c.JSON(http.StatusOK, dto.ToListConsultationsResponse(consultations))
}

// exportConsultations godoc
// @Summary Export maternity consultations
// @Tags consultations
// @Produce octet-stream
// @Param format query string false "xlsx or pdf" default(xlsx)
// @Param search query string false "Patient name pattern"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /consultations/export [get]
func (h *consultationHandler) exportConsultations(c *gin.Context) {
	format, ok := parseExportFormat(c)
	if !ok {
		return
	}

	var params dto.ListConsultationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}
	params.Limit = exportRowLimit
	params.Offset = 0

	consultations, err := h.consultationService.ListConsultations(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list consultations for export")
		return
	}

	file, err := h.exportService.ExportConsultations(c.Request.Context(), consultations, format)
	if err != nil {
		respondServiceError(c, err, "Failed to export consultations")
		return
	}

	writeExportFile(c, file)
}

// getConsultation godoc
// @Summary Get a consultation by ID
// @Tags consultations
// @Produce json
// @Param id path string true "Consultation ID"
// @Success 200 {object} dto.ConsultationResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /consultations/{id} [get]
func (h *consultationHandler) getConsultation(c *gin.Context) {
	consultation, err := h.consultationService.GetConsultationByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to get consultation")
		return
	}

	c.JSON(http.StatusOK, dto.ToConsultationResponse(consultation))
}

// updateConsultation godoc
// @Summary Update a consultation
// @Tags consultations
// @Accept json
// @Produce json
// @Param id path string true "Consultation ID"
// @Param consultation body dto.UpdateConsultationRequest true "Fields to update"
// @Success 200 {object} dto.ConsultationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /consultations/{id} [put]
func (h *consultationHandler) updateConsultation(c *gin.Context) {
	var req dto.UpdateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	consultation, err := h.consultationService.UpdateConsultation(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update consultation")
		return
	}

	c.JSON(http.StatusOK, dto.ToConsultationResponse(consultation))
}

// deleteConsultation godoc
// @Summary Delete a consultation
// @Tags consultations
// @Produce json
// @Param id path string true "Consultation ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /consultations/{id} [delete]
func (h *consultationHandler) deleteConsultation(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.consultationService.DeleteConsultation(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondServiceError(c, err, "Failed to delete consultation")
		return
	}

	c.Status(http.StatusNoContent)
}
