package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/MboaHealth/hospital_admin_app/internal/core/ports/services"
	"github.com/MboaHealth/hospital_admin_app/internal/dto"
	"github.com/MboaHealth/hospital_admin_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// departmentHandler handles HTTP requests related to departments.
type departmentHandler struct {
	departmentService portssvc.DepartmentSvcFacade
}

func newDepartmentHandler(ds portssvc.DepartmentSvcFacade) *departmentHandler {
	return &departmentHandler{departmentService: ds}
}

// registerDepartmentRoutes registers routes related to departments.
func registerDepartmentRoutes(rg *gin.RouterGroup, departmentService portssvc.DepartmentSvcFacade) {
	h := newDepartmentHandler(departmentService)

	departments := rg.Group("/departments")
	{
		departments.POST("", h.createDepartment)
		departments.GET("", h.listDepartments)
		departments.GET("/:id", h.getDepartment)
		departments.PUT("/:id", h.updateDepartment)
	}
}

// createDepartment godoc
// @Summary Create a department
// @Description Creates a department. Requires the ADMIN permission level.
// @Tags departments
// @Accept json
// @Produce json
// @Param department body dto.CreateDepartmentRequest true "Department details"
// @Success 201 {object} dto.DepartmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Accès refusé"
// @Failure 409 {object} ErrorResponse "Name already used"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /departments [post]
func (h *departmentHandler) createDepartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	department, err := h.departmentService.CreateDepartment(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create department")
		return
	}

	logger.Info("Department created", slog.String("department_id", department.DepartmentID))
	c.JSON(http.StatusCreated, dto.ToDepartmentResponse(department))
}

// listDepartments godoc
// @Summary List departments
// @Tags departments
// @Produce json
// @Success 200 {object} dto.ListDepartmentsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /departments [get]
func (h *departmentHandler) listDepartments(c *gin.Context) {
	departments, err := h.departmentService.ListDepartments(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list departments")
		return
	}

	c.JSON(http.StatusOK, dto.ToListDepartmentsResponse(departments))
}

// getDepartment godoc
// @Summary Get a department by ID
// @Tags departments
// @Produce json
// @Param id path string true "Department ID"
// @Success 200 {object} dto.DepartmentResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /departments/{id} [get]
func (h *departmentHandler) getDepartment(c *gin.Context) {
	department, err := h.departmentService.GetDepartmentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to get department")
		return
	}

	c.JSON(http.StatusOK, dto.ToDepartmentResponse(department))
}

// updateDepartment godoc
// @Summary Update a department
// @Description Updates a department. Requires the ADMIN permission level.
// @Tags departments
// @Accept json
// @Produce json
// @Param id path string true "Department ID"
// @Param department body dto.UpdateDepartmentRequest true "Fields to update"
// @Success 200 {object} dto.DepartmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Accès refusé"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /departments/{id} [put]
func (h *departmentHandler) updateDepartment(c *gin.Context) {
	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	department, err := h.departmentService.UpdateDepartment(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update department")
		return
	}

	c.JSON(http.StatusOK, dto.ToDepartmentResponse(department))
}
