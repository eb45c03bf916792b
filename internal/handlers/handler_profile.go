package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/MboaHealth/hospital_admin_app/internal/core/ports/services"
	"github.com/MboaHealth/hospital_admin_app/internal/dto"
	"github.com/MboaHealth/hospital_admin_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// profileHandler handles HTTP requests related to staff profiles.
type profileHandler struct {
	profileService portssvc.ProfileSvcFacade
}

func newProfileHandler(ps portssvc.ProfileSvcFacade) *profileHandler {
	return &profileHandler{profileService: ps}
}

// registerProfileRoutes registers routes related to staff profiles.
func registerProfileRoutes(rg *gin.RouterGroup, profileService portssvc.ProfileSvcFacade) {
	h := newProfileHandler(profileService)

	profiles := rg.Group("/profiles")
	{
		profiles.POST("", h.createProfile)
		profiles.GET("", h.listProfiles)
		profiles.GET("/me", h.getOwnProfile)
		profiles.GET("/:id", h.getProfile)
		profiles.PUT("/:id", h.updateProfile)
		profiles.DELETE("/:id", h.deleteProfile)
		profiles.PUT("/:id/departments", h.setDepartments)
	}
}

// createProfile godoc
// @Summary Register a staff profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param profile body dto.CreateProfileRequest true "Profile details"
// @Success 201 {object} dto.ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles [post]
func (h *profileHandler) createProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.CreateProfile(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create profile")
		return
	}

	logger.Info("Profile created", slog.String("profile_id", profile.ProfileID))
	c.JSON(http.StatusCreated, dto.ToProfileResponse(profile))
}

// listProfiles godoc
// @Summary List staff profiles
// @Tags profiles
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListProfilesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles [get]
func (h *profileHandler) listProfiles(c *gin.Context) {
	var params dto.ListProfilesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	profiles, err := h.profileService.ListProfiles(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list profiles")
		return
	}

	c.JSON(http.StatusOK, dto.ToListProfilesResponse(profiles))
}

// getOwnProfile godoc
// @Summary Get the authenticated profile
// @Tags profiles
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/me [get]
func (h *profileHandler) getOwnProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfileByID(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to get own profile")
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// getProfile godoc
// @Summary Get a profile by ID
// @Tags profiles
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{id} [get]
func (h *profileHandler) getProfile(c *gin.Context) {
	profile, err := h.profileService.GetProfileByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to get profile")
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// updateProfile godoc
// @Summary Update a profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param profile body dto.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{id} [put]
func (h *profileHandler) updateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// deleteProfile godoc
// @Summary Soft-delete a profile
// @Tags profiles
// @Produce json
// @Param id path string true "Profile ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{id} [delete]
func (h *profileHandler) deleteProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.profileService.DeleteProfile(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondServiceError(c, err, "Failed to delete profile")
		return
	}

	c.Status(http.StatusNoContent)
}

// setDepartments godoc
// @Summary Replace a profile's department memberships
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param memberships body dto.SetDepartmentsRequest true "Department IDs"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{id}/departments [put]
func (h *profileHandler) setDepartments(c *gin.Context) {
	var req dto.SetDepartmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.profileService.SetDepartments(c.Request.Context(), c.Param("id"), req.DepartmentIDs, userID); err != nil {
		respondServiceError(c, err, "Failed to set department memberships")
		return
	}

	c.Status(http.StatusNoContent)
}
