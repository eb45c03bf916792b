package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/MboaHealth/hospital_admin_app/internal/apperrors"
	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	portssvc "github.com/MboaHealth/hospital_admin_app/internal/core/ports/services"
	"github.com/MboaHealth/hospital_admin_app/internal/dto"
	"github.com/MboaHealth/hospital_admin_app/internal/middleware"
	"github.com/MboaHealth/hospital_admin_app/pkg/config"
	"github.com/gin-gonic/gin"
)

// refreshProfileCookieName carries the profile ID alongside the opaque
// refresh token so the refresh endpoint can look up the stored hash.
const refreshProfileCookieName = "rpid"

// authHandler handles login, token refresh and logout.
type authHandler struct {
	profileService portssvc.ProfileSvcFacade
	tokenService   portssvc.TokenSvcFacade
	cfg            *config.Config
}

func newAuthHandler(services *portssvc.ServiceContainer, cfg *config.Config) *authHandler {
	return &authHandler{
		profileService: services.Profile,
		tokenService:   services.Token,
		cfg:            cfg,
	}
}

// registerAuthRoutes sets up the public authentication routes. Login
// endpoints are rate limited per client IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services, cfg)
	limit := middleware.NewAuthRateLimiter()

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", limit, h.login)
		auth.POST("/google", limit, h.googleLogin)
		auth.POST("/google/exchange-code", limit, h.exchangeGoogleCode)
		auth.POST("/refresh", h.refresh)
		auth.POST("/logout", h.logout)
	}
}

// issueSession generates the access and refresh tokens for a profile, sets
// the refresh cookies and builds the login response.
func (h *authHandler) issueSession(c *gin.Context, profile *domain.Profile) (*dto.LoginResponse, error) {
	ctx := c.Request.Context()

	accessToken, expiresAt, err := h.tokenService.GenerateAccessToken(ctx, profile)
	if err != nil {
		return nil, err
	}
	refreshToken, _, err := h.tokenService.GenerateRefreshToken(ctx, profile)
	if err != nil {
		return nil, err
	}

	maxAge := int(h.cfg.RefreshTokenExpiryDuration.Seconds())
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cfg.RefreshTokenCookieName, refreshToken, maxAge, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
	c.SetCookie(refreshProfileCookieName, profile.ProfileID, maxAge, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)

	pc, err := h.profileService.GetPermissionContext(ctx, profile.ProfileID)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		Profile:     dto.ToProfileResponse(profile),
		Permission:  string(pc.Level),
	}, nil
}

// login godoc
// @Summary Email and password login
// @Description Authenticates a staff member and returns a JWT access token. The refresh token is set as an HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse "Rate limited"
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	profile, err := h.profileService.AuthenticateByPassword(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Email ou mot de passe incorrect"})
			return
		}
		respondServiceError(c, err, "Failed to authenticate")
		return
	}

	resp, err := h.issueSession(c, profile)
	if err != nil {
		logger.Error("Failed to issue session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erreur interne du serveur"})
		return
	}

	logger.Info("Login succeeded", slog.String("profile_id", profile.ProfileID))
	c.JSON(http.StatusOK, resp)
}

// googleLogin godoc
// @Summary Google sign-in
// @Description Verifies a Google ID token obtained by the client and opens a session, registering the profile on first login.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.GoogleLoginRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google [post]
func (h *authHandler) googleLogin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	identity, err := h.tokenService.ValidateGoogleIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Non autorisé"})
			return
		}
		respondServiceError(c, err, "Failed to validate Google ID token")
		return
	}

	profile, err := h.profileService.FindOrCreateByGoogleIdentity(c.Request.Context(), identity.Email, identity.FullName)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve Google identity")
		return
	}

	resp, err := h.issueSession(c, profile)
	if err != nil {
		logger.Error("Failed to issue session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erreur interne du serveur"})
		return
	}

	logger.Info("Google login succeeded", slog.String("profile_id", profile.ProfileID))
	c.JSON(http.StatusOK, resp)
}

// exchangeGoogleCode godoc
// @Summary Google sign-in with an authorization code
// @Description Exchanges an OAuth authorization code for Google tokens, verifies the ID token and opens a session.
// @Tags auth
// @Accept json
// @Produce json
// @Param code body dto.GoogleExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *authHandler) exchangeGoogleCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.GoogleExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	idToken, err := h.tokenService.ExchangeGoogleCode(c.Request.Context(), req.Code)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Non autorisé"})
			return
		}
		respondServiceError(c, err, "Failed to exchange Google authorization code")
		return
	}

	identity, err := h.tokenService.ValidateGoogleIDToken(c.Request.Context(), idToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Non autorisé"})
			return
		}
		respondServiceError(c, err, "Failed to validate Google ID token")
		return
	}

	profile, err := h.profileService.FindOrCreateByGoogleIdentity(c.Request.Context(), identity.Email, identity.FullName)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve Google identity")
		return
	}

	resp, err := h.issueSession(c, profile)
	if err != nil {
		logger.Error("Failed to issue session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erreur interne du serveur"})
		return
	}

	logger.Info("Google code exchange login succeeded", slog.String("profile_id", profile.ProfileID))
	c.JSON(http.StatusOK, resp)
}

// refresh godoc
// @Summary Refresh the session
// @Description Rotates the refresh token from the HTTP-only cookie and returns a new access token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} ErrorResponse "Session expirée"
// @Failure 500 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	refreshToken, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil || refreshToken == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Session expirée"})
		return
	}
	profileID, err := c.Cookie(refreshProfileCookieName)
	if err != nil || profileID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Session expirée"})
		return
	}

	profile, err := h.tokenService.ValidateAndParseRefreshToken(c.Request.Context(), profileID, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Session expirée"})
			return
		}
		respondServiceError(c, err, "Failed to validate refresh token")
		return
	}

	resp, err := h.issueSession(c, profile)
	if err != nil {
		logger.Error("Failed to issue refreshed session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erreur interne du serveur"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// logout godoc
// @Summary Logout
// @Description Invalidates the stored refresh token and clears the session cookies.
// @Tags auth
// @Produce json
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	if profileID, err := c.Cookie(refreshProfileCookieName); err == nil && profileID != "" {
		// Best effort: a failed invalidation still clears the cookies.
		_ = h.profileService.StoreRefreshTokenHash(c.Request.Context(), profileID, "", time.Now())
	}

	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
	c.SetCookie(refreshProfileCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
	c.Status(http.StatusNoContent)
}
