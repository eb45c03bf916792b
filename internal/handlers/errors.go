package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/MboaHealth/hospital_admin_app/internal/apperrors"
	"github.com/MboaHealth/hospital_admin_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the generic error payload returned by all handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondServiceError maps service errors to HTTP statuses with the
// user-facing French messages. fallback describes the operation for the 500
// case log line.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: invalidDataMessage(err)})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Non autorisé"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Accès refusé"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Introuvable"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Existe déjà"})
	case errors.Is(err, apperrors.ErrInsufficientStock):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Stock insuffisant"})
	default:
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erreur interne du serveur"})
	}
}

// invalidDataMessage appends the rule detail carried by a wrapped validation
// error to the display message.
func invalidDataMessage(err error) string {
	detail := strings.TrimPrefix(err.Error(), apperrors.ErrValidation.Error())
	detail = strings.TrimPrefix(detail, ": ")
	if detail == "" {
		return "Données invalides"
	}
	return "Données invalides: " + detail
}

// respondBindingError answers a failed request binding with the first failing
// rule spelled out.
func respondBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Données invalides: " + fieldRuleMessage(verrs[0])})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Données invalides"})
}

// fieldRuleMessage renders a single binding rule failure in the display
// language.
func fieldRuleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("le champ %s est requis", fe.Field())
	case "oneof":
		return fmt.Sprintf("valeur non autorisée pour le champ %s", fe.Field())
	case "email":
		return fmt.Sprintf("le champ %s doit être une adresse email valide", fe.Field())
	case "gt", "gte", "lt", "lte", "min", "max":
		return fmt.Sprintf("le champ %s est hors limites", fe.Field())
	default:
		return fmt.Sprintf("le champ %s est invalide", fe.Field())
	}
}

// requireUserID extracts the authenticated profile ID or aborts with 401.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Non autorisé"})
		return "", false
	}
	return userID, true
}
