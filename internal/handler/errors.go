package handler

import (
	"errors"
	"net/http"

	"github.com/WebOleg/tether-admin/internal/backend"
	"github.com/WebOleg/tether-admin/internal/domain"
	"github.com/WebOleg/tether-admin/internal/lifecycle"
	"github.com/WebOleg/tether-admin/pkg/logger"
	"github.com/labstack/echo/v4"
)

// respondError converts orchestration errors into the dashboard's error
// contract. Every failure of a user-initiated action surfaces; a VOP gate
// refusal carries its remediation so the surface can offer the fix instead
// of a dead end, and a 401 marks the session as requiring a fresh login.
func respondError(c echo.Context, log *logger.Logger, err error) error {
	ctx := c.Request().Context()

	var gateErr *lifecycle.GateClosedError
	if errors.As(err, &gateErr) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"error":       "verification of payee pending",
			"vop_pending": gateErr.Pending,
			"remediation": "trigger_verification",
		})
	}

	if backend.IsUnauthorized(err) {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"error":          "unauthorized",
			"login_required": true,
		})
	}

	switch {
	case errors.Is(err, domain.ErrFileTooLarge),
		errors.Is(err, domain.ErrUnsupportedFileType),
		errors.Is(err, domain.ErrEmptyFile),
		errors.Is(err, domain.ErrConfirmationNeeded):
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})

	case errors.Is(err, domain.ErrUploadNotFound),
		errors.Is(err, domain.ErrSessionNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": err.Error(),
		})

	case errors.Is(err, domain.ErrNotAuthenticated):
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"error":          err.Error(),
			"login_required": true,
		})

	case errors.Is(err, domain.ErrValidationFailed):
		log.Error(ctx, "Validation run failed", "error", err)
		return c.JSON(http.StatusBadGateway, map[string]string{
			"error": err.Error(),
		})
	}

	if apiErr, ok := backend.AsAPIError(err); ok {
		log.Error(ctx, "Backend error", "status_code", apiErr.StatusCode, "error", err)
		return c.JSON(http.StatusBadGateway, map[string]string{
			"error": apiErr.Message,
		})
	}

	log.Error(ctx, "Unhandled error", "error", err)
	return c.JSON(http.StatusInternalServerError, map[string]string{
		"error": "internal error",
	})
}
