package handler

import (
	"net/http"

	"github.com/WebOleg/tether-admin/internal/session"
	"github.com/WebOleg/tether-admin/pkg/logger"
	"github.com/labstack/echo/v4"
)

// AuthHandler manages the backend bearer token. Token acquisition itself
// is owned by the backend; the gateway just stores what it is given.
type AuthHandler struct {
	tokens *session.Store
	logger *logger.Logger
}

func NewAuthHandler(tokens *session.Store, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		tokens: tokens,
		logger: log,
	}
}

type loginRequest struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req loginRequest
	if err := c.Bind(&req); err != nil || req.Token == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "token is required",
		})
	}

	h.tokens.Set(req.Token)
	h.logger.Info(ctx, "Backend token stored")

	return c.JSON(http.StatusOK, map[string]string{
		"status": "authenticated",
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	h.tokens.Clear()
	h.logger.Info(c.Request().Context(), "Backend token cleared")

	return c.JSON(http.StatusOK, map[string]string{
		"status": "logged_out",
	})
}
