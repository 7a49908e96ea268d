package handler

import (
	"net/http"

	"github.com/WebOleg/tether-admin/internal/domain"
	"github.com/WebOleg/tether-admin/pkg/logger"
	"github.com/labstack/echo/v4"
)

// NotificationHandler drains pending lifecycle notifications, the polling
// endpoint behind the dashboard's toast stream.
type NotificationHandler struct {
	repo   domain.Repository
	logger *logger.Logger
}

func NewNotificationHandler(repo domain.Repository, log *logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		repo:   repo,
		logger: log,
	}
}

func (h *NotificationHandler) Drain(c echo.Context) error {
	ctx := c.Request().Context()

	notifications, err := h.repo.DrainNotifications(ctx)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": notifications,
	})
}
