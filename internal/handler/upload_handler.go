package handler

import (
	"net/http"

	"github.com/WebOleg/tether-admin/internal/domain"
	"github.com/WebOleg/tether-admin/internal/lifecycle"
	"github.com/WebOleg/tether-admin/pkg/logger"
	"github.com/labstack/echo/v4"
)

type UploadHandler struct {
	manager *lifecycle.Manager
	logger  *logger.Logger
}

func NewUploadHandler(manager *lifecycle.Manager, log *logger.Logger) *UploadHandler {
	return &UploadHandler{
		manager: manager,
		logger:  log,
	}
}

// Submit accepts a multipart file and forwards it after local preflight.
// Oversized or wrong-type files are rejected here, before any backend call.
func (h *UploadHandler) Submit(c echo.Context) error {
	ctx := c.Request().Context()

	h.logger.Info(ctx, "Handling upload submission")

	file, err := c.FormFile("file")
	if err != nil {
		h.logger.Error(ctx, "Failed to get file from request",
			"error", err,
		)
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "file is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		h.logger.Error(ctx, "Failed to open file",
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to open file",
		})
	}
	defer src.Close()

	result, err := h.manager.SubmitFile(ctx, file.Filename, file.Size, src)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	status := http.StatusOK
	if result.Result.Queued {
		status = http.StatusAccepted
	}

	return c.JSON(status, result)
}

// Status serves the read-through upload snapshot.
func (h *UploadHandler) Status(c echo.Context) error {
	ctx := c.Request().Context()

	uploadID := c.Param("id")
	if uploadID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "upload id is required",
		})
	}

	upload, err := h.manager.GetUpload(ctx, uploadID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"upload": upload,
		"style":  domain.StyleFor(string(upload.Status)),
	})
}
