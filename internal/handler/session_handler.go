package handler

import (
	"net/http"
	"strconv"

	"github.com/WebOleg/tether-admin/internal/domain"
	"github.com/WebOleg/tether-admin/internal/lifecycle"
	"github.com/WebOleg/tether-admin/pkg/logger"
	"github.com/labstack/echo/v4"
)

// SessionHandler drives upload-detail sessions: the ordered init sequence,
// debtor listing with debounced search, VOP verification, billing sync and
// chargeback filtering.
type SessionHandler struct {
	manager *lifecycle.Manager
	logger  *logger.Logger
}

func NewSessionHandler(manager *lifecycle.Manager, log *logger.Logger) *SessionHandler {
	return &SessionHandler{
		manager: manager,
		logger:  log,
	}
}

type openSessionRequest struct {
	UploadID string `json:"upload_id"`
}

func (h *SessionHandler) Open(c echo.Context) error {
	ctx := c.Request().Context()

	var req openSessionRequest
	if err := c.Bind(&req); err != nil || req.UploadID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "upload_id is required",
		})
	}

	s, err := h.manager.OpenSession(ctx, req.UploadID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, s.Snapshot())
}

func (h *SessionHandler) Close(c echo.Context) error {
	if err := h.manager.CloseSession(c.Param("id")); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *SessionHandler) Snapshot(c echo.Context) error {
	s, err := h.manager.Session(c.Param("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, s.Snapshot())
}

// Debtors updates the session's listing query and returns the current
// page. A changed search term is applied through the session's debouncer;
// page and filter changes re-fetch immediately.
func (h *SessionHandler) Debtors(c echo.Context) error {
	s, err := h.manager.Session(c.Param("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	if c.QueryParams().Has("search") {
		s.SetSearch(c.QueryParam("search"))
	}

	if pageParam := c.QueryParam("page"); pageParam != "" {
		page, err := strconv.Atoi(pageParam)
		if err != nil || page < 1 {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "page must be a positive integer",
			})
		}
		s.SetPage(page)
	}

	if statusParam := c.QueryParam("validation_status"); statusParam != "" {
		status := domain.ValidationStatus(statusParam)
		switch status {
		case domain.ValidationStatusPending, domain.ValidationStatusValid, domain.ValidationStatusInvalid:
			s.SetStatusFilter(&status)
		default:
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "validation_status must be pending, valid or invalid",
			})
		}
	}

	return c.JSON(http.StatusOK, s.Debtors())
}

type updateDebtorRequest struct {
	RawData map[string]string `json:"raw_data"`
}

func (h *SessionHandler) UpdateDebtor(c echo.Context) error {
	ctx := c.Request().Context()

	s, err := h.manager.Session(c.Param("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	var req updateDebtorRequest
	if err := c.Bind(&req); err != nil || len(req.RawData) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "raw_data is required",
		})
	}

	debtor, err := s.UpdateDebtor(ctx, c.Param("debtorId"), req.RawData)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, debtor)
}

func (h *SessionHandler) DeleteDebtor(c echo.Context) error {
	ctx := c.Request().Context()

	s, err := h.manager.Session(c.Param("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	if err := s.DeleteDebtor(ctx, c.Param("debtorId")); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *SessionHandler) VerifyVop(c echo.Context) error {
	ctx := c.Request().Context()

	s, err := h.manager.Session(c.Param("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	if err := s.TriggerVop(ctx); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusAccepted, map[string]string{
		"status": "verification_started",
	})
}

type confirmRequest struct {
	Confirm bool `json:"confirm"`
}

func (h *SessionHandler) Sync(c echo.Context) error {
	ctx := c.Request().Context()

	s, err := h.manager.Session(c.Param("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	var req confirmRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	result, err := s.SyncToGateway(ctx, req.Confirm)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *SessionHandler) FilterChargebacks(c echo.Context) error {
	ctx := c.Request().Context()

	s, err := h.manager.Session(c.Param("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	var req confirmRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	removed, err := s.FilterChargebacks(ctx, req.Confirm)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, map[string]int{
		"removed": removed,
	})
}
