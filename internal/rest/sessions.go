package rest

import (
	"context"
	"net/http"
	"time"

	"saasStackAnalyzer/business/session"
	"saasStackAnalyzer/domain"
	"saasStackAnalyzer/internal/middleware"
	"saasStackAnalyzer/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type SessionService interface {
	CreateSession(ctx context.Context, deviceInfo map[string]interface{}) (*session.Created, error)
	TouchSession(ctx context.Context, token string, deviceInfo map[string]interface{}) (domain.Session, error)
	GetSessionByID(ctx context.Context, id uuid.UUID) (domain.Session, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error
}

type SessionHandler struct {
	sessionService SessionService
	timeout        time.Duration
}

func NewSessionHandler(sessionService SessionService, timeout time.Duration) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		timeout:        timeout,
	}
}

type SessionRequest struct {
	DeviceInfo map[string]interface{} `json:"device_info"`
}

// CreateSession answers with the bare token pair so clients can store it as is
func (h *SessionHandler) CreateSession(c echo.Context) error {
	var req SessionRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	created, err := h.sessionService.CreateSession(ctx, req.DeviceInfo)
	if err != nil {
		logger.Error("Failed to create session", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

func (h *SessionHandler) TouchSession(c echo.Context) error {
	token := middleware.TokenFrom(c)
	if token == "" {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "missing session token"})
	}

	var req SessionRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	s, err := h.sessionService.TouchSession(ctx, token, req.DeviceInfo)
	if err != nil {
		logger.Error("Failed to update session", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(s))
}

func (h *SessionHandler) GetSessionByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		logger.Error("Invalid session id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid session id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	s, err := h.sessionService.GetSessionByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find session", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(s))
}

func (h *SessionHandler) DeleteSession(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		logger.Error("Invalid session id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid session id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.sessionService.DeleteSession(ctx, id); err != nil {
		logger.Error("Failed to delete session", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Session deleted successfully"))
}
