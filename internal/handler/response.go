package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"lunchbox/backend/internal/logger"
	"lunchbox/backend/internal/model"
	"lunchbox/backend/internal/service"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// statusResponse is the envelope every webhook call answers with.
type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type ordersResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message,omitempty"`
	Orders  []model.Order `json:"orders"`
}

type settingsResponse struct {
	Status   string          `json:"status"`
	Message  string          `json:"message,omitempty"`
	Settings *model.Settings `json:"settings,omitempty"`
}

// failure maps a service error onto a status code and caller-facing message.
// Invalid requests carry their own reason; anything else is logged and
// reported with the generic description.
func failure(c echo.Context, err error, description string) (int, string) {
	if errors.Is(err, service.ErrInvalid) {
		return http.StatusBadRequest, err.Error()
	}
	logger.Error("webhook failed",
		"module", "handler",
		"action", "request",
		"resource", "webhook",
		"result", "failed",
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"error", err,
	)
	return http.StatusInternalServerError, description
}

func writeError(c echo.Context, err error, description string) error {
	code, message := failure(c, err, description)
	return c.JSON(code, statusResponse{Status: statusError, Message: message})
}
