package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lunchbox/backend/internal/logger"
	"lunchbox/backend/internal/model"
	"lunchbox/backend/internal/service"
)

// WebhookHandler serves the single webhook URL: POST writes, GET reads.
type WebhookHandler struct {
	orders   service.OrderService
	settings service.SettingsService
}

func NewWebhookHandler(orders service.OrderService, settings service.SettingsService) *WebhookHandler {
	return &WebhookHandler{orders: orders, settings: settings}
}

// RegisterRoutes mounts the webhook on every given path.
func (h *WebhookHandler) RegisterRoutes(g *echo.Group, paths ...string) {
	for _, p := range paths {
		g.POST(p, h.Write)
		g.GET(p, h.Read)
	}
}

// Write saves an order or replaces the settings.
// @Summary Save an order or the settings
// @Description Without "action" the body is an order {date,user,menu,time,isGuest}. With action "saveSettings" the "settings" object replaces the stored settings. Any Content-Type is accepted.
// @Tags webhook
// @Accept json
// @Produce json
// @Param request body writeEnvelope true "Order or settings request"
// @Success 200 {object} statusResponse
// @Failure 400 {object} statusResponse
// @Failure 500 {object} statusResponse
// @Router /exec [post]
func (h *WebhookHandler) Write(c echo.Context) error {
	req, err := parseWriteRequest(c.Request().Body)
	if err != nil {
		return writeError(c, err, "invalid request")
	}
	ctx := c.Request().Context()

	switch req.Kind {
	case KindSaveSettings:
		if err := h.settings.Save(ctx, req.Settings); err != nil {
			return writeError(c, err, "failed to save settings")
		}
		return c.JSON(http.StatusOK, statusResponse{Status: statusSuccess, Message: "settings saved"})
	default:
		if err := h.orders.Save(ctx, req.Order); err != nil {
			return writeError(c, err, "failed to save order")
		}
		return c.JSON(http.StatusOK, statusResponse{Status: statusSuccess, Message: "order saved"})
	}
}

// Read returns today's orders or the settings.
// @Summary Read today's orders or the settings
// @Description action=getSettings returns the settings; any other value returns today's orders in the reference timezone.
// @Tags webhook
// @Produce json
// @Param action query string false "getSettings"
// @Success 200 {object} ordersResponse
// @Failure 500 {object} ordersResponse
// @Router /exec [get]
func (h *WebhookHandler) Read(c echo.Context) error {
	ctx := c.Request().Context()

	if parseReadKind(c.QueryParam("action")) == KindGetSettings {
		settings, err := h.settings.Get(ctx)
		if err != nil {
			code, message := failure(c, err, "failed to get settings")
			return c.JSON(code, settingsResponse{Status: statusError, Message: message})
		}
		return c.JSON(http.StatusOK, settingsResponse{Status: statusSuccess, Settings: settings})
	}

	orders, err := h.orders.Today(ctx)
	if err != nil {
		code, message := failure(c, err, "failed to get orders")
		return c.JSON(code, ordersResponse{Status: statusError, Message: message, Orders: []model.Order{}})
	}
	if orders == nil {
		orders = []model.Order{}
	}
	logger.Debug("today's orders served", "module", "handler", "action", "fetch", "resource", "order", "result", "ok", "count", len(orders))
	return c.JSON(http.StatusOK, ordersResponse{Status: statusSuccess, Orders: orders})
}

// Health reports liveness.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} statusResponse
// @Router /healthz [get]
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, statusResponse{Status: statusSuccess})
}
