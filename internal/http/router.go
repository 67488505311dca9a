package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "lunchbox/backend/docs"
	"lunchbox/backend/internal/handler"
)

// RouterOptions carries the transport knobs from config.
type RouterOptions struct {
	WebhookPath string
	CORSOrigins []string
	RateLimit   int
}

func NewRouter(webhookHandler *handler.WebhookHandler, opts RouterOptions) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(RequestLoggerMiddleware())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: opts.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	e.GET("/healthz", handler.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	webhook := e.Group("", RateLimitMiddleware(NewRateLimiter(opts.RateLimit)))
	paths := []string{opts.WebhookPath}
	if opts.WebhookPath != "/" {
		paths = append(paths, "/")
	}
	webhookHandler.RegisterRoutes(webhook, paths...)

	return e
}
