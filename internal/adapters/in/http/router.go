package http

import (
	"log/slog"
	"net/http"

	"grubdash/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance serving the resource routes plus /health,
// /metrics and the Swagger UI under /swagger/.
func NewRouter(server *Server, metrics *Metrics, logger *slog.Logger) (*echo.Echo, error) {
	if err := servers.RegisterSwaggerDocs(); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = HTTPErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(metrics.Middleware())
	e.Use(RequestLogger(logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)
	return e, nil
}
