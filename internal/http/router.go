package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "newspulse/backend/docs"
	"newspulse/backend/internal/handler"
)

func NewRouter(
	dashboardHandler *handler.DashboardHandler,
	translateHandler *handler.TranslateHandler,
	adminHandler *handler.AdminHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	dashboardHandler.RegisterRoutes(api)
	translateHandler.RegisterRoutes(api)
	adminHandler.RegisterRoutes(api)

	return e
}
