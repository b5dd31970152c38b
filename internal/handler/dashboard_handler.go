package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"newspulse/backend/internal/service"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(service service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/dashboard", h.Get)
	g.POST("/dashboard/refresh", h.Refresh)
}

// Get returns the current dashboard.
// @Summary Get the dashboard
// @Description Get the cached articles, video news and aggregate statistics
// @Tags dashboard
// @Produce json
// @Success 200 {object} model.Dashboard
// @Router /dashboard [get]
func (h *DashboardHandler) Get(c echo.Context) error {
	dashboard, err := h.service.Snapshot(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dashboard)
}

// Refresh rebuilds the dashboard from the news providers.
// @Summary Refresh the dashboard
// @Description Force a fetch from the provider chain and rebuild statistics
// @Tags dashboard
// @Produce json
// @Success 200 {object} model.Dashboard
// @Router /dashboard/refresh [post]
func (h *DashboardHandler) Refresh(c echo.Context) error {
	dashboard, err := h.service.Refresh(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dashboard)
}
