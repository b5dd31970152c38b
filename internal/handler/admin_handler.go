package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"newspulse/backend/internal/service"
)

type AdminHandler struct {
	service service.AdminService
}

type totalArticlesResponse struct {
	TotalArticles int `json:"totalArticles"`
}

func NewAdminHandler(service service.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) RegisterRoutes(g *echo.Group) {
	admin := g.Group("/admin")
	admin.GET("/alerts", h.ListAlerts)
	admin.POST("/alerts/:id/resolve", h.ResolveAlert)
	admin.POST("/crawl", h.TriggerCrawl)
	admin.GET("/crawl/history", h.CrawlHistory)
	admin.GET("/export", h.Export)
	admin.GET("/stats/total", h.TotalArticles)
	admin.GET("/stats/accuracy", h.AccuracyMetrics)
}

// ListAlerts returns monitoring alerts.
// @Summary List alerts
// @Description Get alerts, optionally filtered by status
// @Tags admin
// @Produce json
// @Param status query string false "Filter by status (sent, pending, resolved)"
// @Success 200 {array} model.Alert
// @Failure 400 {object} errorResponse
// @Router /admin/alerts [get]
func (h *AdminHandler) ListAlerts(c echo.Context) error {
	alerts, err := h.service.ListAlerts(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, alerts)
}

// ResolveAlert marks an alert as resolved.
// @Summary Resolve an alert
// @Tags admin
// @Produce json
// @Param id path int true "Alert ID"
// @Success 204 "No Content"
// @Failure 404 {object} errorResponse
// @Router /admin/alerts/{id}/resolve [post]
func (h *AdminHandler) ResolveAlert(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	if err := h.service.ResolveAlert(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type triggerCrawlRequest struct {
	Target string `json:"target"`
}

// TriggerCrawl starts an immediate ingestion run.
// @Summary Trigger a crawl
// @Description Force a provider fetch and record it as a crawl job
// @Tags admin
// @Accept json
// @Produce json
// @Param request body triggerCrawlRequest false "Crawl target, defaults to all sources"
// @Success 202 {object} model.CrawlJob
// @Router /admin/crawl [post]
func (h *AdminHandler) TriggerCrawl(c echo.Context) error {
	// The body is optional; an empty or absent target crawls everything.
	var req triggerCrawlRequest
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
		}
	}

	job, err := h.service.TriggerCrawl(c.Request().Context(), req.Target)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusAccepted, job)
}

// CrawlHistory lists past crawl jobs, newest first.
// @Summary Crawl history
// @Tags admin
// @Produce json
// @Param limit query int false "Maximum jobs to return"
// @Success 200 {array} model.CrawlJob
// @Router /admin/crawl/history [get]
func (h *AdminHandler) CrawlHistory(c echo.Context) error {
	limit := 50
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
		}
		limit = parsed
	}

	jobs, err := h.service.CrawlHistory(c.Request().Context(), limit)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, jobs)
}

// Export downloads the current article set.
// @Summary Export articles
// @Description Download the current dashboard articles as CSV or JSON
// @Tags admin
// @Produce json
// @Produce text/csv
// @Param format query string false "Export format (csv or json, default json)"
// @Success 200
// @Failure 400 {object} errorResponse
// @Router /admin/export [get]
func (h *AdminHandler) Export(c echo.Context) error {
	format := c.QueryParam("format")
	if format == "" {
		format = service.ExportFormatJSON
	}

	data, contentType, err := h.service.ExportData(c.Request().Context(), format)
	if err != nil {
		return writeServiceError(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="articles.`+format+`"`)
	return c.Blob(http.StatusOK, contentType, data)
}

// TotalArticles reports the running total of ingested articles.
// @Summary Total articles
// @Tags admin
// @Produce json
// @Success 200 {object} totalArticlesResponse
// @Router /admin/stats/total [get]
func (h *AdminHandler) TotalArticles(c echo.Context) error {
	total, err := h.service.TotalArticles(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, totalArticlesResponse{TotalArticles: total})
}

// AccuracyMetrics reports classifier accuracy figures.
// @Summary Classifier accuracy
// @Tags admin
// @Produce json
// @Success 200 {object} service.AccuracyMetrics
// @Router /admin/stats/accuracy [get]
func (h *AdminHandler) AccuracyMetrics(c echo.Context) error {
	metrics, err := h.service.AccuracyMetrics(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, metrics)
}
