package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"newspulse/backend/internal/service"
)

type errorResponse struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retryAfter,omitempty"`
}

func writeServiceError(c echo.Context, err error) error {
	var rateErr *service.RateLimitError
	switch {
	case errors.As(err, &rateErr):
		c.Response().Header().Set("Retry-After", strconv.Itoa(rateErr.RetryAfter))
		return c.JSON(http.StatusTooManyRequests, errorResponse{Error: "rate limited", RetryAfter: rateErr.RetryAfter})
	case errors.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
	case errors.Is(err, service.ErrTranslation):
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "translation failed"})
	case errors.Is(err, service.ErrProviderFetch):
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "provider fetch failed"})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// Error returns a JSON error response with the given status and message
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}
