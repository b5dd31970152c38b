package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"newspulse/backend/internal/service"
)

type TranslateHandler struct {
	service service.TranslationService
}

type translateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"sourceLang"`
	TargetLang string `json:"targetLang"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
	SourceLang     string `json:"sourceLang"`
	TargetLang     string `json:"targetLang"`
}

func NewTranslateHandler(service service.TranslationService) *TranslateHandler {
	return &TranslateHandler{service: service}
}

func (h *TranslateHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/translate", h.Translate)
}

// Translate translates a piece of text.
// @Summary Translate text
// @Description Translate text between languages, subject to the per-minute call budget
// @Tags translate
// @Accept json
// @Produce json
// @Param request body translateRequest true "Translation request"
// @Success 200 {object} translateResponse
// @Failure 400 {object} errorResponse
// @Failure 429 {object} errorResponse
// @Router /translate [post]
func (h *TranslateHandler) Translate(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	translated, err := h.service.Translate(c.Request().Context(), req.Text, req.SourceLang, req.TargetLang)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, translateResponse{
		TranslatedText: translated,
		SourceLang:     req.SourceLang,
		TargetLang:     req.TargetLang,
	})
}
