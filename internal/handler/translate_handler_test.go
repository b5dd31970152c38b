package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newspulse/backend/internal/handler"
	"newspulse/backend/internal/ratelimit"
	"newspulse/backend/internal/service"
)

type echoTranslator struct{}

func (echoTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	return "[" + targetLang + "] " + text, nil
}

func postTranslate(t *testing.T, h *handler.TranslateHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/translate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Translate(c))
	return rec
}

func TestTranslateHandler_Translate(t *testing.T) {
	svc := service.NewTranslationService(echoTranslator{}, ratelimit.New(5, time.Minute))
	h := handler.NewTranslateHandler(svc)

	rec := postTranslate(t, h, `{"text":"hello","sourceLang":"en","targetLang":"hi"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		TranslatedText string `json:"translatedText"`
		TargetLang     string `json:"targetLang"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "[hi] hello", resp.TranslatedText)
	assert.Equal(t, "hi", resp.TargetLang)
}

func TestTranslateHandler_InvalidRequest(t *testing.T) {
	svc := service.NewTranslationService(echoTranslator{}, ratelimit.New(5, time.Minute))
	h := handler.NewTranslateHandler(svc)

	rec := postTranslate(t, h, `{"text":"","sourceLang":"en","targetLang":"hi"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTranslateHandler_RateLimited(t *testing.T) {
	svc := service.NewTranslationService(echoTranslator{}, ratelimit.New(1, time.Minute))
	h := handler.NewTranslateHandler(svc)

	rec := postTranslate(t, h, `{"text":"one","sourceLang":"en","targetLang":"hi"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postTranslate(t, h, `{"text":"two","sourceLang":"en","targetLang":"hi"}`)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	var resp struct {
		RetryAfter int `json:"retryAfter"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Greater(t, resp.RetryAfter, 0)
}
