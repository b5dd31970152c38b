package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newspulse/backend/internal/ratelimit"
	"newspulse/backend/internal/service"
)

func TestTranslationService_Translate(t *testing.T) {
	svc := service.NewTranslationService(&stubTranslator{}, ratelimit.New(5, time.Minute))

	got, err := svc.Translate(context.Background(), "hello", "en", "hi")
	require.NoError(t, err)
	assert.Equal(t, "[hi] hello", got)
}

func TestTranslationService_SameLanguagePassesThrough(t *testing.T) {
	translator := &stubTranslator{}
	svc := service.NewTranslationService(translator, ratelimit.New(5, time.Minute))

	got, err := svc.Translate(context.Background(), "hello", "en", "en")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
	assert.Zero(t, translator.calls)
}

func TestTranslationService_InvalidInput(t *testing.T) {
	svc := service.NewTranslationService(&stubTranslator{}, ratelimit.New(5, time.Minute))

	_, err := svc.Translate(context.Background(), "   ", "en", "hi")
	assert.ErrorIs(t, err, service.ErrInvalid)

	_, err = svc.Translate(context.Background(), "hello", "", "hi")
	assert.ErrorIs(t, err, service.ErrInvalid)

	_, err = svc.Translate(context.Background(), "hello", "en", "")
	assert.ErrorIs(t, err, service.ErrInvalid)
}

func TestTranslationService_RateLimited(t *testing.T) {
	translator := &stubTranslator{}
	svc := service.NewTranslationService(translator, ratelimit.New(1, time.Minute))

	_, err := svc.Translate(context.Background(), "hello", "en", "hi")
	require.NoError(t, err)

	_, err = svc.Translate(context.Background(), "world", "en", "hi")
	require.ErrorIs(t, err, service.ErrRateLimited)

	var rateErr *service.RateLimitError
	require.ErrorAs(t, err, &rateErr)
	assert.Greater(t, rateErr.RetryAfter, 0)
	assert.Equal(t, int32(1), translator.calls, "denied calls never reach the provider")
}

func TestTranslationService_WrapsProviderErrors(t *testing.T) {
	svc := service.NewTranslationService(&stubTranslator{err: errors.New("boom")}, ratelimit.New(5, time.Minute))

	_, err := svc.Translate(context.Background(), "hello", "en", "hi")
	assert.ErrorIs(t, err, service.ErrTranslation)
}
