package service

import (
	"context"
	"fmt"
	"strings"

	"newspulse/backend/internal/ratelimit"
)

// rate limiter service key for translation calls
const translationServiceKey = "translation"

// Translator is the upstream translation dependency.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

type TranslationService interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

type translationService struct {
	translator Translator
	limiter    *ratelimit.Limiter
}

func NewTranslationService(translator Translator, limiter *ratelimit.Limiter) TranslationService {
	return &translationService{translator: translator, limiter: limiter}
}

// Translate runs one user-facing translation through the sliding window
// limiter. A denied call returns a RateLimitError with the cooldown and
// never reaches the upstream provider.
func (s *translationService) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrInvalid
	}
	if sourceLang == "" || targetLang == "" {
		return "", ErrInvalid
	}
	if sourceLang == targetLang {
		return text, nil
	}

	allowed, retryAfter := s.limiter.Admit(translationServiceKey)
	if !allowed {
		return "", &RateLimitError{RetryAfter: retryAfter}
	}

	translated, err := s.translator.Translate(ctx, text, sourceLang, targetLang)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTranslation, err)
	}
	return translated, nil
}
