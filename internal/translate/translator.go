package translate

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/singleflight"

	"newspulse/backend/internal/logger"
)

// Translator translates text through a provider, deduplicating concurrent
// requests for the same text and caching successful results.
type Translator struct {
	provider Provider
	limiter  *RateLimiter
	cache    *Cache
	group    singleflight.Group
}

// NewTranslator creates a translator backed by the given provider.
func NewTranslator(provider Provider, qps, cacheSize int) *Translator {
	return &Translator{
		provider: provider,
		limiter:  NewRateLimiter(qps),
		cache:    NewCache(cacheSize),
	}
}

// Translate returns text translated from sourceLang to targetLang.
// When the languages match or the text is empty, the input is returned
// unchanged without touching the provider. Failed translations are not
// cached, so a later call for the same text retries the provider.
func (t *Translator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if strings.TrimSpace(text) == "" || sourceLang == targetLang {
		return text, nil
	}

	if cached, ok := t.cache.Get(text, sourceLang, targetLang); ok {
		return cached, nil
	}

	flightKey := fmt.Sprintf("%s\x00%s\x00%s", sourceLang, targetLang, text)
	result, err, _ := t.group.Do(flightKey, func() (any, error) {
		// Recheck under the flight: a previous caller may have filled the
		// cache between our lookup and joining the group.
		if cached, ok := t.cache.Get(text, sourceLang, targetLang); ok {
			return cached, nil
		}

		if err := t.limiter.Wait(ctx); err != nil {
			return "", err
		}

		translated, err := t.provider.Complete(ctx, GetTranslatePrompt(sourceLang, targetLang), text)
		if err != nil {
			logger.Warn("translation failed", "module", "translate", "action", "translate", "resource", t.provider.Name(), "result", "failed", "error", err)
			return "", err
		}
		translated = strings.TrimSpace(translated)
		if translated == "" {
			logger.Warn("empty translation result", "module", "translate", "action", "translate", "resource", t.provider.Name(), "result", "failed")
			return "", ErrEmptyResult
		}

		t.cache.Set(text, sourceLang, targetLang, translated)
		return translated, nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// CacheLen reports the number of cached translations.
func (t *Translator) CacheLen() int {
	return t.cache.Len()
}
