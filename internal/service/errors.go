package service

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalid       = errors.New("invalid")
	ErrRateLimited   = errors.New("rate limited")
	ErrTranslation   = errors.New("translation failed")
	ErrProviderFetch = errors.New("provider fetch failed")
)

// RateLimitError carries the cooldown for a denied request.
type RateLimitError struct {
	RetryAfter int // seconds
}

func (e *RateLimitError) Error() string {
	return "rate limited"
}

func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}
