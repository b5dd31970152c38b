package translate_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newspulse/backend/internal/translate"
)

type fakeProvider struct {
	mu      sync.Mutex
	calls   int32
	respond func(content string) (string, error)
	block   chan struct{} // when set, Complete waits until closed
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(ctx context.Context, systemPrompt, content string) (string, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	f.mu.Lock()
	respond := f.respond
	f.mu.Unlock()
	if respond != nil {
		return respond(content)
	}
	return "[translated] " + content, nil
}

func (f *fakeProvider) callCount() int {
	return int(atomic.LoadInt32(&f.calls))
}

func TestTranslator_CachesSuccessfulResults(t *testing.T) {
	fake := &fakeProvider{}
	tr := translate.NewTranslator(fake, 100, 16)

	got, err := tr.Translate(context.Background(), "hello", "en", "hi")
	require.NoError(t, err)
	assert.Equal(t, "[translated] hello", got)

	got, err = tr.Translate(context.Background(), "hello", "en", "hi")
	require.NoError(t, err)
	assert.Equal(t, "[translated] hello", got)

	assert.Equal(t, 1, fake.callCount(), "second call should hit the cache")
}

func TestTranslator_SameLanguageShortCircuits(t *testing.T) {
	fake := &fakeProvider{}
	tr := translate.NewTranslator(fake, 100, 16)

	got, err := tr.Translate(context.Background(), "hello", "en", "en")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
	assert.Zero(t, fake.callCount())
	assert.Zero(t, tr.CacheLen())
}

func TestTranslator_EmptyTextShortCircuits(t *testing.T) {
	fake := &fakeProvider{}
	tr := translate.NewTranslator(fake, 100, 16)

	got, err := tr.Translate(context.Background(), "   ", "en", "hi")
	require.NoError(t, err)
	assert.Equal(t, "   ", got)
	assert.Zero(t, fake.callCount())
}

func TestTranslator_ConcurrentCallsCollapse(t *testing.T) {
	fake := &fakeProvider{block: make(chan struct{})}
	tr := translate.NewTranslator(fake, 100, 16)

	const n = 8
	var wg sync.WaitGroup
	results := make([]string, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = tr.Translate(context.Background(), "breaking news", "en", "hi")
		}(i)
	}

	close(fake.block)
	wg.Wait()

	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "[translated] breaking news", results[i])
	}
	// Without the blocking provider the goroutines could still serialize,
	// but every outcome must come from at most a handful of upstream calls.
	assert.LessOrEqual(t, fake.callCount(), 2)
}

func TestTranslator_ErrorsAreNotCached(t *testing.T) {
	fake := &fakeProvider{}
	failing := true
	fake.respond = func(content string) (string, error) {
		if failing {
			return "", errors.New("upstream unavailable")
		}
		return "[translated] " + content, nil
	}
	tr := translate.NewTranslator(fake, 100, 16)

	_, err := tr.Translate(context.Background(), "hello", "en", "hi")
	require.Error(t, err)
	assert.Zero(t, tr.CacheLen())

	failing = false
	got, err := tr.Translate(context.Background(), "hello", "en", "hi")
	require.NoError(t, err)
	assert.Equal(t, "[translated] hello", got)
	assert.Equal(t, 2, fake.callCount())
}

func TestTranslator_EmptyProviderResultIsAnError(t *testing.T) {
	fake := &fakeProvider{}
	fake.respond = func(content string) (string, error) {
		return "  \n  ", nil
	}
	tr := translate.NewTranslator(fake, 100, 16)

	_, err := tr.Translate(context.Background(), "hello", "en", "hi")
	require.ErrorIs(t, err, translate.ErrEmptyResult)
	assert.Zero(t, tr.CacheLen())
}

func TestTranslator_DistinctLanguagePairsAreDistinctEntries(t *testing.T) {
	fake := &fakeProvider{}
	tr := translate.NewTranslator(fake, 100, 16)

	_, err := tr.Translate(context.Background(), "hello", "en", "hi")
	require.NoError(t, err)
	_, err = tr.Translate(context.Background(), "hello", "en", "ta")
	require.NoError(t, err)

	assert.Equal(t, 2, fake.callCount())
	assert.Equal(t, 2, tr.CacheLen())
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := translate.NewCache(2)
	c.Set("a", "en", "hi", "A")
	c.Set("b", "en", "hi", "B")

	// Touch "a" so "b" becomes the eviction candidate.
	_, ok := c.Get("a", "en", "hi")
	require.True(t, ok)

	c.Set("c", "en", "hi", "C")
	assert.Equal(t, 2, c.Len())

	_, ok = c.Get("b", "en", "hi")
	assert.False(t, ok)
	got, ok := c.Get("a", "en", "hi")
	assert.True(t, ok)
	assert.Equal(t, "A", got)
}

func TestCache_ZeroSizeIsUnbounded(t *testing.T) {
	c := translate.NewCache(0)
	for i := 0; i < 100; i++ {
		c.Set(fmt.Sprintf("text-%d", i), "en", "hi", "x")
	}
	assert.Equal(t, 100, c.Len())
}

func TestNewProvider_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     translate.Config
		wantErr error
	}{
		{"missing api key", translate.Config{Provider: translate.ProviderOpenAI, Model: "gpt-4o-mini"}, translate.ErrMissingAPIKey},
		{"missing model", translate.Config{Provider: translate.ProviderOpenAI, APIKey: "sk-test"}, translate.ErrMissingModel},
		{"compatible without base url", translate.Config{Provider: translate.ProviderCompatible, APIKey: "sk-test", Model: "m"}, translate.ErrMissingBaseURL},
		{"unknown provider", translate.Config{Provider: "gemini", APIKey: "sk-test", Model: "m"}, translate.ErrInvalidProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := translate.NewProvider(tt.cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewProvider_KnownProviders(t *testing.T) {
	p, err := translate.NewProvider(translate.Config{Provider: translate.ProviderOpenAI, APIKey: "sk-test", Model: "gpt-4o-mini"})
	require.NoError(t, err)
	assert.Equal(t, translate.ProviderOpenAI, p.Name())

	p, err = translate.NewProvider(translate.Config{Provider: translate.ProviderAnthropic, APIKey: "sk-test", Model: "claude-sonnet-4-5"})
	require.NoError(t, err)
	assert.Equal(t, translate.ProviderAnthropic, p.Name())

	p, err = translate.NewProvider(translate.Config{Provider: translate.ProviderCompatible, APIKey: "sk-test", BaseURL: "http://localhost:11434/v1", Model: "llama3"})
	require.NoError(t, err)
	assert.Equal(t, translate.ProviderCompatible, p.Name())
}
