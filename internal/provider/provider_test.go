package provider_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newspulse/backend/internal/model"
	"newspulse/backend/internal/provider"
)

type stubFetcher struct {
	id       string
	articles []model.Article
	err      error
	calls    int
}

func (s *stubFetcher) ID() string { return s.id }

func (s *stubFetcher) Fetch(ctx context.Context) ([]model.Article, error) {
	s.calls++
	return s.articles, s.err
}

func TestChain_FirstSuccessWins(t *testing.T) {
	primary := &stubFetcher{id: "newsapi", articles: []model.Article{{ID: "1", Title: "x"}}}
	secondary := &stubFetcher{id: "gnews", articles: []model.Article{{ID: "2", Title: "y"}}}

	articles, source, err := provider.NewChain(primary, secondary).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "newsapi", source)
	assert.Len(t, articles, 1)
	assert.Equal(t, 1, primary.calls)
	assert.Zero(t, secondary.calls, "later fetchers must not be called after a success")
}

func TestChain_FallsThroughOnError(t *testing.T) {
	primary := &stubFetcher{id: "newsapi", err: errors.New("401 unauthorized")}
	secondary := &stubFetcher{id: "gnews", articles: []model.Article{{ID: "2", Title: "y"}}}
	tertiary := &stubFetcher{id: "mediastack", articles: []model.Article{{ID: "3", Title: "z"}}}

	articles, source, err := provider.NewChain(primary, secondary, tertiary).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "gnews", source)
	assert.Len(t, articles, 1)
	assert.Equal(t, "2", articles[0].ID)
	assert.Zero(t, tertiary.calls)
}

func TestChain_EmptyResultIsSuccess(t *testing.T) {
	primary := &stubFetcher{id: "newsapi", articles: []model.Article{}}
	secondary := &stubFetcher{id: "gnews", articles: []model.Article{{ID: "2", Title: "y"}}}

	articles, source, err := provider.NewChain(primary, secondary).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "newsapi", source)
	assert.Empty(t, articles)
	assert.Zero(t, secondary.calls, "an empty list still stops the chain")
}

func TestChain_AllFail(t *testing.T) {
	primary := &stubFetcher{id: "newsapi", err: errors.New("boom")}
	secondary := &stubFetcher{id: "gnews", err: errors.New("also boom")}

	_, _, err := provider.NewChain(primary, secondary).Fetch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, provider.ErrAllProvidersFailed)
}

func TestChain_ContextCancelStopsChain(t *testing.T) {
	primary := &stubFetcher{id: "newsapi"}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := provider.NewChain(primary).Fetch(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, primary.calls)
}

func TestNewsAPIFetcher_ParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "in", r.URL.Query().Get("country"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "ok",
			"totalResults": 2,
			"articles": [
				{
					"source": {"id": "the-hindu", "name": "The Hindu"},
					"title": "Budget session begins <b>today</b>",
					"description": "Parliament convenes for the budget session.",
					"content": "",
					"url": "https://example.org/a",
					"publishedAt": "2025-01-15T09:00:00Z"
				},
				{
					"source": {"id": null, "name": "PTI"},
					"title": "",
					"description": "",
					"url": "https://example.org/b",
					"publishedAt": "2025-01-15T10:00:00Z"
				}
			]
		}`))
	}))
	defer srv.Close()

	f := provider.NewNewsAPIFetcher(nil, "test-key")
	f.SetBaseURL(srv.URL)

	articles, err := f.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Budget session begins today", articles[0].Title)
	assert.Equal(t, "Parliament convenes for the budget session.", articles[0].Content)
	assert.Equal(t, "The Hindu", articles[0].Source)
	assert.Equal(t, "en", articles[0].Language)
	assert.NotEmpty(t, articles[0].ID)
}

func TestNewsAPIFetcher_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status": "error", "code": "apiKeyInvalid"}`))
	}))
	defer srv.Close()

	f := provider.NewNewsAPIFetcher(nil, "bad-key")
	f.SetBaseURL(srv.URL)

	_, err := f.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestGNewsFetcher_ParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-token", r.URL.Query().Get("token"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"totalArticles": 1,
			"articles": [
				{
					"title": "Railway upgrades announced",
					"description": "New trains for suburban lines.",
					"content": "The railway board announced new suburban trains.",
					"url": "https://example.org/r",
					"publishedAt": "2025-01-15T09:00:00Z",
					"source": {"name": "GNews Wire", "url": "https://example.org"}
				}
			]
		}`))
	}))
	defer srv.Close()

	f := provider.NewGNewsFetcher(nil, "test-token")
	f.SetBaseURL(srv.URL)

	articles, err := f.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Railway upgrades announced", articles[0].Title)
	assert.Equal(t, "The railway board announced new suburban trains.", articles[0].Content)
	assert.Equal(t, "GNews Wire", articles[0].Source)
}

func TestMediastackFetcher_ParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("access_key"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": [
				{
					"author": "Desk",
					"title": "Crop prices steady ahead of harvest",
					"description": "Mandi arrivals remain normal.",
					"url": "https://example.org/m",
					"source": "mediastack-wire",
					"language": "hi",
					"published_at": "2025-01-15T09:00:00+00:00"
				}
			]
		}`))
	}))
	defer srv.Close()

	f := provider.NewMediastackFetcher(nil, "test-key")
	f.SetBaseURL(srv.URL)

	articles, err := f.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Crop prices steady ahead of harvest", articles[0].Title)
	assert.Equal(t, "hi", articles[0].Language)
}

func TestFetcher_MissingKey(t *testing.T) {
	_, err := provider.NewNewsAPIFetcher(nil, "").Fetch(context.Background())
	assert.Error(t, err)
	_, err = provider.NewGNewsFetcher(nil, "").Fetch(context.Background())
	assert.Error(t, err)
	_, err = provider.NewMediastackFetcher(nil, "").Fetch(context.Background())
	assert.Error(t, err)
	_, err = provider.NewRSSFetcher("").Fetch(context.Background())
	assert.Error(t, err)
}

func TestFallbackArticles_SentimentDistribution(t *testing.T) {
	articles := provider.FallbackArticles()
	require.Len(t, articles, 6)

	var dist model.SentimentDistribution
	for _, a := range articles {
		require.NotEmpty(t, a.Department, "fallback items carry a department")
		switch a.Sentiment {
		case model.SentimentPositive:
			dist.Positive++
		case model.SentimentNeutral:
			dist.Neutral++
		case model.SentimentNegative:
			dist.Negative++
		}
	}
	assert.Equal(t, model.SentimentDistribution{Positive: 3, Neutral: 1, Negative: 2}, dist)

	languages := map[string]int{}
	for _, a := range articles {
		languages[a.Language]++
	}
	assert.Equal(t, 4, languages["en"])
	assert.Equal(t, 1, languages["hi"])
	assert.Equal(t, 1, languages["ta"])

	assert.Len(t, provider.FallbackVideos(), 3)
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain title", "plain title"},
		{"<p>hello <b>world</b></p>", "hello world"},
		{"crime &amp; punishment", "crime & punishment"},
		{"  spaced\n\tout  ", "spaced out"},
		{"<script>alert(1)</script>safe", "safe"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, provider.CleanText(tt.in), "input %q", tt.in)
	}
}
