package service_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"newspulse/backend/internal/classify"
	"newspulse/backend/internal/model"
	"newspulse/backend/internal/ratelimit"
	"newspulse/backend/internal/repository/mock"
	"newspulse/backend/internal/service"
)

type stubSource struct {
	articles []model.Article
	source   string
	err      error
	calls    int32
}

func (s *stubSource) Fetch(ctx context.Context) ([]model.Article, string, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.err != nil {
		return nil, "", s.err
	}
	// Hand out copies so the service can mutate freely.
	out := make([]model.Article, len(s.articles))
	copy(out, s.articles)
	return out, s.source, nil
}

type stubTranslator struct {
	calls int32
	err   error
}

func (t *stubTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	atomic.AddInt32(&t.calls, 1)
	if t.err != nil {
		return "", t.err
	}
	return "[" + targetLang + "] " + text, nil
}

func newDashboardService(t *testing.T, source service.NewsSource, translator service.Translator, limiter *ratelimit.Limiter) (service.DashboardService, *mock.MockStatsRepository, *mock.MockAlertRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	stats := mock.NewMockStatsRepository(ctrl)
	alerts := mock.NewMockAlertRepository(ctrl)
	if limiter == nil {
		limiter = ratelimit.New(100, time.Minute)
	}
	svc := service.NewDashboardService(
		source,
		classify.New(classify.DefaultRules()),
		translator,
		limiter,
		stats,
		alerts,
		"hi",
	)
	return svc, stats, alerts
}

func TestDashboardService_Refresh_ClassifiesAndCounts(t *testing.T) {
	source := &stubSource{
		source: "newsapi",
		articles: []model.Article{
			{ID: "1", Title: "Stock market gains on budget hopes", Content: "Banks led the growth.", Language: "hi"},
			{ID: "2", Title: "Hospital opens new wing", Content: "Doctors welcome the improvement.", Language: "hi"},
			{ID: "3", Title: "Weather update", Content: "Light rain expected.", Language: "hi"},
		},
	}
	svc, stats, _ := newDashboardService(t, source, &stubTranslator{}, nil)
	stats.EXPECT().RecordRun(gomock.Any(), "newsapi", 3, false).Return(nil)

	dashboard, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	require.Len(t, dashboard.Articles, 3)
	assert.Equal(t, model.DepartmentFinance, dashboard.Articles[0].Department)
	assert.Equal(t, model.SentimentPositive, dashboard.Articles[0].Sentiment)
	assert.Equal(t, model.DepartmentHealth, dashboard.Articles[1].Department)
	assert.Equal(t, model.DepartmentOther, dashboard.Articles[2].Department)
	assert.Equal(t, model.SentimentNeutral, dashboard.Articles[2].Sentiment)

	assert.Equal(t, 3, dashboard.Stats.TotalArticles)
	assert.Equal(t, len(dashboard.Articles), dashboard.Stats.SentimentDistribution.Total())
	assert.Equal(t, len(dashboard.Articles), dashboard.Stats.DepartmentCounts.Total())
	assert.Equal(t, len(dashboard.Articles), dashboard.Stats.LanguageCounts.Total())
	assert.Equal(t, "newsapi", dashboard.Source)
	assert.False(t, dashboard.LastUpdated.IsZero())
}

func TestDashboardService_Refresh_TranslatesForeignArticles(t *testing.T) {
	source := &stubSource{
		source: "newsapi",
		articles: []model.Article{
			{ID: "1", Title: "Railway upgrade announced", Content: "New trains.", Language: "en"},
			{ID: "2", Title: "पहले से हिंदी में", Content: "अनुवाद की जरूरत नहीं", Language: "hi"},
		},
	}
	translator := &stubTranslator{}
	svc, stats, _ := newDashboardService(t, source, translator, nil)
	stats.EXPECT().RecordRun(gomock.Any(), "newsapi", 2, false).Return(nil)

	dashboard, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "[hi] Railway upgrade announced", dashboard.Articles[0].TranslatedTitle)
	assert.Equal(t, "[hi] New trains.", dashboard.Articles[0].TranslatedContent)
	assert.Empty(t, dashboard.Articles[1].TranslatedTitle, "display language articles are not translated")
	assert.Equal(t, int32(2), translator.calls)
}

func TestDashboardService_Refresh_TranslationFailureIsTolerated(t *testing.T) {
	source := &stubSource{
		source: "newsapi",
		articles: []model.Article{
			{ID: "1", Title: "Airport expansion", Content: "More runways.", Language: "en"},
		},
	}
	svc, stats, _ := newDashboardService(t, source, &stubTranslator{err: errors.New("upstream down")}, nil)
	stats.EXPECT().RecordRun(gomock.Any(), "newsapi", 1, false).Return(nil)

	dashboard, err := svc.Refresh(context.Background())
	require.NoError(t, err, "a failed translation must not sink the refresh")
	assert.Empty(t, dashboard.Articles[0].TranslatedTitle)
	assert.Equal(t, 1, dashboard.Stats.TotalArticles)
}

func TestDashboardService_Refresh_RateLimitStopsEnrichment(t *testing.T) {
	source := &stubSource{
		source: "newsapi",
		articles: []model.Article{
			{ID: "1", Title: "One", Content: "a", Language: "en"},
			{ID: "2", Title: "Two", Content: "b", Language: "en"},
			{ID: "3", Title: "Three", Content: "c", Language: "en"},
		},
	}
	limiter := ratelimit.New(1, time.Minute)
	svc, stats, _ := newDashboardService(t, source, &stubTranslator{}, limiter)
	stats.EXPECT().RecordRun(gomock.Any(), "newsapi", 3, false).Return(nil)

	dashboard, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	translated := 0
	for _, a := range dashboard.Articles {
		if a.TranslatedTitle != "" {
			translated++
		}
	}
	assert.Equal(t, 1, translated, "one admission translates exactly one article")
}

func TestDashboardService_Refresh_FallbackOnTotalFailure(t *testing.T) {
	source := &stubSource{err: errors.New("every provider down")}
	svc, stats, alerts := newDashboardService(t, source, &stubTranslator{}, nil)
	stats.EXPECT().RecordRun(gomock.Any(), "fallback", 6, true).Return(nil)
	alerts.EXPECT().FindUnresolvedByKey(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	alerts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Alert{}, nil).AnyTimes()

	dashboard, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "fallback", dashboard.Source)
	require.Len(t, dashboard.Articles, 6)
	assert.Len(t, dashboard.VideoNews, 3)
	assert.Equal(t, model.SentimentDistribution{Positive: 3, Neutral: 1, Negative: 2}, dashboard.Stats.SentimentDistribution)
	assert.Equal(t, 4, dashboard.Stats.LanguageCounts.Get("en"))
	assert.Equal(t, 1, dashboard.Stats.LanguageCounts.Get("hi"))
	assert.Equal(t, 1, dashboard.Stats.LanguageCounts.Get("ta"))
}

func TestDashboardService_Refresh_RaisesNegativeCoverageAlert(t *testing.T) {
	source := &stubSource{
		source: "newsapi",
		articles: []model.Article{
			{ID: "1", Title: "Bank posts heavy loss", Content: "A crisis for investors.", Language: "hi"},
			{ID: "2", Title: "Stock market decline deepens", Content: "Another bad day for finance.", Language: "hi"},
		},
	}
	svc, stats, alerts := newDashboardService(t, source, &stubTranslator{}, nil)
	stats.EXPECT().RecordRun(gomock.Any(), "newsapi", 2, false).Return(nil)
	alerts.EXPECT().FindUnresolvedByKey(gomock.Any(), "negative:finance").Return(nil, nil)
	alerts.EXPECT().
		Create(gomock.Any(), model.AlertTypeNegative, model.DepartmentFinance, gomock.Any(), "negative:finance").
		Return(model.Alert{ID: 1}, nil)

	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)
}

func TestDashboardService_Refresh_DeduplicatesAlerts(t *testing.T) {
	source := &stubSource{
		source: "newsapi",
		articles: []model.Article{
			{ID: "1", Title: "Bank posts heavy loss", Content: "A crisis for investors.", Language: "hi"},
			{ID: "2", Title: "Stock market decline deepens", Content: "Another bad day for finance.", Language: "hi"},
		},
	}
	svc, stats, alerts := newDashboardService(t, source, &stubTranslator{}, nil)
	stats.EXPECT().RecordRun(gomock.Any(), "newsapi", 2, false).Return(nil)
	existing := &model.Alert{ID: 7, Status: model.AlertStatusSent}
	alerts.EXPECT().FindUnresolvedByKey(gomock.Any(), "negative:finance").Return(existing, nil)

	_, err := svc.Refresh(context.Background())
	require.NoError(t, err, "an unresolved alert suppresses a duplicate")
}

func TestDashboardService_Snapshot_CachesUntilRefresh(t *testing.T) {
	source := &stubSource{
		source:   "newsapi",
		articles: []model.Article{{ID: "1", Title: "Cached", Content: "x", Language: "hi"}},
	}
	svc, stats, _ := newDashboardService(t, source, &stubTranslator{}, nil)
	stats.EXPECT().RecordRun(gomock.Any(), "newsapi", 1, false).Return(nil).Times(2)

	first, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	second, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.LastUpdated, second.LastUpdated)
	assert.Equal(t, int32(1), atomic.LoadInt32(&source.calls), "snapshot is served from cache")

	_, err = svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&source.calls))
}

func TestDashboardService_Refresh_CancelledContext(t *testing.T) {
	source := &stubSource{
		source:   "newsapi",
		articles: []model.Article{{ID: "1", Title: "x", Content: "y", Language: "hi"}},
	}
	svc, _, _ := newDashboardService(t, source, &stubTranslator{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Refresh(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
