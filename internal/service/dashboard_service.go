package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"newspulse/backend/internal/classify"
	"newspulse/backend/internal/logger"
	"newspulse/backend/internal/model"
	"newspulse/backend/internal/provider"
	"newspulse/backend/internal/ratelimit"
	"newspulse/backend/internal/repository"
)

const (
	// enrichWorkers bounds concurrent translation calls during a refresh.
	enrichWorkers = 3

	// negativeAlertThreshold is the negative article count per department
	// that raises a coverage alert.
	negativeAlertThreshold = 2
)

// NewsSource abstracts the provider chain for tests.
type NewsSource interface {
	Fetch(ctx context.Context) ([]model.Article, string, error)
}

type DashboardService interface {
	// Snapshot returns the cached dashboard, building it on first use.
	Snapshot(ctx context.Context) (model.Dashboard, error)
	// Refresh rebuilds the dashboard from the provider chain.
	Refresh(ctx context.Context) (model.Dashboard, error)
}

type dashboardService struct {
	source      NewsSource
	classifier  *classify.Classifier
	translator  Translator
	limiter     *ratelimit.Limiter
	stats       repository.StatsRepository
	alerts      repository.AlertRepository
	displayLang string

	mu          sync.RWMutex
	snapshot    model.Dashboard
	hasSnapshot bool
}

func NewDashboardService(
	source NewsSource,
	classifier *classify.Classifier,
	translator Translator,
	limiter *ratelimit.Limiter,
	stats repository.StatsRepository,
	alerts repository.AlertRepository,
	displayLang string,
) DashboardService {
	if displayLang == "" {
		displayLang = "hi"
	}
	return &dashboardService{
		source:      source,
		classifier:  classifier,
		translator:  translator,
		limiter:     limiter,
		stats:       stats,
		alerts:      alerts,
		displayLang: displayLang,
	}
}

func (s *dashboardService) Snapshot(ctx context.Context) (model.Dashboard, error) {
	s.mu.RLock()
	if s.hasSnapshot {
		snapshot := s.snapshot
		s.mu.RUnlock()
		return snapshot, nil
	}
	s.mu.RUnlock()

	return s.Refresh(ctx)
}

// Refresh builds a fresh dashboard. Provider failures degrade to the
// reference dataset rather than erroring; the only error path is context
// cancellation, which leaves the previous snapshot in place.
func (s *dashboardService) Refresh(ctx context.Context) (model.Dashboard, error) {
	articles, source, err := s.source.Fetch(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return model.Dashboard{}, ctxErr
	}

	fallbackUsed := false
	if err != nil {
		logger.Warn("falling back to reference dataset", "module", "dashboard", "action", "fetch", "resource", "providers", "result", "failed", "dataset", provider.FallbackDatasetVersion, "error", err)
		articles = provider.FallbackArticles()
		source = provider.FallbackSource
		fallbackUsed = true
	}

	s.classifyAll(articles)
	s.enrich(ctx, articles)

	// Video ingestion has no live provider; the reference videos ship with
	// every build so the dashboard always has displayable video content.
	dashboard := model.Dashboard{
		Articles:    articles,
		VideoNews:   provider.FallbackVideos(),
		Stats:       buildStats(articles),
		Source:      source,
		LastUpdated: time.Now().UTC(),
	}

	s.raiseAlerts(ctx, articles, fallbackUsed)

	if err := s.stats.RecordRun(ctx, source, len(articles), fallbackUsed); err != nil {
		logger.Warn("record run failed", "module", "dashboard", "action", "record", "resource", "run_stats", "result", "failed", "error", err)
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return model.Dashboard{}, ctxErr
	}

	s.mu.Lock()
	s.snapshot = dashboard
	s.hasSnapshot = true
	s.mu.Unlock()

	logger.Info("dashboard refreshed", "module", "dashboard", "action", "refresh", "resource", source, "result", "ok", "articles", len(articles), "fallback", fallbackUsed)
	return dashboard, nil
}

// classifyAll assigns department and sentiment to articles that arrived
// unclassified. Reference dataset items keep their labels.
func (s *dashboardService) classifyAll(articles []model.Article) {
	for i := range articles {
		if articles[i].Department != "" && articles[i].Sentiment != "" {
			continue
		}
		department, sentiment := s.classifier.Classify(articles[i].Title, articles[i].Content)
		if articles[i].Department == "" {
			articles[i].Department = department
		}
		if articles[i].Sentiment == "" {
			articles[i].Sentiment = sentiment
		}
	}
}

// enrich translates foreign language articles into the display language.
// Each article costs one admission from the sliding window; once the window
// denies, the remaining articles are skipped untranslated. Individual
// translation failures are logged and swallowed so one bad article never
// sinks a refresh.
func (s *dashboardService) enrich(ctx context.Context, articles []model.Article) {
	var denied atomic.Bool

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichWorkers)

	for i := range articles {
		if articles[i].Language == s.displayLang || articles[i].Language == "" {
			continue
		}
		g.Go(func() error {
			if denied.Load() {
				return nil
			}
			allowed, retryAfter := s.limiter.Admit(translationServiceKey)
			if !allowed {
				denied.Store(true)
				logger.Warn("translation budget exhausted", "module", "dashboard", "action", "enrich", "resource", "translation", "result", "denied", "retry_after", retryAfter)
				return nil
			}

			article := &articles[i]
			title, err := s.translator.Translate(gctx, article.Title, article.Language, s.displayLang)
			if err != nil {
				logger.Warn("title translation failed", "module", "dashboard", "action", "enrich", "resource", article.ID, "result", "failed", "error", err)
				return nil
			}
			article.TranslatedTitle = title

			content, err := s.translator.Translate(gctx, article.Content, article.Language, s.displayLang)
			if err != nil {
				logger.Warn("content translation failed", "module", "dashboard", "action", "enrich", "resource", article.ID, "result", "failed", "error", err)
				return nil
			}
			article.TranslatedContent = content
			return nil
		})
	}

	_ = g.Wait()
}

// raiseAlerts records coverage alerts for departments with heavy negative
// reporting and a system alert when the provider chain was exhausted.
// Alerts are deduplicated by key until resolved.
func (s *dashboardService) raiseAlerts(ctx context.Context, articles []model.Article, fallbackUsed bool) {
	negatives := model.OrderedCounts{}
	for _, a := range articles {
		if a.Sentiment == model.SentimentNegative {
			negatives.Add(string(a.Department))
		}
	}

	for _, entry := range negatives {
		if entry.Count < negativeAlertThreshold {
			continue
		}
		key := "negative:" + entry.Key
		message := fmt.Sprintf("%d negative articles in %s coverage", entry.Count, entry.Key)
		s.raiseAlert(ctx, model.AlertTypeNegative, model.Department(entry.Key), message, key)
	}

	if fallbackUsed {
		s.raiseAlert(ctx, model.AlertTypeSystem, "", "all news providers failed, serving reference dataset", "system:providers")
	}
}

func (s *dashboardService) raiseAlert(ctx context.Context, alertType string, department model.Department, message, key string) {
	existing, err := s.alerts.FindUnresolvedByKey(ctx, key)
	if err != nil {
		logger.Warn("alert lookup failed", "module", "dashboard", "action", "alert", "resource", key, "result", "failed", "error", err)
		return
	}
	if existing != nil {
		return
	}
	if _, err := s.alerts.Create(ctx, alertType, department, message, key); err != nil {
		logger.Warn("alert create failed", "module", "dashboard", "action", "alert", "resource", key, "result", "failed", "error", err)
	}
}

func buildStats(articles []model.Article) model.DashboardStats {
	stats := model.DashboardStats{
		TotalArticles:    len(articles),
		DepartmentCounts: model.OrderedCounts{},
		LanguageCounts:   model.OrderedCounts{},
	}
	for _, a := range articles {
		switch a.Sentiment {
		case model.SentimentPositive:
			stats.SentimentDistribution.Positive++
		case model.SentimentNegative:
			stats.SentimentDistribution.Negative++
		default:
			stats.SentimentDistribution.Neutral++
		}
		stats.DepartmentCounts.Add(string(a.Department))
		stats.LanguageCounts.Add(a.Language)
	}
	return stats
}
