package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"newspulse/backend/internal/classify"
	"newspulse/backend/internal/config"
	"newspulse/backend/internal/db"
	"newspulse/backend/internal/handler"
	transport "newspulse/backend/internal/http"
	"newspulse/backend/internal/logger"
	"newspulse/backend/internal/provider"
	"newspulse/backend/internal/ratelimit"
	"newspulse/backend/internal/repository"
	"newspulse/backend/internal/scheduler"
	"newspulse/backend/internal/service"
	"newspulse/backend/internal/snowflake"
	"newspulse/backend/internal/translate"
)

// @title NewsPulse API
// @version 1.0
// @description News aggregation dashboard with translation and monitoring.
// @BasePath /api
func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := snowflake.Init(1); err != nil {
		log.Fatalf("init snowflake: %v", err)
	}

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer dbConn.Close()

	alertRepo := repository.NewAlertRepository(dbConn)
	crawlRepo := repository.NewCrawlRepository(dbConn)
	statsRepo := repository.NewStatsRepository(dbConn)

	rules := classify.DefaultRules()
	if cfg.KeywordRulesPath != "" {
		rules, err = classify.LoadRules(cfg.KeywordRulesPath)
		if err != nil {
			log.Fatalf("load keyword rules: %v", err)
		}
	}
	classifier := classify.New(rules)

	limiter := ratelimit.New(cfg.RateLimit.MaxCalls, cfg.RateLimit.Window)
	translator := buildTranslator(cfg)

	httpClient := provider.NewRestyClient(provider.DefaultTimeout)
	chain := provider.NewChain(
		provider.NewNewsAPIFetcher(httpClient, cfg.NewsAPIKey),
		provider.NewGNewsFetcher(httpClient, cfg.GNewsKey),
		provider.NewMediastackFetcher(httpClient, cfg.MediaStackKey),
		rssFetcher(cfg.RSSFeedURL),
	)

	dashboardService := service.NewDashboardService(chain, classifier, translator, limiter, statsRepo, alertRepo, cfg.DisplayLanguage)
	translationService := service.NewTranslationService(translator, limiter)
	adminService := service.NewAdminService(alertRepo, crawlRepo, statsRepo, dashboardService)

	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	translateHandler := handler.NewTranslateHandler(translationService)
	adminHandler := handler.NewAdminHandler(adminService)

	router := transport.NewRouter(dashboardHandler, translateHandler, adminHandler)

	sched := scheduler.New(dashboardService, cfg.RefreshInterval)
	sched.Start()

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("shutting down...")
		sched.Stop()
		os.Exit(0)
	}()

	if err := router.Start(cfg.Addr); err != nil {
		log.Fatalf("start server: %v", err)
	}
}

// buildTranslator wires the configured provider, or a passthrough when no
// API key is set so the server still runs without translation credentials.
func buildTranslator(cfg config.Config) service.Translator {
	p, err := translate.NewProvider(translate.Config{
		Provider: cfg.Translation.Provider,
		APIKey:   cfg.Translation.APIKey,
		BaseURL:  cfg.Translation.BaseURL,
		Model:    cfg.Translation.Model,
	})
	if err != nil {
		logger.Warn("translation disabled, serving original text", "module", "main", "action", "init", "resource", "translate", "result", "failed", "error", err)
		return passthroughTranslator{}
	}
	return translate.NewTranslator(p, cfg.Translation.QPS, cfg.TranslationCacheSize)
}

type passthroughTranslator struct{}

func (passthroughTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	return text, nil
}

func rssFetcher(feedURL string) provider.Fetcher {
	if feedURL == "" {
		return nil
	}
	return provider.NewRSSFetcher(feedURL)
}
