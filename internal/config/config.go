package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	AppName    = "NewsPulse"
	AppVersion = "1.0.0"
)

// UserAgent identifies outbound provider requests.
var UserAgent = AppName + "/" + AppVersion

// Translation holds the translation backend settings.
type Translation struct {
	Provider string // openai, anthropic, compatible
	APIKey   string
	BaseURL  string
	Model    string
	QPS      int // upstream calls per second
}

// RateLimit tunes the sliding-window admission control for metered services.
type RateLimit struct {
	MaxCalls int
	Window   time.Duration
}

type Config struct {
	Addr     string
	DBPath   string
	DataDir  string
	LogLevel string

	// News provider credentials. A provider with an empty key is still
	// attempted; the upstream rejects it and the chain falls through.
	NewsAPIKey    string
	GNewsKey      string
	MediaStackKey string
	RSSFeedURL    string

	// DisplayLanguage is the target language for dashboard translations.
	DisplayLanguage string

	// KeywordRulesPath optionally overrides the built-in classification
	// keyword tables with a YAML file.
	KeywordRulesPath string

	Translation     Translation
	RateLimit       RateLimit
	RefreshInterval time.Duration

	// TranslationCacheSize bounds the LRU translation cache; zero or
	// negative disables eviction.
	TranslationCacheSize int
}

func Load() Config {
	// Missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	dataDir := getenv("NEWSPULSE_DATA_DIR", "./data")
	dbPath := getenv("NEWSPULSE_DB_PATH", filepath.Join(dataDir, "newspulse.db"))

	return Config{
		Addr:     getenv("NEWSPULSE_ADDR", ":8080"),
		DBPath:   filepath.Clean(dbPath),
		DataDir:  filepath.Clean(dataDir),
		LogLevel: getenv("NEWSPULSE_LOG_LEVEL", "info"),

		NewsAPIKey:    os.Getenv("NEWSPULSE_NEWSAPI_KEY"),
		GNewsKey:      os.Getenv("NEWSPULSE_GNEWS_KEY"),
		MediaStackKey: os.Getenv("NEWSPULSE_MEDIASTACK_KEY"),
		RSSFeedURL:    os.Getenv("NEWSPULSE_RSS_FEED_URL"),

		DisplayLanguage:  getenv("NEWSPULSE_DISPLAY_LANGUAGE", "hi"),
		KeywordRulesPath: os.Getenv("NEWSPULSE_KEYWORD_RULES"),

		Translation: Translation{
			Provider: getenv("NEWSPULSE_TRANSLATION_PROVIDER", "openai"),
			APIKey:   os.Getenv("NEWSPULSE_TRANSLATION_API_KEY"),
			BaseURL:  os.Getenv("NEWSPULSE_TRANSLATION_BASE_URL"),
			Model:    getenv("NEWSPULSE_TRANSLATION_MODEL", "gpt-4o-mini"),
			QPS:      getenvInt("NEWSPULSE_TRANSLATION_QPS", 10),
		},
		RateLimit: RateLimit{
			MaxCalls: getenvInt("NEWSPULSE_RATE_LIMIT_MAX_CALLS", 5),
			Window:   getenvDuration("NEWSPULSE_RATE_LIMIT_WINDOW", time.Minute),
		},
		RefreshInterval:      getenvDuration("NEWSPULSE_REFRESH_INTERVAL", time.Minute),
		TranslationCacheSize: getenvInt("NEWSPULSE_TRANSLATION_CACHE_SIZE", 4096),
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
