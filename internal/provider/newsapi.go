package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"newspulse/backend/internal/model"
)

const newsAPIDefaultURL = "https://newsapi.org/v2/top-headlines"

// NewsAPIFetcher retrieves top headlines from newsapi.org.
type NewsAPIFetcher struct {
	client  *resty.Client
	baseURL string
	apiKey  string
	country string
}

type newsAPIResponse struct {
	Status       string `json:"status"`
	TotalResults int    `json:"totalResults"`
	Articles     []struct {
		Source struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"source"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		Content     string    `json:"content"`
		URL         string    `json:"url"`
		PublishedAt time.Time `json:"publishedAt"`
	} `json:"articles"`
}

// NewNewsAPIFetcher creates a fetcher for newsapi.org.
func NewNewsAPIFetcher(client *resty.Client, apiKey string) *NewsAPIFetcher {
	if client == nil {
		client = NewRestyClient(DefaultTimeout)
	}
	return &NewsAPIFetcher{
		client:  client,
		baseURL: newsAPIDefaultURL,
		apiKey:  apiKey,
		country: "in",
	}
}

// SetBaseURL overrides the endpoint, used in tests.
func (f *NewsAPIFetcher) SetBaseURL(u string) { f.baseURL = u }

// ID returns the provider name.
func (f *NewsAPIFetcher) ID() string { return "newsapi" }

// Fetch retrieves the current top headlines.
func (f *NewsAPIFetcher) Fetch(ctx context.Context) ([]model.Article, error) {
	if f.apiKey == "" {
		return nil, fmt.Errorf("newsapi: api key not configured")
	}

	var out newsAPIResponse
	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"country": f.country,
			"apiKey":  f.apiKey,
		}).
		SetResult(&out).
		Get(f.baseURL)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("newsapi: unexpected status %d", resp.StatusCode())
	}
	if out.Status != "ok" {
		return nil, fmt.Errorf("newsapi: status %q", out.Status)
	}

	articles := make([]model.Article, 0, len(out.Articles))
	for _, a := range out.Articles {
		title := CleanText(a.Title)
		content := CleanText(a.Content)
		if content == "" {
			content = CleanText(a.Description)
		}
		if title == "" && content == "" {
			continue
		}
		articles = append(articles, model.Article{
			ID:          uuid.NewString(),
			Title:       title,
			Content:     content,
			Source:      a.Source.Name,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
			Language:    "en",
		})
	}
	return articles, nil
}
