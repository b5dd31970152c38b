package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"newspulse/backend/internal/model"
)

const gnewsDefaultURL = "https://gnews.io/api/v4/top-headlines"

// GNewsFetcher retrieves top headlines from gnews.io.
type GNewsFetcher struct {
	client  *resty.Client
	baseURL string
	apiKey  string
	country string
}

type gnewsResponse struct {
	TotalArticles int `json:"totalArticles"`
	Articles      []struct {
		Title       string    `json:"title"`
		Description string    `json:"description"`
		Content     string    `json:"content"`
		URL         string    `json:"url"`
		PublishedAt time.Time `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
			URL  string `json:"url"`
		} `json:"source"`
	} `json:"articles"`
}

// NewGNewsFetcher creates a fetcher for gnews.io.
func NewGNewsFetcher(client *resty.Client, apiKey string) *GNewsFetcher {
	if client == nil {
		client = NewRestyClient(DefaultTimeout)
	}
	return &GNewsFetcher{
		client:  client,
		baseURL: gnewsDefaultURL,
		apiKey:  apiKey,
		country: "in",
	}
}

// SetBaseURL overrides the endpoint, used in tests.
func (f *GNewsFetcher) SetBaseURL(u string) { f.baseURL = u }

// ID returns the provider name.
func (f *GNewsFetcher) ID() string { return "gnews" }

// Fetch retrieves the current top headlines.
func (f *GNewsFetcher) Fetch(ctx context.Context) ([]model.Article, error) {
	if f.apiKey == "" {
		return nil, fmt.Errorf("gnews: api key not configured")
	}

	var out gnewsResponse
	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"country": f.country,
			"token":   f.apiKey,
		}).
		SetResult(&out).
		Get(f.baseURL)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("gnews: unexpected status %d", resp.StatusCode())
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
