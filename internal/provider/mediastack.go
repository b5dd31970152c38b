package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"newspulse/backend/internal/model"
)

const mediastackDefaultURL = "http://api.mediastack.com/v1/news"

// MediastackFetcher retrieves news from api.mediastack.com.
type MediastackFetcher struct {
	client  *resty.Client
	baseURL string
	apiKey  string
	country string
}

type mediastackResponse struct {
	Data []struct {
		Author      string `json:"author"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		Source      string `json:"source"`
		Language    string `json:"language"`
		PublishedAt string `json:"published_at"`
	} `json:"data"`
}

// NewMediastackFetcher creates a fetcher for mediastack.
func NewMediastackFetcher(client *resty.Client, apiKey string) *MediastackFetcher {
	if client == nil {
		client = NewRestyClient(DefaultTimeout)
	}
	return &MediastackFetcher{
		client:  client,
		baseURL: mediastackDefaultURL,
		apiKey:  apiKey,
		country: "in",
	}
}

// SetBaseURL overrides the endpoint, used in tests.
func (f *MediastackFetcher) SetBaseURL(u string) { f.baseURL = u }

// ID returns the provider name.
func (f *MediastackFetcher) ID() string { return "mediastack" }

// Fetch retrieves the current news entries.
func (f *MediastackFetcher) Fetch(ctx context.Context) ([]model.Article, error) {
	if f.apiKey == "" {
		return nil, fmt.Errorf("mediastack: api key not configured")
	}

	var out mediastackResponse
	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"countries":  f.country,
			"access_key": f.apiKey,
		}).
		SetResult(&out).
		Get(f.baseURL)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("mediastack: unexpected status %d", resp.StatusCode())
	}

	articles := make([]model.Article, 0, len(out.Data))
	for _, a := range out.Data {
		title := CleanText(a.Title)
		content := CleanText(a.Description)
		if title == "" && content == "" {
			continue
		}
		publishedAt, err := time.Parse(time.RFC3339, a.PublishedAt)
		if err != nil {
			publishedAt = time.Now().UTC()
		}
		lang := a.Language
		if lang == "" {
			lang = "en"
		}
		articles = append(articles, model.Article{
			ID:          uuid.NewString(),
			Title:       title,
			Content:     content,
			Source:      a.Source,
			URL:         a.URL,
			PublishedAt: publishedAt,
			Language:    lang,
		})
	}
	return articles, nil
}
