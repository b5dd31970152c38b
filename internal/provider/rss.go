package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"

	"newspulse/backend/internal/config"
	"newspulse/backend/internal/model"
)

// RSSFetcher retrieves articles from an RSS or Atom feed. It sits last in
// the chain as a keyless source for deployments without API credentials.
type RSSFetcher struct {
	parser  *gofeed.Parser
	feedURL string
}

// NewRSSFetcher creates a fetcher for the given feed URL.
func NewRSSFetcher(feedURL string) *RSSFetcher {
	parser := gofeed.NewParser()
	parser.UserAgent = config.UserAgent
	return &RSSFetcher{
		parser:  parser,
		feedURL: feedURL,
	}
}

// ID returns the provider name.
func (f *RSSFetcher) ID() string { return "rss" }

// Fetch parses the configured feed into articles.
func (f *RSSFetcher) Fetch(ctx context.Context) ([]model.Article, error) {
	if f.feedURL == "" {
		return nil, fmt.Errorf("rss: feed url not configured")
	}

	feed, err := f.parser.ParseURLWithContext(f.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("rss: parse %s: %w", f.feedURL, err)
	}

	source := CleanText(feed.Title)
	if source == "" {
		source = f.feedURL
	}

	articles := make([]model.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		title := CleanText(item.Title)
		content := CleanText(item.Content)
		if content == "" {
			content = CleanText(item.Description)
		}
		if title == "" && content == "" {
			continue
		}
		publishedAt := time.Now().UTC()
		if item.PublishedParsed != nil {
			publishedAt = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			publishedAt = *item.UpdatedParsed
		}
		lang := feed.Language
		if len(lang) > 2 {
			lang = lang[:2]
		}
		if lang == "" {
			lang = "en"
		}
		articles = append(articles, model.Article{
			ID:          uuid.NewString(),
			Title:       title,
			Content:     content,
			Source:      source,
			URL:         item.Link,
			PublishedAt: publishedAt,
			Language:    lang,
		})
	}
	return articles, nil
}
