package model

import "time"

// Department is the administrative department an article is filed under.
type Department string

const (
	DepartmentFinance     Department = "finance"
	DepartmentHealth      Department = "health"
	DepartmentEducation   Department = "education"
	DepartmentDefense     Department = "defense"
	DepartmentAgriculture Department = "agriculture"
	DepartmentTransport   Department = "transport"
	DepartmentOther       Department = "other"
)

// Sentiment is the tone label assigned by the keyword heuristic.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Article is a normalized news item. It is immutable after ingestion except
// for TranslatedTitle/TranslatedContent, which are populated lazily and are
// idempotent per language pair.
type Article struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Content           string     `json:"content"`
	TranslatedTitle   string     `json:"translatedTitle,omitempty"`
	TranslatedContent string     `json:"translatedContent,omitempty"`
	Source            string     `json:"source"`
	URL               string     `json:"url"`
	PublishedAt       time.Time  `json:"publishedAt"`
	Department        Department `json:"department"`
	Sentiment         Sentiment  `json:"sentiment"`
	Language          string     `json:"language"`
}

// VideoNews is a video item shipped with the reference dataset. Video
// ingestion has no live provider; these records exist so the dashboard
// always has displayable video content.
type VideoNews struct {
	ID                   string     `json:"id"`
	Title                string     `json:"title"`
	Thumbnail            string     `json:"thumbnail"`
	VideoURL             string     `json:"videoUrl"`
	Source               string     `json:"source"`
	PublishedAt          time.Time  `json:"publishedAt"`
	Duration             string     `json:"duration"`
	Transcript           string     `json:"transcript"`
	TranslatedTranscript string     `json:"translatedTranscript,omitempty"`
	Department           Department `json:"department"`
	Sentiment            Sentiment  `json:"sentiment"`
}
