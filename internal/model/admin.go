package model

import "time"

// Alert statuses.
const (
	AlertStatusSent     = "sent"
	AlertStatusPending  = "pending"
	AlertStatusResolved = "resolved"
)

// Alert types.
const (
	AlertTypeNegative = "negative"
	AlertTypeSystem   = "system"
)

// Alert is an admin-surface record raised when monitoring detects something
// worth a human look. The pipeline produces negative-coverage alerts; system
// alerts come from operational failures.
type Alert struct {
	ID         int64      `json:"id"`
	Type       string     `json:"type"`
	Department Department `json:"department,omitempty"`
	Message    string     `json:"message,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"time"`
}

// CrawlJob statuses.
const (
	CrawlStatusRunning   = "running"
	CrawlStatusCompleted = "completed"
	CrawlStatusFailed    = "failed"
)

// CrawlJob is an admin-surface record of a triggered ingestion run.
type CrawlJob struct {
	ID         int64      `json:"id"`
	Target     string     `json:"target"`
	StartTime  time.Time  `json:"startTime"`
	EndTime    *time.Time `json:"endTime"`
	Status     string     `json:"status"`
	ItemsFound int        `json:"itemsFound,omitempty"`
	Error      string     `json:"error,omitempty"`
}
