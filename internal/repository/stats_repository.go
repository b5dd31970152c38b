package repository

import (
	"context"
	"fmt"
	"time"

	"newspulse/backend/internal/snowflake"
)

// RunRecord is one persisted ingestion run.
type RunRecord struct {
	ID           int64     `json:"id"`
	Source       string    `json:"source"`
	ArticleCount int       `json:"articleCount"`
	FallbackUsed bool      `json:"fallbackUsed"`
	RunAt        time.Time `json:"runAt"`
}

type StatsRepository interface {
	RecordRun(ctx context.Context, source string, articleCount int, fallbackUsed bool) error
	RunCount(ctx context.Context) (int, error)
	TotalArticles(ctx context.Context) (int, error)
	RecentRuns(ctx context.Context, limit int) ([]RunRecord, error)
}

type statsRepository struct {
	db dbtx
}

func NewStatsRepository(db dbtx) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) RecordRun(ctx context.Context, source string, articleCount int, fallbackUsed bool) error {
	fallback := 0
	if fallbackUsed {
		fallback = 1
	}
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO run_stats (id, source, article_count, fallback_used, run_at) VALUES (?, ?, ?, ?, ?)`,
		snowflake.NextID(),
		source,
		articleCount,
		fallback,
		formatTime(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

func (r *statsRepository) RunCount(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM run_stats`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("run count: %w", err)
	}
	return count, nil
}

func (r *statsRepository) TotalArticles(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(article_count), 0) FROM run_stats`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total articles: %w", err)
	}
	return total, nil
}

func (r *statsRepository) RecentRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	query := `SELECT id, source, article_count, fallback_used, run_at FROM run_stats ORDER BY run_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("recent runs: %w", err)
	}
	defer rows.Close()

	runs := []RunRecord{}
	for rows.Next() {
		var rec RunRecord
		var fallback int
		var runAt string
		if err := rows.Scan(&rec.ID, &rec.Source, &rec.ArticleCount, &fallback, &runAt); err != nil {
			return nil, fmt.Errorf("scan run record: %w", err)
		}
		rec.FallbackUsed = fallback != 0
		rec.RunAt, err = parseTime(runAt)
		if err != nil {
			return nil, fmt.Errorf("parse run_at: %w", err)
		}
		runs = append(runs, rec)
	}
	return runs, rows.Err()
}
