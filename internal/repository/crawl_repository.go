package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"newspulse/backend/internal/model"
	"newspulse/backend/internal/snowflake"
)

type CrawlRepository interface {
	Start(ctx context.Context, target string) (model.CrawlJob, error)
	Complete(ctx context.Context, id int64, itemsFound int) error
	Fail(ctx context.Context, id int64, errMsg string) error
	GetByID(ctx context.Context, id int64) (model.CrawlJob, error)
	List(ctx context.Context, limit int) ([]model.CrawlJob, error)
}

type crawlRepository struct {
	db dbtx
}

func NewCrawlRepository(db dbtx) CrawlRepository {
	return &crawlRepository{db: db}
}

func (r *crawlRepository) Start(ctx context.Context, target string) (model.CrawlJob, error) {
	id := snowflake.NextID()
	now := time.Now().UTC()
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO crawl_jobs (id, source, status, start_time) VALUES (?, ?, ?, ?)`,
		id,
		target,
		model.CrawlStatusRunning,
		formatTime(now),
	)
	if err != nil {
		return model.CrawlJob{}, fmt.Errorf("start crawl job: %w", err)
	}

	return model.CrawlJob{
		ID:        id,
		Target:    target,
		StartTime: now,
		Status:    model.CrawlStatusRunning,
	}, nil
}

func (r *crawlRepository) Complete(ctx context.Context, id int64, itemsFound int) error {
	return r.finish(ctx, id, model.CrawlStatusCompleted, itemsFound, "")
}

func (r *crawlRepository) Fail(ctx context.Context, id int64, errMsg string) error {
	return r.finish(ctx, id, model.CrawlStatusFailed, 0, errMsg)
}

func (r *crawlRepository) finish(ctx context.Context, id int64, status string, itemsFound int, errMsg string) error {
	res, err := r.db.ExecContext(
		ctx,
		`UPDATE crawl_jobs SET status = ?, articles_found = ?, error_message = ?, end_time = ? WHERE id = ?`,
		status,
		itemsFound,
		nullableString(errMsg),
		formatTime(time.Now()),
		id,
	)
	if err != nil {
		return fmt.Errorf("finish crawl job: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finish crawl job: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *crawlRepository) GetByID(ctx context.Context, id int64) (model.CrawlJob, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, source, status, articles_found, error_message, start_time, end_time FROM crawl_jobs WHERE id = ?`,
		id,
	)
	job, err := scanCrawlJob(row)
	if err != nil {
		return model.CrawlJob{}, fmt.Errorf("get crawl job: %w", err)
	}
	return job, nil
}

func (r *crawlRepository) List(ctx context.Context, limit int) ([]model.CrawlJob, error) {
	query := `SELECT id, source, status, articles_found, error_message, start_time, end_time FROM crawl_jobs ORDER BY start_time DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list crawl jobs: %w", err)
	}
	defer rows.Close()

	jobs := []model.CrawlJob{}
	for rows.Next() {
		job, err := scanCrawlJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan crawl job: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func scanCrawlJob(row rowScanner) (model.CrawlJob, error) {
	var job model.CrawlJob
	var errMsg sql.NullString
	var startTime string
	var endTime sql.NullString
	if err := row.Scan(&job.ID, &job.Target, &job.Status, &job.ItemsFound, &errMsg, &startTime, &endTime); err != nil {
		return model.CrawlJob{}, err
	}
	if errMsg.Valid {
		job.Error = errMsg.String
	}
	var err error
	job.StartTime, err = parseTime(startTime)
	if err != nil {
		return model.CrawlJob{}, fmt.Errorf("parse crawl start_time: %w", err)
	}
	job.EndTime, err = parseTimePtr(endTime)
	if err != nil {
		return model.CrawlJob{}, fmt.Errorf("parse crawl end_time: %w", err)
	}
	return job, nil
}
