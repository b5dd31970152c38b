package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"newspulse/backend/internal/model"
	"newspulse/backend/internal/snowflake"
)

type AlertRepository interface {
	Create(ctx context.Context, alertType string, department model.Department, message, alertKey string) (model.Alert, error)
	GetByID(ctx context.Context, id int64) (model.Alert, error)
	List(ctx context.Context, status string, limit int) ([]model.Alert, error)
	FindUnresolvedByKey(ctx context.Context, alertKey string) (*model.Alert, error)
	Resolve(ctx context.Context, id int64) error
}

type alertRepository struct {
	db dbtx
}

func NewAlertRepository(db dbtx) AlertRepository {
	return &alertRepository{db: db}
}

func (r *alertRepository) Create(ctx context.Context, alertType string, department model.Department, message, alertKey string) (model.Alert, error) {
	id := snowflake.NextID()
	now := time.Now().UTC()
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO alerts (id, type, message, department, status, alert_key, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id,
		alertType,
		message,
		nullableString(string(department)),
		model.AlertStatusSent,
		nullableString(alertKey),
		formatTime(now),
	)
	if err != nil {
		return model.Alert{}, fmt.Errorf("create alert: %w", err)
	}

	return model.Alert{
		ID:         id,
		Type:       alertType,
		Department: department,
		Message:    message,
		Status:     model.AlertStatusSent,
		CreatedAt:  now,
	}, nil
}

func (r *alertRepository) GetByID(ctx context.Context, id int64) (model.Alert, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, type, message, department, status, created_at FROM alerts WHERE id = ?`,
		id,
	)
	alert, err := scanAlert(row)
	if err != nil {
		return model.Alert{}, fmt.Errorf("get alert: %w", err)
	}
	return alert, nil
}

func (r *alertRepository) List(ctx context.Context, status string, limit int) ([]model.Alert, error) {
	query := `SELECT id, type, message, department, status, created_at FROM alerts`
	args := []any{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()

	alerts := []model.Alert{}
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		alerts = append(alerts, alert)
	}
	return alerts, rows.Err()
}

func (r *alertRepository) FindUnresolvedByKey(ctx context.Context, alertKey string) (*model.Alert, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, type, message, department, status, created_at FROM alerts WHERE alert_key = ? AND status != ? ORDER BY created_at DESC LIMIT 1`,
		alertKey,
		model.AlertStatusResolved,
	)
	alert, err := scanAlert(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find alert by key: %w", err)
	}
	return &alert, nil
}

func (r *alertRepository) Resolve(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(
		ctx,
		`UPDATE alerts SET status = ?, resolved_at = ? WHERE id = ?`,
		model.AlertStatusResolved,
		formatTime(time.Now()),
		id,
	)
	if err != nil {
		return fmt.Errorf("resolve alert: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("resolve alert: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAlert(row rowScanner) (model.Alert, error) {
	var alert model.Alert
	var department sql.NullString
	var createdAt string
	if err := row.Scan(&alert.ID, &alert.Type, &alert.Message, &department, &alert.Status, &createdAt); err != nil {
		return model.Alert{}, err
	}
	if department.Valid {
		alert.Department = model.Department(department.String)
	}
	var err error
	alert.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return model.Alert{}, fmt.Errorf("parse alert created_at: %w", err)
	}
	return alert, nil
}
