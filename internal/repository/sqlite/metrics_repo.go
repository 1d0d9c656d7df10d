// Package sqlite holds the visitor-metrics store. Submitted contact messages
// are never persisted; page-view aggregates are the only durable state the
// site keeps.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"go-portfolio-backend/internal/domain"
)

const createVisitorsTable = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
)`

type MetricsRepository struct {
	db *sql.DB
}

// NewMetricsRepository opens (creating if needed) the metrics database at
// path and ensures the schema exists.
func NewMetricsRepository(path string) (*MetricsRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open metrics database: %w", err)
	}

	if _, err := db.Exec(createVisitorsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create visitors table: %w", err)
	}

	return &MetricsRepository{db: db}, nil
}

func (r *MetricsRepository) RecordVisit(ctx context.Context, visit *domain.Visit) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, visit.HashedIP, visit.UserAgent, visit.Path, visit.Timestamp.UTC())
	return err
}

func (r *MetricsRepository) Stats(ctx context.Context) (*domain.VisitorStats, error) {
	stats := &domain.VisitorStats{}

	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM visitors").Scan(&stats.TotalVisits)
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRowContext(ctx, "SELECT COUNT(DISTINCT hashed_ip) FROM visitors").Scan(&stats.UniqueVisitors)
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM visitors
		WHERE DATE(timestamp) = DATE('now')
	`).Scan(&stats.VisitsToday)
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM visitors
		WHERE timestamp >= datetime('now', '-7 days')
	`).Scan(&stats.VisitsThisWeek)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *MetricsRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM visitors WHERE timestamp < ?
	`, cutoff.UTC())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *MetricsRepository) Close() error {
	return r.db.Close()
}
