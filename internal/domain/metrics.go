package domain

import (
	"context"
	"time"
)

// Visit is a single privacy-conscious page view record. The IP address is
// salted and hashed before it reaches this type; the raw address is never
// stored.
type Visit struct {
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// VisitorStats holds aggregate counters for the stats endpoint. Only
// aggregates leave the server; individual visits stay in the store.
type VisitorStats struct {
	TotalVisits    int64 `json:"total_visits"`
	UniqueVisitors int64 `json:"unique_visitors"`
	VisitsToday    int64 `json:"visits_today"`
	VisitsThisWeek int64 `json:"visits_this_week"`
}

// MetricsRepository persists and aggregates visit records.
type MetricsRepository interface {
	RecordVisit(ctx context.Context, visit *Visit) error
	Stats(ctx context.Context) (*VisitorStats, error)
	// DeleteOlderThan removes visits recorded before cutoff and returns the
	// number of rows removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// MetricsUsecase defines the interface for visitor tracking operations.
type MetricsUsecase interface {
	// TrackVisit hashes the visitor address and records the page view.
	// Recording failures are logged, never surfaced to the request path.
	TrackVisit(ctx context.Context, ip, userAgent, path string)
	Stats(ctx context.Context) (*VisitorStats, error)
}
