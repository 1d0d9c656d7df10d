package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/repository/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) *sqlite.MetricsRepository {
	t.Helper()
	repo, err := sqlite.NewMetricsRepository(filepath.Join(t.TempDir(), "metrics.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func visit(hashedIP, path string, at time.Time) *domain.Visit {
	return &domain.Visit{
		HashedIP:  hashedIP,
		UserAgent: "test-agent",
		Path:      path,
		Timestamp: at,
	}
}

func TestMetricsRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Should aggregate visits into stats", func(t *testing.T) {
		repo := newRepo(t)
		now := time.Now()

		require.NoError(t, repo.RecordVisit(ctx, visit("aaaa", "/v1/profile", now)))
		require.NoError(t, repo.RecordVisit(ctx, visit("aaaa", "/v1/projects", now)))
		require.NoError(t, repo.RecordVisit(ctx, visit("bbbb", "/v1/profile", now)))

		stats, err := repo.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.TotalVisits)
		assert.Equal(t, int64(2), stats.UniqueVisitors)
		assert.Equal(t, int64(3), stats.VisitsThisWeek)
	})

	t.Run("Should prune old records only", func(t *testing.T) {
		repo := newRepo(t)
		now := time.Now()

		require.NoError(t, repo.RecordVisit(ctx, visit("aaaa", "/v1/profile", now)))
		require.NoError(t, repo.RecordVisit(ctx, visit("bbbb", "/v1/profile", now.AddDate(-2, 0, 0))))

		deleted, err := repo.DeleteOlderThan(ctx, now.AddDate(0, -12, 0))
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		stats, err := repo.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.TotalVisits)
	})

	t.Run("Should start empty", func(t *testing.T) {
		repo := newRepo(t)
		stats, err := repo.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), stats.TotalVisits)
		assert.Equal(t, int64(0), stats.UniqueVisitors)
	})
}
