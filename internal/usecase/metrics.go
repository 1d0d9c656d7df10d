package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"go-portfolio-backend/internal/domain"
)

type metricsUsecase struct {
	repo domain.MetricsRepository
	salt string
}

// NewMetricsUsecase creates a visitor-metrics usecase. The salt is mixed into
// every IP hash; a per-process random salt keeps hashes consistent within a
// deployment without ever storing a reversible address.
func NewMetricsUsecase(repo domain.MetricsRepository, salt string) domain.MetricsUsecase {
	return &metricsUsecase{
		repo: repo,
		salt: salt,
	}
}

// hashIP hashes an IP address for privacy compliance (consistent per IP).
func (uc *metricsUsecase) hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + uc.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func (uc *metricsUsecase) TrackVisit(ctx context.Context, ip, userAgent, path string) {
	visit := &domain.Visit{
		HashedIP:  uc.hashIP(ip),
		UserAgent: userAgent,
		Path:      path,
		Timestamp: time.Now(),
	}
	if err := uc.repo.RecordVisit(ctx, visit); err != nil {
		slog.Error("failed to record visitor", "error", err)
	}
}

func (uc *metricsUsecase) Stats(ctx context.Context) (*domain.VisitorStats, error) {
	return uc.repo.Stats(ctx)
}

type noopMetricsUsecase struct{}

// NewNoopMetricsUsecase returns a metrics usecase that records nothing.
// Used when the metrics store cannot be opened: visitor tracking degrades,
// the site keeps serving.
func NewNoopMetricsUsecase() domain.MetricsUsecase {
	return noopMetricsUsecase{}
}

func (noopMetricsUsecase) TrackVisit(context.Context, string, string, string) {}

func (noopMetricsUsecase) Stats(context.Context) (*domain.VisitorStats, error) {
	return &domain.VisitorStats{}, nil
}
