package v1

import (
	"crypto/subtle"
	"net/http"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	metricsUC  domain.MetricsUsecase
	adminToken string
}

// NewStatsHandler registers the operator stats route, guarded by an admin
// token header.
func NewStatsHandler(public *gin.RouterGroup, metricsUC domain.MetricsUsecase, adminToken string) {
	handler := &StatsHandler{
		metricsUC:  metricsUC,
		adminToken: adminToken,
	}

	public.GET("/stats", handler.GetStats)
}

// GetStats returns aggregate visitor counters. Individual visit records never
// leave the server.
func (h *StatsHandler) GetStats(c *gin.Context) {
	token := c.GetHeader("X-Admin-Token")
	if h.adminToken == "" ||
		subtle.ConstantTimeCompare([]byte(token), []byte(h.adminToken)) != 1 {
		c.Error(apperror.Unauthorized("Unauthorized"))
		return
	}

	stats, err := h.metricsUC.Stats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
