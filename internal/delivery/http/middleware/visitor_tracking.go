package middleware

import (
	"context"
	"net/http"
	"strings"

	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// VisitorTracking records privacy-conscious page views. It skips the
// operational endpoints, preflight requests, and visitors who send a
// Do Not Track header. Recording runs in the background on a detached
// context so an abandoned request still completes its insert and a slow
// store never delays a response.
func VisitorTracking(metricsUC domain.MetricsUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method == http.MethodOptions ||
			strings.HasSuffix(path, "/health") ||
			strings.HasSuffix(path, "/stats") {
			c.Next()
			return
		}

		// Respect Do Not Track header
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		go metricsUC.TrackVisit(context.Background(), c.ClientIP(), c.GetHeader("User-Agent"), path)
		c.Next()
	}
}
