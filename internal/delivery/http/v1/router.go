package v1

import (
	"net/http"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	ContentUC domain.ContentUsecase
	MetricsUC domain.MetricsUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		// Keep the error contract even for panics.
		response.Error(c, http.StatusInternalServerError, usecase.MsgUnexpected)
	}))
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")
	v1.Use(middleware.VisitorTracking(deps.MetricsUC))

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Message(c, http.StatusOK, "System operational")
	})

	// Public routes (the whole site is public; there is no auth surface)
	NewContactHandler(v1, deps.ContactUC)
	NewContentHandler(v1, deps.ContentUC)
	NewStatsHandler(v1, deps.MetricsUC, deps.Config.AdminToken)

	return r
}
