package v1

import (
	"net/http"

	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentUC domain.ContentUsecase
}

// NewContentHandler registers the read-only portfolio content routes.
func NewContentHandler(public *gin.RouterGroup, contentUC domain.ContentUsecase) {
	handler := &ContentHandler{
		contentUC: contentUC,
	}

	public.GET("/profile", handler.GetProfile)
	public.GET("/experience", handler.GetExperience)
	public.GET("/education", handler.GetEducation)
	public.GET("/skills", handler.GetSkills)
	public.GET("/projects", handler.GetProjects)
	public.GET("/projects/:id", handler.GetProject)
	public.GET("/performance", handler.GetPerformance)
}

func (h *ContentHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentUC.Profile())
}

func (h *ContentHandler) GetExperience(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentUC.Experiences())
}

func (h *ContentHandler) GetEducation(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentUC.Education())
}

// GetSkills lists skills, optionally filtered with ?category=.
func (h *ContentHandler) GetSkills(c *gin.Context) {
	category := domain.SkillCategory(c.Query("category"))
	c.JSON(http.StatusOK, h.contentUC.Skills(category))
}

// GetProjects lists project case studies, optionally filtered with ?category=.
func (h *ContentHandler) GetProjects(c *gin.Context) {
	category := domain.ProjectCategory(c.Query("category"))
	c.JSON(http.StatusOK, h.contentUC.Projects(category))
}

func (h *ContentHandler) GetProject(c *gin.Context) {
	project, err := h.contentUC.ProjectByID(c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ContentHandler) GetPerformance(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentUC.PerformanceMetrics())
}
