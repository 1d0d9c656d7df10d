package usecase

import (
	"go-portfolio-backend/internal/content"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type contentUsecase struct{}

// NewContentUsecase creates a usecase over the compiled-in portfolio data.
func NewContentUsecase() domain.ContentUsecase {
	return &contentUsecase{}
}

func (uc *contentUsecase) Profile() *domain.Profile {
	p := content.Profile
	return &p
}

func (uc *contentUsecase) Experiences() []domain.Experience {
	return content.Experiences
}

func (uc *contentUsecase) Education() *domain.Education {
	e := content.Education
	return &e
}

func (uc *contentUsecase) Skills(category domain.SkillCategory) []domain.Skill {
	if category == "" {
		return content.Skills
	}
	filtered := make([]domain.Skill, 0, len(content.Skills))
	for _, s := range content.Skills {
		if s.Category == category {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

func (uc *contentUsecase) Projects(category domain.ProjectCategory) []domain.Project {
	if category == "" {
		return content.Projects
	}
	filtered := make([]domain.Project, 0, len(content.Projects))
	for _, p := range content.Projects {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func (uc *contentUsecase) ProjectByID(id string) (*domain.Project, error) {
	for _, p := range content.Projects {
		if p.ID == id {
			project := p
			return &project, nil
		}
	}
	return nil, apperror.NotFound("Project not found")
}

func (uc *contentUsecase) PerformanceMetrics() []domain.PerformanceMetric {
	return content.PerformanceMetrics
}
