package domain

// Profile is the author identity shown in the hero and contact sections.
type Profile struct {
	Name           string `json:"name"`
	Location       string `json:"location"`
	Role           string `json:"role"`
	Specialization string `json:"specialization"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	GitHub         string `json:"github"`
	LinkedIn       string `json:"linkedin"`
	Tagline        string `json:"tagline"`
	Bio            string `json:"bio"`
}

// Experience is one entry of the work-history timeline.
type Experience struct {
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	Period       string   `json:"period"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	Technologies []string `json:"technologies"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Period      string `json:"period"`
	Location    string `json:"location"`
	GPA         string `json:"gpa,omitempty"`
}

type SkillCategory string

const (
	SkillLanguage SkillCategory = "language"
	SkillBackend  SkillCategory = "backend"
	SkillFrontend SkillCategory = "frontend"
	SkillInfra    SkillCategory = "infra"
	SkillTools    SkillCategory = "tools"
)

type Skill struct {
	Name        string        `json:"name"`
	Category    SkillCategory `json:"category"`
	Projects    []string      `json:"projects,omitempty"`
	Description string        `json:"description,omitempty"`
}

type ProjectCategory string

const (
	ProjectFintech   ProjectCategory = "fintech"
	ProjectFullstack ProjectCategory = "fullstack"
	ProjectOther     ProjectCategory = "other"
)

// ProjectImpact is one measured outcome of a project case study.
type ProjectImpact struct {
	Metric      string `json:"metric"`
	Value       string `json:"value"`
	Before      string `json:"before,omitempty"`
	Description string `json:"description,omitempty"`
}

// Project is a full case study shown in the projects section.
type Project struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Tagline      string          `json:"tagline"`
	Description  string          `json:"description"`
	Problem      string          `json:"problem"`
	Constraints  []string        `json:"constraints"`
	Architecture string          `json:"architecture"`
	Decisions    []string        `json:"decisions"`
	Impact       []ProjectImpact `json:"impact"`
	Technologies []string        `json:"technologies"`
	Highlights   []string        `json:"highlights"`
	Category     ProjectCategory `json:"category"`
	URL          string          `json:"url,omitempty"`
}

// PerformanceMetric is one headline number for the performance section.
type PerformanceMetric struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Improvement string `json:"improvement,omitempty"`
	Description string `json:"description"`
}

// ContentUsecase exposes the static portfolio datasets to the delivery layer.
// All reads are in-memory and never block, so no context is threaded through.
type ContentUsecase interface {
	Profile() *Profile
	Experiences() []Experience
	Education() *Education
	// Skills returns all skills, or only those in the given category when
	// category is non-empty.
	Skills(category SkillCategory) []Skill
	// Projects returns all projects, or only those in the given category
	// when category is non-empty.
	Projects(category ProjectCategory) []Project
	ProjectByID(id string) (*Project, error)
	PerformanceMetrics() []PerformanceMetric
}
