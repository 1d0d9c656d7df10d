package content

import "go-portfolio-backend/internal/domain"

var Skills = []domain.Skill{
	// Languages
	{Name: "Python", Category: domain.SkillLanguage, Projects: []string{"Wright Research"}, Description: "Django, DRF, data processing"},
	{Name: "Go", Category: domain.SkillLanguage, Projects: []string{"Spring Street", "E-commerce API"}, Description: "High-performance backend services"},
	{Name: "Java", Category: domain.SkillLanguage, Projects: []string{"Floworx"}, Description: "Spring Boot, enterprise applications"},
	{Name: "C++", Category: domain.SkillLanguage, Projects: []string{"Academic Projects"}, Description: "System programming, algorithms"},
	{Name: "JavaScript", Category: domain.SkillLanguage, Projects: []string{"Wright Research", "Spring Street", "Floworx"}, Description: "Modern ES6+ development"},
	{Name: "TypeScript", Category: domain.SkillLanguage, Projects: []string{"Wright Research", "Spring Street", "Floworx"}, Description: "Type-safe frontend & backend"},
	{Name: "SQL", Category: domain.SkillLanguage, Projects: []string{"Wright Research", "Spring Street", "Floworx"}, Description: "Database queries and optimization"},

	// Backend
	{Name: "Django", Category: domain.SkillBackend, Projects: []string{"Wright Research"}, Description: "REST APIs, ORM, admin"},
	{Name: "DRF", Category: domain.SkillBackend, Projects: []string{"Wright Research"}, Description: "Django REST Framework"},
	{Name: "Goa", Category: domain.SkillBackend, Projects: []string{"Spring Street"}, Description: "Go framework for microservices"},
	{Name: "Gin", Category: domain.SkillBackend, Projects: []string{"Spring Street", "E-commerce API"}, Description: "High-performance Go web framework"},
	{Name: "Spring Boot", Category: domain.SkillBackend, Projects: []string{"Floworx"}, Description: "Enterprise Java framework"},
	{Name: "Node.js", Category: domain.SkillBackend, Projects: []string{"Floworx"}, Description: "Runtime for JavaScript servers"},
	{Name: "Express", Category: domain.SkillBackend, Projects: []string{"Floworx"}, Description: "Node.js web framework"},
	{Name: "JWT", Category: domain.SkillBackend, Projects: []string{"Spring Street", "E-commerce API"}, Description: "Authentication & authorization"},
	{Name: "RBAC", Category: domain.SkillBackend, Projects: []string{"Spring Street"}, Description: "Role-based access control"},

	// Frontend
	{Name: "React 18", Category: domain.SkillFrontend, Projects: []string{"Wright Research", "Spring Street"}, Description: "Component library"},
	{Name: "TypeScript", Category: domain.SkillFrontend, Projects: []string{"Wright Research", "Spring Street"}, Description: "Type-safe UI development"},
	{Name: "Vite", Category: domain.SkillFrontend, Projects: []string{"Spring Street"}, Description: "Build tool, code-splitting"},
	{Name: "Tailwind CSS", Category: domain.SkillFrontend, Projects: []string{"Spring Street", "This Portfolio"}, Description: "Utility-first CSS framework"},

	// Databases
	{Name: "PostgreSQL", Category: domain.SkillInfra, Projects: []string{"Wright Research", "Spring Street", "Floworx"}, Description: "Primary relational database"},
	{Name: "Redis", Category: domain.SkillInfra, Projects: []string{"Wright Research", "Spring Street"}, Description: "Caching, sessions"},
	{Name: "SQLite", Category: domain.SkillInfra, Projects: []string{"Various Projects"}, Description: "Lightweight database"},

	// Cloud & Infrastructure
	{Name: "GCP", Category: domain.SkillInfra, Projects: []string{"Wright Research", "Spring Street"}, Description: "Google Cloud Platform"},
	{Name: "Docker", Category: domain.SkillInfra, Projects: []string{"Spring Street", "Wright Research"}, Description: "Containerization"},
	{Name: "Kubernetes (GKE)", Category: domain.SkillInfra, Projects: []string{"Spring Street"}, Description: "Container orchestration"},
	{Name: "Nginx", Category: domain.SkillInfra, Projects: []string{"Wright Research"}, Description: "Reverse proxy, load balancing"},
	{Name: "CI/CD", Category: domain.SkillInfra, Projects: []string{"Spring Street", "Wright Research"}, Description: "Continuous integration & deployment"},

	// Observability
	{Name: "Prometheus", Category: domain.SkillTools, Projects: []string{"Spring Street"}, Description: "Metrics & observability"},
	{Name: "Sentry", Category: domain.SkillTools, Projects: []string{"Wright Research"}, Description: "Error tracking & monitoring"},
}
