package content

import "go-portfolio-backend/internal/domain"

var Experiences = []domain.Experience{
	{
		Company:     "Wright Research",
		Role:        "Platform Engineer",
		Period:      "2023 – Present",
		Location:    "Bengaluru, India",
		Description: "Investment research platform serving 25,000+ users. Own backend scalability, caching and cloud infrastructure.",
		Achievements: []string{
			"Cut API latency from 2-3s to under 500ms by introducing Redis caching with 70-85% hit rates",
			"Sped up portfolio dashboards 60-80% through query restructuring and targeted indexing",
			"Raised PageSpeed scores to 90+ desktop / 75+ mobile and reduced bundle size 40-50%",
			"Kept production at 99.9% uptime on GCP with Nginx load balancing and CI/CD pipelines",
		},
		Technologies: []string{"Python", "Django", "DRF", "React 18", "PostgreSQL", "Redis", "GCP", "Nginx", "Sentry"},
	},
	{
		Company:     "Spring Street",
		Role:        "Founding Engineer",
		Period:      "2022 – 2023",
		Location:    "Remote",
		Description: "First engineering hire; built the backend platform and deployment infrastructure from scratch.",
		Achievements: []string{
			"Designed Go microservices with Goa and Gin, deployed on GKE",
			"Implemented JWT authentication with role-based access control",
			"Set up Prometheus metrics and CI/CD for every service",
			"Moved the frontend build to Vite with code-splitting and lazy loading",
		},
		Technologies: []string{"Go", "Goa", "Gin", "React 18", "TypeScript", "PostgreSQL", "Redis", "Kubernetes (GKE)", "Prometheus"},
	},
	{
		Company:     "Floworx",
		Role:        "Software Engineer",
		Period:      "2021 – 2022",
		Location:    "Bengaluru, India",
		Description: "Workflow automation product built on a Java and Node.js service stack.",
		Achievements: []string{
			"Built Spring Boot services backing the core workflow engine",
			"Delivered internal tooling with Node.js and Express",
			"Owned PostgreSQL schema design for multi-tenant workflow data",
		},
		Technologies: []string{"Java", "Spring Boot", "Node.js", "Express", "TypeScript", "PostgreSQL"},
	},
}
