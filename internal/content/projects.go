package content

import "go-portfolio-backend/internal/domain"

var Projects = []domain.Project{
	{
		ID:          "wright-research",
		Title:       "Wright Research Platform",
		Tagline:     "Investment research for 25,000+ users",
		Description: "Production FinTech platform delivering quantitative portfolio research, rebalancing and analytics.",
		Problem:     "Dashboard and API response times of 2-3 seconds were driving users away during market hours, exactly when load peaked.",
		Constraints: []string{
			"No downtime window — markets don't pause for deploys",
			"Regulated data: every optimization had to preserve audit trails",
			"Small team; changes had to ship incrementally",
		},
		Architecture: "Django/DRF monolith fronted by Nginx on GCP, with Redis as a read-through cache for portfolio and pricing data and Sentry for error tracking.",
		Decisions: []string{
			"Replaced Memcached with Redis to get data-structure-aware caching and persistence",
			"Cached at the serializer boundary rather than the ORM layer, keeping invalidation explicit",
			"Moved heavy aggregations into indexed materialized queries instead of request-time computation",
		},
		Impact: []domain.ProjectImpact{
			{Metric: "API Latency", Value: "<500ms", Before: "2-3s", Description: "p95 during market hours"},
			{Metric: "Cache Hit Rate", Value: "70-85%", Description: "Read-through Redis cache"},
			{Metric: "Dashboard Speed", Value: "60-80% faster", Description: "Query patterns & indexing"},
			{Metric: "Uptime", Value: "99.9%", Description: "Production ops on GCP"},
		},
		Technologies: []string{"Python", "Django", "DRF", "PostgreSQL", "Redis", "GCP", "Nginx", "Sentry"},
		Highlights: []string{
			"25,000+ active users in production",
			"Zero-downtime migration from Memcached to Redis",
		},
		Category: domain.ProjectFintech,
	},
	{
		ID:          "spring-street",
		Title:       "Spring Street",
		Tagline:     "Go microservices platform built from zero",
		Description: "Backend platform for a fintech startup: authentication, account management and transaction services as Go microservices on GKE.",
		Problem:     "The product needed a backend that could start small but scale to independent services without a rewrite.",
		Constraints: []string{
			"Single founding engineer for the first year",
			"Cloud budget capped; autoscaling had to be conservative",
		},
		Architecture: "Gin and Goa services behind a shared gateway, deployed on GKE with Prometheus metrics and CI/CD per service. React 18 + Vite frontend.",
		Decisions: []string{
			"Goa's design-first contracts kept service boundaries honest as the team grew",
			"JWT with RBAC baked into middleware instead of per-handler checks",
			"Vite code-splitting cut the initial bundle 40-50%",
		},
		Impact: []domain.ProjectImpact{
			{Metric: "Bundle Size", Value: "Reduced 40-50%", Description: "Vite code splitting & lazy loading"},
			{Metric: "PageSpeed Score", Value: "90+ / 75+", Description: "Desktop / Mobile"},
		},
		Technologies: []string{"Go", "Goa", "Gin", "React 18", "TypeScript", "Vite", "PostgreSQL", "Redis", "Kubernetes (GKE)", "Prometheus"},
		Highlights: []string{
			"Entire platform designed, built and operated as founding engineer",
		},
		Category: domain.ProjectFintech,
	},
	{
		ID:          "ecommerce-api",
		Title:       "E-commerce API",
		Tagline:     "High-throughput Go storefront backend",
		Description: "REST API for catalog, cart and checkout flows, built with Gin and JWT authentication.",
		Problem:     "An existing Node.js backend was saturating under catalog browse traffic.",
		Constraints: []string{
			"Existing clients pinned to the old API contract",
		},
		Architecture: "Single Gin service with layered handlers/usecases/repositories over PostgreSQL, JWT-secured checkout endpoints.",
		Decisions: []string{
			"Kept the old route contract and swapped the implementation behind it",
			"Chose Gin over heavier frameworks for predictable latency",
		},
		Impact: []domain.ProjectImpact{
			{Metric: "Throughput", Value: "4x", Before: "Node.js baseline", Description: "Sustained browse traffic"},
		},
		Technologies: []string{"Go", "Gin", "JWT", "PostgreSQL"},
		Highlights: []string{
			"Drop-in replacement: no client changes required",
		},
		Category: domain.ProjectFullstack,
	},
}
