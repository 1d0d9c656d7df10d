package content

import "go-portfolio-backend/internal/domain"

var PerformanceMetrics = []domain.PerformanceMetric{
	{
		Label:       "Users Served",
		Value:       "25,000+",
		Improvement: "Wright Research Platform",
		Description: "Production FinTech platform",
	},
	{
		Label:       "API Latency",
		Value:       "<500ms",
		Improvement: "From 2-3s",
		Description: "Redis caching & optimization",
	},
	{
		Label:       "Cache Hit Rate",
		Value:       "70-85%",
		Improvement: "Memcached → Redis",
		Description: "High-performance caching",
	},
	{
		Label:       "Dashboard Speed",
		Value:       "60-80% faster",
		Improvement: "Database optimization",
		Description: "Query patterns & indexing",
	},
	{
		Label:       "PageSpeed Score",
		Value:       "90+ / 75+",
		Improvement: "Desktop / Mobile",
		Description: "Performance optimization",
	},
	{
		Label:       "Bundle Size",
		Value:       "Reduced 40-50%",
		Improvement: "Vite optimization",
		Description: "Code splitting & lazy loading",
	},
	{
		Label:       "Uptime",
		Value:       "99.9%",
		Improvement: "Production ops",
		Description: "GCP infrastructure",
	},
}
