// Package content holds the static portfolio datasets. The data is compiled
// in rather than stored: the site describes one person and changes only with
// a redeploy.
package content

import "go-portfolio-backend/internal/domain"

var Profile = domain.Profile{
	Name:           "Hritik Singh",
	Location:       "Bengaluru, India",
	Role:           "Software Engineer",
	Specialization: "Full-Stack / Platform",
	Email:          "hritik3447@gmail.com",
	Phone:          "8210244533",
	GitHub:         "https://github.com/hritik3447",
	LinkedIn:       "https://linkedin.com/in/hritik-singh",
	Tagline:        "Building scalable FinTech platforms & backend systems",
	Bio:            "Founding / Platform Engineer specializing in FinTech systems, backend scalability, performance engineering, and cloud infrastructure",
}

var Education = domain.Education{
	Degree:      "B.Tech in Computer Science & System Engineering",
	Institution: "Jain (Deemed-to-be University)",
	Period:      "2019 – 2023",
	Location:    "Bengaluru, India",
	GPA:         "8.1 / 10",
}
