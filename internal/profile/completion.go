// Package profile scores profiles against a fixed checklist. The percent
// gates recommendation quality in the dashboards.
package profile

import (
	"strings"

	"talent-hub/internal/domain/user"
)

// JobSeekerCompletion checks four equally weighted fields: first name,
// skills, experience and resume reference.
func JobSeekerCompletion(p user.JobSeekerProfile) int {
	checks := []bool{
		strings.TrimSpace(p.FirstName) != "",
		len(p.Skills) > 0,
		strings.TrimSpace(p.Experience) != "",
		p.ResumeURL != nil && strings.TrimSpace(*p.ResumeURL) != "",
	}
	return percent(checks)
}

// EmployerCompletion mirrors the seeker formula over company name, industry,
// description and logo reference.
func EmployerCompletion(p user.EmployerProfile) int {
	checks := []bool{
		strings.TrimSpace(p.CompanyName) != "",
		p.Industry != "",
		strings.TrimSpace(p.Description) != "",
		p.LogoURL != nil && strings.TrimSpace(*p.LogoURL) != "",
	}
	return percent(checks)
}

func percent(checks []bool) int {
	if len(checks) == 0 {
		return 0
	}
	passed := 0
	for _, ok := range checks {
		if ok {
			passed++
		}
	}
	// round to nearest integer
	return (passed*100 + len(checks)/2) / len(checks)
}
