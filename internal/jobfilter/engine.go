package jobfilter

import (
	"strings"

	"talent-hub/internal/domain/job"
)

// Criteria is a set of optional, AND-composed predicates. Zero-valued fields
// do not filter. Text fields match case-insensitively as substrings;
// whitespace-only text counts as absent.
//
// Salary bounds use range-overlap semantics: SalaryMin keeps a job only when
// its SalaryMax is known and at least the asked minimum, and symmetrically
// for SalaryMax. A job missing the relevant bound fails the filter, since
// the range cannot be proven to satisfy the ask.
type Criteria struct {
	SearchTerm      string
	Location        string
	JobType         job.Type
	ExperienceLevel job.ExperienceLevel
	SalaryMin       *int
	SalaryMax       *int
}

func (c Criteria) IsZero() bool {
	return strings.TrimSpace(c.SearchTerm) == "" &&
		strings.TrimSpace(c.Location) == "" &&
		c.JobType == "" &&
		c.ExperienceLevel == "" &&
		c.SalaryMin == nil &&
		c.SalaryMax == nil
}

// Apply returns the jobs matching every set criterion, preserving input
// order. It is pure and idempotent; restricting to active jobs is the
// caller's precondition, not a criterion.
func Apply(jobs []job.Job, c Criteria) []job.Job {
	term := normalize(c.SearchTerm)
	loc := normalize(c.Location)

	out := make([]job.Job, 0, len(jobs))
	for _, j := range jobs {
		if matches(j, c, term, loc) {
			out = append(out, j)
		}
	}
	return out
}

func matches(j job.Job, c Criteria, term, loc string) bool {
	if term != "" && !containsAny(term, j.Title, j.CompanyName, j.Description, j.Location) {
		return false
	}
	if loc != "" && !strings.Contains(strings.ToLower(j.Location), loc) {
		return false
	}
	if c.JobType != "" && j.JobType != c.JobType {
		return false
	}
	if c.ExperienceLevel != "" && j.ExperienceLevel != c.ExperienceLevel {
		return false
	}
	if c.SalaryMin != nil {
		if j.SalaryMax == nil || *j.SalaryMax < *c.SalaryMin {
			return false
		}
	}
	if c.SalaryMax != nil {
		if j.SalaryMin == nil || *j.SalaryMin > *c.SalaryMax {
			return false
		}
	}
	return true
}

func containsAny(term string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
