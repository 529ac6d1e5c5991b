package seeder

import (
	"context"
	"fmt"

	"talent-hub/internal/database"
)

// DemoJobsSeeder posts a handful of openings against the demo employers.
type DemoJobsSeeder struct{}

func (DemoJobsSeeder) Name() string { return "demo_jobs" }

func (DemoJobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs",
		"id", "employer_id", "title", "company_name", "location",
		"salary_min", "salary_max", "job_type", "experience_level", "status",
	); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	jobs := []struct {
		EmployerEmail string
		Title         string
		CompanyName   string
		Description   string
		Requirements  string
		Location      string
		SalaryMin     int
		SalaryMax     int
		JobType       string
		Level         string
		Status        string
	}{
		{
			EmployerEmail: "hr@techflow.dev",
			Title:         "Senior Backend Engineer",
			CompanyName:   "TechFlow Solutions",
			Description:   "Own our Go services end to end, from API design to production.",
			Requirements:  "Go, PostgreSQL, distributed systems experience.",
			Location:      "Austin, TX",
			SalaryMin:     120000,
			SalaryMax:     160000,
			JobType:       "full-time",
			Level:         "senior",
			Status:        "active",
		},
		{
			EmployerEmail: "hr@techflow.dev",
			Title:         "Platform Engineering Intern",
			CompanyName:   "TechFlow Solutions",
			Description:   "Summer internship on the infrastructure team.",
			Requirements:  "Familiarity with Linux and any programming language.",
			Location:      "Remote",
			SalaryMin:     0,
			SalaryMax:     0,
			JobType:       "internship",
			Level:         "entry",
			Status:        "active",
		},
		{
			EmployerEmail: "talent@brightcare.dev",
			Title:         "Frontend Developer",
			CompanyName:   "BrightCare Health",
			Description:   "Build patient-facing React dashboards.",
			Requirements:  "React, TypeScript, accessibility mindfulness.",
			Location:      "Boston, MA",
			SalaryMin:     90000,
			SalaryMax:     120000,
			JobType:       "full-time",
			Level:         "mid",
			Status:        "active",
		},
		{
			EmployerEmail: "talent@brightcare.dev",
			Title:         "Data Analyst (Contract)",
			CompanyName:   "BrightCare Health",
			Description:   "Six-month contract supporting the care-outcomes team.",
			Requirements:  "SQL, dashboarding.",
			Location:      "Boston, MA",
			SalaryMin:     70000,
			SalaryMax:     85000,
			JobType:       "contract",
			Level:         "mid",
			Status:        "inactive",
		},
	}

	for _, j := range jobs {
		var salaryMin, salaryMax any
		if j.SalaryMin > 0 {
			salaryMin = j.SalaryMin
		}
		if j.SalaryMax > 0 {
			salaryMax = j.SalaryMax
		}
		_, err := tx.Exec(
			ctx,
			`INSERT INTO jobs (employer_id, title, company_name, description, requirements, location,
			                   salary_min, salary_max, job_type, experience_level, status)
			 SELECT u.id, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
			 FROM users u
			 WHERE u.email = $1
			   AND NOT EXISTS (SELECT 1 FROM jobs j WHERE j.employer_id = u.id AND j.title = $2)`,
			j.EmployerEmail, j.Title, j.CompanyName, j.Description, j.Requirements, j.Location,
			salaryMin, salaryMax, j.JobType, j.Level, j.Status,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
