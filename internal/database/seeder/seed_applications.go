package seeder

import (
	"context"
	"fmt"

	"talent-hub/internal/database"
)

// DemoApplicationsSeeder walks two demo seekers through the workflow so the
// dashboards have non-zero counts on first load.
type DemoApplicationsSeeder struct{}

func (DemoApplicationsSeeder) Name() string { return "demo_applications" }

func (DemoApplicationsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "applications",
		"id", "job_id", "job_seeker_id", "job_title", "company_name", "location", "status",
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

	apps := []struct {
		SeekerEmail string
		JobTitle    string
		CoverLetter string
		Status      string
	}{
		{
			SeekerEmail: "sarah.chen@example.com",
			JobTitle:    "Senior Backend Engineer",
			CoverLetter: "I have spent the last five years running Go services in production.",
			Status:      "shortlisted",
		},
		{
			SeekerEmail: "marcus.reed@example.com",
			JobTitle:    "Frontend Developer",
			CoverLetter: "React and TypeScript are my daily tools.",
			Status:      "applied",
		},
		{
			SeekerEmail: "marcus.reed@example.com",
			JobTitle:    "Senior Backend Engineer",
			CoverLetter: "Looking to move toward full-stack work.",
			Status:      "rejected",
		},
	}

	for _, a := range apps {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO applications (job_id, job_seeker_id, job_title, company_name, location, cover_letter, status)
			 SELECT j.id, u.id, j.title, j.company_name, j.location, $3, $4
			 FROM jobs j, users u
			 WHERE u.email = $1 AND j.title = $2
			 ON CONFLICT (job_id, job_seeker_id) DO NOTHING`,
			a.SeekerEmail, a.JobTitle, a.CoverLetter, a.Status,
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
