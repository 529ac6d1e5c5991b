package seeder

import (
	"context"
	"fmt"

	"talent-hub/internal/database"

	"golang.org/x/crypto/bcrypt"
)

// DemoUsersSeeder loads the demo accounts the platform ships for local runs:
// one admin, two employers with company profiles and three job seekers with
// varying degrees of profile completion.
type DemoUsersSeeder struct{}

func (DemoUsersSeeder) Name() string { return "demo_users" }

const demoPassword = "changeme123"

func (DemoUsersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users", "id", "email", "password_hash", "role", "active"); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	users := []struct {
		Email string
		Role  string
	}{
		{Email: "admin@talenthub.dev", Role: "admin"},
		{Email: "hr@techflow.dev", Role: "employer"},
		{Email: "talent@brightcare.dev", Role: "employer"},
		{Email: "sarah.chen@example.com", Role: "job_seeker"},
		{Email: "marcus.reed@example.com", Role: "job_seeker"},
		{Email: "priya.nair@example.com", Role: "job_seeker"},
	}
	for _, u := range users {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO users (email, password_hash, role) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING`,
			u.Email,
			string(hash),
			u.Role,
		)
		if err != nil {
			return err
		}
	}

	if err := seedEmployerProfiles(ctx, tx); err != nil {
		return err
	}
	if err := seedSeekerProfiles(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func seedEmployerProfiles(ctx context.Context, tx database.Tx) error {
	profiles := []struct {
		Email       string
		CompanyName string
		Industry    string
		CompanySize string
		Website     string
		Description string
		LogoURL     string
	}{
		{
			Email:       "hr@techflow.dev",
			CompanyName: "TechFlow Solutions",
			Industry:    "technology",
			CompanySize: "51-200",
			Website:     "https://techflow.dev",
			Description: "Cloud infrastructure tooling for mid-size engineering teams.",
			LogoURL:     "https://cdn.talenthub.dev/logos/techflow.png",
		},
		{
			Email:       "talent@brightcare.dev",
			CompanyName: "BrightCare Health",
			Industry:    "healthcare",
			CompanySize: "201-1000",
			Website:     "https://brightcare.dev",
			Description: "Digital patient-care coordination platform.",
			LogoURL:     "",
		},
	}

	for _, p := range profiles {
		var logo any
		if p.LogoURL != "" {
			logo = p.LogoURL
		}
		_, err := tx.Exec(
			ctx,
			`INSERT INTO employer_profiles (user_id, company_name, industry, company_size, website, description, logo_url)
			 SELECT id, $2, $3, $4, $5, $6, $7 FROM users WHERE email = $1
			 ON CONFLICT (user_id) DO NOTHING`,
			p.Email, p.CompanyName, p.Industry, p.CompanySize, p.Website, p.Description, logo,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedSeekerProfiles(ctx context.Context, tx database.Tx) error {
	profiles := []struct {
		Email      string
		FirstName  string
		LastName   string
		Location   string
		Skills     []string
		Experience string
		ResumeURL  string
	}{
		{
			Email:      "sarah.chen@example.com",
			FirstName:  "Sarah",
			LastName:   "Chen",
			Location:   "Austin, TX",
			Skills:     []string{"Go", "PostgreSQL", "Kubernetes"},
			Experience: "5 years building backend services.",
			ResumeURL:  "https://cdn.talenthub.dev/resumes/sarah-chen.pdf",
		},
		{
			Email:     "marcus.reed@example.com",
			FirstName: "Marcus",
			LastName:  "Reed",
			Location:  "Remote",
			Skills:    []string{"React", "TypeScript"},
		},
		{
			// deliberately sparse: exercises the completion evaluator
			Email:     "priya.nair@example.com",
			FirstName: "Priya",
		},
	}

	for _, p := range profiles {
		var resume any
		if p.ResumeURL != "" {
			resume = p.ResumeURL
		}
		_, err := tx.Exec(
			ctx,
			`INSERT INTO job_seeker_profiles (user_id, first_name, last_name, location, skills, experience, resume_url)
			 SELECT id, $2, $3, $4, $5, $6, $7 FROM users WHERE email = $1
			 ON CONFLICT (user_id) DO NOTHING`,
			p.Email, p.FirstName, p.LastName, p.Location, p.Skills, p.Experience, resume,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
