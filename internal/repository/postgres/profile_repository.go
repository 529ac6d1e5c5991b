package postgres

import (
	"context"
	"database/sql"

	"talent-hub/internal/database"
	"talent-hub/internal/domain/user"
)

type ProfileRepository struct {
	db database.DB
}

func NewProfileRepository(db database.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const seekerProfileColumns = `id, user_id, first_name, last_name, phone, location, skills, experience, education, resume_url, created_at, updated_at`

func (r *ProfileRepository) GetJobSeekerProfile(ctx context.Context, userID int64) (user.JobSeekerProfile, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+seekerProfileColumns+` FROM job_seeker_profiles WHERE user_id = $1`,
		userID,
	)
	p, err := scanSeekerProfile(row)
	if err != nil {
		if isNoRows(err) {
			return user.JobSeekerProfile{}, user.ErrProfileNotFound
		}
		return user.JobSeekerProfile{}, err
	}
	return p, nil
}

func (r *ProfileRepository) UpsertJobSeekerProfile(ctx context.Context, p user.JobSeekerProfile) (user.JobSeekerProfile, error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO job_seeker_profiles (user_id, first_name, last_name, phone, location, skills, experience, education, resume_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (user_id) DO UPDATE SET
		   first_name = EXCLUDED.first_name,
		   last_name = EXCLUDED.last_name,
		   phone = EXCLUDED.phone,
		   location = EXCLUDED.location,
		   skills = EXCLUDED.skills,
		   experience = EXCLUDED.experience,
		   education = EXCLUDED.education,
		   resume_url = EXCLUDED.resume_url,
		   updated_at = now()
		 RETURNING `+seekerProfileColumns,
		p.UserID, p.FirstName, p.LastName, p.Phone, p.Location, p.Skills, p.Experience, p.Education, p.ResumeURL,
	)
	return scanSeekerProfile(row)
}

const employerProfileColumns = `id, user_id, company_name, industry, company_size, website, description, logo_url, verification_status, created_at, updated_at`

func (r *ProfileRepository) GetEmployerProfile(ctx context.Context, userID int64) (user.EmployerProfile, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+employerProfileColumns+` FROM employer_profiles WHERE user_id = $1`,
		userID,
	)
	p, err := scanEmployerProfile(row)
	if err != nil {
		if isNoRows(err) {
			return user.EmployerProfile{}, user.ErrProfileNotFound
		}
		return user.EmployerProfile{}, err
	}
	return p, nil
}

func (r *ProfileRepository) UpsertEmployerProfile(ctx context.Context, p user.EmployerProfile) (user.EmployerProfile, error) {
	verification := p.Verification
	if verification == "" {
		verification = user.VerificationPending
	}
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO employer_profiles (user_id, company_name, industry, company_size, website, description, logo_url, verification_status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (user_id) DO UPDATE SET
		   company_name = EXCLUDED.company_name,
		   industry = EXCLUDED.industry,
		   company_size = EXCLUDED.company_size,
		   website = EXCLUDED.website,
		   description = EXCLUDED.description,
		   logo_url = EXCLUDED.logo_url,
		   updated_at = now()
		 RETURNING `+employerProfileColumns,
		p.UserID, p.CompanyName, p.Industry, p.CompanySize, p.Website, p.Description, p.LogoURL, verification,
	)
	return scanEmployerProfile(row)
}

func scanSeekerProfile(row scanner) (user.JobSeekerProfile, error) {
	var p user.JobSeekerProfile
	var resume sql.NullString
	if err := row.Scan(
		&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.Phone, &p.Location,
		&p.Skills, &p.Experience, &p.Education, &resume, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return user.JobSeekerProfile{}, err
	}
	if resume.Valid {
		s := resume.String
		p.ResumeURL = &s
	}
	return p, nil
}

func scanEmployerProfile(row scanner) (user.EmployerProfile, error) {
	var p user.EmployerProfile
	var logo sql.NullString
	if err := row.Scan(
		&p.ID, &p.UserID, &p.CompanyName, &p.Industry, &p.CompanySize, &p.Website,
		&p.Description, &logo, &p.Verification, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return user.EmployerProfile{}, err
	}
	if logo.Valid {
		s := logo.String
		p.LogoURL = &s
	}
	return p, nil
}
