package postgres

import (
	"context"
	"database/sql"

	"talent-hub/internal/database"
	"talent-hub/internal/domain/application"
	"talent-hub/internal/workflow"
)

type ApplicationRepository struct {
	db database.DB
}

func NewApplicationRepository(db database.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

const applicationColumns = `id, job_id, job_seeker_id, job_title, company_name, location, cover_letter, applied_at, status, employer_notes`

func (r *ApplicationRepository) Create(ctx context.Context, a application.Application) (application.Application, error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO applications (job_id, job_seeker_id, job_title, company_name, location, cover_letter, applied_at, status, employer_notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+applicationColumns,
		a.JobID, a.JobSeekerID, a.JobTitle, a.CompanyName, a.Location, a.CoverLetter, a.AppliedAt, a.Status, a.EmployerNotes,
	)
	created, err := scanApplication(row)
	if err != nil {
		// backstop for the workflow-level duplicate check
		if isUniqueViolation(err) {
			return application.Application{}, workflow.ErrDuplicateApplication
		}
		return application.Application{}, err
	}
	return created, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (application.Application, error) {
	row := r.db.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	a, err := scanApplication(row)
	if err != nil {
		if isNoRows(err) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	return a, nil
}

func (r *ApplicationRepository) Update(ctx context.Context, a application.Application) (application.Application, error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE applications SET status = $2, employer_notes = $3 WHERE id = $1
		 RETURNING `+applicationColumns,
		a.ID, a.Status, a.EmployerNotes,
	)
	updated, err := scanApplication(row)
	if err != nil {
		if isNoRows(err) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	return updated, nil
}

func (r *ApplicationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ApplicationRepository) List(ctx context.Context) ([]application.Application, error) {
	return r.listWhere(ctx, `SELECT `+applicationColumns+` FROM applications ORDER BY applied_at DESC, id DESC`)
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID int64) ([]application.Application, error) {
	return r.listWhere(
		ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE job_id = $1 ORDER BY applied_at DESC, id DESC`,
		jobID,
	)
}

func (r *ApplicationRepository) ListByJobSeeker(ctx context.Context, jobSeekerID int64) ([]application.Application, error) {
	return r.listWhere(
		ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE job_seeker_id = $1 ORDER BY applied_at DESC, id DESC`,
		jobSeekerID,
	)
}

func (r *ApplicationRepository) ListByStatus(ctx context.Context, status application.Status) ([]application.Application, error) {
	return r.listWhere(
		ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE status = $1 ORDER BY applied_at DESC, id DESC`,
		status,
	)
}

func (r *ApplicationRepository) ExistsForJobAndSeeker(ctx context.Context, jobID, jobSeekerID int64) (bool, error) {
	var exists bool
	row := r.db.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND job_seeker_id = $2)`,
		jobID, jobSeekerID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *ApplicationRepository) listWhere(ctx context.Context, query string, args ...any) ([]application.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []application.Application{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanApplication(row scanner) (application.Application, error) {
	var a application.Application
	var notes sql.NullString
	if err := row.Scan(
		&a.ID, &a.JobID, &a.JobSeekerID, &a.JobTitle, &a.CompanyName, &a.Location,
		&a.CoverLetter, &a.AppliedAt, &a.Status, &notes,
	); err != nil {
		return application.Application{}, err
	}
	if notes.Valid {
		s := notes.String
		a.EmployerNotes = &s
	}
	return a, nil
}
