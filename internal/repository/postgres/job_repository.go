package postgres

import (
	"context"
	"database/sql"

	"talent-hub/internal/database"
	"talent-hub/internal/domain/job"
)

type JobRepository struct {
	db database.DB
}

func NewJobRepository(db database.DB) *JobRepository {
	return &JobRepository{db: db}
}

const jobColumns = `id, employer_id, title, company_name, description, requirements, location, salary_min, salary_max, job_type, experience_level, posted_at, deadline, status`

func (r *JobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO jobs (employer_id, title, company_name, description, requirements, location,
		                   salary_min, salary_max, job_type, experience_level, deadline, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING `+jobColumns,
		j.EmployerID, j.Title, j.CompanyName, j.Description, j.Requirements, j.Location,
		j.SalaryMin, j.SalaryMax, j.JobType, j.ExperienceLevel, j.Deadline, j.Status,
	)
	return scanJob(row)
}

func (r *JobRepository) GetByID(ctx context.Context, id int64) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		if isNoRows(err) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *JobRepository) Update(ctx context.Context, j job.Job) (job.Job, error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE jobs SET
		   title = $2, company_name = $3, description = $4, requirements = $5, location = $6,
		   salary_min = $7, salary_max = $8, job_type = $9, experience_level = $10,
		   deadline = $11, status = $12
		 WHERE id = $1
		 RETURNING `+jobColumns,
		j.ID, j.Title, j.CompanyName, j.Description, j.Requirements, j.Location,
		j.SalaryMin, j.SalaryMax, j.JobType, j.ExperienceLevel, j.Deadline, j.Status,
	)
	updated, err := scanJob(row)
	if err != nil {
		if isNoRows(err) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return updated, nil
}

func (r *JobRepository) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *JobRepository) List(ctx context.Context) ([]job.Job, error) {
	return r.listWhere(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY posted_at DESC, id DESC`)
}

func (r *JobRepository) ListByEmployer(ctx context.Context, employerID int64) ([]job.Job, error) {
	return r.listWhere(
		ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE employer_id = $1 ORDER BY posted_at DESC, id DESC`,
		employerID,
	)
}

func (r *JobRepository) ListByStatus(ctx context.Context, status job.Status) ([]job.Job, error) {
	return r.listWhere(
		ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE status = $1 ORDER BY posted_at DESC, id DESC`,
		status,
	)
}

func (r *JobRepository) listWhere(ctx context.Context, query string, args ...any) ([]job.Job, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []job.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanJob(row scanner) (job.Job, error) {
	var j job.Job
	var salaryMin, salaryMax sql.NullInt64
	var deadline sql.NullTime
	if err := row.Scan(
		&j.ID, &j.EmployerID, &j.Title, &j.CompanyName, &j.Description, &j.Requirements,
		&j.Location, &salaryMin, &salaryMax, &j.JobType, &j.ExperienceLevel,
		&j.PostedAt, &deadline, &j.Status,
	); err != nil {
		return job.Job{}, err
	}
	if salaryMin.Valid {
		v := int(salaryMin.Int64)
		j.SalaryMin = &v
	}
	if salaryMax.Valid {
		v := int(salaryMax.Int64)
		j.SalaryMax = &v
	}
	if deadline.Valid {
		t := deadline.Time
		j.Deadline = &t
	}
	return j, nil
}
