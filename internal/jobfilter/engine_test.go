package jobfilter

import (
	"testing"

	"talent-hub/internal/domain/job"
)

func intp(v int) *int { return &v }

func sampleJobs() []job.Job {
	return []job.Job{
		{
			ID: 1, Title: "Senior Go Engineer", CompanyName: "TechFlow",
			Location: "Berlin", JobType: job.TypeFullTime,
			ExperienceLevel: job.LevelSenior,
			SalaryMin:       intp(70000), SalaryMax: intp(95000),
			Status: job.StatusActive,
		},
		{
			ID: 2, Title: "Frontend Developer", CompanyName: "BrightCare",
			Location: "Remote", JobType: job.TypeContract,
			ExperienceLevel: job.LevelMid,
			SalaryMin:       intp(40000), SalaryMax: intp(55000),
			Status: job.StatusActive,
		},
		{
			ID: 3, Title: "Data Analyst Intern", CompanyName: "TechFlow",
			Location: "Berlin", JobType: job.TypeInternship,
			ExperienceLevel: job.LevelEntry,
			Status:          job.StatusActive,
		},
	}
}

func TestApply_EmptyCriteriaReturnsAll(t *testing.T) {
	jobs := sampleJobs()
	got := Apply(jobs, Criteria{})
	if len(got) != len(jobs) {
		t.Fatalf("expected %d jobs, got %d", len(jobs), len(got))
	}
	for i := range got {
		if got[i].ID != jobs[i].ID {
			t.Fatalf("order changed at index %d", i)
		}
	}
}

func TestApply_Idempotent(t *testing.T) {
	c := Criteria{SearchTerm: "techflow"}
	once := Apply(sampleJobs(), c)
	twice := Apply(once, c)
	if len(once) != len(twice) {
		t.Fatalf("second pass changed result: %d vs %d", len(once), len(twice))
	}
}

func TestApply_SearchTermMatchesAcrossFields(t *testing.T) {
	jobs := sampleJobs()

	byTitle := Apply(jobs, Criteria{SearchTerm: "frontend"})
	if len(byTitle) != 1 || byTitle[0].ID != 2 {
		t.Fatalf("title match failed: %+v", byTitle)
	}

	byCompany := Apply(jobs, Criteria{SearchTerm: "TECHFLOW"})
	if len(byCompany) != 2 {
		t.Fatalf("expected 2 company matches, got %d", len(byCompany))
	}
}

func TestApply_LocationSubstring(t *testing.T) {
	got := Apply(sampleJobs(), Criteria{Location: "berl"})
	if len(got) != 2 {
		t.Fatalf("expected 2 Berlin jobs, got %d", len(got))
	}
}

func TestApply_SalaryMinUsesJobUpperBound(t *testing.T) {
	// ask 60000: job 1 caps at 95000 (in), job 2 caps at 55000 (out),
	// job 3 has no bounds (out)
	got := Apply(sampleJobs(), Criteria{SalaryMin: intp(60000)})
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected only job 1, got %+v", got)
	}
}

func TestApply_SalaryMaxUsesJobLowerBound(t *testing.T) {
	got := Apply(sampleJobs(), Criteria{SalaryMax: intp(50000)})
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected only job 2, got %+v", got)
	}
}

func TestApply_MissingSalaryBoundFailsFilter(t *testing.T) {
	jobs := []job.Job{{ID: 7, Title: "Unknown Pay", Status: job.StatusActive}}
	if got := Apply(jobs, Criteria{SalaryMin: intp(1)}); len(got) != 0 {
		t.Fatalf("job without salary bounds must not pass a salary filter")
	}
}

func TestApply_CriteriaCompose(t *testing.T) {
	got := Apply(sampleJobs(), Criteria{
		JobType:   job.TypeFullTime,
		SalaryMin: intp(60000),
	})
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("composed criteria: expected job 1, got %+v", got)
	}

	none := Apply(sampleJobs(), Criteria{
		JobType:   job.TypeContract,
		SalaryMin: intp(60000),
	})
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %d", len(none))
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	jobs := sampleJobs()
	_ = Apply(jobs, Criteria{SearchTerm: "frontend"})
	if jobs[0].ID != 1 || jobs[2].ID != 3 {
		t.Fatalf("input slice mutated")
	}
}
