package job

import "time"

type Type string

const (
	TypeFullTime   Type = "full-time"
	TypePartTime   Type = "part-time"
	TypeContract   Type = "contract"
	TypeFreelance  Type = "freelance"
	TypeInternship Type = "internship"
)

func (t Type) Valid() bool {
	switch t {
	case TypeFullTime, TypePartTime, TypeContract, TypeFreelance, TypeInternship:
		return true
	}
	return false
}

type ExperienceLevel string

const (
	LevelEntry     ExperienceLevel = "entry"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelExecutive ExperienceLevel = "executive"
)

func (l ExperienceLevel) Valid() bool {
	switch l {
	case LevelEntry, LevelMid, LevelSenior, LevelExecutive:
		return true
	}
	return false
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Job carries the employer's company name denormalized so listings and
// application snapshots never need a profile join.
type Job struct {
	ID              int64
	EmployerID      int64
	Title           string
	CompanyName     string
	Description     string
	Requirements    string
	Location        string
	SalaryMin       *int
	SalaryMax       *int
	JobType         Type
	ExperienceLevel ExperienceLevel
	PostedAt        time.Time
	Deadline        *time.Time
	Status          Status
}
