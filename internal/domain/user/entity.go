package user

import "time"

type Role string

const (
	RoleJobSeeker Role = "job_seeker"
	RoleEmployer  Role = "employer"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleJobSeeker, RoleEmployer, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         Role
	Active       bool
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

// JobSeekerProfile is created lazily on first save; a missing profile means
// "not yet started", not an error.
type JobSeekerProfile struct {
	ID         int64
	UserID     int64
	FirstName  string
	LastName   string
	Phone      string
	Location   string
	Skills     []string
	Experience string
	Education  string
	ResumeURL  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Industry string

const (
	IndustryTechnology Industry = "technology"
	IndustryFinance    Industry = "finance"
	IndustryHealthcare Industry = "healthcare"
	IndustryEducation  Industry = "education"
	IndustryRetail     Industry = "retail"
	IndustryOther      Industry = "other"
)

type CompanySize string

const (
	CompanySizeSmall  CompanySize = "1-50"
	CompanySizeMedium CompanySize = "51-200"
	CompanySizeLarge  CompanySize = "201-1000"
	CompanySizeHuge   CompanySize = "1000+"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

type EmployerProfile struct {
	ID           int64
	UserID       int64
	CompanyName  string
	Industry     Industry
	CompanySize  CompanySize
	Website      string
	Description  string
	LogoURL      *string
	Verification VerificationStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
