package types

// ApplicantStatus names one of the three applicant pipeline sets on a job.
type ApplicantStatus string

const (
	StatusApplicant   ApplicantStatus = "applicants"
	StatusShortlisted ApplicantStatus = "shortlisted"
	StatusRejected    ApplicantStatus = "rejected"
)

// Valid reports whether st names a known applicant set.
func (st ApplicantStatus) Valid() bool {
	switch st {
	case StatusApplicant, StatusShortlisted, StatusRejected:
		return true
	}
	return false
}

// Job is a job posting owned by exactly one company. Applicants, Shortlisted
// and Rejected hold seeker ids; the store keeps them disjoint only when
// mutated through SetApplicantStatus, full-replace saves are the caller's
// responsibility.
type Job struct {
	ID              string       `json:"id"`
	CompanyID       string       `json:"companyId"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	Location        string       `json:"location"`
	ExperienceLevel string       `json:"experienceLevel"`
	SalaryMin       int          `json:"salaryMin"`
	SalaryMax       int          `json:"salaryMax"`
	JobType         JobType      `json:"jobType"`
	LocationType    LocationType `json:"locationType"`
	Applicants      []string     `json:"applicants"`
	Shortlisted     []string     `json:"shortlisted"`
	Rejected        []string     `json:"rejected"`
}

// Clone returns a deep copy of the job.
func (j Job) Clone() Job {
	out := j
	out.Applicants = append([]string(nil), j.Applicants...)
	out.Shortlisted = append([]string(nil), j.Shortlisted...)
	out.Rejected = append([]string(nil), j.Rejected...)
	return out
}
