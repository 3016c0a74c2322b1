package types

// JobAlertsPreferences holds a seeker's criteria for job alert matching.
type JobAlertsPreferences struct {
	Keywords      []string       `json:"keywords"`
	JobTypes      []JobType      `json:"jobTypes"`
	LocationTypes []LocationType `json:"locationTypes"`
	MinSalary     int            `json:"minSalary"`
}

// Clone returns a deep copy of the preferences.
func (p JobAlertsPreferences) Clone() JobAlertsPreferences {
	out := p
	out.Keywords = append([]string(nil), p.Keywords...)
	out.JobTypes = append([]JobType(nil), p.JobTypes...)
	out.LocationTypes = append([]LocationType(nil), p.LocationTypes...)
	return out
}

// JobSeeker is a job seeker profile. AppliedJobs holds job ids in the order
// the seeker applied.
type JobSeeker struct {
	ID                   string               `json:"id"`
	Name                 string               `json:"name"`
	Email                string               `json:"email"`
	Phone                string               `json:"phone"`
	PhotoURL             string               `json:"photoUrl"`
	Skills               []string             `json:"skills"`
	ResumeURL            string               `json:"resumeUrl"`
	ExpectedSalary       int                  `json:"expectedSalary"`
	AppliedJobs          []string             `json:"appliedJobs"`
	JobAlertsEnabled     bool                 `json:"jobAlertsEnabled"`
	JobAlertsPreferences JobAlertsPreferences `json:"jobAlertsPreferences"`
}

// Clone returns a deep copy of the seeker.
func (s JobSeeker) Clone() JobSeeker {
	out := s
	out.Skills = append([]string(nil), s.Skills...)
	out.AppliedJobs = append([]string(nil), s.AppliedJobs...)
	out.JobAlertsPreferences = s.JobAlertsPreferences.Clone()
	return out
}
