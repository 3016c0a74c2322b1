package store

import (
	"strings"

	"github.com/jobexecutive/jobboard/internal/alerts"
	"github.com/jobexecutive/jobboard/internal/types"
)

// Jobs returns a deep copy of the job collection. Jobs created through
// SaveJob keep newest-first ordering.
func (s *Store) Jobs() []types.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneJobs(s.jobs)
}

// JobFilter narrows a job listing. Zero values match everything.
type JobFilter struct {
	Query           string // matched against title, company name, location
	JobType         types.JobType
	ExperienceLevel string
	MinSalary       int
}

// FilterJobs returns the jobs matching the filter, preserving collection
// order. Matching is a linear scan, the same shape the seeker dashboard
// search uses.
func (s *Store) FilterJobs(f JobFilter) []types.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := strings.ToLower(f.Query)
	var out []types.Job
	for _, j := range s.jobs {
		if query != "" {
			companyName := ""
			for i := range s.companies {
				if s.companies[i].ID == j.CompanyID {
					companyName = s.companies[i].Name
					break
				}
			}
			if !strings.Contains(strings.ToLower(j.Title), query) &&
				!strings.Contains(strings.ToLower(companyName), query) &&
				!strings.Contains(strings.ToLower(j.Location), query) {
				continue
			}
		}
		if f.JobType != "" && j.JobType != f.JobType {
			continue
		}
		if f.ExperienceLevel != "" && j.ExperienceLevel != f.ExperienceLevel {
			continue
		}
		if j.SalaryMin < f.MinSalary {
			continue
		}
		out = append(out, j.Clone())
	}
	return out
}

// SaveJob stores the job. A non-empty id is a full replace, applicant sets
// included, so updating callers must carry them through. An empty id is a
// create: a fresh id is assigned, the applicant sets start empty, and the
// job is inserted at the front of the collection.
func (s *Store) SaveJob(job types.Job) types.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	if job.ID != "" {
		stored := job.Clone()
		for i := range s.jobs {
			if s.jobs[i].ID == stored.ID {
				s.jobs[i] = stored
				return job
			}
		}
		s.jobs = append(s.jobs, stored)
		return job
	}

	job.ID = s.newID()
	job.Applicants = nil
	job.Shortlisted = nil
	job.Rejected = nil
	s.jobs = append([]types.Job{job.Clone()}, s.jobs...)
	return job
}

// ApplyToJob records an application: the job id joins the seeker's
// appliedJobs and the seeker id joins the job's applicants, both exactly
// once. Returns the updated job.
func (s *Store) ApplyToJob(jobID, seekerID string) (types.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobIdx := -1
	for i := range s.jobs {
		if s.jobs[i].ID == jobID {
			jobIdx = i
			break
		}
	}
	if jobIdx == -1 {
		return types.Job{}, &ErrJobNotFound{ID: jobID}
	}
	seeker := s.findSeekerLocked(seekerID)
	if seeker == nil {
		return types.Job{}, &ErrSeekerNotFound{ID: seekerID}
	}

	if !contains(seeker.AppliedJobs, jobID) {
		seeker.AppliedJobs = append(seeker.AppliedJobs, jobID)
	}
	if !contains(s.jobs[jobIdx].Applicants, seekerID) {
		s.jobs[jobIdx].Applicants = append(s.jobs[jobIdx].Applicants, seekerID)
	}
	return s.jobs[jobIdx].Clone(), nil
}

// SetApplicantStatus moves a seeker id into the named applicant set and out
// of the other two, keeping the three sets disjoint. The seeker must already
// be present in one of them.
func (s *Store) SetApplicantStatus(jobID, seekerID string, status types.ApplicantStatus) (types.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobIdx := -1
	for i := range s.jobs {
		if s.jobs[i].ID == jobID {
			jobIdx = i
			break
		}
	}
	if jobIdx == -1 {
		return types.Job{}, &ErrJobNotFound{ID: jobID}
	}

	job := &s.jobs[jobIdx]
	if !contains(job.Applicants, seekerID) &&
		!contains(job.Shortlisted, seekerID) &&
		!contains(job.Rejected, seekerID) {
		return types.Job{}, &ErrApplicantNotFound{JobID: jobID, SeekerID: seekerID}
	}

	job.Applicants = remove(job.Applicants, seekerID)
	job.Shortlisted = remove(job.Shortlisted, seekerID)
	job.Rejected = remove(job.Rejected, seekerID)
	switch status {
	case types.StatusApplicant:
		job.Applicants = append(job.Applicants, seekerID)
	case types.StatusShortlisted:
		job.Shortlisted = append(job.Shortlisted, seekerID)
	case types.StatusRejected:
		job.Rejected = append(job.Rejected, seekerID)
	}
	return job.Clone(), nil
}

// AlertMatches returns the jobs matching the seeker's alert preferences, or
// an empty slice when the seeker has alerts disabled.
func (s *Store) AlertMatches(seekerID string) ([]types.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seeker := s.findSeekerLocked(seekerID)
	if seeker == nil {
		return nil, &ErrSeekerNotFound{ID: seekerID}
	}
	if !seeker.JobAlertsEnabled {
		return nil, nil
	}

	var out []types.Job
	for _, j := range s.jobs {
		if alerts.Matches(seeker.JobAlertsPreferences, j) {
			out = append(out, j.Clone())
		}
	}
	return out, nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func remove(ids []string, id string) []string {
	kept := ids[:0]
	for _, v := range ids {
		if v != id {
			kept = append(kept, v)
		}
	}
	return kept
}
