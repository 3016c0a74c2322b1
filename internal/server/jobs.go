package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jobexecutive/jobboard/internal/store"
	"github.com/jobexecutive/jobboard/internal/types"
)

// handleListJobs returns job postings, optionally narrowed by query
// parameters: q (title/company/location search), jobType, experienceLevel
// and minSalary.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := store.JobFilter{
		Query:           q.Get("q"),
		JobType:         types.JobType(q.Get("jobType")),
		ExperienceLevel: q.Get("experienceLevel"),
	}
	if filter.JobType != "" && !filter.JobType.Valid() {
		s.errorResponse(w, http.StatusBadRequest, "Unknown job type")
		return
	}
	if raw := q.Get("minSalary"); raw != "" {
		minSalary, err := strconv.Atoi(raw)
		if err != nil || minSalary < 0 {
			s.errorResponse(w, http.StatusBadRequest, "minSalary must be a non-negative integer")
			return
		}
		filter.MinSalary = minSalary
	}

	jobs := s.store.FilterJobs(filter)
	if jobs == nil {
		jobs = []types.Job{}
	}
	s.jsonResponse(w, http.StatusOK, jobs)
}

// handleCreateJob creates a job posting with a fresh id and empty applicant
// sets. New jobs go to the front of the collection.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var job types.Job
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := validateJobFields(job); msg != "" {
		s.errorResponse(w, http.StatusBadRequest, msg)
		return
	}

	job.ID = ""
	s.jsonResponse(w, http.StatusCreated, s.store.SaveJob(job))
}

// handleReplaceJob stores a full job document under the path id. Save is a
// full replace, applicant sets included.
func (s *Server) handleReplaceJob(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var job types.Job
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if job.ID != "" && job.ID != id {
		s.errorResponse(w, http.StatusBadRequest, "Body id does not match path id")
		return
	}
	if msg := validateJobFields(job); msg != "" {
		s.errorResponse(w, http.StatusBadRequest, msg)
		return
	}
	job.ID = id

	s.jsonResponse(w, http.StatusOK, s.store.SaveJob(job))
}

// handleDeleteJob removes a job posting. Deletion reports success whether or
// not the id existed.
func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	s.store.DeleteEntity(store.KindJob, r.PathValue("id"))
	s.jsonResponse(w, http.StatusOK, map[string]bool{"success": true})
}

// handleApplyToJob records a seeker's application and returns the updated
// job.
func (s *Server) handleApplyToJob(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("id")

	var req struct {
		SeekerID string `json:"seekerId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SeekerID == "" {
		s.errorResponse(w, http.StatusBadRequest, "seekerId is required")
		return
	}

	job, err := s.store.ApplyToJob(jobID, req.SeekerID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

// handleSetApplicantStatus moves a seeker between the job's applicant sets
// and returns the updated job.
func (s *Server) handleSetApplicantStatus(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("id")
	seekerID := r.PathValue("seeker_id")

	var req struct {
		Status types.ApplicantStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.Status.Valid() {
		s.errorResponse(w, http.StatusBadRequest, "status must be one of applicants, shortlisted, rejected")
		return
	}

	job, err := s.store.SetApplicantStatus(jobID, seekerID, req.Status)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

// validateJobFields checks the enum fields of an incoming job document,
// returning an error message or "".
func validateJobFields(job types.Job) string {
	if job.Title == "" {
		return "Title is required"
	}
	if job.CompanyID == "" {
		return "companyId is required"
	}
	if job.JobType != "" && !job.JobType.Valid() {
		return "Unknown job type"
	}
	if job.LocationType != "" && !job.LocationType.Valid() {
		return "Unknown location type"
	}
	return ""
}
