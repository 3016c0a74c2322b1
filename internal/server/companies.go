package server

import (
	"encoding/json"
	"net/http"

	"github.com/jobexecutive/jobboard/internal/store"
	"github.com/jobexecutive/jobboard/internal/types"
)

// handleListCompanies returns every company.
func (s *Server) handleListCompanies(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.Companies())
}

// handleSaveCompany stores a full company document under the path id. Save
// is a full replace: callers updating a company must carry the existing
// reviews and job list through.
func (s *Server) handleSaveCompany(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var company types.Company
	if err := json.NewDecoder(r.Body).Decode(&company); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if company.ID != "" && company.ID != id {
		s.errorResponse(w, http.StatusBadRequest, "Body id does not match path id")
		return
	}
	company.ID = id

	s.jsonResponse(w, http.StatusOK, s.store.SaveCompany(company))
}

// handleDeleteCompany removes a company and cascade-deletes its job
// postings. Deletion reports success whether or not the id existed.
func (s *Server) handleDeleteCompany(w http.ResponseWriter, r *http.Request) {
	s.store.DeleteEntity(store.KindCompany, r.PathValue("id"))
	s.jsonResponse(w, http.StatusOK, map[string]bool{"success": true})
}

// handleAddReview appends a review to a company and returns the updated
// company.
func (s *Server) handleAddReview(w http.ResponseWriter, r *http.Request) {
	companyID := r.PathValue("id")

	var input types.ReviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(input); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Author, reviewer name and a 1-5 rating are required")
		return
	}

	company, err := s.store.AddReview(companyID, input)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, company)
}
