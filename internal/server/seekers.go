package server

import (
	"encoding/json"
	"net/http"

	"github.com/jobexecutive/jobboard/internal/store"
	"github.com/jobexecutive/jobboard/internal/types"
)

// handleListSeekers returns every job seeker.
func (s *Server) handleListSeekers(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.Seekers())
}

// handleSaveSeeker stores a full seeker document under the path id. Save is a
// full replace, inserting when the id is unknown.
func (s *Server) handleSaveSeeker(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var seeker types.JobSeeker
	if err := json.NewDecoder(r.Body).Decode(&seeker); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if seeker.ID != "" && seeker.ID != id {
		s.errorResponse(w, http.StatusBadRequest, "Body id does not match path id")
		return
	}
	seeker.ID = id

	s.jsonResponse(w, http.StatusOK, s.store.SaveSeeker(seeker))
}

// handleDeleteSeeker removes a seeker. Deletion reports success whether or
// not the id existed.
func (s *Server) handleDeleteSeeker(w http.ResponseWriter, r *http.Request) {
	s.store.DeleteEntity(store.KindSeeker, r.PathValue("id"))
	s.jsonResponse(w, http.StatusOK, map[string]bool{"success": true})
}

// handleAlertMatches returns the jobs matching the seeker's alert
// preferences. Seekers with alerts disabled match nothing.
func (s *Server) handleAlertMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := s.store.AlertMatches(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if matches == nil {
		matches = []types.Job{}
	}
	s.jsonResponse(w, http.StatusOK, matches)
}
