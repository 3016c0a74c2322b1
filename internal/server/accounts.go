package server

import (
	"net/http"

	"github.com/jobexecutive/jobboard/internal/server/middleware"
	"github.com/jobexecutive/jobboard/internal/types"
)

// accountResponse carries a resolved user together with the collection it
// was found in.
type accountResponse struct {
	User any        `json:"user"`
	Role types.Role `json:"role"`
}

// handleMe returns the account behind the bearer token.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.GetActor(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	account, err := s.store.GetAccount(actor.UserID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, accountResponse{User: account.User(), Role: account.Role})
}

// handleGetUser resolves a user id across seekers, companies and admins.
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	account, err := s.store.GetAccount(id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, accountResponse{User: account.User(), Role: account.Role})
}
