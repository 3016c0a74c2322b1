package server

import (
	"encoding/json"
	"log"
	"net/http"
)

// handleBoost rewrites a snippet of profile or posting text with the
// configured language model. Returns 503 when no model is configured.
func (s *Server) handleBoost(w http.ResponseWriter, r *http.Request) {
	if s.booster == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Text enhancement is not configured")
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		s.errorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	boosted, err := s.booster.Rewrite(r.Context(), req.Text)
	if err != nil {
		log.Printf("Error boosting text: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to enhance text")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"boostedText": boosted})
}
