package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jobexecutive/jobboard/internal/store"
	"github.com/jobexecutive/jobboard/internal/types"
)

// AuthHandler handles login requests.
type AuthHandler struct {
	store      *store.Store
	jwtService *JWTService
	validate   *validator.Validate
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(st *store.Store, jwtService *JWTService) *AuthHandler {
	return &AuthHandler{
		store:      st,
		jwtService: jwtService,
		validate:   validator.New(),
	}
}

// loginResponse is the payload returned on successful login.
type loginResponse struct {
	User  any        `json:"user"`
	Role  types.Role `json:"role"`
	Token string     `json:"token"`
}

// Login resolves the account by email and role and issues a signed token.
// The identity provider contract is lookup-only, so an unknown email or a
// role mismatch both come back as 401.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Email and role are required"})
		return
	}
	if !req.Role.Valid() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Unknown role"})
		return
	}

	account, err := h.store.Authenticate(req.Email, req.Role)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
		return
	}

	token, err := h.jwtService.GenerateToken(account.ID(), account.Role)
	if err != nil {
		log.Printf("Error generating token for %s: %v", req.Email, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		User:  account.User(),
		Role:  account.Role,
		Token: token,
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}
