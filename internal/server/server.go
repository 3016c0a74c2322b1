package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/jobexecutive/jobboard/internal/boost"
	"github.com/jobexecutive/jobboard/internal/config"
	"github.com/jobexecutive/jobboard/internal/server/middleware"
	"github.com/jobexecutive/jobboard/internal/server/ratelimit"
	"github.com/jobexecutive/jobboard/internal/store"
)

// Server is the HTTP API over the job board data service.
type Server struct {
	httpServer  *http.Server
	store       *store.Store
	jwtService  *JWTService
	authHandler *AuthHandler
	booster     *boost.Booster
	rateLimiter *ratelimit.Limiter
	corsOrigin  string
	validate    *validator.Validate
}

// Config holds server construction parameters.
type Config struct {
	Port       int
	Store      *store.Store
	JWT        *config.JWTConfig
	Booster    *boost.Booster // optional; nil disables the boost endpoint
	CORSOrigin string
	RateLimit  *ratelimit.Config // nil loads from environment
}

// New creates a server instance and wires all routes.
func New(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if cfg.JWT == nil {
		return nil, fmt.Errorf("JWT configuration is required")
	}

	s := &Server{
		store:      cfg.Store,
		booster:    cfg.Booster,
		corsOrigin: cfg.CORSOrigin,
		validate:   validator.New(),
	}
	if s.corsOrigin == "" {
		s.corsOrigin = "*"
	}

	s.rateLimiter = ratelimit.NewLimiter(cfg.RateLimit)
	s.jwtService = NewJWTService(cfg.JWT)
	s.authHandler = NewAuthHandler(s.store, s.jwtService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)

	// Account lookups
	auth := middleware.Auth(s.jwtService.AsTokenValidator())
	mux.Handle("GET /me", auth(http.HandlerFunc(s.handleMe)))
	mux.HandleFunc("GET /users/{id}", s.handleGetUser)

	// Seekers
	mux.HandleFunc("GET /seekers", s.handleListSeekers)
	mux.HandleFunc("PUT /seekers/{id}", s.handleSaveSeeker)
	mux.HandleFunc("DELETE /seekers/{id}", s.handleDeleteSeeker)
	mux.HandleFunc("GET /seekers/{id}/alert-matches", s.handleAlertMatches)

	// Companies and reviews
	mux.HandleFunc("GET /companies", s.handleListCompanies)
	mux.HandleFunc("PUT /companies/{id}", s.handleSaveCompany)
	mux.HandleFunc("DELETE /companies/{id}", s.handleDeleteCompany)
	mux.HandleFunc("POST /companies/{id}/reviews", s.handleAddReview)

	// Jobs and the applicant pipeline
	mux.HandleFunc("GET /jobs", s.handleListJobs)
	mux.HandleFunc("POST /jobs", s.handleCreateJob)
	mux.HandleFunc("PUT /jobs/{id}", s.handleReplaceJob)
	mux.HandleFunc("DELETE /jobs/{id}", s.handleDeleteJob)
	mux.HandleFunc("POST /jobs/{id}/apply", s.handleApplyToJob)
	mux.HandleFunc("PUT /jobs/{id}/applicants/{seeker_id}", s.handleSetApplicantStatus)

	// Blog
	mux.HandleFunc("GET /posts", s.handleListPosts)
	mux.HandleFunc("POST /posts", s.handleAddPost)
	mux.HandleFunc("PATCH /posts/{id}", s.handleUpdatePost)
	mux.HandleFunc("DELETE /posts/{id}", s.handleDeletePost)
	mux.HandleFunc("POST /posts/{id}/reactions", s.handleReact)
	mux.HandleFunc("POST /posts/{id}/comments", s.handleAddComment)
	mux.HandleFunc("PATCH /posts/{id}/comments/{comment_id}", s.handleUpdateComment)
	mux.HandleFunc("DELETE /posts/{id}/comments/{comment_id}", s.handleDeleteComment)

	// Text enhancement
	mux.HandleFunc("POST /boost", s.handleBoost)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start listens for requests until SIGINT/SIGTERM, then shuts down
// gracefully.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		s.rateLimiter.Stop()
		return nil
	})

	err := g.Wait()
	log.Println("Server stopped")
	return err
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.corsOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withRateLimit enforces per-client limits before the request reaches a
// handler.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := clientAddr(r)
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		setRateLimitHeaders(w, info)
		if !allowed {
			if info.RetryAfter > 0 {
				w.Header().Set("Retry-After", strconv.Itoa(int(info.RetryAfter.Seconds())+1))
			}
			s.errorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging logs each request with its duration.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s completed in %v", r.Method, r.URL.Path, r.RemoteAddr, time.Since(start))
	})
}

func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit <= 0 {
		return
	}
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
}

// clientAddr extracts a client identifier, preferring the first
// X-Forwarded-For hop.
func clientAddr(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		for i := 0; i < len(fwd); i++ {
			if fwd[i] == ',' {
				return fwd[:i]
			}
		}
		return fwd
	}
	return r.RemoteAddr
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
