// Package middleware provides HTTP middleware for authentication.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jobexecutive/jobboard/internal/types"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

const actorKey ContextKey = "actor"

// Actor identifies the authenticated caller extracted from token claims.
type Actor struct {
	UserID string
	Role   types.Role
}

// TokenValidator validates bearer tokens. The indirection keeps this package
// free of a dependency on the JWT service implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) (Actor, error)
}

// Auth creates middleware that validates Bearer tokens and stores the
// authenticated actor on the request context.
func Auth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			// Case-insensitive "Bearer" prefix.
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			tokenString := strings.TrimSpace(parts[1])
			if tokenString == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			actor, err := validator.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), actorKey, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetActor extracts the authenticated actor from the request context.
func GetActor(r *http.Request) (Actor, error) {
	actor, ok := r.Context().Value(actorKey).(Actor)
	if !ok {
		return Actor{}, fmt.Errorf("actor not found in request context")
	}
	return actor, nil
}

// ActorKey returns the context key for the actor (for testing purposes).
func ActorKey() ContextKey {
	return actorKey
}
