package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobexecutive/jobboard/internal/server/middleware"
	"github.com/jobexecutive/jobboard/internal/types"
)

func withActor(req *http.Request, actor middleware.Actor) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), middleware.ActorKey(), actor))
}

func TestHandleMe_Success(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req = withActor(req, middleware.Actor{UserID: "seeker1", Role: types.RoleSeeker})
	w := httptest.NewRecorder()
	srv.handleMe(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		User map[string]any `json:"user"`
		Role string         `json:"role"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, "seeker", resp.Role)
	assert.Equal(t, "Alex Doe", resp.User["name"])
}

func TestHandleMe_MissingActor(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	srv.handleMe(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandleMe_AccountDeletedAfterTokenIssued(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req = withActor(req, middleware.Actor{UserID: "gone", Role: types.RoleSeeker})
	w := httptest.NewRecorder()
	srv.handleMe(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleGetUser_EachCollection(t *testing.T) {
	srv := newTestServer(t)

	for id, role := range map[string]string{
		"seeker1":  "seeker",
		"company1": "company",
		"admin1":   "admin",
	} {
		req := httptest.NewRequest(http.MethodGet, "/users/"+id, nil)
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()
		srv.handleGetUser(w, req)

		require.Equal(t, http.StatusOK, w.Code, id)
		var resp struct {
			User map[string]any `json:"user"`
			Role string         `json:"role"`
		}
		decodeBody(t, w, &resp)
		assert.Equal(t, role, resp.Role)
		assert.Equal(t, id, resp.User["id"])
	}
}

func TestHandleGetUser_NotFound(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/users/nope", nil)
	req.SetPathValue("id", "nope")
	w := httptest.NewRecorder()
	srv.handleGetUser(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_MeWithValidToken(t *testing.T) {
	srv := newTestServer(t)
	handler := srv.httpServer.Handler

	token, err := srv.jwtService.GenerateToken("seeker1", types.RoleSeeker)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Role string `json:"role"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, "seeker", resp.Role)
}
