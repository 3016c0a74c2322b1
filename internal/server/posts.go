package server

import (
	"encoding/json"
	"net/http"

	"github.com/jobexecutive/jobboard/internal/store"
	"github.com/jobexecutive/jobboard/internal/types"
)

// handleListPosts returns every blog post, newest first.
func (s *Server) handleListPosts(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.BlogPosts())
}

// handleAddPost publishes a blog post and returns it with its assigned id
// and timestamp.
func (s *Server) handleAddPost(w http.ResponseWriter, r *http.Request) {
	var input types.BlogPostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(input); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Author, author name, author role and content are required")
		return
	}
	if !input.AuthorRole.Valid() {
		s.errorResponse(w, http.StatusBadRequest, "Unknown author role")
		return
	}

	s.jsonResponse(w, http.StatusCreated, s.store.AddBlogPost(input))
}

// handleUpdatePost replaces the content of a post, leaving its timestamp,
// reactions and comments untouched.
func (s *Server) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Content == "" {
		s.errorResponse(w, http.StatusBadRequest, "content is required")
		return
	}

	post, err := s.store.UpdateBlogPostContent(r.PathValue("id"), req.Content)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, post)
}

// handleDeletePost removes a blog post. Deletion reports success whether or
// not the id existed.
func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	s.store.DeleteEntity(store.KindBlogPost, r.PathValue("id"))
	s.jsonResponse(w, http.StatusOK, map[string]bool{"success": true})
}

// handleReact applies the reaction toggle for a user on a post and returns
// the updated post.
func (s *Server) handleReact(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string             `json:"userId"`
		Type   types.ReactionType `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		s.errorResponse(w, http.StatusBadRequest, "userId is required")
		return
	}
	if !req.Type.Valid() {
		s.errorResponse(w, http.StatusBadRequest, "type must be one of like, love, dislike")
		return
	}

	post, err := s.store.React(r.PathValue("id"), req.UserID, req.Type)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, post)
}

// handleAddComment appends a comment to a post and returns the updated post.
func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	var input types.CommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(input); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Author, author name and content are required")
		return
	}

	post, err := s.store.AddComment(r.PathValue("id"), input)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, post)
}

// handleUpdateComment replaces the content of a comment and returns the
// updated post.
func (s *Server) handleUpdateComment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Content == "" {
		s.errorResponse(w, http.StatusBadRequest, "content is required")
		return
	}

	post, err := s.store.UpdateComment(r.PathValue("id"), r.PathValue("comment_id"), req.Content)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, post)
}

// handleDeleteComment removes a comment from a post and returns the updated
// post. An unknown comment id is a silent no-op.
func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	post, err := s.store.DeleteComment(r.PathValue("id"), r.PathValue("comment_id"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, post)
}
