package store

import (
	"sort"

	"github.com/jobexecutive/jobboard/internal/types"
)

// BlogPosts returns a deep copy of the blog collection sorted newest-first
// by timestamp. The ordering is part of the service contract, not a caller
// concern.
func (s *Store) BlogPosts() []types.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := clonePosts(s.posts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// AddBlogPost publishes a post, assigning a fresh id and timestamp and
// starting with empty reactions and comments. New posts go to the front of
// the collection.
func (s *Store) AddBlogPost(input types.BlogPostInput) types.BlogPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertPostLocked(input).Clone()
}

// insertPostLocked builds and prepends a post. Callers must hold s.mu.
func (s *Store) insertPostLocked(input types.BlogPostInput) *types.BlogPost {
	post := types.BlogPost{
		ID:             s.newID(),
		AuthorID:       input.AuthorID,
		AuthorName:     input.AuthorName,
		AuthorRole:     input.AuthorRole,
		AuthorPhotoURL: input.AuthorPhotoURL,
		Content:        input.Content,
		Timestamp:      s.now(),
	}
	s.posts = append([]types.BlogPost{post}, s.posts...)
	return &s.posts[0]
}

// UpdateBlogPostContent replaces the content of a post, leaving timestamp,
// reactions and comments untouched.
func (s *Store) UpdateBlogPostContent(postID, content string) (types.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.findPostLocked(postID)
	if post == nil {
		return types.BlogPost{}, &ErrPostNotFound{ID: postID}
	}
	post.Content = content
	return post.Clone(), nil
}

// React applies the tri-state reaction toggle for userID on a post:
// no existing reaction appends one, an existing reaction of the same type is
// removed, and an existing reaction of a different type is overwritten in
// place. A post never holds more than one reaction per user.
func (s *Store) React(postID, userID string, reaction types.ReactionType) (types.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.findPostLocked(postID)
	if post == nil {
		return types.BlogPost{}, &ErrPostNotFound{ID: postID}
	}

	existing := -1
	for i := range post.Reactions {
		if post.Reactions[i].UserID == userID {
			existing = i
			break
		}
	}
	switch {
	case existing == -1:
		post.Reactions = append(post.Reactions, types.Reaction{UserID: userID, Type: reaction})
	case post.Reactions[existing].Type == reaction:
		post.Reactions = append(post.Reactions[:existing], post.Reactions[existing+1:]...)
	default:
		post.Reactions[existing].Type = reaction
	}
	return post.Clone(), nil
}

// AddComment appends a comment to a post, assigning a fresh id and
// timestamp. Comments keep chronological append-only ordering.
func (s *Store) AddComment(postID string, input types.CommentInput) (types.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.findPostLocked(postID)
	if post == nil {
		return types.BlogPost{}, &ErrPostNotFound{ID: postID}
	}
	post.Comments = append(post.Comments, types.Comment{
		ID:             s.newID(),
		AuthorID:       input.AuthorID,
		AuthorName:     input.AuthorName,
		AuthorPhotoURL: input.AuthorPhotoURL,
		Content:        input.Content,
		Timestamp:      s.now(),
	})
	return post.Clone(), nil
}

// UpdateComment replaces the content of a comment, leaving everything else
// untouched.
func (s *Store) UpdateComment(postID, commentID, content string) (types.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.findPostLocked(postID)
	if post == nil {
		return types.BlogPost{}, &ErrPostNotFound{ID: postID}
	}
	for i := range post.Comments {
		if post.Comments[i].ID == commentID {
			post.Comments[i].Content = content
			return post.Clone(), nil
		}
	}
	return types.BlogPost{}, &ErrCommentNotFound{PostID: postID, CommentID: commentID}
}

// DeleteComment removes a comment from a post. An unknown comment id is a
// silent no-op; only an unknown post is an error.
func (s *Store) DeleteComment(postID, commentID string) (types.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.findPostLocked(postID)
	if post == nil {
		return types.BlogPost{}, &ErrPostNotFound{ID: postID}
	}
	kept := post.Comments[:0]
	for _, c := range post.Comments {
		if c.ID != commentID {
			kept = append(kept, c)
		}
	}
	post.Comments = kept
	return post.Clone(), nil
}

// findPostLocked returns the stored post with the given id, or nil.
// Callers must hold s.mu.
func (s *Store) findPostLocked(id string) *types.BlogPost {
	for i := range s.posts {
		if s.posts[i].ID == id {
			return &s.posts[i]
		}
	}
	return nil
}
