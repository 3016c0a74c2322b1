package store

import "fmt"

// ErrAccountNotFound indicates no user matched an id or email+role lookup.
type ErrAccountNotFound struct {
	Key string // id or email, whichever the lookup used
}

func (e *ErrAccountNotFound) Error() string {
	return fmt.Sprintf("account not found: %s", e.Key)
}

// ErrSeekerNotFound indicates a seeker id is unknown.
type ErrSeekerNotFound struct {
	ID string
}

func (e *ErrSeekerNotFound) Error() string {
	return fmt.Sprintf("seeker not found: %s", e.ID)
}

// ErrCompanyNotFound indicates a company id is unknown.
type ErrCompanyNotFound struct {
	ID string
}

func (e *ErrCompanyNotFound) Error() string {
	return fmt.Sprintf("company not found: %s", e.ID)
}

// ErrJobNotFound indicates a job id is unknown.
type ErrJobNotFound struct {
	ID string
}

func (e *ErrJobNotFound) Error() string {
	return fmt.Sprintf("job not found: %s", e.ID)
}

// ErrPostNotFound indicates a blog post id is unknown.
type ErrPostNotFound struct {
	ID string
}

func (e *ErrPostNotFound) Error() string {
	return fmt.Sprintf("blog post not found: %s", e.ID)
}

// ErrCommentNotFound indicates a comment id is unknown on a known post.
type ErrCommentNotFound struct {
	PostID    string
	CommentID string
}

func (e *ErrCommentNotFound) Error() string {
	return fmt.Sprintf("comment %s not found on post %s", e.CommentID, e.PostID)
}

// ErrApplicantNotFound indicates a seeker id is in none of a job's
// applicant sets.
type ErrApplicantNotFound struct {
	JobID    string
	SeekerID string
}

func (e *ErrApplicantNotFound) Error() string {
	return fmt.Sprintf("seeker %s is not an applicant of job %s", e.SeekerID, e.JobID)
}
