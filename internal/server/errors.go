package server

import (
	"net/http"

	"github.com/jobexecutive/jobboard/internal/store"
)

// HTTPStatus returns the appropriate HTTP status code for an error coming
// out of the store or a handler.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *store.ErrAccountNotFound,
		*store.ErrSeekerNotFound,
		*store.ErrCompanyNotFound,
		*store.ErrJobNotFound,
		*store.ErrPostNotFound,
		*store.ErrCommentNotFound,
		*store.ErrApplicantNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
