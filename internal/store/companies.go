package store

import (
	"fmt"
	"strings"

	"github.com/jobexecutive/jobboard/internal/types"
)

// Companies returns a deep copy of the company collection in insertion order.
func (s *Store) Companies() []types.Company {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneCompanies(s.companies)
}

// SaveCompany stores the company with replace-by-id semantics, inserting
// when the id is unknown. Full replace: applicant-facing callers must carry
// the existing reviews and job list through.
func (s *Store) SaveCompany(company types.Company) types.Company {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := company.Clone()
	for i := range s.companies {
		if s.companies[i].ID == stored.ID {
			s.companies[i] = stored
			return company
		}
	}
	s.companies = append(s.companies, stored)
	return company
}

// AddReview appends a review to the identified company, assigning a fresh id
// and the current timestamp, and returns the updated company. When the
// review's author is a known seeker, a blog post announcing the review is
// published on their behalf.
func (s *Store) AddReview(companyID string, input types.ReviewInput) (types.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.companies {
		if s.companies[i].ID == companyID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return types.Company{}, &ErrCompanyNotFound{ID: companyID}
	}

	review := types.Review{
		ID:           s.newID(),
		AuthorID:     input.AuthorID,
		ReviewerName: input.ReviewerName,
		Rating:       input.Rating,
		Comment:      input.Comment,
		Date:         s.now(),
	}
	s.companies[idx].Reviews = append(s.companies[idx].Reviews, review)

	if author := s.findSeekerLocked(input.AuthorID); author != nil {
		s.insertPostLocked(types.BlogPostInput{
			AuthorID:       author.ID,
			AuthorName:     author.Name,
			AuthorRole:     types.RoleSeeker,
			AuthorPhotoURL: author.PhotoURL,
			Content:        reviewAnnouncement(s.companies[idx].Name, review),
		})
	}

	return s.companies[idx].Clone(), nil
}

// findSeekerLocked returns the stored seeker with the given id, or nil.
// Callers must hold s.mu.
func (s *Store) findSeekerLocked(id string) *types.JobSeeker {
	for i := range s.seekers {
		if s.seekers[i].ID == id {
			return &s.seekers[i]
		}
	}
	return nil
}

// reviewAnnouncement renders the blog post content published when a seeker
// reviews a company.
func reviewAnnouncement(companyName string, review types.Review) string {
	rating := review.Rating
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	stars := strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
	return fmt.Sprintf("New review for %s!\n\nI gave them a %s rating.\n\nMy thoughts: %q",
		companyName, stars, review.Comment)
}
