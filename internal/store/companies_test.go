package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobexecutive/jobboard/internal/types"
)

func TestSaveCompany_ReplaceAndInsert(t *testing.T) {
	s := newTestStore(t, DefaultSeed())

	// Full replace: dropping Reviews from the payload drops them from the
	// record.
	s.SaveCompany(types.Company{ID: "company1", Name: "Innovate Incorporated", Email: "contact@innovate.com"})

	companies := s.Companies()
	require.Len(t, companies, 2)
	assert.Equal(t, "Innovate Incorporated", companies[0].Name)
	assert.Empty(t, companies[0].Reviews)

	// Unknown id inserts.
	s.SaveCompany(types.Company{ID: "company3", Name: "Newcorp"})
	assert.Len(t, s.Companies(), 3)
}

func TestAddReview_AppendsWithIDAndDate(t *testing.T) {
	s := newTestStore(t, DefaultSeed())

	company, err := s.AddReview("company2", types.ReviewInput{
		AuthorID:     "seeker1",
		ReviewerName: "Alex Doe",
		Rating:       4,
		Comment:      "Solid place to work.",
	})
	require.NoError(t, err)

	require.Len(t, company.Reviews, 2)
	added := company.Reviews[1]
	assert.Equal(t, "test-id-1", added.ID)
	assert.Equal(t, "seeker1", added.AuthorID)
	assert.Equal(t, 4, added.Rating)
	assert.False(t, added.Date.IsZero())
	assert.True(t, added.Date.After(company.Reviews[0].Date))
}

func TestAddReview_UnknownCompany(t *testing.T) {
	s := newTestStore(t, DefaultSeed())

	_, err := s.AddReview("nope", types.ReviewInput{
		AuthorID: "seeker1", ReviewerName: "Alex Doe", Rating: 3,
	})
	var notFound *ErrCompanyNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nope", notFound.ID)
}

func TestAddReview_SeekerAuthorPublishesBlogPost(t *testing.T) {
	s := newTestStore(t, DefaultSeed())

	_, err := s.AddReview("company2", types.ReviewInput{
		AuthorID:     "seeker1",
		ReviewerName: "Alex Doe",
		Rating:       4,
		Comment:      "Solid place to work.",
	})
	require.NoError(t, err)

	posts := s.BlogPosts()
	require.Len(t, posts, 2)
	announcement := posts[0]
	assert.Equal(t, "seeker1", announcement.AuthorID)
	assert.Equal(t, "Alex Doe", announcement.AuthorName)
	assert.Equal(t, types.RoleSeeker, announcement.AuthorRole)
	assert.Contains(t, announcement.Content, "New review for Creative Solutions!")
	assert.Contains(t, announcement.Content, "★★★★☆")
	assert.Contains(t, announcement.Content, "Solid place to work.")
}

func TestAddReview_NonSeekerAuthorPublishesNothing(t *testing.T) {
	s := newTestStore(t, DefaultSeed())

	_, err := s.AddReview("company2", types.ReviewInput{
		AuthorID:     "admin1",
		ReviewerName: "Admin",
		Rating:       2,
	})
	require.NoError(t, err)

	assert.Len(t, s.BlogPosts(), 1)
}

func TestReviewAnnouncement_Stars(t *testing.T) {
	got := reviewAnnouncement("Acme", types.Review{Rating: 5, Comment: "great"})
	assert.Contains(t, got, "★★★★★")

	got = reviewAnnouncement("Acme", types.Review{Rating: 1, Comment: "bad"})
	assert.Contains(t, got, "★☆☆☆☆")

	// Out-of-range ratings render without panicking.
	got = reviewAnnouncement("Acme", types.Review{Rating: -3})
	assert.Contains(t, got, "☆☆☆☆☆")
	got = reviewAnnouncement("Acme", types.Review{Rating: 9})
	assert.Contains(t, got, "★★★★★")
}
