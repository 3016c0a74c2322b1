package types

// LoginRequest is the login payload. The reference identity provider
// resolves accounts by email and role only; the password field is accepted
// for forward compatibility but not verified here.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Role     Role   `json:"role" validate:"required"`
	Password string `json:"password,omitempty"`
}

// ReviewInput is a review payload before the store assigns id and date.
type ReviewInput struct {
	AuthorID     string `json:"authorId" validate:"required"`
	ReviewerName string `json:"reviewerName" validate:"required"`
	Rating       int    `json:"rating" validate:"required,min=1,max=5"`
	Comment      string `json:"comment"`
}

// BlogPostInput is a blog post payload before the store assigns id,
// timestamp and empty reaction/comment lists.
type BlogPostInput struct {
	AuthorID       string `json:"authorId" validate:"required"`
	AuthorName     string `json:"authorName" validate:"required"`
	AuthorRole     Role   `json:"authorRole" validate:"required"`
	AuthorPhotoURL string `json:"authorPhotoUrl"`
	Content        string `json:"content" validate:"required"`
}

// CommentInput is a comment payload before the store assigns id and
// timestamp.
type CommentInput struct {
	AuthorID       string `json:"authorId" validate:"required"`
	AuthorName     string `json:"authorName" validate:"required"`
	AuthorPhotoURL string `json:"authorPhotoUrl"`
	Content        string `json:"content" validate:"required"`
}
