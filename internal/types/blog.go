package types

import "time"

// Reaction is a single user's reaction on a blog post. A post holds at most
// one reaction per user id.
type Reaction struct {
	UserID string       `json:"userId"`
	Type   ReactionType `json:"type"`
}

// Comment is a reply on a blog post. Author fields are a snapshot taken when
// the comment was written and are not kept in sync with later profile edits.
type Comment struct {
	ID             string    `json:"id"`
	AuthorID       string    `json:"authorId"`
	AuthorName     string    `json:"authorName"`
	AuthorPhotoURL string    `json:"authorPhotoUrl"`
	Content        string    `json:"content"`
	Timestamp      time.Time `json:"timestamp"`
}

// BlogPost is a community blog entry. Author fields are a denormalized
// snapshot, like Comment's.
type BlogPost struct {
	ID             string     `json:"id"`
	AuthorID       string     `json:"authorId"`
	AuthorName     string     `json:"authorName"`
	AuthorRole     Role       `json:"authorRole"`
	AuthorPhotoURL string     `json:"authorPhotoUrl"`
	Content        string     `json:"content"`
	Timestamp      time.Time  `json:"timestamp"`
	Reactions      []Reaction `json:"reactions"`
	Comments       []Comment  `json:"comments"`
}

// Clone returns a deep copy of the post.
func (p BlogPost) Clone() BlogPost {
	out := p
	out.Reactions = append([]Reaction(nil), p.Reactions...)
	out.Comments = append([]Comment(nil), p.Comments...)
	return out
}
