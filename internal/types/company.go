package types

import "time"

// Review is a rating left on a company by a user. The id and date are
// assigned by the store when the review is added.
type Review struct {
	ID           string    `json:"id"`
	AuthorID     string    `json:"authorId"`
	ReviewerName string    `json:"reviewerName"`
	Rating       int       `json:"rating"` // 1-5
	Comment      string    `json:"comment"`
	Date         time.Time `json:"date"`
}

// Company is an employer profile. Jobs lists job ids for display purposes;
// authoritative ownership is Job.CompanyID.
type Company struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Logo          string   `json:"logo"`
	Description   string   `json:"description"`
	Website       string   `json:"website"`
	ContactInfo   string   `json:"contactInfo"`
	OfficeAddress string   `json:"officeAddress"`
	Reviews       []Review `json:"reviews"`
	Jobs          []string `json:"jobs"`
}

// Clone returns a deep copy of the company.
func (c Company) Clone() Company {
	out := c
	out.Reviews = append([]Review(nil), c.Reviews...)
	out.Jobs = append([]string(nil), c.Jobs...)
	return out
}
