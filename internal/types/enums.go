// Package types provides the domain model for the job board: seekers,
// companies, jobs, reviews, and the community blog entities.
package types

// JobType is the employment type of a job posting.
type JobType string

// JobType values use the exact display strings expected by API clients.
const (
	JobTypeFullTime   JobType = "Full-Time"
	JobTypePartTime   JobType = "Part-Time"
	JobTypeContract   JobType = "Contract"
	JobTypeInternship JobType = "Internship"
)

// Valid reports whether jt is one of the known job types.
func (jt JobType) Valid() bool {
	switch jt {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}

// LocationType describes where a job is performed.
type LocationType string

const (
	LocationOnsite LocationType = "On-site"
	LocationRemote LocationType = "Remote"
	LocationHybrid LocationType = "Hybrid"
)

// Valid reports whether lt is one of the known location types.
func (lt LocationType) Valid() bool {
	switch lt {
	case LocationOnsite, LocationRemote, LocationHybrid:
		return true
	}
	return false
}

// ReactionType is the kind of reaction a user can leave on a blog post.
type ReactionType string

const (
	ReactionLike    ReactionType = "like"
	ReactionLove    ReactionType = "love"
	ReactionDislike ReactionType = "dislike"
)

// Valid reports whether rt is one of the known reaction types.
func (rt ReactionType) Valid() bool {
	switch rt {
	case ReactionLike, ReactionLove, ReactionDislike:
		return true
	}
	return false
}

// Role identifies which user collection an account belongs to.
type Role string

const (
	RoleSeeker  Role = "seeker"
	RoleCompany Role = "company"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSeeker, RoleCompany, RoleAdmin:
		return true
	}
	return false
}
