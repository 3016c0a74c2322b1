// Package store implements the job board data service: an in-memory,
// process-lifetime store owning every entity collection. All reads return
// deep copies and all mutations happen under a single lock, so callers can
// never observe or corrupt internal state. There is no persistence; state
// lives until an explicit delete or process exit.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jobexecutive/jobboard/internal/types"
)

// Store owns all entity collections. Construct one per process (or per test
// case) with New; the zero value is not usable.
type Store struct {
	mu sync.RWMutex

	seekers   []types.JobSeeker
	companies []types.Company
	admins    []types.Admin
	jobs      []types.Job
	posts     []types.BlogPost

	// Injectable for deterministic tests.
	now   func() time.Time
	newID func() string
}

// New creates a store populated from the given seed. A nil seed yields an
// empty store.
func New(seed *Seed) *Store {
	s := &Store{
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	if seed != nil {
		s.seekers = cloneSeekers(seed.Seekers)
		s.companies = cloneCompanies(seed.Companies)
		s.admins = append([]types.Admin(nil), seed.Admins...)
		s.jobs = cloneJobs(seed.Jobs)
		s.posts = clonePosts(seed.BlogPosts)
	}
	return s
}

// EntityKind names a deletable top-level collection.
type EntityKind string

const (
	KindJob      EntityKind = "job"
	KindCompany  EntityKind = "company"
	KindSeeker   EntityKind = "seeker"
	KindBlogPost EntityKind = "blogPost"
)

// Valid reports whether k names a deletable collection.
func (k EntityKind) Valid() bool {
	switch k {
	case KindJob, KindCompany, KindSeeker, KindBlogPost:
		return true
	}
	return false
}

// DeleteEntity removes the identified entity. Deleting a company also
// cascade-deletes every job whose companyId matches. Deletion reports
// success whether or not the id existed; dangling references left in
// reviews or appliedJobs are documented behavior.
func (s *Store) DeleteEntity(kind EntityKind, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case KindJob:
		s.jobs = deleteJobsBy(s.jobs, func(j types.Job) bool { return j.ID == id })
	case KindCompany:
		kept := s.companies[:0]
		for _, c := range s.companies {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		s.companies = kept
		s.jobs = deleteJobsBy(s.jobs, func(j types.Job) bool { return j.CompanyID == id })
	case KindSeeker:
		kept := s.seekers[:0]
		for _, sk := range s.seekers {
			if sk.ID != id {
				kept = append(kept, sk)
			}
		}
		s.seekers = kept
	case KindBlogPost:
		kept := s.posts[:0]
		for _, p := range s.posts {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		s.posts = kept
	}
}

func deleteJobsBy(jobs []types.Job, match func(types.Job) bool) []types.Job {
	kept := jobs[:0]
	for _, j := range jobs {
		if !match(j) {
			kept = append(kept, j)
		}
	}
	return kept
}

func cloneSeekers(in []types.JobSeeker) []types.JobSeeker {
	out := make([]types.JobSeeker, len(in))
	for i, s := range in {
		out[i] = s.Clone()
	}
	return out
}

func cloneCompanies(in []types.Company) []types.Company {
	out := make([]types.Company, len(in))
	for i, c := range in {
		out[i] = c.Clone()
	}
	return out
}

func cloneJobs(in []types.Job) []types.Job {
	out := make([]types.Job, len(in))
	for i, j := range in {
		out[i] = j.Clone()
	}
	return out
}

func clonePosts(in []types.BlogPost) []types.BlogPost {
	out := make([]types.BlogPost, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}
