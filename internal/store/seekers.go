package store

import "github.com/jobexecutive/jobboard/internal/types"

// Seekers returns a deep copy of the seeker collection in insertion order.
func (s *Store) Seekers() []types.JobSeeker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSeekers(s.seekers)
}

// SaveSeeker stores the seeker with replace-by-id semantics: an existing
// record with the same id is fully replaced, field for field, and an unknown
// id is inserted at the end. There is no partial-field merge.
func (s *Store) SaveSeeker(seeker types.JobSeeker) types.JobSeeker {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := seeker.Clone()
	for i := range s.seekers {
		if s.seekers[i].ID == stored.ID {
			s.seekers[i] = stored
			return seeker
		}
	}
	s.seekers = append(s.seekers, stored)
	return seeker
}
