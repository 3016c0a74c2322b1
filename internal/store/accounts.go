package store

import "github.com/jobexecutive/jobboard/internal/types"

// -----------------------------------------------------------------------------
// Account lookups across the three user collections
// -----------------------------------------------------------------------------

// Authenticate resolves an account by email within the given role's
// collection. No credential verification happens here: the identity
// provider contract is satisfied by a plain lookup, and real secret
// verification belongs to an external collaborator.
func (s *Store) Authenticate(email string, role types.Role) (types.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch role {
	case types.RoleSeeker:
		for i := range s.seekers {
			if s.seekers[i].Email == email {
				sk := s.seekers[i].Clone()
				return types.Account{Role: role, Seeker: &sk}, nil
			}
		}
	case types.RoleCompany:
		for i := range s.companies {
			if s.companies[i].Email == email {
				c := s.companies[i].Clone()
				return types.Account{Role: role, Company: &c}, nil
			}
		}
	case types.RoleAdmin:
		for i := range s.admins {
			if s.admins[i].Email == email {
				a := s.admins[i]
				return types.Account{Role: role, Admin: &a}, nil
			}
		}
	}
	return types.Account{}, &ErrAccountNotFound{Key: email}
}

// GetAccount resolves a user id by searching seekers, then companies, then
// admins, reporting which collection it was found in.
func (s *Store) GetAccount(id string) (types.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.seekers {
		if s.seekers[i].ID == id {
			sk := s.seekers[i].Clone()
			return types.Account{Role: types.RoleSeeker, Seeker: &sk}, nil
		}
	}
	for i := range s.companies {
		if s.companies[i].ID == id {
			c := s.companies[i].Clone()
			return types.Account{Role: types.RoleCompany, Company: &c}, nil
		}
	}
	for i := range s.admins {
		if s.admins[i].ID == id {
			a := s.admins[i]
			return types.Account{Role: types.RoleAdmin, Admin: &a}, nil
		}
	}
	return types.Account{}, &ErrAccountNotFound{Key: id}
}
