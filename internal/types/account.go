package types

// Admin is an administrator account. Admins own no child entities.
type Admin struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Account is the result of resolving a user id or login across the three
// user collections. Exactly one of Seeker, Company, Admin is non-nil,
// matching Role.
type Account struct {
	Role    Role       `json:"role"`
	Seeker  *JobSeeker `json:"-"`
	Company *Company   `json:"-"`
	Admin   *Admin     `json:"-"`
}

// User returns the concrete entity behind the account for serialization.
func (a Account) User() any {
	switch a.Role {
	case RoleSeeker:
		return a.Seeker
	case RoleCompany:
		return a.Company
	case RoleAdmin:
		return a.Admin
	}
	return nil
}

// ID returns the entity id behind the account, or "" when unset.
func (a Account) ID() string {
	switch {
	case a.Seeker != nil:
		return a.Seeker.ID
	case a.Company != nil:
		return a.Company.ID
	case a.Admin != nil:
		return a.Admin.ID
	}
	return ""
}
