package entity

// UserRole classifies an account. New registrations always start as students;
// other roles are assigned through back-office tooling.
type UserRole int16

const (
	RoleUnknown UserRole = iota
	RoleStudent
)

// String returns the canonical role name.
func (r UserRole) String() string {
	switch r {
	case RoleStudent:
		return "STUDENT"
	default:
		return "UNKNOWN"
	}
}
