package entity

// Role represents the portal a user belongs to.
type Role string

const (
	// RoleAdmin indicates an administrator account.
	RoleAdmin Role = "admin"
	// RoleBroker indicates a broker account able to manage its own listings.
	RoleBroker Role = "broker"
	// RoleUser indicates a regular end-user account.
	RoleUser Role = "user"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleBroker, RoleUser:
		return true
	default:
		return false
	}
}
