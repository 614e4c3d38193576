package entity

import "time"

// UserStatus is the account state of a marketplace user.
type UserStatus string

const (
	// UserActive means the account may log in and act.
	UserActive UserStatus = "Active"
	// UserInactive means the account is suspended.
	UserInactive UserStatus = "Inactive"
)

// String returns the string representation of the UserStatus.
func (s UserStatus) String() string {
	return string(s)
}

// User is a marketplace account: an admin, a broker, or an end user.
type User struct {
	ID        string     `json:"_id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Agency    string     `json:"agency,omitempty"`
	Status    UserStatus `json:"status"`
	Role      Role       `json:"role"`
	CreatedAt time.Time  `json:"createdAt"`
}

// EntityID returns the stable unique identifier of the user.
func (u User) EntityID() string {
	return u.ID
}
