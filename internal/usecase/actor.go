// Package usecase defines the application service interfaces of the
// marketplace backend and their input types.
package usecase

import "propmart/internal/domain/entity"

// Actor is the authenticated caller on whose behalf a use case runs.
type Actor struct {
	ID   string
	Role entity.Role
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin
}
