// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a shop account. The password is never held in plaintext;
// only the bcrypt hash is carried here.
type User struct {
	ID           uuid.UUID // Unique identifier, assigned at creation and immutable afterwards.
	Email        string    // Login identifier; unique and stored with a normalized domain part.
	Name         string    // Display name, at least three characters after trimming.
	PasswordHash string    // Salted bcrypt hash of the account password.
	IsStaff      bool      // Grants access to catalog management endpoints.
	IsSuperuser  bool      // Grants every permission; implies staff access.
	IsActive     bool      // Inactive accounts cannot authenticate.
	DateJoined   time.Time // Timestamp of account creation.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// Roles derives the role set encoded in the account's flags. A user is either
// a regular customer or staff; superusers always carry the staff role too.
func (u *User) Roles() Roles {
	if u.IsStaff || u.IsSuperuser {
		return Roles{RoleStaff}
	}

	return Roles{RoleCustomer}
}
