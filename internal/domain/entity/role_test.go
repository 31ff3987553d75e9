package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_Roles(t *testing.T) {
	assert.Equal(t, Roles{RoleCustomer}, (&User{}).Roles())
	assert.Equal(t, Roles{RoleStaff}, (&User{IsStaff: true}).Roles())
	// A superuser always carries the staff role, even without the flag.
	assert.Equal(t, Roles{RoleStaff}, (&User{IsSuperuser: true}).Roles())
}

func TestRolesFromStrings_FiltersInvalid(t *testing.T) {
	roles := RolesFromStrings([]string{"customer", "staff", "admin", ""})

	assert.Equal(t, Roles{RoleCustomer, RoleStaff}, roles)
	assert.True(t, roles.Contains(RoleStaff))
	assert.False(t, Roles{RoleCustomer}.Contains(RoleStaff))
}

func TestRoles_ToStrings(t *testing.T) {
	assert.Equal(t, []string{"customer", "staff"}, Roles{RoleCustomer, RoleStaff}.ToStrings())
}
