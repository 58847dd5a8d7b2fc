//go:build unit

package user_test

import (
	"testing"

	"carhire-booking/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleAtLeast(t *testing.T) {
	assert.True(t, user.RoleAdmin.AtLeast(user.RoleStaff))
	assert.True(t, user.RoleStaff.AtLeast(user.RoleStaff))
	assert.False(t, user.RoleCustomer.AtLeast(user.RoleStaff))
	assert.False(t, user.Role("owner").AtLeast(user.RoleCustomer))
}

func TestNewRole(t *testing.T) {
	r, err := user.NewRole(" Staff ")
	require.NoError(t, err)
	assert.Equal(t, user.RoleStaff, r)

	_, err = user.NewRole("root")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestActor(t *testing.T) {
	assert.True(t, user.Actor{}.IsAnonymous())
	assert.False(t, user.Actor{}.IsStaff())

	staff := user.NewActor(uuid.New(), user.RoleStaff)
	assert.False(t, staff.IsAnonymous())
	assert.True(t, staff.IsStaff())
	assert.False(t, user.NewActor(uuid.New(), user.RoleCustomer).IsStaff())
}
