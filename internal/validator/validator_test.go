package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roleStruct struct {
	Role string `json:"role" validate:"required,is-user-role"`
}

type adminRoleStruct struct {
	Role string `json:"role" validate:"required,is-admin-role"`
}

type responseStruct struct {
	Response string `json:"response" validate:"required,is-request-response"`
}

func TestUserRoleTag(t *testing.T) {
	t.Parallel()
	v := New()

	assert.NoError(t, v.Validate(&roleStruct{Role: "host"}))
	assert.NoError(t, v.Validate(&roleStruct{Role: "performer"}))
	assert.Error(t, v.Validate(&roleStruct{Role: "admin"}))
	assert.Error(t, v.Validate(&roleStruct{Role: "dj"}))
}

func TestAdminRoleTagAllowsAdmin(t *testing.T) {
	t.Parallel()
	v := New()

	assert.NoError(t, v.Validate(&adminRoleStruct{Role: "admin"}))
	assert.NoError(t, v.Validate(&adminRoleStruct{Role: "host"}))
	assert.Error(t, v.Validate(&adminRoleStruct{Role: "superuser"}))
}

func TestRequestResponseTag(t *testing.T) {
	t.Parallel()
	v := New()

	assert.NoError(t, v.Validate(&responseStruct{Response: "accepted"}))
	assert.NoError(t, v.Validate(&responseStruct{Response: "rejected"}))
	assert.Error(t, v.Validate(&responseStruct{Response: "pending"}))
}

func TestValidationErrorUsesJSONFieldNames(t *testing.T) {
	t.Parallel()
	v := New()

	err := v.Validate(&roleStruct{Role: "dj"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "role")
	assert.Equal(t, `Must be "host" or "performer"`, vErr.Errors["role"])
}
