package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Struct(t *testing.T) {
	type loginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	v := New()

	assert.NoError(t, v.Validate(loginRequest{Email: "dev@agency.test", Password: "correct-horse"}))

	err := v.Validate(loginRequest{Email: "not-an-email", Password: "x"})
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, verr.Errors, "email")
	assert.Contains(t, verr.Errors, "password")
}

func TestProfileRoleRule(t *testing.T) {
	v := New()

	for _, role := range []string{"admin", "manager", "developer", "client"} {
		assert.NoError(t, v.ValidateVar(role, "profile_role"), role)
	}
	assert.Error(t, v.ValidateVar("superuser", "profile_role"))
}

func TestIsValidTableName(t *testing.T) {
	assert.True(t, IsValidTableName("projects"))
	assert.True(t, IsValidTableName("feature_requests"))
	assert.False(t, IsValidTableName(""))
	assert.False(t, IsValidTableName("Projects"))
	assert.False(t, IsValidTableName("projects; drop table"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("dev@agency.test"))
	assert.False(t, IsValidEmail("dev@"))
}
