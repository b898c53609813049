package utils

import (
	"testing"
	"volunteermatch-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	config.Load()
	m.Run()
}

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(42, RoleVolunteer, "vol@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, RoleVolunteer, claims.Role)
	assert.Equal(t, "vol@example.com", claims.Email)
	assert.Equal(t, "volunteer:42", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsTamperedSignature(t *testing.T) {
	token, err := GenerateToken(7, RoleOrganization, "org@example.com")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ValidateToken(tampered)
	assert.Error(t, err)
}

func TestOrganizationToken(t *testing.T) {
	token, err := GenerateToken(9, RoleOrganization, "org@example.com")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RoleOrganization, claims.Role)
	assert.Equal(t, "organization:9", claims.Subject)
}
