package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndValidateToken(t *testing.T) {
	secret := "unit-test-secret"

	token, err := SignToken("68b1f0aa0000000000000001", "asha@example.com", "Asha Nair", "user", secret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "68b1f0aa0000000000000001", claims.UserID)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
	assert.False(t, claims.IsAdmin())
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := SignToken("68b1f0aa0000000000000001", "asha@example.com", "Asha Nair", "user", "secret-a")
	require.NoError(t, err)

	_, err = ValidateToken(token, "secret-b")
	assert.Error(t, err)
}

func TestSignTokenRequiresSecret(t *testing.T) {
	_, err := SignToken("id", "a@b.c", "A", "user", "")
	assert.Error(t, err)
}

func TestIsPasswordStrong(t *testing.T) {
	tests := []struct {
		password string
		strong   bool
	}{
		{"Str0ng!pass", true},
		{"Another$1aa", true},
		{"short1!A", true},
		{"weak", false},
		{"alllowercase1!", false},
		{"ALLUPPERCASE1!", false},
		{"NoNumbers!!", false},
		{"NoSpecials11", false},
		{"A1!a", false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.strong, IsPasswordStrong(tc.password), "password %q", tc.password)
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Str0ng!pass")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ng!pass", hash)

	assert.True(t, CheckPassword(hash, "Str0ng!pass"))
	assert.False(t, CheckPassword(hash, "Str0ng!pass2"))
}

func TestStringTrim(t *testing.T) {
	assert.Equal(t, "abc", StringTrim(`  "abc" `))
	assert.Equal(t, "abc", StringTrim("'abc'"))
	assert.Equal(t, "abc", StringTrim("abc"))
	assert.Equal(t, "", StringTrim("  "))
}

func TestClaimsHelpers(t *testing.T) {
	admin := &Claims{UserID: "u1", Role: "admin"}
	assert.True(t, admin.IsAdmin())
	assert.True(t, admin.HasRole("admin"))
	assert.True(t, admin.IsOwner("u1"))
	assert.False(t, admin.IsOwner("u2"))

	anon := &Claims{}
	assert.Equal(t, "user", anon.GetSafeRole())
}
