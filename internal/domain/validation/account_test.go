package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	testCases := []struct {
		name     string
		email    string
		expected string
	}{
		{"lowercases the domain part", "alice@EXAMPLE.COM", "alice@example.com"},
		{"preserves the local part", "Alice.B@example.com", "Alice.B@example.com"},
		{"trims surrounding whitespace", "  alice@example.com  ", "alice@example.com"},
		{"leaves non-addresses alone", "not-an-email", "not-an-email"},
		{"normalizes after the last at sign", `"odd@local"@EXAMPLE.com`, `"odd@local"@example.com`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeEmail(tc.email))
		})
	}
}

func TestAccount(t *testing.T) {
	var v Violations
	name, email := Account("  Alice  ", "alice@EXAMPLE.com", &v)

	assert.True(t, v.Empty())
	assert.Equal(t, "Alice", name)
	assert.Equal(t, "alice@example.com", email)
}

func TestAccount_ShortName(t *testing.T) {
	var v Violations
	Account("ab", "alice@example.com", &v)

	require.Error(t, v.Err())
	assert.Contains(t, v.Err().Error(), "The name cannot be empty or contain fewer than 3 characters.")
}

func TestAccount_NameLengthCountsCharacters(t *testing.T) {
	// Multibyte names are measured in characters, not bytes.
	var v Violations
	Account("花草", "hana@example.com", &v)

	require.Error(t, v.Err())
	assert.Contains(t, v.Err().Error(), "The name cannot be empty or contain fewer than 3 characters.")

	var clean Violations
	name, _ := Account("花草店", "hana@example.com", &clean)
	assert.NoError(t, clean.Err())
	assert.Equal(t, "花草店", name)
}

func TestAccount_MissingEmail(t *testing.T) {
	var v Violations
	Account("Alice", "   ", &v)

	require.Error(t, v.Err())
	assert.Contains(t, v.Err().Error(), "You haven't provided a valid email address.")
}

func TestPassword(t *testing.T) {
	testCases := []struct {
		name      string
		password  string
		userName  string
		email     string
		violation string
	}{
		{"too short", "1234aX!", "Alice", "alice@example.com", "This password is too short. It must contain at least 8 characters."},
		{"too short despite its byte count", "密码短七字", "Alice", "alice@example.com", "This password is too short. It must contain at least 8 characters."},
		{"entirely numeric", "123456789012", "Alice", "alice@example.com", "This password is entirely numeric."},
		{"contains the name", "xxbartholomewxx", "Bartholomew", "b@example.com", "The password is too similar to the name."},
		{"contains the email local part", "alice1234", "Somebody", "alice@example.com", "The password is too similar to the email address."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var v Violations
			Password(tc.password, tc.userName, tc.email, &v)

			require.Error(t, v.Err())
			assert.Contains(t, v.Err().Error(), tc.violation)
		})
	}
}

func TestPassword_AcceptsStrongPassword(t *testing.T) {
	var v Violations
	Password("correct horse battery", "Alice", "alice@example.com", &v)

	assert.NoError(t, v.Err())
}

func TestPassword_ShortAttributesAreNotSimilar(t *testing.T) {
	// "ab" and "bob" are too generic to disqualify a password containing them.
	var v Violations
	Password("abacus railway", "ab", "bob@example.com", &v)

	assert.NoError(t, v.Err())
}

func TestPasswordsMatch(t *testing.T) {
	var v Violations
	PasswordsMatch("one password", "another password", &v)

	require.Error(t, v.Err())
	assert.Contains(t, v.Err().Error(), "The two password fields didn't match.")

	var clean Violations
	PasswordsMatch("same password", "same password", &clean)
	assert.NoError(t, clean.Err())
}
