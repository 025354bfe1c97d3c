package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantMsg  string
	}{
		{"valid", "alice_01", ""},
		{"minimum length", "abc", ""},
		{"maximum length", strings.Repeat("a", 20), ""},
		{"blank", "", "Username is required"},
		{"whitespace only", "   ", "Username is required"},
		{"too short", "ab", "Username must be at least 3 characters"},
		{"too long", strings.Repeat("a", 21), "Username must be less than 20 characters"},
		{"invalid characters", "alice!", "Username can only contain letters, numbers, and underscores"},
		{"embedded space", "al ice", "Username can only contain letters, numbers, and underscores"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Username(tc.username)
			if tc.wantMsg == "" {
				require.NoError(t, err)
				return
			}
			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			require.Equal(t, "username", fe.Field)
			require.Equal(t, tc.wantMsg, fe.Message)
		})
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantMsg  string
	}{
		{"valid", "secret1", ""},
		{"blank", "", "Password is required"},
		{"too short", "abc12", "Password must be at least 6 characters"},
		{"too long", strings.Repeat("x", 51), "Password must be less than 50 characters"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Password(tc.password)
			if tc.wantMsg == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tc.wantMsg)
		})
	}
}

func TestConfirmPassword(t *testing.T) {
	require.NoError(t, ConfirmPassword("secret1", "secret1"))
	require.EqualError(t, ConfirmPassword("", "secret1"), "Confirm password is required")
	require.EqualError(t, ConfirmPassword("secret2", "secret1"), "Passwords do not match")
}
