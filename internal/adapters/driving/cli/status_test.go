package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holocron-labs/holocron-cli/internal/core/domain"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestStatusCmd_NotSignedIn(t *testing.T) {
	_, cleanup := setupAuthService()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"status"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Not signed in.")
	assert.Contains(t, buf.String(), "holocron signin")
}

func TestStatusCmd_ShowsJWTClaims(t *testing.T) {
	mock, cleanup := setupAuthService()
	defer cleanup()

	expiry := time.Now().Add(time.Hour)
	mock.session = domain.Session{
		Token: signedToken(t, jwt.MapClaims{
			"sub": "admin@example.com",
			"exp": expiry.Unix(),
		}),
		Role: "admin",
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"status"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "Signed in.")
	assert.Contains(t, output, "Role: admin")
	assert.Contains(t, output, "Account: admin@example.com")
	assert.Contains(t, output, "Expires:")
	assert.NotContains(t, output, "(expired)")
}

func TestStatusCmd_MarksExpiredToken(t *testing.T) {
	mock, cleanup := setupAuthService()
	defer cleanup()

	mock.session = domain.Session{
		Token: signedToken(t, jwt.MapClaims{
			"sub": "admin@example.com",
			"exp": time.Now().Add(-time.Hour).Unix(),
		}),
		Role: "admin",
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"status"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "(expired)")
}

func TestStatusCmd_OpaqueTokenStillShowsRole(t *testing.T) {
	mock, cleanup := setupAuthService()
	defer cleanup()
	mock.session = domain.Session{Token: "not-a-jwt", Role: "admin"}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"status"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Role: admin")
	assert.NotContains(t, buf.String(), "Account:")
}
