package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupCmd_Use(t *testing.T) {
	assert.Equal(t, "signup", signupCmd.Use)
}

func TestSignupCmd_PrintsServerMessage(t *testing.T) {
	mock, cleanup := setupAuthService()
	defer cleanup()

	mock.signUpFunc = func(_ context.Context, username, _ string) (string, error) {
		return "User created successfully.", nil
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"signup", "--username", "new@example.com", "--password", "secret1"})
	defer func() {
		rootCmd.SetArgs(nil)
		signupUsername = ""
		signupPassword = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "User created successfully.")
	assert.Contains(t, buf.String(), "holocron signin")
}

func TestSignupCmd_EmptyMessageGetsDefault(t *testing.T) {
	mock, cleanup := setupAuthService()
	defer cleanup()

	mock.signUpFunc = func(_ context.Context, _, _ string) (string, error) {
		return "", nil
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"signup", "--username", "new@example.com", "--password", "secret1"})
	defer func() {
		rootCmd.SetArgs(nil)
		signupUsername = ""
		signupPassword = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Account created.")
}

func TestSignupCmd_ServiceNotConfigured(t *testing.T) {
	oldService := authService
	authService = nil
	defer func() {
		authService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"signup"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth service not configured")
}
