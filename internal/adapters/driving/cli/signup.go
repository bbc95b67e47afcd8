package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/holocron-labs/holocron-cli/internal/core/services"
)

// Flags for signup.
var (
	signupUsername string
	signupPassword string
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Register a new account",
	Long: `Register a new account with the catalog server.

Registration does not sign you in; run 'holocron signin' afterwards.
The same local credential checks as signin apply.`,
	RunE: runSignup,
}

func init() {
	signupCmd.Flags().StringVarP(
		&signupUsername, "username", "u", "", "account email address")
	signupCmd.Flags().StringVar(
		&signupPassword, "password", "", "account password (prompted if omitted)")
	rootCmd.AddCommand(signupCmd)
}

func runSignup(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	username, password, err := collectCredentials(cmd, signupUsername, signupPassword)
	if err != nil {
		return err
	}

	ctx := context.Background()
	message, err := authService.SignUp(ctx, username, password)
	if err != nil {
		if services.IsInvalidInput(err) {
			return err
		}
		return fmt.Errorf("signup failed: %w", err)
	}

	if message == "" {
		message = "Account created."
	}
	cmd.Println(message)
	cmd.Println("Sign in with: holocron signin")
	return nil
}
