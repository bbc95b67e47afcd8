package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	Long: `Show whether a session is stored and what the server granted it.

When the stored token is a JWT its claims are decoded locally for
display. The signature is not checked; the server remains the
authority on whether the token is still accepted.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	session, err := authService.Session()
	if err != nil {
		return fmt.Errorf("reading session: %w", err)
	}

	if !session.IsAuthenticated() {
		cmd.Println("Not signed in.")
		cmd.Println("Sign in with: holocron signin")
		return nil
	}

	cmd.Println("Signed in.")
	cmd.Printf("  Role: %s\n", session.Role)
	printTokenClaims(cmd, session.Token)
	return nil
}

// printTokenClaims decodes a JWT without verifying it and prints the
// claims worth showing. Opaque tokens are silently skipped.
func printTokenClaims(cmd *cobra.Command, token string) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return
	}

	if subject, err := claims.GetSubject(); err == nil && subject != "" {
		cmd.Printf("  Account: %s\n", subject)
	}
	if issued, err := claims.GetIssuedAt(); err == nil && issued != nil {
		cmd.Printf("  Issued: %s\n", issued.Time.Format(time.RFC1123))
	}
	if expiry, err := claims.GetExpirationTime(); err == nil && expiry != nil {
		cmd.Printf("  Expires: %s", expiry.Time.Format(time.RFC1123))
		if time.Now().After(expiry.Time) {
			cmd.Print(" (expired)")
		}
		cmd.Println()
	}
}
