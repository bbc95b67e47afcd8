package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var signoutCmd = &cobra.Command{
	Use:   "signout",
	Short: "Sign out and discard the stored session",
	RunE:  runSignout,
}

func init() {
	rootCmd.AddCommand(signoutCmd)
}

func runSignout(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	session, err := authService.Session()
	if err != nil {
		return fmt.Errorf("reading session: %w", err)
	}

	if err := authService.SignOut(); err != nil {
		return fmt.Errorf("signout failed: %w", err)
	}

	if session.IsAuthenticated() {
		cmd.Println("Signed out.")
	} else {
		cmd.Println("Not signed in.")
	}
	return nil
}
