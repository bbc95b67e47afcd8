package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/holocron-labs/holocron-cli/internal/core/services"
)

// Flags for signin.
var (
	signinUsername string
	signinPassword string
)

var signinCmd = &cobra.Command{
	Use:   "signin",
	Short: "Sign in to the catalog server",
	Long: `Sign in to the catalog server and store the session locally.

Credentials are prompted interactively unless provided via flags. The
username must be an email address and the password at least 6
characters; both are checked before the server is contacted.

Examples:
  holocron signin
  holocron signin --username admin@example.com`,
	RunE: runSignin,
}

func init() {
	signinCmd.Flags().StringVarP(
		&signinUsername, "username", "u", "", "account email address")
	signinCmd.Flags().StringVar(
		&signinPassword, "password", "", "account password (prompted if omitted)")
	rootCmd.AddCommand(signinCmd)
}

func runSignin(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	username, password, err := collectCredentials(cmd, signinUsername, signinPassword)
	if err != nil {
		return err
	}

	ctx := context.Background()
	session, err := authService.SignIn(ctx, username, password)
	if err != nil {
		if services.IsInvalidInput(err) {
			return err
		}
		return fmt.Errorf("signin failed: %w", err)
	}

	cmd.Printf("Signed in with %s role.\n", session.Role)
	return nil
}

// collectCredentials fills in any credential not already provided via
// flags by prompting on the command's input.
func collectCredentials(cmd *cobra.Command, username, password string) (string, string, error) {
	reader := bufio.NewReader(cmd.InOrStdin())

	if username == "" {
		cmd.Print("Username (Email): ")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return "", "", fmt.Errorf("reading username: %w", err)
		}
		username = strings.TrimSpace(line)
	}

	if password == "" {
		var err error
		password, err = promptPassword(cmd, reader)
		if err != nil {
			return "", "", err
		}
	}

	return username, password, nil
}

// promptPassword reads a password without echo when attached to a
// terminal, falling back to a plain line read otherwise.
func promptPassword(cmd *cobra.Command, reader *bufio.Reader) (string, error) {
	cmd.Print("Password: ")

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		cmd.Println()
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(raw), nil
	}

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimSpace(line), nil
}
