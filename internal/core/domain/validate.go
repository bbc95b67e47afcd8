package domain

import "regexp"

// emailPattern matches the username (email) format accepted at signin.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// Validation messages shown next to the offending field.
const (
	MsgUsernameRequired = "Username (Email) is required."
	MsgUsernameInvalid  = "Please enter a valid email address."
	MsgPasswordRequired = "Password is required."
	MsgPasswordTooShort = "Password must be at least 6 characters long."
)

// CredentialErrors carries field-local validation errors. Empty strings
// mean the field is valid. These are never network-triggered.
type CredentialErrors struct {
	Username string
	Password string
}

// OK returns true when both fields validated cleanly.
func (e CredentialErrors) OK() bool {
	return e.Username == "" && e.Password == ""
}

// ValidateCredentials checks a username/password pair against the signin
// form rules. Recomputed on every relevant input change.
func ValidateCredentials(username, password string) CredentialErrors {
	var errs CredentialErrors

	switch {
	case username == "":
		errs.Username = MsgUsernameRequired
	case !emailPattern.MatchString(username):
		errs.Username = MsgUsernameInvalid
	}

	switch {
	case password == "":
		errs.Password = MsgPasswordRequired
	case len(password) < MinPasswordLength:
		errs.Password = MsgPasswordTooShort
	}

	return errs
}
