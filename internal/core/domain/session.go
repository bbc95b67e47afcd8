package domain

// Session is the persisted authentication state. Created on successful
// signin, read before every catalog fetch, destroyed on sign-out or when
// the remote API rejects the token with a 401.
//
// No expiry is computed locally; an expired token is discovered reactively
// through the 401 path.
type Session struct {
	// Token is the opaque bearer token issued at signin.
	Token string `toml:"token" json:"token"`

	// Role is the role the server reported for the account.
	Role string `toml:"role" json:"role"`
}

// IsAuthenticated returns true if a token is present. Absence of a token
// means the caller must route the user back to the signin boundary before
// any catalog data is fetched.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}
