package cart

// Session carries the caller's identity for one request. The token is the
// access credential forwarded to the remote cart service; the user id scopes
// the local runtime and the persisted checkout selection.
type Session struct {
	Token  string
	UserID string
}

// Authenticated reports whether both the credential and the resolved user
// identity are present. Anonymous sessions have no remote cart; sync
// operations treat them as no-ops rather than errors.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.UserID != ""
}
