package models

// Session is the explicit per-request identity context. It replaces the
// browser's local storage as the holder of the token and the claimed role.
// Verified is set only when the token signature was checked.
type Session struct {
	Email     string `json:"email"`
	Username  string `json:"username,omitempty"`
	Token     string `json:"-"`
	ClaimRole string `json:"claimRole,omitempty"`
	Verified  bool   `json:"-"`
}

// Identity is the key used for persisted preferences.
func (s *Session) Identity() string {
	if s == nil {
		return ""
	}
	return s.Email
}

// AccountSyncRequest is the body of POST /accounts/sync/.
type AccountSyncRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
