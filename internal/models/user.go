package models

type AuthorizedUser struct {
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// SessionUser is the caller identity attached to a request. IsAdmin is
// re-derived from the allowlist on every authenticated request.
type SessionUser struct {
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}
