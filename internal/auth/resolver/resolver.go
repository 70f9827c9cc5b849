package resolver

import (
	"context"
	"fmt"
	"sharedCalendar/internal/calendar"
	"sharedCalendar/internal/models"
)

type AllowlistReader interface {
	Resolve(ctx context.Context, email string) (models.AuthorizedUser, error)
}

// Resolver maps external identities to session users through the allowlist.
type Resolver struct {
	allowlist AllowlistReader
}

func New(allowlist AllowlistReader) *Resolver {
	return &Resolver{allowlist: allowlist}
}

// Login admits a provider-verified email if it is on the allowlist.
// Unknown emails fail with storage.ErrUnauthorized.
func (r *Resolver) Login(ctx context.Context, email string) (models.SessionUser, error) {
	const op = "auth.resolver.Login"

	email = calendar.NormalizeEmail(email)

	entry, err := r.allowlist.Resolve(ctx, email)
	if err != nil {
		return models.SessionUser{}, fmt.Errorf("%s: %w", op, err)
	}

	return models.SessionUser{Email: email, IsAdmin: entry.IsAdmin}, nil
}

// Refresh re-derives the admin flag of an existing session from the current
// allowlist. A revoked email fails with storage.ErrUnauthorized.
func (r *Resolver) Refresh(ctx context.Context, user models.SessionUser) (models.SessionUser, error) {
	const op = "auth.resolver.Refresh"

	entry, err := r.allowlist.Resolve(ctx, user.Email)
	if err != nil {
		return models.SessionUser{}, fmt.Errorf("%s: %w", op, err)
	}

	return models.SessionUser{Email: calendar.NormalizeEmail(user.Email), IsAdmin: entry.IsAdmin}, nil
}
