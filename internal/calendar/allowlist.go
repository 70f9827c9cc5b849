package calendar

import (
	"context"
	"fmt"
	"sharedCalendar/internal/models"
	"sharedCalendar/internal/storage"
	"strings"
	"sync"
)

type UserStore interface {
	LoadUsers(ctx context.Context) ([]models.AuthorizedUser, error)
	SaveUsers(ctx context.Context, users []models.AuthorizedUser) error
}

// Allowlist owns the authorized-users document. The primary admin can be
// neither demoted nor removed through it.
type Allowlist struct {
	mu           sync.Mutex
	store        UserStore
	primaryAdmin string
}

func NewAllowlist(store UserStore, primaryAdmin string) *Allowlist {
	return &Allowlist{
		store:        store,
		primaryAdmin: NormalizeEmail(primaryAdmin),
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (a *Allowlist) PrimaryAdmin() string {
	return a.primaryAdmin
}

// Resolve returns the allowlist entry for email or storage.ErrUnauthorized.
func (a *Allowlist) Resolve(ctx context.Context, email string) (models.AuthorizedUser, error) {
	const op = "calendar.Allowlist.Resolve"

	users, err := a.store.LoadUsers(ctx)
	if err != nil {
		return models.AuthorizedUser{}, fmt.Errorf("%s: %w", op, err)
	}

	idx := indexOf(users, email)
	if idx == -1 {
		return models.AuthorizedUser{}, fmt.Errorf("%s: %w", op, storage.ErrUnauthorized)
	}

	return users[idx], nil
}

func (a *Allowlist) List(ctx context.Context) ([]models.AuthorizedUser, error) {
	const op = "calendar.Allowlist.List"

	users, err := a.store.LoadUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}

func (a *Allowlist) Add(ctx context.Context, email string, isAdmin bool) ([]models.AuthorizedUser, error) {
	const op = "calendar.Allowlist.Add"

	email = NormalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("%s: email is required: %w", op, storage.ErrBadRequest)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	users, err := a.store.LoadUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if indexOf(users, email) != -1 {
		return nil, fmt.Errorf("%s: %s: %w", op, email, storage.ErrConflict)
	}

	users = append(users, models.AuthorizedUser{Email: email, IsAdmin: isAdmin})

	if err = a.store.SaveUsers(ctx, users); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}

func (a *Allowlist) SetAdmin(ctx context.Context, email string, isAdmin bool) ([]models.AuthorizedUser, error) {
	const op = "calendar.Allowlist.SetAdmin"

	email = NormalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("%s: email is required: %w", op, storage.ErrBadRequest)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	users, err := a.store.LoadUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	idx := indexOf(users, email)
	if idx == -1 {
		return nil, fmt.Errorf("%s: %s: %w", op, email, storage.ErrNotFound)
	}

	if email == a.primaryAdmin && !isAdmin {
		return nil, fmt.Errorf("%s: cannot demote the primary admin: %w", op, storage.ErrForbidden)
	}

	users[idx].IsAdmin = isAdmin

	if err = a.store.SaveUsers(ctx, users); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}

// Remove deletes email from the allowlist on behalf of caller. Callers can
// not remove themselves.
func (a *Allowlist) Remove(ctx context.Context, caller, email string) ([]models.AuthorizedUser, error) {
	const op = "calendar.Allowlist.Remove"

	email = NormalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("%s: email is required: %w", op, storage.ErrBadRequest)
	}

	if email == NormalizeEmail(caller) {
		return nil, fmt.Errorf("%s: cannot delete your own account: %w", op, storage.ErrForbidden)
	}

	if email == a.primaryAdmin {
		return nil, fmt.Errorf("%s: cannot delete the primary admin: %w", op, storage.ErrForbidden)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	users, err := a.store.LoadUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	idx := indexOf(users, email)
	if idx == -1 {
		return nil, fmt.Errorf("%s: %s: %w", op, email, storage.ErrNotFound)
	}

	users = append(users[:idx], users[idx+1:]...)

	if err = a.store.SaveUsers(ctx, users); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}

// EnsurePrimaryAdmin makes sure the primary admin is present and flagged as
// admin. It runs once at startup.
func (a *Allowlist) EnsurePrimaryAdmin(ctx context.Context) (bool, error) {
	const op = "calendar.Allowlist.EnsurePrimaryAdmin"

	if a.primaryAdmin == "" {
		return false, fmt.Errorf("%s: primary admin email is not configured", op)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	users, err := a.store.LoadUsers(ctx)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	idx := indexOf(users, a.primaryAdmin)
	switch {
	case idx == -1:
		users = append(users, models.AuthorizedUser{Email: a.primaryAdmin, IsAdmin: true})
	case users[idx].IsAdmin && users[idx].Email == a.primaryAdmin:
		return false, nil
	default:
		users[idx] = models.AuthorizedUser{Email: a.primaryAdmin, IsAdmin: true}
	}

	if err = a.store.SaveUsers(ctx, users); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return true, nil
}

func indexOf(users []models.AuthorizedUser, email string) int {
	email = NormalizeEmail(email)
	for i, u := range users {
		if NormalizeEmail(u.Email) == email {
			return i
		}
	}

	return -1
}
