package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

const (
	sessionKey = "user"
	usersKey   = "users"
)

var _ port.AuthStore = (*Auth)(nil)

// Auth validates demo credentials against the seed user list and
// holds the current session identity. The admin-editable users copy
// is seeded from the fixture on first load and persisted separately.
type Auth struct {
	mu      sync.Mutex
	repo    port.Snapshot
	seed    []domain.SeedUser
	users   []domain.SeedUser
	session *domain.User
	latency time.Duration
}

func NewAuth(
	repo port.Snapshot, seed []domain.SeedUser, latency time.Duration,
) *Auth {
	return &Auth{
		repo:    repo,
		seed:    append([]domain.SeedUser(nil), seed...),
		latency: latency,
	}
}

// Load restores the persisted session, if any, and seeds the users
// copy on first read.
func (a *Auth) Load() error {
	const op = "Auth.Load"

	a.mu.Lock()
	defer a.mu.Unlock()

	var u domain.User
	found, err := a.repo.Load(sessionKey, &u)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if found {
		a.session = &u
	}

	found, err = a.repo.Load(usersKey, &a.users)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		a.users = append([]domain.SeedUser(nil), a.seed...)
		if err := a.repo.Save(usersKey, a.users); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	return nil
}

// Login compares the plaintext demo credentials against the seed
// list. The failure does not tell user-not-found from wrong password.
func (a *Auth) Login(
	ctx context.Context, username, password string,
) (domain.User, error) {
	const op = "Auth.Login"
	log := slog.With("op", op)

	if err := wait(ctx, a.latency); err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	for _, su := range a.seed {
		if su.Username != username || su.Password != password {
			continue
		}
		u := su.User
		a.session = &u
		if err := a.repo.Save(sessionKey, u); err != nil {
			return domain.User{}, fmt.Errorf("%s: %w", op, err)
		}
		log.Info("session established", "username", u.Username)
		return u, nil
	}
	return domain.User{}, fmt.Errorf("%s: %w",
		op, domain.ErrInvalidCredentials)
}

func (a *Auth) Logout() error {
	const op = "Auth.Logout"

	a.mu.Lock()
	defer a.mu.Unlock()

	a.session = nil
	if err := a.repo.Delete(sessionKey); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (a *Auth) Current() (domain.User, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session == nil {
		return domain.User{}, false
	}
	return *a.session, true
}

func (a *Auth) IsAuthenticated() bool {
	_, ok := a.Current()
	return ok
}

func (a *Auth) IsAdmin() bool {
	u, ok := a.Current()
	return ok && u.IsAdmin()
}

// UpdateProfile shallow-merges the patch into the session identity.
// The input is trusted, validation belongs to the caller.
func (a *Auth) UpdateProfile(patch domain.UserPatch) (domain.User, error) {
	const op = "Auth.UpdateProfile"

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session == nil {
		return domain.User{}, fmt.Errorf("%s: %w",
			op, domain.ErrNotAuthenticated)
	}

	u := *a.session
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Address != nil {
		addr := *patch.Address
		u.Address = &addr
	}
	if patch.Phone != nil {
		u.Phone = *patch.Phone
	}

	a.session = &u
	if err := a.repo.Save(sessionKey, u); err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// Users returns the admin-editable copy without passwords.
func (a *Auth) Users() []domain.User {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]domain.User, 0, len(a.users))
	for _, su := range a.users {
		out = append(out, su.User)
	}
	return out
}

// SearchUsers matches the query as a case-insensitive substring of
// name, username, email or role.
func (a *Auth) SearchUsers(query string) []domain.User {
	users := a.Users()
	if query == "" {
		return users
	}
	q := strings.ToLower(query)
	var out []domain.User
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), q) ||
			strings.Contains(strings.ToLower(u.Username), q) ||
			strings.Contains(strings.ToLower(u.Email), q) ||
			strings.Contains(strings.ToLower(u.Role), q) {
			out = append(out, u)
		}
	}
	return out
}

func (a *Auth) DeleteUser(id int) error {
	const op = "Auth.DeleteUser"

	a.mu.Lock()
	defer a.mu.Unlock()

	for i, su := range a.users {
		if su.ID != id {
			continue
		}
		a.users = append(a.users[:i], a.users[i+1:]...)
		if err := a.repo.Save(usersKey, a.users); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	}
	return fmt.Errorf("%s: user %d: %w", op, id, domain.ErrNotFound)
}

// CustomerCount counts users with the plain user role.
func (a *Auth) CustomerCount() int {
	var n int
	for _, u := range a.Users() {
		if u.Role == domain.RoleUser {
			n++
		}
	}
	return n
}
