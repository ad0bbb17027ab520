package storage

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/harshavardhan-9/news-blog/internal/models"
)

// defaultUsers are the local demo accounts created on first run. The
// authenticator is a local mock by design: there is no external identity
// provider, but passwords are still stored hashed.
var defaultUsers = []struct {
	email    string
	name     string
	role     models.Role
	password string
}{
	{"admin@newsblog.local", "Admin", models.RoleAdmin, "admin123"},
	{"viewer@newsblog.local", "Viewer", models.RoleViewer, "viewer123"},
}

// SeedDefaults creates the demo user accounts if the users table is empty.
// It is idempotent and safe to call on every startup.
func (s *Store) SeedDefaults(ctx context.Context) error {
	n, err := s.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("checking existing users: %w", err)
	}
	if n > 0 {
		return nil
	}

	for _, u := range defaultUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashing password for %q: %w", u.email, err)
		}
		if _, err := s.CreateUser(ctx, &models.User{
			Email:        u.email,
			Name:         u.name,
			Role:         u.role,
			PasswordHash: string(hash),
		}); err != nil {
			return fmt.Errorf("seeding user %q: %w", u.email, err)
		}
	}

	slog.Info("seeded default users", "count", len(defaultUsers))
	return nil
}
