package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/harshavardhan-9/news-blog/internal/models"
)

func TestCreateAndGetUser(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.CreateUser(ctx, &models.User{
		Email:        "test@newsblog.local",
		Name:         "Test User",
		Role:         models.RoleViewer,
		PasswordHash: "$2a$10$fakehash",
	})
	if err != nil {
		t.Fatalf("CreateUser() error: %v", err)
	}

	byEmail, err := store.GetUserByEmail(ctx, "test@newsblog.local")
	if err != nil {
		t.Fatalf("GetUserByEmail() error: %v", err)
	}
	if byEmail.ID != id {
		t.Errorf("ID = %d, want %d", byEmail.ID, id)
	}
	if byEmail.Role != models.RoleViewer {
		t.Errorf("Role = %q, want %q", byEmail.Role, models.RoleViewer)
	}

	byID, err := store.GetUserByID(ctx, id)
	if err != nil {
		t.Fatalf("GetUserByID() error: %v", err)
	}
	if byID.Email != "test@newsblog.local" {
		t.Errorf("Email = %q, want %q", byID.Email, "test@newsblog.local")
	}
}

func TestGetUser_NotFound(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.GetUserByEmail(ctx, "nobody@newsblog.local"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetUserByEmail: expected ErrNotFound, got: %v", err)
	}
	if _, err := store.GetUserByID(ctx, 404); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetUserByID: expected ErrNotFound, got: %v", err)
	}
}

func TestSeedDefaults_CreatesUsersOnce(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.SeedDefaults(ctx); err != nil {
		t.Fatalf("SeedDefaults() error: %v", err)
	}

	n, err := store.CountUsers(ctx)
	if err != nil {
		t.Fatalf("CountUsers() error: %v", err)
	}
	if n != 2 {
		t.Errorf("CountUsers() = %d, want 2", n)
	}

	// Seeding again must not duplicate accounts.
	if err := store.SeedDefaults(ctx); err != nil {
		t.Fatalf("second SeedDefaults() error: %v", err)
	}
	n, err = store.CountUsers(ctx)
	if err != nil {
		t.Fatalf("CountUsers() error: %v", err)
	}
	if n != 2 {
		t.Errorf("CountUsers() after reseed = %d, want 2", n)
	}

	admin, err := store.GetUserByEmail(ctx, "admin@newsblog.local")
	if err != nil {
		t.Fatalf("GetUserByEmail(admin) error: %v", err)
	}
	if admin.Role != models.RoleAdmin {
		t.Errorf("admin role = %q, want %q", admin.Role, models.RoleAdmin)
	}
}
