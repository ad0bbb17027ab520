package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/harshavardhan-9/news-blog/internal/models"
)

// CreateUser inserts a user and returns its ID.
func (s *Store) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (email, name, role, password_hash) VALUES (?, ?, ?, ?)`,
		u.Email, u.Name, string(u.Role), u.PasswordHash,
	)
	if err != nil {
		return 0, fmt.Errorf("creating user: %w", mapUnavailable(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting user id: %w", err)
	}
	return id, nil
}

// GetUserByEmail returns the user with the given email.
// Returns nil, ErrNotFound if no matching row exists.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, email, name, role, password_hash, created_at
		 FROM users WHERE email = ?`, email)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting user by email: %w", err)
	}
	return u, nil
}

// GetUserByID returns the user with the given ID.
// Returns nil, ErrNotFound if no matching row exists.
func (s *Store) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, email, name, role, password_hash, created_at
		 FROM users WHERE id = ?`, id)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting user by id: %w", err)
	}
	return u, nil
}

// CountUsers returns the number of user accounts.
func (s *Store) CountUsers(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}
	return n, nil
}

func scanUser(row rowScanner) (*models.User, error) {
	var (
		u         models.User
		role      string
		createdAt string
	)
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &role, &u.PasswordHash, &createdAt); err != nil {
		return nil, err
	}
	u.Role = models.Role(role)
	u.CreatedAt = parseTime(createdAt)
	return &u, nil
}
