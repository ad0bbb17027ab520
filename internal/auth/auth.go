// Package auth implements local credential checks and signed session
// tokens for the dashboard. Accounts live in the local database; there is
// no external identity provider.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/harshavardhan-9/news-blog/internal/models"
	"github.com/harshavardhan-9/news-blog/internal/storage"
)

// ErrInvalidCredentials is returned for an unknown email or a wrong
// password. Callers must not distinguish the two.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserStore is the slice of storage the authenticator needs.
type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// Authenticator checks credentials against stored bcrypt hashes and issues
// session tokens.
type Authenticator struct {
	users  UserStore
	signer *Signer
}

// NewAuthenticator wires a user store to a token signer.
func NewAuthenticator(users UserStore, signer *Signer) *Authenticator {
	return &Authenticator{users: users, signer: signer}
}

// Login verifies the email/password pair and returns the user with a fresh
// session token. Unknown email and wrong password both map to
// ErrInvalidCredentials.
func (a *Authenticator) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	u, err := a.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("looking up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := a.signer.Sign(u, time.Now())
	if err != nil {
		return nil, "", fmt.Errorf("signing session token: %w", err)
	}
	return u, token, nil
}

// Verify validates a raw session token and returns its claims.
func (a *Authenticator) Verify(raw string) (Claims, error) {
	return a.signer.ParseAndValidate(raw)
}

// UserFor loads the account behind validated claims, so handlers can serve
// the current profile even if the name or role changed since sign-in.
func (a *Authenticator) UserFor(ctx context.Context, claims Claims) (*models.User, error) {
	return a.users.GetUserByID(ctx, claims.UserID)
}
