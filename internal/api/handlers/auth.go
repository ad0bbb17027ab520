package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/harshavardhan-9/news-blog/internal/auth"
)

// Login handles POST /api/login. It checks the email/password pair against
// the local accounts and returns a signed session token with the user
// profile. Unknown email and wrong password get the same response.
func Login(authn *auth.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		body.Email = strings.TrimSpace(body.Email)
		if body.Email == "" || body.Password == "" {
			writeError(w, http.StatusBadRequest, "Email and password are required")
			return
		}

		user, token, err := authn.Login(ctx, body.Email, body.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				writeError(w, http.StatusUnauthorized, "Invalid email or password")
				return
			}
			slog.Error("login failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Login failed")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"token": token,
			"user":  user,
		})
	}
}

// Me handles GET /api/me. It returns the account behind the session token.
func Me(authn *auth.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := auth.FromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		user, err := authn.UserFor(ctx, claims)
		if err != nil {
			slog.Error("failed to load current user", "user_id", claims.UserID, "error", err)
			writeError(w, http.StatusUnauthorized, "Unknown account")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
