package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/harshavardhan-9/news-blog/internal/auth"
	"github.com/harshavardhan-9/news-blog/internal/models"
)

func newTestAuthn(t *testing.T) *auth.Authenticator {
	t.Helper()

	store := newTestStore(t)
	signer, err := auth.NewSigner("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewSigner() error = %v", err)
	}
	return auth.NewAuthenticator(store, signer)
}

func TestLogin_SeededAdmin(t *testing.T) {
	authn := newTestAuthn(t)

	payload := `{"email":"admin@newsblog.local","password":"admin123"}`
	r := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(payload))
	w := httptest.NewRecorder()
	Login(authn)(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Token == "" {
		t.Error("empty token")
	}
	if body.User.Role != models.RoleAdmin {
		t.Errorf("Role = %q, want admin", body.User.Role)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	authn := newTestAuthn(t)

	payload := `{"email":"admin@newsblog.local","password":"wrong"}`
	r := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(payload))
	w := httptest.NewRecorder()
	Login(authn)(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	authn := newTestAuthn(t)

	payload := `{"email":"nobody@newsblog.local","password":"admin123"}`
	r := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(payload))
	w := httptest.NewRecorder()
	Login(authn)(w, r)

	// Unknown email must be indistinguishable from a wrong password.
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	authn := newTestAuthn(t)

	r := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"email":"a@b"}`))
	w := httptest.NewRecorder()
	Login(authn)(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestMe(t *testing.T) {
	authn := newTestAuthn(t)

	claims, err := authn.Verify(loginToken(t, authn))
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	r := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	r = r.WithContext(auth.NewContext(r.Context(), claims))
	w := httptest.NewRecorder()
	Me(authn)(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var user models.User
	if err := json.NewDecoder(w.Body).Decode(&user); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if user.Email != "admin@newsblog.local" {
		t.Errorf("Email = %q", user.Email)
	}
}

func TestMe_NoClaims(t *testing.T) {
	authn := newTestAuthn(t)

	r := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	w := httptest.NewRecorder()
	Me(authn)(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func loginToken(t *testing.T, authn *auth.Authenticator) string {
	t.Helper()

	payload := `{"email":"admin@newsblog.local","password":"admin123"}`
	r := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(payload))
	w := httptest.NewRecorder()
	Login(authn)(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %s", w.Body.String())
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding login response: %v", err)
	}
	return body.Token
}
