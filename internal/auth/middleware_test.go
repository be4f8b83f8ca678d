package auth

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakhq/fielddex/internal/apperr"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// fakeProvider verifies any token of the form "<subject>:<role>" and records
// whether it was consulted.
type fakeProvider struct {
	called bool
	err    error
}

func (f *fakeProvider) VerifyToken(_ context.Context, token string) (Identity, error) {
	f.called = true
	if f.err != nil {
		return Identity{}, f.err
	}
	sub, role, _ := cutToken(token)
	return Identity{SubjectID: sub, Role: role}, nil
}

func (f *fakeProvider) SetRoleClaim(context.Context, string, map[string]string) error {
	return nil
}

func cutToken(token string) (sub, role string, ok bool) {
	for i := range token {
		if token[i] == ':' {
			return token[:i], token[i+1:], true
		}
	}
	return token, "", false
}

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func errBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuthenticate_NoToken(t *testing.T) {
	p := &fakeProvider{}
	handler := Authenticate(p, discard)(http.HandlerFunc(okHandler))

	req := httptest.NewRequest(http.MethodGet, "/trainers", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	// The identity provider must never be reached without a token.
	assert.False(t, p.called)

	body := errBody(t, rec)
	errObj := body["error"].(map[string]any)
	assert.Equal(t, apperr.CodeTokenNotFound, errObj["code"])
	assert.Equal(t, "Unauthorized: No token provided", errObj["message"])
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	p := &fakeProvider{}
	handler := Authenticate(p, discard)(http.HandlerFunc(okHandler))

	req := httptest.NewRequest(http.MethodGet, "/trainers", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, p.called)
}

func TestAuthenticate_ProviderRejects(t *testing.T) {
	p := &fakeProvider{err: apperr.Authentication("Unauthorized: token has expired", apperr.CodeTokenExpired)}
	handler := Authenticate(p, discard)(http.HandlerFunc(okHandler))

	req := httptest.NewRequest(http.MethodGet, "/trainers", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	errObj := errBody(t, rec)["error"].(map[string]any)
	assert.Equal(t, apperr.CodeTokenExpired, errObj["code"])
}

func TestAuthenticate_NonDomainProviderError(t *testing.T) {
	p := &fakeProvider{err: errors.New("backend hiccup")}
	handler := Authenticate(p, discard)(http.HandlerFunc(okHandler))

	req := httptest.NewRequest(http.MethodGet, "/trainers", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	errObj := errBody(t, rec)["error"].(map[string]any)
	assert.Equal(t, apperr.CodeTokenInvalid, errObj["code"])
	assert.Equal(t, "Unauthorized: Invalid token", errObj["message"])
}

func TestAuthenticate_Success(t *testing.T) {
	p := &fakeProvider{}
	var got Identity
	handler := Authenticate(p, discard)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = IdentityFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/trainers", nil)
	req.Header.Set("Authorization", "Bearer uid-1:manager")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, Identity{SubjectID: "uid-1", Role: "manager"}, got)
}

// newAuthzRouter mounts the Authorize middleware behind a chi route so URL
// params resolve like production.
func newAuthzRouter(opts Options, identity Identity) http.Handler {
	r := chi.NewRouter()
	r.With(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(withIdentity(req.Context(), identity)))
		})
	}, Authorize(opts, discard)).Get("/users/{uid}", okHandler)
	return r
}

func TestAuthorize_SameUserBypassBeforeRole(t *testing.T) {
	// No role claim at all: the bypass must still win.
	router := newAuthzRouter(
		Options{HasRole: []string{"admin"}, AllowSameUser: true, Param: "uid"},
		Identity{SubjectID: "uid-7"},
	)

	req := httptest.NewRequest(http.MethodGet, "/users/uid-7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthorize_OtherUserWithoutRoleRejected(t *testing.T) {
	router := newAuthzRouter(
		Options{HasRole: []string{"admin"}, AllowSameUser: true, Param: "uid"},
		Identity{SubjectID: "uid-7"},
	)

	req := httptest.NewRequest(http.MethodGet, "/users/uid-8", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthorize_NoRoleFound(t *testing.T) {
	router := newAuthzRouter(
		Options{HasRole: []string{"admin", "manager"}},
		Identity{SubjectID: "uid-7"},
	)

	req := httptest.NewRequest(http.MethodGet, "/users/uid-9", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	// Decode error body to check the code distinguishes missing vs wrong role.
	var body map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	errObj := body["error"].(map[string]any)
	assert.Equal(t, apperr.CodeRoleNotFound, errObj["code"])
	assert.Equal(t, "Forbidden: No role found", errObj["message"])
}

func TestAuthorize_RoleMembership(t *testing.T) {
	tests := []struct {
		name string
		role string
		want int
	}{
		{"allowed role", "manager", http.StatusOK},
		{"another allowed role", "admin", http.StatusOK},
		{"insufficient role", "user", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthzRouter(
				Options{HasRole: []string{"admin", "manager"}},
				Identity{SubjectID: "uid-7", Role: tt.role},
			)

			req := httptest.NewRequest(http.MethodGet, "/users/uid-9", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusForbidden {
				errObj := errBody(t, rec)["error"].(map[string]any)
				assert.Equal(t, apperr.CodeInsufficientRole, errObj["code"])
				assert.Equal(t, "Forbidden: Insufficient role", errObj["message"])
			}
		})
	}
}
