package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/oakhq/fielddex/internal/apperr"
	"github.com/oakhq/fielddex/internal/api/respond"
)

type contextKeyIdentity struct{}

// IdentityFrom retrieves the authenticated caller from the request context.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(contextKeyIdentity{}).(Identity)
	return identity, ok
}

// withIdentity stores the resolved identity for downstream middleware and
// handlers.
func withIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, contextKeyIdentity{}, identity)
}

// Authenticate extracts the bearer token and verifies it with the identity
// provider. A missing token fails immediately without touching the provider.
func Authenticate(provider Provider, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				logger.Warn("unauthorized access - missing token", "path", r.URL.Path)
				respond.Error(w, logger, apperr.Authentication(
					"Unauthorized: No token provided", apperr.CodeTokenNotFound))
				return
			}

			identity, err := provider.VerifyToken(r.Context(), token)
			if err != nil {
				logger.Warn("unauthorized access - invalid token", "path", r.URL.Path, "error", err)
				var appErr *apperr.Error
				if !errors.As(err, &appErr) {
					err = apperr.Authentication("Unauthorized: Invalid token", apperr.CodeTokenInvalid)
				}
				respond.Error(w, logger, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), identity)))
		})
	}
}

// Options configures the Authorize middleware for one route.
type Options struct {
	// HasRole lists the roles allowed through.
	HasRole []string

	// AllowSameUser lets a caller act on their own resource regardless of
	// role. Checked before the role is consulted, so a subject with no
	// role claim can still reach their own records.
	AllowSameUser bool

	// Param is the route parameter compared against the subject id when
	// AllowSameUser is set. Defaults to "id".
	Param string
}

// Authorize enforces the role set resolved by Authenticate. Check order
// matters: same-user bypass, then missing role, then role membership.
func Authorize(opts Options, logger *slog.Logger) func(http.Handler) http.Handler {
	param := opts.Param
	if param == "" {
		param = "id"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, _ := IdentityFrom(r.Context())

			if opts.AllowSameUser {
				if id := chi.URLParam(r, param); id != "" && identity.SubjectID == id {
					next.ServeHTTP(w, r)
					return
				}
			}

			if identity.Role == "" {
				logger.Warn("forbidden - no role found", "subject", identity.SubjectID, "path", r.URL.Path)
				respond.Error(w, logger, apperr.Authorization(
					"Forbidden: No role found", apperr.CodeRoleNotFound))
				return
			}

			for _, role := range opts.HasRole {
				if identity.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			logger.Warn("forbidden - insufficient role",
				"subject", identity.SubjectID, "role", identity.Role, "path", r.URL.Path)
			respond.Error(w, logger, apperr.Authorization(
				"Forbidden: Insufficient role", apperr.CodeInsufficientRole))
		})
	}
}
