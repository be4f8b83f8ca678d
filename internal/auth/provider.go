// Package auth provides bearer-token authentication and role-based
// authorization for the API: a token-verifying identity provider, the
// Authenticate middleware that resolves the caller, and the Authorize
// middleware that enforces per-route role sets.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/oakhq/fielddex/internal/apperr"
	"github.com/oakhq/fielddex/internal/config"
	"github.com/oakhq/fielddex/internal/store"
)

// The roles recognized by the authorization layer.
const (
	RoleAdmin   = "admin"
	RoleOfficer = "officer"
	RoleManager = "manager"
	RoleUser    = "user"
)

// Identity is the resolved caller: subject id plus role claim. Role may be
// empty when the subject carries no claim.
type Identity struct {
	SubjectID string
	Role      string
}

// Provider verifies bearer tokens and manages role claims. Narrow by
// design so tests can substitute a double.
type Provider interface {
	VerifyToken(ctx context.Context, token string) (Identity, error)
	SetRoleClaim(ctx context.Context, subjectID string, claims map[string]string) error
}

// Claims are the token claims minted and verified by JWTProvider.
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// roleClaim is the persisted claim document, keyed by subject id. A claim
// set through SetRoleClaim overrides whatever role the token itself carries,
// so role changes take effect without re-issuing tokens.
type roleClaim struct {
	Role string `json:"role"`
}

// JWTProvider is the HS256 identity provider backed by the document store
// for persisted role claims.
type JWTProvider struct {
	signingKey []byte
	issuer     string
	audience   string
	claims     store.Store
}

// NewJWTProvider creates a provider from configuration. claims may be the
// same store the entity services use.
func NewJWTProvider(cfg *config.Config, claims store.Store) *JWTProvider {
	return &JWTProvider{
		signingKey: []byte(cfg.JWTSigningKey),
		issuer:     cfg.JWTIssuer,
		audience:   cfg.JWTAudience,
		claims:     claims,
	}
}

// Mint issues a signed token for a subject. Used by fieldctl token and the
// test suites.
func (p *JWTProvider) Mint(subjectID, role string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    p.issuer,
			Audience:  []string{p.audience},
		},
	})

	signed, err := token.SignedString(p.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken parses and validates a token, then resolves the subject's
// role: a persisted claim wins over the token's own role claim.
func (p *JWTProvider) VerifyToken(ctx context.Context, tokenString string) (Identity, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return p.signingKey, nil
	}, jwt.WithIssuer(p.issuer), jwt.WithAudience(p.audience))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, apperr.Authentication("Unauthorized: token has expired", apperr.CodeTokenExpired)
		}
		return Identity{}, apperr.Authentication("Unauthorized: Invalid token", apperr.CodeTokenInvalid)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return Identity{}, apperr.Authentication("Unauthorized: Invalid token", apperr.CodeTokenInvalid)
	}

	identity := Identity{SubjectID: claims.Subject, Role: claims.Role}

	// Persisted role claims override the token claim.
	doc, err := p.claims.GetByID(ctx, config.ClaimsCollection, claims.Subject)
	switch {
	case err == nil:
		var stored roleClaim
		if err := json.Unmarshal(doc.Data, &stored); err != nil {
			return Identity{}, fmt.Errorf("decode role claim for %s: %w", claims.Subject, err)
		}
		identity.Role = stored.Role
	case errors.Is(err, store.ErrNotFound):
		// No stored claim, fall back to the token.
	default:
		return Identity{}, fmt.Errorf("load role claim for %s: %w", claims.Subject, err)
	}

	return identity, nil
}

// SetRoleClaim persists a subject's role claim, overriding the role carried
// by already-issued tokens.
func (p *JWTProvider) SetRoleClaim(ctx context.Context, subjectID string, claims map[string]string) error {
	if err := p.claims.Put(ctx, config.ClaimsCollection, subjectID, roleClaim{Role: claims["role"]}); err != nil {
		return fmt.Errorf("persist role claim for %s: %w", subjectID, err)
	}
	return nil
}
