// Package middleware provides HTTP middleware for authentication and authorization.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// SessionCookie carries the session token set by the front-end login flow.
const SessionCookie = "session_token"

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

const principalKey ContextKey = "principal"

// Principal is what a validated token says about its bearer.
type Principal interface {
	GetUserID() uuid.UUID
	GetGroups() []string
}

// TokenValidator validates session tokens.
type TokenValidator interface {
	ValidateToken(tokenString string) (Principal, error)
}

// AuthMiddleware rejects requests without a valid session token and stores
// the token's principal in the request context. The session cookie is
// checked first; when it is missing or fails validation the
// Authorization: Bearer header is tried.
func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, tokenString := range tokensFromRequest(r) {
				principal, err := validator.ValidateToken(tokenString)
				if err != nil {
					continue
				}
				ctx := context.WithValue(r.Context(), principalKey, principal)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
		})
	}
}

// tokensFromRequest lists the candidate tokens in the order they are tried.
func tokensFromRequest(r *http.Request) []string {
	var tokens []string
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		if token := strings.TrimSpace(cookie.Value); token != "" {
			tokens = append(tokens, token)
		}
	}

	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		tokens = append(tokens, parts[1])
	}
	return tokens
}

// RequireGroups allows the request when the authenticated principal belongs
// to at least one of groups. It must run after AuthMiddleware.
func RequireGroups(groups ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := r.Context().Value(principalKey).(Principal)
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			if !slices.ContainsFunc(principal.GetGroups(), func(g string) bool {
				return slices.Contains(groups, g)
			}) {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetUserID extracts the authenticated user ID from the request context.
func GetUserID(r *http.Request) (uuid.UUID, error) {
	principal, ok := r.Context().Value(principalKey).(Principal)
	if !ok {
		return uuid.Nil, fmt.Errorf("user ID not found in request context")
	}
	return principal.GetUserID(), nil
}

// GetGroups returns the authenticated principal's groups, or nil.
func GetGroups(r *http.Request) []string {
	principal, ok := r.Context().Value(principalKey).(Principal)
	if !ok {
		return nil
	}
	return principal.GetGroups()
}

// WithPrincipal returns ctx carrying p, as AuthMiddleware would store it.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}
