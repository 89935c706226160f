package auth

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"katering/internal/api"
	"katering/internal/domain"
)

type contextKey int

const claimsKey contextKey = iota

// ClaimsFromContext returns the verified claims, or nil when the request
// carried no valid bearer token.
func ClaimsFromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(claimsKey).(*Claims)
	return claims
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return header
}

type Middleware struct {
	tokens *TokenManager
	logger *zap.Logger
}

func NewMiddleware(tokens *TokenManager, logger *zap.Logger) *Middleware {
	return &Middleware{tokens: tokens, logger: logger}
}

// OptionalAuth parses a bearer token into the request context when present
// and valid, and lets the request through either way. Handlers that need an
// identity decide for themselves what a missing one means.
func (m *Middleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := bearerToken(r); token != "" {
			if claims, err := m.tokens.Verify(token); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), claimsKey, claims))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth rejects requests without a valid bearer token.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			api.WriteJSON(w, m.logger, http.StatusUnauthorized, api.MessageResponse{Message: "Token tidak ditemukan"})
			return
		}

		claims, err := m.tokens.Verify(token)
		if err != nil {
			api.WriteError(w, m.logger, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	})
}

// RequireAdmin layers an admin-role check on top of RequireAuth.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromContext(r.Context())
		if claims == nil || claims.Role != domain.RoleAdmin {
			api.WriteJSON(w, m.logger, http.StatusForbidden, api.MessageResponse{Message: "Akses hanya untuk admin"})
			return
		}
		next.ServeHTTP(w, r)
	}))
}
