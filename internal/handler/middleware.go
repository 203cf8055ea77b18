package handler

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/eligiorbautista/niyoghub-server/internal/domain"
	"github.com/eligiorbautista/niyoghub-server/internal/service"
)

type contextKey string

const identityKey contextKey = "identity"

// identityFrom returns the authenticated identity attached by AuthMiddleware.
func identityFrom(ctx context.Context) (*domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*domain.Identity)
	return identity, ok
}

// AuthMiddleware resolves the session credential into an identity and attaches
// it to the request context. The credential is read from the jwt cookie, the
// Authorization header or, for websocket clients, the token query parameter.
type AuthMiddleware struct {
	auth   service.IAuthService
	logger *zap.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(auth service.IAuthService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{auth: auth, logger: logger}
}

// Require wraps next so it only runs with a valid authenticated identity.
func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		credential := extractCredential(r)
		if credential == "" {
			writeError(w, m.logger, domain.ErrUnauthorized)
			return
		}

		identity, err := m.auth.Resolve(credential)
		if err != nil {
			writeError(w, m.logger, domain.ErrUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole wraps next so it only runs for identities carrying the role.
func (m *AuthMiddleware) RequireRole(role string, next http.Handler) http.Handler {
	return m.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFrom(r.Context())
		if !ok || identity.Role != role {
			writeError(w, m.logger, domain.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	}))
}

func extractCredential(r *http.Request) string {
	if cookie, err := r.Cookie("jwt"); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return r.URL.Query().Get("token")
}
