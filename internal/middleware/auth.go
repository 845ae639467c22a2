package middleware

import (
	"context"
	"errors"
	"net/http"

	"registrant-auth/internal/auth"
	"registrant-auth/internal/auth/resolver"
	"registrant-auth/internal/logger"
)

// HeaderName carries the raw session token, without any scheme prefix.
const HeaderName = "Authorization"

// unexported, collision-proof context key
type identityContextKeyType struct{}

var identityKey = identityContextKeyType{}

// IdentityFromContext extracts the authenticated identity from context.
func IdentityFromContext(ctx context.Context) (*auth.Identity, bool) {
	id, ok := ctx.Value(identityKey).(*auth.Identity)
	return id, ok && id != nil
}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id *auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

type AuthMiddleware struct {
	Resolver resolver.Resolver
}

func NewAuthMiddleware(r resolver.Resolver) *AuthMiddleware {
	return &AuthMiddleware{Resolver: r}
}

func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Resolve the header value
		identity, err := a.Resolver.Resolve(r.Context(), r.Header.Get(HeaderName))

		// 2. Rejections all look alike to the client
		if errors.Is(err, resolver.ErrUnauthenticated) {
			writeJSONError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if err != nil {
			logger.Error("session lookup failed", map[string]any{
				"error": err.Error(),
				"path":  r.URL.Path,
			})
			writeJSONError(w, http.StatusInternalServerError, "internal error")
			return
		}

		// 3. Attach identity to context
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
	})
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + msg + `"}`))
}
