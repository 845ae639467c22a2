package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"registrant-auth/internal/auth"
	"registrant-auth/internal/auth/resolver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	identity *auth.Identity
	err      error
	got      string
}

func (s *stubResolver) Resolve(_ context.Context, token string) (*auth.Identity, error) {
	s.got = token
	return s.identity, s.err
}

func TestRequireAuth(t *testing.T) {
	cookiezi := &auth.Identity{OsuID: 42, Name: "cookiezi"}

	tests := []struct {
		name       string
		resolver   *stubResolver
		header     string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "authenticated",
			resolver:   &stubResolver{identity: cookiezi},
			header:     "tok",
			wantStatus: http.StatusOK,
			wantBody:   "42",
		},
		{
			name:       "missing credential",
			resolver:   &stubResolver{err: resolver.ErrMissingCredential},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"unauthorized"}`,
		},
		{
			name:       "invalid token",
			resolver:   &stubResolver{err: resolver.ErrInvalidToken},
			header:     "stale",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"unauthorized"}`,
		},
		{
			name:       "store failure",
			resolver:   &stubResolver{err: errors.New("connection refused")},
			header:     "tok",
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"internal error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, ok := IdentityFromContext(r.Context())
				require.True(t, ok)
				_, _ = w.Write([]byte("42"))
				assert.Equal(t, int64(42), id.OsuID)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
			if tt.header != "" {
				req.Header.Set(HeaderName, tt.header)
			}
			rec := httptest.NewRecorder()

			NewAuthMiddleware(tt.resolver).RequireAuth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, tt.header, tt.resolver.got)
		})
	}
}

func TestRequireAuth_PassesHeaderVerbatim(t *testing.T) {
	r := &stubResolver{err: resolver.ErrInvalidToken}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderName, "Bearer tok")

	NewAuthMiddleware(r).RequireAuth(http.NotFoundHandler()).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "Bearer tok", r.got)
}

func TestIdentityFromContext_Empty(t *testing.T) {
	_, ok := IdentityFromContext(context.Background())
	assert.False(t, ok)

	_, ok = IdentityFromContext(WithIdentity(context.Background(), nil))
	assert.False(t, ok)
}
