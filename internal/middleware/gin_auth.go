package middleware

import (
	"net/http"

	"registrant-auth/internal/auth"

	"github.com/gin-gonic/gin"
)

// IdentityKey is where GinRequireAuth stores the identity in the gin context.
const IdentityKey = "identity"

// GinRequireAuth adapts the net/http AuthMiddleware to Gin.
func GinRequireAuth(a *AuthMiddleware) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Bridge handler to allow net/http middleware execution
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.Request = r
			if identity, ok := IdentityFromContext(r.Context()); ok {
				c.Set(IdentityKey, identity)
			}
			c.Next()
		})

		a.RequireAuth(next).ServeHTTP(c.Writer, c.Request)

		// If auth middleware already handled the response, stop Gin chain
		if c.Writer.Written() {
			c.Abort()
		}
	}
}

// GinIdentity returns the identity GinRequireAuth attached, if any.
func GinIdentity(c *gin.Context) (*auth.Identity, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return nil, false
	}
	identity, ok := v.(*auth.Identity)
	return identity, ok && identity != nil
}
