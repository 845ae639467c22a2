package handler

import (
	"context"

	"registrant-auth/internal/auth/credentials"
	"registrant-auth/internal/logger"
	"registrant-auth/internal/middleware"
	"registrant-auth/internal/registrant"
	"registrant-auth/internal/session"

	"github.com/gin-gonic/gin"
)

// Issuer creates sessions for privileged callers.
type Issuer interface {
	Issue(ctx context.Context, osuID int64, proof string) (*session.Session, error)
}

// RegistrantReader looks up registrants by osu id.
type RegistrantReader interface {
	GetRegistrantByOsuID(ctx context.Context, osuID int64) (*registrant.Registrant, error)
}

var _ Issuer = (*credentials.Service)(nil)

type Handler struct {
	issuer      Issuer
	registrants RegistrantReader
	auth        *middleware.AuthMiddleware
}

func NewHandler(
	issuer Issuer,
	registrants RegistrantReader,
	auth *middleware.AuthMiddleware,
) *Handler {
	return &Handler{
		issuer:      issuer,
		registrants: registrants,
		auth:        auth,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	api.POST("/sessions/create", h.CreateSession)

	protected := api.Group("")
	protected.Use(middleware.GinRequireAuth(h.auth))
	protected.GET("/me", h.Me)

	for _, route := range r.Routes() {
		logger.Debug("route registered", map[string]any{
			"method": route.Method,
			"path":   route.Path,
		})
	}
}

func abortJSON(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

