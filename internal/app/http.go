package app

import (
	"context"
	"net/http"

	"registrant-auth/internal/auth/credentials"
	"registrant-auth/internal/auth/handler"
	"registrant-auth/internal/auth/resolver"
	"registrant-auth/internal/config"
	"registrant-auth/internal/logger"
	"registrant-auth/internal/middleware"
	"registrant-auth/internal/session"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	return newRouter(cfg, infra.Sessions), infra.Close, nil
}

func newRouter(cfg config.Config, sessions session.Store) *gin.Engine {

	// ----------------------------
	// Dependencies
	// ----------------------------

	if cfg.SessionGenerationDigest == "" {
		logger.Warn("SESSION_GENERATION_PHRASE is not set; session creation will fail", nil)
	}
	if cfg.SessionEnforceExpiry {
		logger.Info("session expiry is enforced", nil)
	}

	issuer := credentials.NewService(cfg.SessionGenerationDigest, sessions)
	tokenResolver := resolver.NewSessionResolver(sessions, cfg.SessionEnforceExpiry)
	authMiddleware := middleware.NewAuthMiddleware(tokenResolver)

	authHandler := handler.NewHandler(issuer, sessions, authMiddleware)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authHandler.RegisterRoutes(router)

	return router
}
