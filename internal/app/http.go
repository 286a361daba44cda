package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/hacklabr/wordpress-linkedin-login/internal/auth/handler"
	"github.com/hacklabr/wordpress-linkedin-login/internal/auth/provider"
	"github.com/hacklabr/wordpress-linkedin-login/internal/auth/provider/linkedin"
	"github.com/hacklabr/wordpress-linkedin-login/internal/auth/resolver"
	"github.com/hacklabr/wordpress-linkedin-login/internal/auth/state"
	"github.com/hacklabr/wordpress-linkedin-login/internal/config"
	"github.com/hacklabr/wordpress-linkedin-login/internal/directory"
	"github.com/hacklabr/wordpress-linkedin-login/internal/middleware"
	"github.com/hacklabr/wordpress-linkedin-login/internal/session"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {
	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	sessionStore := session.NewRedisStore(infra.Redis.Client)
	stateStore := state.NewRedisStore(infra.Redis.Client, cfg.StateTTL)

	userDirectory := directory.NewPostgresDirectory(infra.DB)
	accountResolver := resolver.NewAccountResolver(
		userDirectory,
		cfg.PostLoginRedirectURL,
		cfg.AdminURL,
	)

	var linkedinOpts []linkedin.Option
	if cfg.ExchangeViaQuery {
		linkedinOpts = append(linkedinOpts, linkedin.WithExchangeViaQuery())
	}

	linkedinProvider, err := linkedin.New(
		cfg.LinkedInClientID,
		cfg.LinkedInClientSecret,
		cfg.LinkedInRedirectURL,
		linkedinOpts...,
	)
	if err != nil {
		return nil, nil, err
	}

	registry := provider.NewRegistry(linkedinProvider)

	authHandler := handler.NewHandler(
		registry,
		stateStore,
		sessionStore,
		accountResolver,
		cfg.LoginURL,
		cfg.StateTTL,
		cfg.SessionTTL,
	)

	authMiddleware := middleware.NewAuthMiddleware(sessionStore)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	authHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Protected Routes
	// ----------------------------

	admin := router.Group(cfg.AdminURL)
	admin.Use(middleware.GinRequireAuth(authMiddleware))

	admin.GET("", func(c *gin.Context) {
		userID, _ := middleware.UserIDFromContext(c.Request.Context())
		c.JSON(200, gin.H{"user_id": userID})
	})

	return router, func() error {
		return infra.DB.Close()
	}, nil
}
