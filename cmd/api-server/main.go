package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"recohub/internal/auth"
	"recohub/internal/catalog"
	"recohub/internal/daily"
	"recohub/internal/events"
	"recohub/internal/favorites"
	"recohub/internal/profile"
	"recohub/internal/recs"
	synchub "recohub/internal/sync"
	"recohub/pkg/database"
	"recohub/pkg/logger"
	"recohub/pkg/utils"
)

func main() {
	log, err := logger.New(os.Getenv("RECOHUB_ENV"))
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg := database.DefaultConfig()
	db := database.MustOpen(cfg)
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal("db migrate failed", "err", err)
	}

	router := gin.Default()

	// Optional: avoid "trusted all proxies" warning
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	// Browser clients call from any origin; pre-flight OPTIONS must succeed.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "Content-Type", "X-Client-Info", "Apikey"},
	}))

	authCfg := utils.LoadAuthConfig()
	tokenSvc := auth.TokenService{
		Secret:   []byte(authCfg.JWTSecret),
		Issuer:   authCfg.JWTIssuer,
		Duration: authCfg.JWTDuration,
	}

	hub := synchub.NewHub()
	router.GET("/ws", synchub.WSHandler(hub, func(token string) (string, error) {
		claims, err := tokenSvc.Parse(token)
		if err != nil {
			return "", err
		}
		return claims.UserID, nil
	}, log))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": cfg.Path})
	})

	router.GET("/ready", func(c *gin.Context) {
		stats := hub.Stats()
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":     "not_ready",
				"db_error":   err.Error(),
				"ws_clients": stats.WSClients,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":     "ready",
			"db":         "ok",
			"ws_clients": stats.WSClients,
		})
	})

	root := router.Group("")

	// Generation pipeline (public, like the rest of the browser surface;
	// the endpoint holds the upstream API key, clients never see it)
	genClient := recs.NewClient(utils.LoadGenConfig(), log)
	recsHandler := recs.NewHandler(genClient, log)
	recsHandler.RegisterRoutes(root)

	// Daily picks + static catalog (public)
	daily.NewHandler().RegisterRoutes(root)
	catalog.NewHandler().RegisterRoutes(root)

	// Auth
	authRepo := auth.NewRepo(db)
	authHandler := auth.NewHandler(authRepo, tokenSvc)
	authHandler.RegisterRoutes(router.Group("/auth"))

	// Protected routes
	protected := router.Group("/users")
	protected.Use(auth.AuthMiddleware(tokenSvc, authRepo))

	protected.GET("/me", func(c *gin.Context) {
		claims := auth.MustGetClaims(c)
		c.JSON(http.StatusOK, gin.H{
			"id":       claims.UserID,
			"username": claims.Username,
			"email":    claims.Email,
		})
	})

	profile.NewHandler(profile.NewRepo(db), hub).RegisterRoutes(protected)
	favorites.NewHandler(favorites.NewRepo(db), hub).RegisterRoutes(protected)
	events.NewHandler(events.NewRepo(db)).RegisterRoutes(protected)

	httpSrv := &http.Server{
		Addr:    ":8080",
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP API server listening", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		log.Error("server error", "err", err)
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", "err", err)
	}
	log.Info("server stopped")
}
