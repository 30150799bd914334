package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/swiftvtu/vtu_api/internal/config"
	"github.com/swiftvtu/vtu_api/internal/flow"
	"github.com/swiftvtu/vtu_api/internal/handler"
	"github.com/swiftvtu/vtu_api/internal/middleware"
	"github.com/swiftvtu/vtu_api/internal/session"
	"github.com/swiftvtu/vtu_api/pkg/vtupay"
)

// main is the application entrypoint for the SwiftVTU data top-up API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting vtu api")

	// 3. Connect to Redis
	redisClient, err := session.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	// 4. Initialize upstream provider client
	provider := vtupay.NewClient(vtupay.Config{
		BaseURL: cfg.Provider.BaseURL,
		APIKey:  cfg.Provider.APIKey,
	})

	// 5. Initialize flow machine and session store
	machine := flow.NewMachine(provider)
	store := session.NewStore(redisClient, cfg.SessionTTL)

	// 6. Initialize handlers
	handlers := &Handlers{
		Health: handler.NewHealthHandler(provider),
		Flow:   handler.NewFlowHandler(machine, store),
		Wallet: handler.NewWalletHandler(machine, store),
	}

	// 7. Initialize middleware
	sessionMw := middleware.NewSessionMiddleware(cfg.SessionSecret)

	// 8. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, sessionMw)

	// 9. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 10. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 11. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health *handler.HealthHandler
	Flow   *handler.FlowHandler
	Wallet *handler.WalletHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, sessionMw *middleware.SessionMiddleware) {
	router.GET("/v1/health", handlers.Health.GetHealth)

	// Purchase flow routes (protected with session token)
	v1 := router.Group("/v1")
	v1.Use(sessionMw.Handle())
	{
		v1.GET("/flow", handlers.Flow.GetFlow)
		v1.POST("/flow/network", handlers.Flow.SelectNetwork)
		v1.POST("/flow/type", handlers.Flow.SelectType)
		v1.POST("/flow/plan", handlers.Flow.SelectPlan)
		v1.POST("/flow/phone", handlers.Flow.EnterPhone)
		v1.POST("/flow/step", handlers.Flow.GoToStep)
		v1.POST("/flow/pin", handlers.Flow.AppendPin)
		v1.DELETE("/flow/pin", handlers.Flow.DeletePin)
		v1.POST("/flow/pin/clear", handlers.Flow.ClearPin)
		v1.POST("/flow/restart", handlers.Flow.Restart)

		v1.GET("/wallet/balance", handlers.Wallet.GetBalance)
	}
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
