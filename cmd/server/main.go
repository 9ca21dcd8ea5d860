package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/simplystudent09/sanatan-spirituality/internal/cache"
	"github.com/simplystudent09/sanatan-spirituality/internal/content"
	"github.com/simplystudent09/sanatan-spirituality/internal/db"
	"github.com/simplystudent09/sanatan-spirituality/internal/tablestore"
	"github.com/simplystudent09/sanatan-spirituality/internal/webhook"
)

const contentCacheTTL = 60 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using process environment")
	}

	env := LoadEnvironment()

	// initialize PostgreSQL
	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init")
	}

	// run pending migrations
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}

	store := db.NewStore(db.DB)

	// hosted table store for content; nil means fallback-only content
	tableStore := tablestore.New(env.TableStoreURL, env.TableStoreAnonKey)
	if tableStore == nil {
		log.Warn().Msg("table store not configured, serving static content only")
	}

	contentCache := cache.New(env.RedisAddress, env.RedisUsername, env.RedisPassword, contentCacheTTL)
	if contentCache == nil {
		log.Info().Msg("redis not configured, content caching disabled")
	}

	contentSvc := content.NewService(tableStore, contentCache)
	relay := webhook.NewClient(env.JoinWebhookURL)

	if env.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	RegisterRoutes(r, store, contentSvc, relay)

	server := &http.Server{
		Addr:    env.ServerAddress,
		Handler: r,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		log.Info().Msgf("listening on %s", env.ServerAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-signalChan:
		log.Info().Msgf("received signal %s, shutting down", sig)
	case err := <-serverErrChan:
		log.Error().Err(err).Msg("server error")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error shutting down server")
	}

	// let background webhook deliveries drain before exit
	relay.Wait()
	log.Info().Msg("shutdown complete")
}
