// Command storefront runs the storefront client core behind a local HTTP API.
//
// @title        Storefront Client API
// @version      1.0
// @description  Local API of the game-server storefront client: plans, session, order dialog and account dashboard.
// @host         localhost:8080
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/lordhost/storefront-client/internal/api"
	"github.com/lordhost/storefront-client/internal/core/ports"
	"github.com/lordhost/storefront-client/internal/core/service"
	"github.com/lordhost/storefront-client/internal/infrastructure/backend"
	"github.com/lordhost/storefront-client/internal/infrastructure/config"
	"github.com/lordhost/storefront-client/internal/infrastructure/db/file"
	"github.com/lordhost/storefront-client/internal/infrastructure/db/memory"
	mongostore "github.com/lordhost/storefront-client/internal/infrastructure/db/mongo"
	redisstore "github.com/lordhost/storefront-client/internal/infrastructure/db/redis"
	"github.com/lordhost/storefront-client/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "storefront",
	})

	store, closeStore, err := openSessionStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	client := backend.NewClient(backend.Config{Timeout: cfg.Backend.Timeout}, logger.Component("backend"))
	authGW := backend.NewAuthGateway(client, cfg.Backend.AuthURL)
	provisioningGW := backend.NewProvisioningGateway(client, cfg.Backend.ProvisioningURL)

	var sessionOpts []service.SessionOption
	if cfg.Session.RejectExpired {
		sessionOpts = append(sessionOpts, service.WithExpiredTokenRejection())
	}
	sessions := service.NewSessionManager(authGW, store, logger.Component("session"), sessionOpts...)
	sessions.Restore(ctx)

	orders := service.NewOrderController(provisioningGW, sessions, logger.Component("orders"))
	servers := service.NewServerLoader(provisioningGW, sessions, logger.Component("servers"))

	e := api.NewRouter(api.Deps{
		Sessions:     sessions,
		Orders:       orders,
		Servers:      servers,
		Store:        store,
		StoreBackend: cfg.Session.Backend,
		Log:          logger.Component("http"),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("session_backend", cfg.Session.Backend).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// openSessionStore builds the configured store. The returned func releases any
// connection it opened.
func openSessionStore(ctx context.Context, cfg *config.Config) (ports.SessionStore, func(), error) {
	log := logger.Component("session_store")
	noop := func() {}

	switch cfg.Session.Backend {
	case config.SessionBackendMemory:
		return memory.NewSessionStore(), noop, nil

	case config.SessionBackendRedis:
		rdb, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		prefix := "storefront:session:" + cfg.Session.Profile
		return redisstore.NewSessionStore(rdb, prefix), func() { closeQuietly(log, "redis", rdb.Close) }, nil

	case config.SessionBackendMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, nil, err
		}
		return mongostore.NewSessionStore(db, cfg.Session.Profile), func() {
			closeQuietly(log, "mongo", func() error {
				ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return client.Disconnect(ctx)
			})
		}, nil

	default:
		return file.NewSessionStore(cfg.Session.FilePath), noop, nil
	}
}

func closeQuietly(log zerolog.Logger, name string, fn func() error) {
	if err := fn(); err != nil {
		log.Warn().Err(err).Str("store", name).Msg("close failed")
	}
}
