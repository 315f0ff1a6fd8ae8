// Package server initializes and runs the auth server: it selects the
// credential store backend, wires the session flow onto the HTTP transport,
// and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/bushbass/fcc-jwt/internal/logging"
	"github.com/bushbass/fcc-jwt/internal/server/config"
	"github.com/bushbass/fcc-jwt/internal/server/httpapi"
	"github.com/bushbass/fcc-jwt/internal/server/password"
	"github.com/bushbass/fcc-jwt/internal/server/ratelimit"
	"github.com/bushbass/fcc-jwt/internal/server/shared/db"
	"github.com/bushbass/fcc-jwt/internal/server/users"
	"github.com/redis/go-redis/v9"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	httpServer *httpapi.Server
	closers    []func() error
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout)
	ctx := context.Background()

	app := &App{config: cfg, logger: logger}

	var repo users.Repository
	if cfg.DatabaseDSN == "" {
		logger.Warn(ctx, "no database DSN configured, using in-memory store")
		repo = users.NewMemoryRepository()
	} else {
		manager, err := db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		repo = manager.Users()
		app.closers = append(app.closers, manager.Close)
	}

	var limiter ratelimit.LoginLimiter
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		limiter = ratelimit.NewRedisLimiter(client, cfg.MaxLoginAttempts, cfg.LoginAttemptWindow)
		app.closers = append(app.closers, client.Close)
	}

	service := users.NewService(repo, password.NewHasher(cfg.BcryptCost), limiter, cfg)
	handler := httpapi.NewHandler(service, logger, cfg)

	httpServer, err := httpapi.NewServer(cfg.ListenAddr, cfg.AllowedOrigin, handler, logger)
	if err != nil {
		return nil, fmt.Errorf("http server init error: %w", err)
	}
	app.httpServer = httpServer

	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.httpServer.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	for _, closeFn := range app.closers {
		if err := closeFn(); err != nil {
			app.logger.Error(ctx, "close error", "err", err.Error())
		}
	}
}
