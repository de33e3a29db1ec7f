package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/daniilsolovey/newsroom/config"
	"github.com/daniilsolovey/newsroom/internal/admin"
	"github.com/daniilsolovey/newsroom/internal/db"
	"github.com/daniilsolovey/newsroom/internal/newsportal"
	"github.com/daniilsolovey/newsroom/internal/rest"
	"github.com/daniilsolovey/newsroom/internal/rpc"
	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
)

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	database := db.New(dbConnect)
	manager := newsportal.NewManager(database, admin.NewsSite(cfg.App.MediaURL))
	handler := rest.NewAdminHandler(manager, logger)

	e := handler.RegisterRoutes(rpc.New(logger, manager))
	if cfg.Sentry.DSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	}

	return &App{
		DB:     database,
		Logger: logger,
		Echo:   e,
		Config: cfg,
	}
}

// InitSentry configures error reporting. It is a no-op without a DSN.
func InitSentry(cfg *config.Config) error {
	if cfg.Sentry.DSN == "" {
		return nil
	}

	return sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
	})
}

func (a *App) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, a.Config.App.Port)
	a.Logger.InfoContext(ctx, "starting server", "addr", addr)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}

	sentry.Flush(2 * time.Second)

	return errors.Join(err, a.DB.Close())
}
