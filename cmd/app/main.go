package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/newsroom/config"
	_ "github.com/daniilsolovey/newsroom/docs"
	"github.com/daniilsolovey/newsroom/internal/app"
	"github.com/daniilsolovey/newsroom/internal/db"
)

var (
	flConfig = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug  = flag.Bool("debug", false, "enable debug mode")
	lg       *slog.Logger
)

// @title Newsroom admin API
// @version 1.0
// @description Admin API for news categories, reporters, articles and tags
// @host localhost:3000
// @BasePath /

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	cfg, err := config.Load(*flConfig)
	exitOnError(err)
	exitOnError(app.InitSentry(cfg))

	dbc := pg.Connect(&cfg.Database)
	if *flDebug {
		dbc.AddQueryHook(db.NewQueryHook(lg))
	}
	if err := dbc.Ping(context.Background()); err != nil {
		dbc.Close()
		exitOnError(err)
	}

	service := app.New(cfg, dbc, lg)
	ctx := context.Background()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
