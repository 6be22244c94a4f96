package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"invtrack/internal/app/server/api"
	"invtrack/internal/app/server/config"
	"invtrack/internal/domain/inventory"
	"invtrack/internal/domain/user"
	"invtrack/internal/infrastructure/storage"
	"invtrack/internal/utils/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("close storage", slog.String("error", err.Error()))
		}
	}()

	users := user.NewService(store.Users, user.NewCredentialsValidator(), log)
	if err := users.Seed(ctx, cfg.AuthUsers); err != nil {
		return err
	}

	mux := api.New(api.Deps{
		Inventory: inventory.NewService(store.Inventory, log),
		Users:     users,
		Storage:   store,
		PublicURL: cfg.PublicURL,
	}, log)

	srv := &http.Server{
		Addr:         cfg.Server.RunAddress,
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server started",
			slog.String("address", cfg.Server.RunAddress),
			slog.String("storage", store.Kind()),
			slog.String("env", cfg.Env),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
