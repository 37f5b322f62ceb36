package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httpapi "activities-signup/internal/http"
	"activities-signup/internal/repository"
	"activities-signup/internal/service"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the activities API and signup page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(parent context.Context) error {
	// Контекст для корректного завершения
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Хранилище: PostgreSQL, если задан DB_DSN, иначе память
	repo, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	// 2. Сервис и HTTP-обработчик
	activityService := service.NewActivityService(repo)
	handler := httpapi.NewHandler(activityService, a.logger, httpapi.Options{
		AllowedOrigins: a.cfg.AllowedOrigins,
		HideAfter:      a.cfg.HideAfter,
	})

	server := &http.Server{
		Addr:    a.cfg.HTTPAddr,
		Handler: handler.Router(),
	}

	// Запуск сервера в горутине
	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info("starting http server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Graceful Shutdown
	select {
	case err := <-serveErr:
		if err != nil {
			a.logger.Error("server error", slog.Any("err", err))
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("shutting down server")
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		a.logger.Error("server shutdown error", slog.Any("err", err))
		return fmt.Errorf("shutdown: %w", err)
	}

	a.logger.Info("server stopped")
	return nil
}

func (a *app) openStore(ctx context.Context) (service.ActivityRepository, func(), error) {
	seed := repository.DefaultCatalog()
	if a.cfg.SeedFile != "" {
		var err error
		seed, err = repository.LoadSeedFile(a.cfg.SeedFile)
		if err != nil {
			return nil, nil, err
		}
		a.logger.Info("seed catalog loaded", slog.String("file", a.cfg.SeedFile), slog.Int("activities", len(seed)))
	}

	if a.cfg.DBDSN == "" {
		a.logger.Info("using in-memory store")
		return repository.NewMemoryRepo(seed), func() {}, nil
	}

	// Подключение к БД
	db, err := repository.NewPostgres(ctx, a.cfg.DBDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("init postgres: %w", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}

	repo := repository.NewActivityRepo(db, repository.NewTransactionManager(db))
	seeded, err := repo.SeedIfEmpty(ctx, seed)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("seed postgres: %w", err)
	}
	a.logger.Info("using postgres store", slog.Bool("seeded", seeded))

	return repo, db.Close, nil
}
