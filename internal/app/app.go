package app

import (
	"context"
	"errors"
	"flying_horse_backend/internal/config"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

// Run поднимает зависимости, применяет миграции и обслуживает HTTP
// до SIGINT/SIGTERM
func (s *App) Run() error {
	err := config.Load(".env")
	if err != nil {
		log.WithError(err).Warn("error loading .env file")
	}
	s.initServiceProvider()
	sp := s.ServiceProvider

	if level, err := log.ParseLevel(sp.AppCfg().LogLevel()); err == nil {
		log.SetLevel(level)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool := sp.DBClient(ctx)
	defer pool.Close()

	if sp.AppCfg().MigrateOnStart() {
		if err = runMigrations(ctx, pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	login, password := sp.AppCfg().Admin()
	if err = sp.AuthService(ctx).EnsureAdmin(ctx, login, password); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}

	scheduler := sp.Scheduler(ctx)
	if err = scheduler.Start(ctx); err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}
	defer scheduler.Stop()

	httpCfg := sp.HTTPCfg()
	srv := &http.Server{
		Addr:         httpCfg.Address(),
		Handler:      sp.Router(ctx),
		ReadTimeout:  httpCfg.ReadTimeout(),
		WriteTimeout: httpCfg.WriteTimeout(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("starting server at %s", httpCfg.Address())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout())
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
