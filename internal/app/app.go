package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/dayplan/weekly-planner/internal/adapter/auth"
	httpadapter "github.com/dayplan/weekly-planner/internal/adapter/http"
	"github.com/dayplan/weekly-planner/internal/adapter/jsonfile"
	"github.com/dayplan/weekly-planner/internal/config"
	"github.com/dayplan/weekly-planner/internal/usecase/account"
)

const shutdownTimeout = 15 * time.Second

// App wires config, store, use cases and the HTTP adapter together.
type App struct {
	cfg *config.Config
	log *zap.Logger
}

func New(cfg *config.Config, log *zap.Logger) *App {
	return &App{cfg: cfg, log: log}
}

// Run starts the HTTP server and blocks until SIGINT/SIGTERM, then
// shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := jsonfile.New(a.cfg.DataFile)
	if err != nil {
		return err
	}

	svc := account.New(store, nil)
	hasher := auth.NewBcryptHasher(a.cfg.BcryptCost)
	sessions := httpadapter.NewSessionManager(a.cfg.SessionTTL)
	handler := httpadapter.NewHandler(svc, hasher, sessions, a.cfg.RequestTimeout, a.log)

	server := &http.Server{
		Addr:    a.cfg.ListenAddr,
		Handler: handler.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("server listening",
			zap.String("addr", a.cfg.ListenAddr),
			zap.String("data_file", a.cfg.DataFile))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	a.log.Info("stopped")
	return nil
}
