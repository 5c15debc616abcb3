// Command sunbandd serves the solar engine over HTTP: sun facts as JSON and
// terminator/threshold-band layers as GeoJSON for a map front end.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/litescript/sunband/internal/config"
	"github.com/litescript/sunband/internal/httpapi"
	"github.com/litescript/sunband/internal/logging"
	"github.com/litescript/sunband/internal/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New(logging.LevelError).Error("load config: %v", err)
		os.Exit(1)
	}

	logger := logging.New(logging.ParseLevel(cfg.Log.Level))
	logger.Info("sunbandd %s starting on %s (threshold %.0f°)",
		version.Version, cfg.HTTP.Address, cfg.Engine.ThresholdDeg)

	handler := httpapi.NewHandler(cfg.Engine, logger, nil)
	server := httpapi.NewRouter(cfg, handler, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("serve: %v", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown: %v", err)
		}
	}
}
