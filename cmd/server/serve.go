package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// serve runs server on ln until ctx is cancelled, then drains in-flight
// requests for up to drainTimeout. It returns only after the drain has
// finished, so callers may close the database pool afterwards.
func serve(ctx context.Context, server *http.Server, ln net.Listener, logger *slog.Logger, drainTimeout time.Duration) error {
	drained := make(chan error, 1)
	go func() {
		<-ctx.Done()
		logger.Info("shutting down", "drain_timeout", drainTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
		defer cancel()
		drained <- server.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", "addr", ln.Addr().String())
	if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	if err := <-drained; err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
