package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/Raymond9734/webshop-api/internal/handler"
	"github.com/Raymond9734/webshop-api/internal/repository"
	"github.com/Raymond9734/webshop-api/internal/service"
	"github.com/Raymond9734/webshop-api/internal/telemetry"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server (default)",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := setup(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	logger := a.logger
	logger.Info("starting webshop API server")

	shutdownTracer, err := telemetry.SetupTracer(ctx, telemetry.TracerConfig{
		Enabled:     a.cfg.Telemetry.Enabled,
		ServiceName: a.cfg.Telemetry.ServiceName,
		Endpoint:    a.cfg.Telemetry.Endpoint,
		Environment: a.cfg.Telemetry.Environment,
	})
	if err != nil {
		logger.Error("failed to set up tracing", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			logger.Error("failed to shut down tracing", slog.String("error", err.Error()))
		}
	}()

	addr := fmt.Sprintf(":%d", a.cfg.API.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      newRouter(a.store, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("API server listening", slog.String("addr", addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Wait for interrupt signal or server error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logger.Error("server error", slog.String("error", err.Error()))
		return err

	case sig := <-quit:
		logger.Info("shutting down server", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server shutdown failed", slog.String("error", err.Error()))
			return err
		}

		logger.Info("server stopped gracefully")
	}

	return nil
}

// newRouter wires services, controllers and middleware around store
func newRouter(store *repository.Store, logger *slog.Logger) http.Handler {
	services := handler.Services{
		Customers: service.NewCustomerService(store, logger),
		Products:  service.NewProductService(store, logger),
		Orders:    service.NewOrderService(store, logger),
	}

	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(handler.RequestIDMiddleware)
	r.Use(handler.TracingMiddleware(telemetry.TracerName))
	r.Use(handler.RecoveryMiddleware(logger))
	r.Use(handler.LoggingMiddleware(logger))
	r.Use(handler.CORSMiddleware)

	handler.NewHealthHandler(store, logger).RegisterRoutes(r)
	handler.Mount(r, handler.Routes(services, logger))

	return r
}
