package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-SalonService/internal/app"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
)

func serveCmd(configPath *string) *cobra.Command {
	var port int

	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP JSON API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.HTTPPort = port
			}

			// Инициализируем логгер
			log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
			if err != nil {
				return err
			}
			defer log.Close()

			log.Info("Starting SMC-SalonService...")

			// Инициализируем метрики (если включены)
			var metricsCollector *metrics.Metrics
			if cfg.Metrics.Enabled {
				metricsCollector = metrics.New(cfg.Metrics.ServiceName)
				log.Info("Metrics enabled at %s", cfg.Metrics.Path)
			}

			a, err := app.New(cmd.Context(), cfg, log, metricsCollector)
			if err != nil {
				log.Error("Failed to initialize application: %v", err)
				return err
			}
			defer a.Close()

			return serve(a)
		},
	}

	c.Flags().IntVarP(&port, "port", "p", 0, "HTTP port (overrides server.http_port)")
	return c
}

func serve(a *app.App) error {
	cfg, log := a.Config, a.Logger

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      app.NewRouter(a),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
	case err := <-serverErr:
		log.Error("Server failed to start: %v", err)
		return err
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if err := a.Flush(shutdownCtx); err != nil {
		log.Error("Failed to save salon snapshot: %v", err)
		return err
	}

	log.Info("Server stopped gracefully")
	return nil
}
