package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/darulriyan/aplikasi-dashboard/config"
	"github.com/darulriyan/aplikasi-dashboard/internal/repository"
	"github.com/darulriyan/aplikasi-dashboard/internal/service"
	"github.com/darulriyan/aplikasi-dashboard/internal/web"
	"github.com/darulriyan/aplikasi-dashboard/pkg/logger"
)

func main() {
	// a missing .env is fine, the environment wins anyway
	_ = godotenv.Load()
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal(err)
	}
	logger := logger.New(os.Stdout, &slog.HandlerOptions{Level: logger.ParseLevel(cfg.Log.Level)})

	settings, err := service.NewSettings(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	src, closeSrc, err := repository.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open record source", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeSrc()

	svc := service.New(src, settings, logger)
	handler := web.NewHandler(svc, logger)
	server := web.NewServer(handler)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      server,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSeconds) * time.Second,
	}

	purgeCtx, stopPurge := context.WithCancel(context.Background())
	defer stopPurge()
	go purgeSessions(purgeCtx, svc)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		logger.Info("shutting down server...")
		stopPurge()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("server forced to shutdown", slog.String("error", err.Error()))
		}
	}()

	logger.Info(fmt.Sprintf("starting server on :%s", cfg.Server.Port))
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func purgeSessions(ctx context.Context, svc *service.Service) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			svc.PurgeSessions(ctx)
		}
	}
}
