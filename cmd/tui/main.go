package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/darulriyan/aplikasi-dashboard/config"
	"github.com/darulriyan/aplikasi-dashboard/internal/repository"
	"github.com/darulriyan/aplikasi-dashboard/internal/service"
	"github.com/darulriyan/aplikasi-dashboard/internal/tui"
	"github.com/darulriyan/aplikasi-dashboard/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal(err)
	}

	// stdout belongs to the terminal UI
	logFile, err := os.OpenFile("console-tui.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()
	logger := logger.New(logFile, &slog.HandlerOptions{Level: logger.ParseLevel(cfg.Log.Level)})

	settings, err := service.NewSettings(cfg)
	if err != nil {
		log.Fatal(err)
	}

	openCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	src, closeSrc, err := repository.Open(openCtx, cfg, logger)
	cancel()
	if err != nil {
		log.Fatal(err)
	}
	defer closeSrc()

	svc := service.New(src, settings, logger)
	p := tea.NewProgram(tui.New(context.Background(), svc), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("console exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
