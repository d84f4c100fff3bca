package repository

import (
	"context"
	"log/slog"

	"github.com/darulriyan/aplikasi-dashboard/config"
	"github.com/darulriyan/aplikasi-dashboard/internal/models"
)

type Source interface {
	Records(ctx context.Context) ([]models.Record, error)
	Users(ctx context.Context) ([]models.User, error)
}

// Open picks the record source: PostgreSQL when CONSOLE_PG_HOST is set,
// then CONSOLE_RECORDS_FILE, then the built-in sample set. The returned
// close func is never nil.
func Open(ctx context.Context, cfg config.Config, logger *slog.Logger) (Source, func(), error) {
	switch {
	case cfg.PG.Enabled():
		pool, err := NewPool(ctx, cfg)
		if err != nil {
			return nil, func() {}, err
		}
		logger.InfoContext(ctx, "using postgres record source", slog.String("host", cfg.PG.Host))
		repo := New(pool)
		return repo, repo.Close, nil

	case cfg.Console.RecordsFile != "":
		src, err := LoadFile(cfg.Console.RecordsFile)
		if err != nil {
			return nil, func() {}, err
		}
		logger.InfoContext(ctx, "using file record source", slog.String("path", cfg.Console.RecordsFile))
		return src, func() {}, nil
	}

	logger.InfoContext(ctx, "using sample record source")
	return SampleSource{}, func() {}, nil
}
