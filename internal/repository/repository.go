package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/darulriyan/aplikasi-dashboard/config"
	"github.com/darulriyan/aplikasi-dashboard/internal/models"
	"github.com/darulriyan/aplikasi-dashboard/internal/repository/db"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository reads the record stores from PostgreSQL. It never writes.
type Repository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewPool(ctx context.Context, config config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(config.PG.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}
	poolCfg.MaxConnLifetime = 30 * time.Minute
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.PingTimeout = 30 * time.Second
	poolCfg.MaxConns = int32(config.PG.PoolMax)
	poolCfg.MinConns = 1
	poolCfg.HealthCheckPeriod = 1 * time.Minute
	p, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}
	err = p.Ping(ctx)
	if err != nil {
		p.Close()
		return nil, err
	}

	return p, nil
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		q:    db.New(pool),
		pool: pool,
	}
}

func (r *Repository) Records(ctx context.Context) ([]models.Record, error) {
	rows, err := r.q.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}

	records := make([]models.Record, len(rows))
	for i, row := range rows {
		records[i] = models.Record{
			ID:        int(row.ID),
			Name:      row.Name,
			Email:     row.Email,
			Role:      row.Role,
			CreatedAt: formatTime(row.CreatedAt),
		}
	}
	return records, nil
}

func (r *Repository) Users(ctx context.Context) ([]models.User, error) {
	rows, err := r.q.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}

	users := make([]models.User, len(rows))
	for i, row := range rows {
		u, err := toUser(row)
		if err != nil {
			return nil, err
		}
		users[i] = u
	}
	return users, nil
}

func (r *Repository) Close() {
	r.pool.Close()
}

func toUser(row db.User) (models.User, error) {
	status := models.Status(row.Status)
	if !status.Valid() {
		return models.User{}, fmt.Errorf("user %d: %w: %q", row.ID, ErrInvalidStatus, row.Status)
	}
	return models.User{
		Record: models.Record{
			ID:        int(row.ID),
			Name:      row.Name,
			Email:     row.Email,
			Role:      row.Role,
			CreatedAt: formatTime(row.CreatedAt),
		},
		Status: status,
	}, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
