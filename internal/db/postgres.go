package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

func ConnectPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if err := initSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	log.Info().Msg("Connected to PostgreSQL")
	return pool, nil
}

// initSchema creates the two state tables if they do not exist.
func initSchema(ctx context.Context, pool *pgxpool.Pool) error {
	ingredientsSQL := `
		CREATE TABLE IF NOT EXISTS ingredient_state (
			name VARCHAR(255) PRIMARY KEY,
			available BOOLEAN NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, ingredientsSQL); err != nil {
		return err
	}

	overridesSQL := `
		CREATE TABLE IF NOT EXISTS cocktail_overrides (
			name VARCHAR(255) PRIMARY KEY,
			enabled BOOLEAN NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, overridesSQL); err != nil {
		return err
	}

	return nil
}
