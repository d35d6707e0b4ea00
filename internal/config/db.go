package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// ErrStorageUnavailable is returned when the datastore cannot be reached at startup.
var ErrStorageUnavailable = errors.New("storage unavailable")

// ConnectDB establishes a connection to the PostgreSQL database
func ConnectDB(ctx context.Context, cfg *Config) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var err error

	// Retry connecting to the database a few times
	for i := 0; i < cfg.DBConnectTries; i++ {
		pool, err = pgxpool.New(ctx, cfg.DatabaseURL)
		if err == nil {
			// Try to ping the database
			err = pool.Ping(ctx)
			if err == nil {
				log.Info().Msg("Successfully connected to PostgreSQL")
				return pool, nil
			}
			pool.Close()
		}
		log.Warn().Err(err).
			Int("attempt", i+1).
			Int("max_attempts", cfg.DBConnectTries).
			Dur("retry_in", cfg.DBRetryInterval).
			Msg("Failed to connect to database")

		if i == cfg.DBConnectTries-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, ctx.Err())
		case <-time.After(cfg.DBRetryInterval):
		}
	}
	return nil, fmt.Errorf("%w: unable to connect to database after %d attempts: %w", ErrStorageUnavailable, cfg.DBConnectTries, err)
}

// Migrator is the part of a connection pool AutoMigrate needs
type Migrator interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// AutoMigrate creates tables if they don't exist
func AutoMigrate(ctx context.Context, db Migrator) error {
	sql := `
	CREATE EXTENSION IF NOT EXISTS pgcrypto;

	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL CHECK (role IN ('admin')) DEFAULT 'admin',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS projects (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title TEXT NOT NULL,
		category TEXT NOT NULL,
		image TEXT NOT NULL,
		link TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS experiences (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		type VARCHAR(20) NOT NULL CHECK (type IN ('education', 'work')),
		title TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS messages (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		full_name TEXT NOT NULL,
		email TEXT NOT NULL,
		subject TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_messages_created_at ON messages(created_at DESC);
	`
	_, err := db.Exec(ctx, sql)
	if err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}

	log.Info().Msg("AutoMigrate applied successfully")
	return nil
}
