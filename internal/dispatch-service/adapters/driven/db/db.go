package db

import (
	"context"
	"fmt"
	"time"

	"cargo-dispatch/internal/config"
	"cargo-dispatch/internal/mylogger"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DB struct {
	ctx   context.Context
	cfg   *config.DBconfig
	mylog mylogger.Logger
	pool  *pgxpool.Pool
}

// New connects to Postgres with retry and bootstraps the schema. Requests
// are served concurrently, so a pool is used rather than a single
// connection.
func New(ctx context.Context, dbCfg *config.DBconfig, mylog mylogger.Logger) (*DB, error) {
	d := &DB{
		cfg:   dbCfg,
		ctx:   ctx,
		mylog: mylog,
	}

	if err := d.connect(); err != nil {
		return nil, err
	}

	if err := d.bootstrap(ctx); err != nil {
		return nil, fmt.Errorf("failed to bootstrap schema: %w", err)
	}

	return d, nil
}

func (d *DB) Close() error {
	d.pool.Close()
	return nil
}

// IsAlive pings the DB to verify it's responsive
func (d *DB) IsAlive() error {
	if d.pool == nil {
		return fmt.Errorf("DB is not initialized")
	}
	if err := d.pool.Ping(d.ctx); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}

// connect establishes the pool with retry logic
func (d *DB) connect() error {
	connStr := fmt.Sprintf(
		"postgres://%v:%v@%v:%v/%v?sslmode=disable",
		d.cfg.User,
		d.cfg.Password,
		d.cfg.Host,
		d.cfg.Port,
		d.cfg.Database,
	)

	var lastErr error
	for i := 0; i < d.cfg.MaxRetries; i++ {
		pool, err := pgxpool.New(d.ctx, connStr)
		if err == nil {
			err = pool.Ping(d.ctx)
			if err == nil {
				d.pool = pool
				d.mylog.Info("Successfully connected to the database")
				return nil
			}
			pool.Close()
		}

		lastErr = fmt.Errorf("failed to connect to database: %w", err)
		d.mylog.Error(fmt.Sprintf("DB connection attempt %d failed", i+1), err)
		time.Sleep(time.Second * time.Duration(i+1))
	}

	return fmt.Errorf("failed to connect to the database after %d attempts: %w", d.cfg.MaxRetries, lastErr)
}

// bootstrap creates the tables if they are missing, the same way the
// service has always owned its own schema.
func (d *DB) bootstrap(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            BIGSERIAL PRIMARY KEY,
			login         TEXT NOT NULL UNIQUE,
			role          TEXT NOT NULL DEFAULT 'driver',
			password_hash TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id               BIGSERIAL PRIMARY KEY,
			title            TEXT NOT NULL,
			address_from     TEXT NOT NULL,
			address_to       TEXT NOT NULL,
			description      TEXT NOT NULL,
			required_loaders INT NOT NULL DEFAULT 0 CHECK (required_loaders >= 0),
			rigging          BOOLEAN NOT NULL DEFAULT FALSE,
			disassembly      BOOLEAN NOT NULL DEFAULT FALSE,
			latitude         DOUBLE PRECISION NOT NULL DEFAULT 0,
			longitude        DOUBLE PRECISION NOT NULL DEFAULT 0,
			driver_id        BIGINT REFERENCES users(id),
			created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (title, description)
		)`,
	}

	for _, q := range queries {
		if _, err := d.pool.Exec(ctx, q); err != nil {
			return err
		}
	}
	return nil
}
