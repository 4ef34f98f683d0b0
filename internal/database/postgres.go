package database

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"FITTRACK_BACK-END/internal/config"
)

const (
	applicationName = "fittrack-backend"
	pingTimeout     = 20 * time.Second
)

// PoolConfig builds the pgxpool configuration from cfg
func PoolConfig(cfg *config.Config) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	db := cfg.Database
	// simple protocol is required behind PgBouncer in transaction mode
	if db.SimpleProtocol {
		poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	}
	poolCfg.ConnConfig.RuntimeParams["application_name"] = applicationName
	if db.QueryTimeout > 0 {
		poolCfg.ConnConfig.RuntimeParams["statement_timeout"] = strconv.FormatInt(db.QueryTimeout.Milliseconds(), 10)
	}
	poolCfg.MaxConns = db.MaxConns
	poolCfg.MinConns = db.MinConns
	poolCfg.MaxConnLifetime = db.MaxLifetime

	return poolCfg, nil
}

// Connect opens the pool and pings it once
func Connect(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := PoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return pool, nil
}
