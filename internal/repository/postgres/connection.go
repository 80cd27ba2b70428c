package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"itinerary/internal/domain/repositories"
)

// RepositoryConfig holds configuration for repository implementations
type RepositoryConfig struct {
	Pool   *pgxpool.Pool
	Tables *TableNames
	Logger *slog.Logger
}

// TableNames holds dynamically prefixed table names
type TableNames struct {
	Places         string
	Schedules      string
	Checklists     string
	ScheduleGrants string
}

// NewTableNames creates table names with the given prefix
func NewTableNames(prefix string) *TableNames {
	return &TableNames{
		Places:         fmt.Sprintf("%splaces", prefix),
		Schedules:      fmt.Sprintf("%sschedules", prefix),
		Checklists:     fmt.Sprintf("%schecklists", prefix),
		ScheduleGrants: fmt.Sprintf("%susers_schedules", prefix),
	}
}

// Pool limits applied by NewPoolConfig
const (
	MaxConns int32 = 25
	MinConns int32 = 5
)

// CreateConnectionPool creates a pgx pool and verifies it with a ping.
//
// Port 6543 is a transaction-mode PgBouncer, which cannot hold prepared
// statements. When the connection string did not choose an exec mode we
// switch to QueryExecModeCacheDescribe there: it keeps the extended protocol
// (needed to encode JSONB checklist items) without preparing statements.
// An explicit ?default_query_exec_mode=... always wins.
//
// Table names are interpolated with fmt.Sprintf before the SQL reaches the
// server, so prefixed tables get their own cached statements.
func CreateConnectionPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	config, err := NewPoolConfig(databaseURL)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// NewPoolConfig parses databaseURL and applies the pool limits and exec mode
// described on CreateConnectionPool. It does not connect.
func NewPoolConfig(databaseURL string) (*pgxpool.Config, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	config.MaxConns = MaxConns
	config.MinConns = MinConns

	if config.ConnConfig.Port == 6543 && config.ConnConfig.DefaultQueryExecMode == pgx.QueryExecModeCacheStatement {
		config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeCacheDescribe
		slog.Debug("auto-configured cache_describe mode for PgBouncer compatibility", "port", 6543)
	}

	return config, nil
}

// GetExecutor returns the transaction stored in ctx, or the pool when there is none.
// Repositories call it for every query so they join an ExecTx transaction automatically.
func GetExecutor(ctx context.Context, pool *pgxpool.Pool) repositories.DBTX {
	if tx := repositories.TxFrom(ctx); tx != nil {
		return tx
	}
	return pool
}
