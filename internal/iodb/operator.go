// Package iodb implements store operations on top of GORM.
// PostgreSQL connections go through pgxpool, SQLite connections use the
// pure Go modernc driver. This is an impure I/O package that implements
// contracts defined in pkg/.
package iodb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gnames/opendata/pkg/config"
	"github.com/gnames/opendata/pkg/db"
	"github.com/gnames/opendata/pkg/schema"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// operator implements db.Operator.
type operator struct {
	pool  *pgxpool.Pool
	sqlDB *sql.DB
	db    *gorm.DB
}

// NewOperator creates a new store operator (without connecting).
func NewOperator() db.Operator {
	return &operator{}
}

// Connect opens a PostgreSQL or SQLite store according to
// cfg.Driver.
func (o *operator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	switch cfg.Driver {
	case "postgres":
		return o.connectPostgres(ctx, cfg)
	case "sqlite":
		return o.connectSQLite(ctx, cfg)
	default:
		return UnknownDriverError(cfg.Driver)
	}
}

func (o *operator) connectPostgres(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
		cfg.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	// Loaders are sequential, a small pool is enough.
	poolConfig.MaxConns = 4
	poolConfig.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		gormConfig(),
	)
	if err != nil {
		sqlDB.Close()
		pool.Close()
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	o.pool = pool
	o.sqlDB = sqlDB
	o.db = gormDB
	slog.Info("Connected to PostgreSQL",
		"host", cfg.Host,
		"port", cfg.Port,
		"database", cfg.Database,
	)
	return nil
}

func (o *operator) connectSQLite(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	dsn := sqliteDSN(cfg.Path)
	gormDB, err := gorm.Open(
		sqlite.New(sqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		gormConfig(),
	)
	if err != nil {
		return SQLiteOpenError(cfg.Path, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return SQLiteOpenError(cfg.Path, err)
	}
	// SQLite allows one writer, and an in-memory store lives only as long
	// as its single connection.
	sqlDB.SetMaxOpenConns(1)

	if err = sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return SQLiteOpenError(cfg.Path, err)
	}

	o.sqlDB = sqlDB
	o.db = gormDB
	slog.Info("Opened SQLite store", "path", cfg.Path)
	return nil
}

// sqliteDSN turns a file path into a DSN with foreign keys enforced.
// ":memory:" creates a private in-memory store.
func sqliteDSN(path string) string {
	if path == ":memory:" {
		path = "file::memory:"
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: logger.Discard,
	}
}

// Close releases all store connections.
func (o *operator) Close() error {
	var err error
	if o.sqlDB != nil {
		err = o.sqlDB.Close()
	}
	if o.pool != nil {
		o.pool.Close()
	}
	o.sqlDB = nil
	o.pool = nil
	o.db = nil
	return err
}

// DB returns the GORM handle.
func (o *operator) DB() *gorm.DB {
	return o.db
}

// HasTables checks if every opendata table is present.
func (o *operator) HasTables(ctx context.Context) (bool, error) {
	if o.db == nil {
		return false, NotConnectedError()
	}
	m := o.db.WithContext(ctx).Migrator()
	for _, v := range schema.AllModels() {
		if !m.HasTable(v) {
			return false, nil
		}
	}
	return true, nil
}
