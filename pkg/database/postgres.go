package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cinema-tickets/pkg/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the store configured by DB_DRIVER.
func InitDB(config utils.DatabaseConfig, debug bool, log *zap.Logger) (*gorm.DB, error) {
	switch config.Driver {
	case "", DriverPostgres:
		return OpenPostgres(config, debug, log)
	case DriverSQLite:
		return OpenSQLite(config.SQLitePath, debug, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", config.Driver)
	}
}

// OpenPostgres builds a pgx pool and hands it to gorm through database/sql.
func OpenPostgres(config utils.DatabaseConfig, debug bool, log *zap.Logger) (*gorm.DB, error) {
	connStr := fmt.Sprintf("user=%s password=%s dbname=%s sslmode=%s host=%s port=%s",
		config.User, config.Password, config.Name, config.SSLMode, config.Host, config.Port)

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	poolConfig.MaxConns = config.MaxConns
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute
	poolConfig.ConnConfig.ConnectTimeout = 5 * time.Second
	if debug {
		poolConfig.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   queryLogger(log),
			LogLevel: tracelog.LogLevelDebug,
		}
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormConfig(debug, log))
	if err != nil {
		sqlDB.Close()
		pool.Close()
		return nil, fmt.Errorf("open gorm postgres: %w", err)
	}

	// database/sql does not own the pool; Close releases it.
	pools.Store(sqlDB, pool)
	return db, nil
}

// pools maps the *sql.DB handed to gorm to the pgx pool behind it.
var pools sync.Map

// queryLogger routes pgx trace output into zap.
func queryLogger(log *zap.Logger) tracelog.Logger {
	log = log.With(zap.String("component", "pgx"))
	return tracelog.LoggerFunc(func(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
		fields := make([]zap.Field, 0, len(data))
		for k, v := range data {
			fields = append(fields, zap.Any(k, v))
		}
		switch level {
		case tracelog.LogLevelError:
			log.Error(msg, fields...)
		case tracelog.LogLevelWarn:
			log.Warn(msg, fields...)
		default:
			log.Debug(msg, fields...)
		}
	})
}

// Close releases the connections behind db, including a pgx pool opened by
// OpenPostgres.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	err = sqlDB.Close()

	if pool, ok := pools.LoadAndDelete(sqlDB); ok {
		pool.(*pgxpool.Pool).Close()
	}
	return err
}
