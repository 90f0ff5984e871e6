package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"table-reservations-go/internal/config"
	"table-reservations-go/pkg/logger"
)

const (
	defaultMaxOpenConns    = 10
	defaultMaxIdleConns    = 5
	defaultConnMaxLifetime = 30 * time.Minute
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

const (
	pingAttempts = 5
	pingDelay    = 500 * time.Millisecond
)

// Open connects with the driver named in cfg. PostgreSQL is the production
// store; MySQL is supported through the gorm models and SQLite serves local
// runs and tests.
func Open(cfg config.DBConfig, log logger.Logger) (*gorm.DB, error) {
	switch cfg.Driver {
	case DriverSQLite:
		return NewSQLite(cfg.SQLitePath, log)
	case DriverMySQL:
		return NewMySQL(cfg, log)
	case DriverPostgres, "":
		return NewPostgres(cfg, log)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}

func NewPostgres(cfg config.DBConfig, log logger.Logger) (*gorm.DB, error) {
	if cfg.DSN != "" {
		log.Info("db: connecting using DSN")
	} else {
		log.Info("db: connecting to postgres", "host", cfg.Host, "port", cfg.Port, "dbname", cfg.Name, "sslmode", cfg.SSLMode)
	}

	gormDB, err := gorm.Open(postgres.Open(cfg.GetDSN()), gormConfig(cfg.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("db handle: %w", err)
	}

	configurePool(sqlDB, cfg)

	if err := pingWithRetry(sqlDB, log); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}

	log.Info("db: connected", "driver", DriverPostgres)
	return gormDB, nil
}

// NewMySQL opens a MySQL database from cfg.DSN. The DSN must carry
// parseTime=true so reservation instants scan into time.Time.
func NewMySQL(cfg config.DBConfig, log logger.Logger) (*gorm.DB, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("mysql driver requires DB_DSN")
	}
	log.Info("db: connecting to mysql using DSN")

	gormDB, err := gorm.Open(mysql.Open(cfg.DSN), gormConfig(cfg.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("db handle: %w", err)
	}

	configurePool(sqlDB, cfg)

	if err := pingWithRetry(sqlDB, log); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}

	log.Info("db: connected", "driver", DriverMySQL)
	return gormDB, nil
}

func configurePool(sqlDB *sql.DB, cfg config.DBConfig) {
	maxOpen := cfg.MaxOpenConns
	if maxOpen == 0 {
		maxOpen = defaultMaxOpenConns
	}
	maxIdle := cfg.MaxIdleConns
	if maxIdle == 0 {
		maxIdle = defaultMaxIdleConns
	}
	connMaxLifetime := cfg.ConnMaxLifetime
	if connMaxLifetime == 0 {
		connMaxLifetime = defaultConnMaxLifetime
	}

	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
}

// pingWithRetry waits for a database that is still starting, as happens when
// the API and the database come up together.
func pingWithRetry(sqlDB *sql.DB, log logger.Logger) error {
	return retry.Do(
		sqlDB.Ping,
		retry.Attempts(pingAttempts),
		retry.Delay(pingDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn("db: ping failed, retrying", "attempt", n+1, "err", err)
		}),
	)
}

// NewSQLite opens a SQLite database with foreign keys enforced. A single
// connection keeps ":memory:" databases shared across queries.
func NewSQLite(path string, log logger.Logger) (*gorm.DB, error) {
	if path == "" {
		path = ":memory:"
	}
	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?_foreign_keys=on"
	}

	gormDB, err := gorm.Open(sqlite.Open(dsn), gormConfig("silent"))
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("db handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	log.Info("db: connected", "driver", DriverSQLite, "path", path)
	return gormDB, nil
}

func gormConfig(level string) *gorm.Config {
	return &gorm.Config{
		TranslateError:       true,
		DisableAutomaticPing: true,
		Logger:               gormlogger.Default.LogMode(parseLogLevel(level)),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func parseLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "info":
		return gormlogger.Info
	case "warn":
		return gormlogger.Warn
	case "error":
		return gormlogger.Error
	default:
		return gormlogger.Silent
	}
}
