package database

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/l3montree-dev/updatehub/database/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type PoolConfig struct {
	Host     string
	User     string
	Password string
	DBName   string
	Port     string

	MaxOpenConns    int32
	MinConns        int32
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// GetPoolConfigFromEnv reads the POSTGRES_* variables into a PoolConfig with
// sane pool defaults.
func GetPoolConfigFromEnv() PoolConfig {
	return PoolConfig{
		Host:     os.Getenv("POSTGRES_HOST"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		Port:     os.Getenv("POSTGRES_PORT"),

		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}
}

// getDSN builds a PostgreSQL connection string from parameters
func getDSN(host, user, password, dbname, port string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbname)
}

func NewPgxConnPool(cfg PoolConfig) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(getDSN(cfg.Host, cfg.User, cfg.Password, cfg.DBName, cfg.Port))
	if err != nil {
		return nil, err
	}
	config.MaxConnIdleTime = cfg.ConnMaxIdleTime
	config.MaxConnLifetime = cfg.ConnMaxLifetime
	if cfg.MaxOpenConns > 0 {
		config.MaxConns = cfg.MaxOpenConns
	}
	if cfg.MinConns > 0 {
		config.MinConns = cfg.MinConns
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	slog.Info("database connection pool configured",
		"maxOpenConns", config.MaxConns,
		"connMaxLifetime", config.MaxConnLifetime,
		"connMaxIdleTime", config.MaxConnIdleTime,
	)

	return pool, nil
}

// NewGormDB creates a GORM instance using an existing *pgxpool.Pool
func NewGormDB(existingPool *pgxpool.Pool) (*gorm.DB, error) {
	db := stdlib.OpenDBFromPool(existingPool)
	return gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
}

func NewConnection(host, user, password, dbname, port string) (*gorm.DB, error) {
	pool, err := NewPgxConnPool(PoolConfig{
		Host:            host,
		User:            user,
		Password:        password,
		DBName:          dbname,
		Port:            port,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	})
	if err != nil {
		return nil, err
	}
	return NewGormDB(pool)
}

// RunMigrations brings the schema up to date. The schema is small enough for
// gorm's automigration; the unique constraints on release name, build nvr,
// update alias, bug id and cve id come from the model tags.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Release{},
		&models.Package{},
		&models.Build{},
		&models.Update{},
		&models.Comment{},
		&models.Bug{},
		&models.CVE{},
	)
}

func IsDuplicateKeyError(err error) bool {
	return strings.HasPrefix(err.Error(), "ERROR: duplicate key value violates unique constraint")
}
