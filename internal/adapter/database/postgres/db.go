package postgres

import (
	"database/sql"
	"errors"
	"os"
	"time"

	"github.com/Masterminds/squirrel"

	_ "github.com/jackc/pgx/v5/stdlib"
	sqldblogger "github.com/simukti/sqldb-logger"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/rs/zerolog"
	"github.com/simukti/sqldb-logger/logadapter/zerologadapter"

	"todoweb/pkg/config"
)

type DB struct {
	*sql.DB
	QueryBuilder *squirrel.StatementBuilderType
}

func NewDB(cfg *config.AppConfig) (*DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	sqlDB, err := otelsql.Open("pgx", cfg.DatabaseURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName("todoweb"),
	)

	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, err
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	db := sqldblogger.OpenDriver(cfg.DatabaseURL, sqlDB.Driver(), zerologadapter.New(logger))

	migrationsPath := cfg.MigrationsPath

	if migrationsPath == "" {
		migrationsPath = "db/migrations/postgres"
	}

	if err := RunMigrations(db, migrationsPath); err != nil {
		db.Close()
		return nil, err
	}

	queryBuilder := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	return &DB{
		DB:           db,
		QueryBuilder: &queryBuilder,
	}, nil
}

func RunMigrations(db *sql.DB, migrationsPath string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})

	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://"+migrationsPath,
		"postgres",
		driver,
	)

	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}

	return nil
}
