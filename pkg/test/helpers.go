package test

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/Masterminds/squirrel"

	"todoweb/internal/adapter/database/sqlite"
)

// ProjectRoot finds the repository root by walking up until go.mod appears.
// Tests run from their package directory, so relative paths to migrations
// and templates go through this.
func ProjectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)

		if parent == dir {
			break
		}

		dir = parent
	}

	if wd, err := os.Getwd(); err == nil {
		return wd
	}

	log.Fatal("Could not find project root directory")
	return ""
}

// InitTestDB opens a fresh in-memory sqlite database with the schema
// migrated. MaxOpenConns is pinned to 1 so the pool never opens a second
// connection onto a different empty :memory: database.
func InitTestDB() *sqlite.DB {
	sqlDB, err := sql.Open("sqlite3", ":memory:")

	if err != nil {
		log.Fatal(err)
	}

	sqlDB.SetMaxOpenConns(1)

	migrationsPath := filepath.Join(ProjectRoot(), "db", "migrations", "sqlite")

	if err := sqlite.RunMigrations(sqlDB, migrationsPath); err != nil {
		log.Fatal(err)
	}

	queryBuilder := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

	return &sqlite.DB{
		DB:           sqlDB,
		QueryBuilder: &queryBuilder,
	}
}
