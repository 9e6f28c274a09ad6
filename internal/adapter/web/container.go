package web

import (
	"io"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"todoweb/internal/adapter/database/postgres"
	pgrepository "todoweb/internal/adapter/database/postgres/repository"
	"todoweb/internal/adapter/database/sqlite"
	sqliterepository "todoweb/internal/adapter/database/sqlite/repository"
	"todoweb/internal/adapter/web/handler"
	"todoweb/internal/core/port"
	"todoweb/internal/core/service"
	"todoweb/pkg/config"
)

type Container struct {
	TodoRepo    port.TodoRepository
	TodoService port.TodoService
	TodoHandler *handler.TodoHandler

	closer io.Closer
}

// NewContainer opens the configured store (postgres when DATABASE_URL is
// set, sqlite otherwise) and assembles repository, service and handler.
func NewContainer(cfg *config.AppConfig, logger *otelzap.Logger, probe port.Telemetry) (*Container, error) {
	var (
		repo   port.TodoRepository
		closer io.Closer
	)

	if cfg.DatabaseURL != "" {
		db, err := postgres.NewDB(cfg)

		if err != nil {
			return nil, err
		}

		repo = pgrepository.NewTodoRepository(db)
		closer = db.DB
	} else {
		db, err := sqlite.NewDB(cfg)

		if err != nil {
			return nil, err
		}

		repo = sqliterepository.NewTodoRepository(db)
		closer = db.DB
	}

	todoService := service.NewTodoService(repo, cfg.Listing, probe, logger.Logger)
	todoHandler := handler.NewTodoHandler(todoService, logger)

	return &Container{
		TodoRepo:    repo,
		TodoService: todoService,
		TodoHandler: todoHandler,
		closer:      closer,
	}, nil
}

func (c *Container) Close() error {
	if c.closer != nil {
		return c.closer.Close()
	}

	return nil
}
