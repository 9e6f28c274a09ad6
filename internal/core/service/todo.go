package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"todoweb/internal/core/domain"
	"todoweb/internal/core/port"
	"todoweb/internal/core/telemetry"
	"todoweb/internal/core/validation"
	"todoweb/pkg/config"
)

// TodoService owns the todo lifecycle: validated creates and updates, the
// completion toggle, and fixed-size listing. All state lives in the
// repository; the service keeps nothing between calls.
type TodoService struct {
	repo    port.TodoRepository
	listing config.Listing
	probe   port.Telemetry
	logger  *zap.Logger
}

func NewTodoService(repo port.TodoRepository, listing config.Listing, probe port.Telemetry, logger *zap.Logger) *TodoService {
	if probe == nil {
		probe = telemetry.NewNoOpProbe()
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &TodoService{
		repo:    repo,
		listing: listing,
		probe:   probe,
		logger:  logger,
	}
}

// List returns one fixed-size page, most-recently-created first. An
// out-of-range page yields an empty page, not an error.
func (ts *TodoService) List(ctx context.Context, page int) (domain.Page, error) {
	ctx, span := ts.probe.StartSpan(ctx, "service.todo.List", []attribute.KeyValue{
		attribute.Int("todo.page", page),
		attribute.Int("todo.page_size", ts.listing.PageSize),
	})
	defer span.End()

	startTime := time.Now()

	if page < 1 {
		page = 1
	}

	total, err := ts.repo.Count(ctx)

	if err != nil {
		ts.probe.RecordOperation(ctx, "list", time.Since(startTime), err)
		return domain.Page{}, err
	}

	size := ts.listing.PageSize
	totalPages := (total + size - 1) / size
	offset := (page - 1) * size

	items := []domain.Todo{}

	if offset < total {
		items, err = ts.repo.List(ctx, size, offset, ts.listing.Ordering)

		if err != nil {
			ts.probe.RecordOperation(ctx, "list", time.Since(startTime), err)
			return domain.Page{}, err
		}
	}

	ts.probe.RecordOperation(ctx, "list", time.Since(startTime), nil)

	return domain.Page{
		Items:      items,
		Number:     page,
		Size:       size,
		TotalItems: total,
		TotalPages: totalPages,
	}, nil
}

func (ts *TodoService) Get(ctx context.Context, id uuid.UUID) (domain.Todo, error) {
	ctx, span := ts.probe.StartSpan(ctx, "service.todo.Get", []attribute.KeyValue{
		attribute.String("todo.id", id.String()),
	})
	defer span.End()

	startTime := time.Now()

	todo, err := ts.repo.GetByID(ctx, id)
	ts.probe.RecordOperation(ctx, "get", time.Since(startTime), err)

	return todo, err
}

// Create validates the input and persists a new pending todo with
// created_at = updated_at. Nothing is persisted when validation fails.
func (ts *TodoService) Create(ctx context.Context, input domain.TodoInput) (domain.Todo, error) {
	ctx, span := ts.probe.StartSpan(ctx, "service.todo.Create", nil)
	defer span.End()

	startTime := time.Now()
	now := time.Now().UTC()

	todo := domain.Todo{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Completed:   false,
		DueDate:     input.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := validation.Struct(todo); err != nil {
		ts.probe.RecordOperation(ctx, "create", time.Since(startTime), err)
		return domain.Todo{}, err
	}

	saved, err := ts.repo.Create(ctx, todo)
	ts.probe.RecordOperation(ctx, "create", time.Since(startTime), err)

	if err != nil {
		ts.logger.Error("repository create failed", zap.Error(err), zap.String("title", todo.Title))
		return domain.Todo{}, err
	}

	return saved, nil
}

// Update replaces every mutable field. Partial updates are not supported:
// the caller supplies the full new state, including completed.
func (ts *TodoService) Update(ctx context.Context, id uuid.UUID, input domain.TodoInput) (domain.Todo, error) {
	ctx, span := ts.probe.StartSpan(ctx, "service.todo.Update", []attribute.KeyValue{
		attribute.String("todo.id", id.String()),
	})
	defer span.End()

	startTime := time.Now()

	current, err := ts.repo.GetByID(ctx, id)

	if err != nil {
		ts.probe.RecordOperation(ctx, "update", time.Since(startTime), err)
		return domain.Todo{}, err
	}

	current.Title = input.Title
	current.Description = input.Description
	current.DueDate = input.DueDate
	current.Completed = input.Completed
	current.UpdatedAt = time.Now().UTC()

	if err := validation.Struct(current); err != nil {
		ts.probe.RecordOperation(ctx, "update", time.Since(startTime), err)
		return domain.Todo{}, err
	}

	updated, err := ts.repo.Update(ctx, current)
	ts.probe.RecordOperation(ctx, "update", time.Since(startTime), err)

	if err != nil {
		ts.logger.Error("repository update failed", zap.Error(err), zap.String("id", id.String()))
		return domain.Todo{}, err
	}

	return updated, nil
}

// Toggle flips completed in a single atomic statement. Two toggles return
// the entity to its original state; each call is a transition, not a set.
func (ts *TodoService) Toggle(ctx context.Context, id uuid.UUID) (domain.Todo, error) {
	ctx, span := ts.probe.StartSpan(ctx, "service.todo.Toggle", []attribute.KeyValue{
		attribute.String("todo.id", id.String()),
	})
	defer span.End()

	startTime := time.Now()

	todo, err := ts.repo.Toggle(ctx, id)
	ts.probe.RecordOperation(ctx, "toggle", time.Since(startTime), err)

	return todo, err
}

// Delete removes the todo permanently. No soft-delete, no tombstone.
func (ts *TodoService) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := ts.probe.StartSpan(ctx, "service.todo.Delete", []attribute.KeyValue{
		attribute.String("todo.id", id.String()),
	})
	defer span.End()

	startTime := time.Now()

	err := ts.repo.Delete(ctx, id)
	ts.probe.RecordOperation(ctx, "delete", time.Since(startTime), err)

	return err
}
