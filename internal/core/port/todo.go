package port

import (
	"context"

	"github.com/google/uuid"

	"todoweb/internal/core/domain"
)

type TodoRepository interface {
	List(ctx context.Context, limit, offset int, ordering string) ([]domain.Todo, error)
	Count(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Todo, error)
	Create(ctx context.Context, todo domain.Todo) (domain.Todo, error)
	Update(ctx context.Context, todo domain.Todo) (domain.Todo, error)
	Toggle(ctx context.Context, id uuid.UUID) (domain.Todo, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TodoService interface {
	List(ctx context.Context, page int) (domain.Page, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Todo, error)
	Create(ctx context.Context, input domain.TodoInput) (domain.Todo, error)
	Update(ctx context.Context, id uuid.UUID, input domain.TodoInput) (domain.Todo, error)
	Toggle(ctx context.Context, id uuid.UUID) (domain.Todo, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
