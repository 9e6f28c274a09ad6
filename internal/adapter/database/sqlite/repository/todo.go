package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"todoweb/internal/adapter/database/sqlite"
	"todoweb/internal/core/domain"
	"todoweb/internal/core/port"
)

const todoColumns = "id, title, description, completed, due_date, created_at, updated_at"

type TodoRepository struct {
	db *sqlite.DB
}

func NewTodoRepository(db *sqlite.DB) port.TodoRepository {
	return &TodoRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner) (domain.Todo, error) {
	var (
		todo domain.Todo
		id   string
		due  sql.NullTime
	)

	err := row.Scan(&id, &todo.Title, &todo.Description, &todo.Completed, &due, &todo.CreatedAt, &todo.UpdatedAt)

	if err != nil {
		return domain.Todo{}, err
	}

	todo.ID, err = uuid.Parse(id)

	if err != nil {
		return domain.Todo{}, err
	}

	if due.Valid {
		t := due.Time
		todo.DueDate = &t
	}

	return todo, nil
}

func (tr *TodoRepository) List(ctx context.Context, limit, offset int, ordering string) ([]domain.Todo, error) {
	query, args, err := tr.db.QueryBuilder.Select(todoColumns).
		From("todos").
		OrderBy(ordering).
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := tr.db.QueryContext(ctx, query, args...)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	todos := []domain.Todo{}

	for rows.Next() {
		todo, err := scanTodo(rows)

		if err != nil {
			return nil, err
		}

		todos = append(todos, todo)
	}

	return todos, rows.Err()
}

func (tr *TodoRepository) Count(ctx context.Context) (int, error) {
	query, args, err := tr.db.QueryBuilder.Select("COUNT(*)").From("todos").ToSql()

	if err != nil {
		return 0, err
	}

	var count int
	err = tr.db.QueryRowContext(ctx, query, args...).Scan(&count)

	return count, err
}

func (tr *TodoRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Todo, error) {
	query, args, err := tr.db.QueryBuilder.Select(todoColumns).
		From("todos").
		Where(sq.Eq{"id": id.String()}).
		Limit(1).
		ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	todo, err := scanTodo(tr.db.QueryRowContext(ctx, query, args...))

	if errors.Is(err, sql.ErrNoRows) {
		return domain.Todo{}, domain.ErrNotFound
	}

	return todo, err
}

func (tr *TodoRepository) Create(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	query, args, err := tr.db.QueryBuilder.Insert("todos").
		Columns("id", "title", "description", "completed", "due_date", "created_at", "updated_at").
		Values(todo.ID.String(), todo.Title, todo.Description, todo.Completed, todo.DueDate, todo.CreatedAt, todo.UpdatedAt).
		ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	if _, err := tr.db.ExecContext(ctx, query, args...); err != nil {
		return domain.Todo{}, err
	}

	return tr.GetByID(ctx, todo.ID)
}

func (tr *TodoRepository) Update(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	query, args, err := tr.db.QueryBuilder.Update("todos").
		Set("title", todo.Title).
		Set("description", todo.Description).
		Set("completed", todo.Completed).
		Set("due_date", todo.DueDate).
		Set("updated_at", todo.UpdatedAt).
		Where(sq.Eq{"id": todo.ID.String()}).
		ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	result, err := tr.db.ExecContext(ctx, query, args...)

	if err != nil {
		return domain.Todo{}, err
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return domain.Todo{}, domain.ErrNotFound
	}

	return tr.GetByID(ctx, todo.ID)
}

// Toggle flips completed in one UPDATE so concurrent toggles on the same id
// never lose a flip to a read-modify-write race.
func (tr *TodoRepository) Toggle(ctx context.Context, id uuid.UUID) (domain.Todo, error) {
	query, args, err := tr.db.QueryBuilder.Update("todos").
		Set("completed", sq.Expr("NOT completed")).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id.String()}).
		ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	result, err := tr.db.ExecContext(ctx, query, args...)

	if err != nil {
		return domain.Todo{}, err
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return domain.Todo{}, domain.ErrNotFound
	}

	return tr.GetByID(ctx, id)
}

func (tr *TodoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := tr.db.QueryBuilder.Delete("todos").
		Where(sq.Eq{"id": id.String()}).
		ToSql()

	if err != nil {
		return err
	}

	result, err := tr.db.ExecContext(ctx, query, args...)

	if err != nil {
		return err
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
