package factory

import (
	"time"

	fab "github.com/Goldziher/fabricator"
	"github.com/google/uuid"
)

// NewTodo builds a persistable todo for tests. Override fields by name:
// NewTodo[domain.Todo](map[string]any{"Title": "Buy groceries"}).
func NewTodo[T any](customData ...map[string]any) T {
	now := time.Now().UTC()

	data := map[string]any{
		"ID":          uuid.New(),
		"Title":       "Test Todo",
		"Description": "",
		"Completed":   false,
		"DueDate":     (*time.Time)(nil),
		"CreatedAt":   now,
		"UpdatedAt":   now,
	}

	for _, custom := range customData {
		for key, value := range custom {
			data[key] = value
		}
	}

	instance := fab.New(*new(T))

	return instance.Build(data)
}
