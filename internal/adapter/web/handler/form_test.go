package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"todoweb/internal/core/domain"
)

func TestToInputParsesFields(t *testing.T) {
	form := TodoForm{
		Title:       "Dentist",
		Description: "Bring insurance card",
		DueDate:     "2026-09-01T12:30",
		Completed:   "on",
	}

	input, verrs := form.ToInput()

	assert.Nil(t, verrs)
	assert.Equal(t, "Dentist", input.Title)
	assert.Equal(t, "Bring insurance card", input.Description)
	assert.True(t, input.Completed)

	if assert.NotNil(t, input.DueDate) {
		assert.Equal(t, 2026, input.DueDate.Year())
		assert.Equal(t, time.September, input.DueDate.Month())
		assert.Equal(t, 12, input.DueDate.Hour())
		assert.Equal(t, 30, input.DueDate.Minute())
	}
}

func TestToInputEmptyDueDateIsNil(t *testing.T) {
	input, verrs := TodoForm{Title: "No deadline"}.ToInput()

	assert.Nil(t, verrs)
	assert.Nil(t, input.DueDate)
	assert.False(t, input.Completed)
}

func TestToInputMalformedDueDate(t *testing.T) {
	_, verrs := TodoForm{Title: "Bad date", DueDate: "tomorrow"}.ToInput()

	assert.NotNil(t, verrs)
	assert.NotEmpty(t, verrs.For("due_date"))
}

func TestFormFromTodoRoundTrip(t *testing.T) {
	due := time.Date(2026, time.September, 1, 12, 30, 0, 0, time.Local)

	form := formFromTodo(domain.Todo{
		Title:       "Dentist",
		Description: "Bring insurance card",
		DueDate:     &due,
		Completed:   true,
	})

	assert.Equal(t, "Dentist", form.Title)
	assert.Equal(t, "2026-09-01T12:30", form.DueDate)
	assert.Equal(t, "on", form.Completed)

	input, verrs := form.ToInput()

	assert.Nil(t, verrs)
	assert.True(t, input.Completed)

	if assert.NotNil(t, input.DueDate) {
		assert.True(t, input.DueDate.Equal(due))
	}
}
