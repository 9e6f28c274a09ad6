package handler

import (
	"time"

	"todoweb/internal/core/domain"
)

// dueDateLayout matches the value of an HTML datetime-local input.
const dueDateLayout = "2006-01-02T15:04"

// TodoForm mirrors the edit form: everything arrives as strings and the
// checkbox is only present when checked.
type TodoForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	DueDate     string `form:"due_date"`
	Completed   string `form:"completed"`
}

func formFromTodo(todo domain.Todo) TodoForm {
	form := TodoForm{
		Title:       todo.Title,
		Description: todo.Description,
	}

	if todo.DueDate != nil {
		form.DueDate = todo.DueDate.Format(dueDateLayout)
	}

	if todo.Completed {
		form.Completed = "on"
	}

	return form
}

// ToInput converts the submitted strings into a domain input. A malformed
// due date is a field error, never a silent correction.
func (f TodoForm) ToInput() (domain.TodoInput, domain.ValidationErrors) {
	input := domain.TodoInput{
		Title:       f.Title,
		Description: f.Description,
		Completed:   f.Completed == "on" || f.Completed == "true",
	}

	if f.DueDate != "" {
		due, err := time.ParseInLocation(dueDateLayout, f.DueDate, time.Local)

		if err != nil {
			return input, domain.ValidationErrors{
				{Field: "due_date", Message: "Due date must look like 2006-01-02T15:04"},
			}
		}

		input.DueDate = &due
	}

	return input, nil
}
