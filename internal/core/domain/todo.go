package domain

import (
	"time"

	"github.com/google/uuid"
)

// Todo is the single entity of the application. The ID is assigned once at
// creation and never reused; CreatedAt is immutable, UpdatedAt moves forward
// on every mutation.
type Todo struct {
	ID          uuid.UUID
	Title       string `validate:"required,max=200"`
	Description string
	Completed   bool
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TodoInput carries the mutable fields of a Todo as submitted by a caller.
// Description is normalized: absent and empty are the same thing.
type TodoInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	Completed   bool
}

func (t Todo) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && !t.Completed && t.DueDate.Before(now)
}

// Page is one fixed-size slice of the todo collection plus the numbers the
// list pager needs.
type Page struct {
	Items      []Todo
	Number     int
	Size       int
	TotalItems int
	TotalPages int
}

func (p Page) HasNext() bool { return p.Number < p.TotalPages }

func (p Page) HasPrev() bool { return p.Number > 1 }

func (p Page) NextPage() int { return p.Number + 1 }

func (p Page) PrevPage() int { return p.Number - 1 }
