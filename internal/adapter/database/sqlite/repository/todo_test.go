package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"

	. "todoweb/pkg/test"

	"todoweb/internal/adapter/database/sqlite/repository"
	"todoweb/internal/core/domain"
	"todoweb/internal/core/port"

	factory "todoweb/pkg/test/factory"
)

var ctx = context.Background()

type TodoRepositoryTestSuite struct {
	suite.Suite
	Repo port.TodoRepository
}

func (s *TodoRepositoryTestSuite) SetupTest() {
	db := InitTestDB()

	s.Repo = repository.NewTodoRepository(db)
}

func TestTodoRepositoryTestSuite(t *testing.T) {
	RegisterTestingT(t)

	suite.Run(t, new(TodoRepositoryTestSuite))
}

func (s *TodoRepositoryTestSuite) TestCreateAndGetByID() {
	due := time.Now().Add(24 * time.Hour).UTC()

	todo := factory.NewTodo[domain.Todo](map[string]any{
		"Title":       "Write report",
		"Description": "Quarterly numbers",
		"DueDate":     &due,
	})

	created, err := s.Repo.Create(ctx, todo)

	Expect(err).To(BeNil())
	Expect(created.ID).To(Equal(todo.ID))
	Expect(created.Title).To(Equal("Write report"))
	Expect(created.Description).To(Equal("Quarterly numbers"))
	Expect(created.Completed).To(BeFalse())
	Expect(created.DueDate).ToNot(BeNil())
	Expect(*created.DueDate).To(BeTemporally("~", due, time.Second))

	fetched, err := s.Repo.GetByID(ctx, todo.ID)

	Expect(err).To(BeNil())
	Expect(fetched.ID).To(Equal(todo.ID))
	Expect(fetched.CreatedAt).To(BeTemporally("~", todo.CreatedAt, time.Second))
}

func (s *TodoRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := s.Repo.GetByID(ctx, uuid.New())

	Expect(err).To(MatchError(domain.ErrNotFound))
}

func (s *TodoRepositoryTestSuite) TestNullDueDateRoundTrip() {
	todo := factory.NewTodo[domain.Todo](map[string]any{"Title": "No deadline"})

	created, err := s.Repo.Create(ctx, todo)

	Expect(err).To(BeNil())
	Expect(created.DueDate).To(BeNil())
}

func (s *TodoRepositoryTestSuite) TestUpdate() {
	todo := factory.NewTodo[domain.Todo](map[string]any{"Title": "Before"})
	created, _ := s.Repo.Create(ctx, todo)

	created.Title = "After"
	created.Description = "Changed"
	created.Completed = true
	created.UpdatedAt = time.Now().UTC()

	updated, err := s.Repo.Update(ctx, created)

	Expect(err).To(BeNil())
	Expect(updated.Title).To(Equal("After"))
	Expect(updated.Description).To(Equal("Changed"))
	Expect(updated.Completed).To(BeTrue())
}

func (s *TodoRepositoryTestSuite) TestUpdateNotFound() {
	todo := factory.NewTodo[domain.Todo](map[string]any{"Title": "Ghost"})

	_, err := s.Repo.Update(ctx, todo)

	Expect(err).To(MatchError(domain.ErrNotFound))
}

func (s *TodoRepositoryTestSuite) TestToggleFlipsCompletedAndBumpsUpdatedAt() {
	todo := factory.NewTodo[domain.Todo](map[string]any{
		"Title":     "Flip",
		"CreatedAt": time.Now().UTC().Add(-time.Minute),
		"UpdatedAt": time.Now().UTC().Add(-time.Minute),
	})
	created, _ := s.Repo.Create(ctx, todo)

	toggled, err := s.Repo.Toggle(ctx, created.ID)

	Expect(err).To(BeNil())
	Expect(toggled.Completed).To(BeTrue())
	Expect(toggled.UpdatedAt.After(created.UpdatedAt)).To(BeTrue())

	back, err := s.Repo.Toggle(ctx, created.ID)

	Expect(err).To(BeNil())
	Expect(back.Completed).To(BeFalse())
}

func (s *TodoRepositoryTestSuite) TestToggleNotFound() {
	_, err := s.Repo.Toggle(ctx, uuid.New())

	Expect(err).To(MatchError(domain.ErrNotFound))
}

func (s *TodoRepositoryTestSuite) TestDelete() {
	todo := factory.NewTodo[domain.Todo](map[string]any{"Title": "Gone"})
	created, _ := s.Repo.Create(ctx, todo)

	Expect(s.Repo.Delete(ctx, created.ID)).To(Succeed())

	_, err := s.Repo.GetByID(ctx, created.ID)
	Expect(err).To(MatchError(domain.ErrNotFound))
}

func (s *TodoRepositoryTestSuite) TestDeleteNotFound() {
	Expect(s.Repo.Delete(ctx, uuid.New())).To(MatchError(domain.ErrNotFound))
}

func (s *TodoRepositoryTestSuite) TestCountAndListWindow() {
	baseTime := time.Now().UTC().Add(-time.Hour)

	for i := 1; i <= 5; i++ {
		stamp := baseTime.Add(time.Duration(i) * time.Minute)

		s.Repo.Create(ctx, factory.NewTodo[domain.Todo](map[string]any{
			"Title":     fmt.Sprintf("Task %d", i),
			"CreatedAt": stamp,
			"UpdatedAt": stamp,
		}))
	}

	count, err := s.Repo.Count(ctx)

	Expect(err).To(BeNil())
	Expect(count).To(Equal(5))

	todos, err := s.Repo.List(ctx, 2, 2, "created_at DESC, id DESC")

	Expect(err).To(BeNil())
	Expect(len(todos)).To(Equal(2))
	Expect(todos[0].Title).To(Equal("Task 3"))
	Expect(todos[1].Title).To(Equal("Task 2"))
}

func (s *TodoRepositoryTestSuite) TestListEmpty() {
	todos, err := s.Repo.List(ctx, 10, 0, "created_at DESC, id DESC")

	Expect(err).To(BeNil())
	Expect(todos).To(BeEmpty())
}
