package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"todoweb/internal/core/domain"
	"todoweb/internal/core/port"
	"todoweb/pkg/tracing"
)

// TodoHandler renders the server-side pages. Every write operation answers
// with a 303 redirect so a refresh never resubmits the form.
type TodoHandler struct {
	svc    port.TodoService
	logger *otelzap.Logger
}

func NewTodoHandler(svc port.TodoService, logger *otelzap.Logger) *TodoHandler {
	return &TodoHandler{
		svc:    svc,
		logger: logger,
	}
}

func (h *TodoHandler) List(c *gin.Context) {
	ctx, span := tracing.CreateChildSpan(c.Request.Context(), "handler.todo.List", []attribute.KeyValue{
		attribute.String("handler.method", c.Request.Method),
		attribute.String("handler.path", c.FullPath()),
	})
	defer span.End()

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	data, err := h.svc.List(ctx, page)

	if err != nil {
		tracing.AddSpanError(span, err)
		h.logger.Ctx(ctx).Error("failed to list todos", zap.Error(err))
		h.renderServerError(c)
		return
	}

	c.HTML(http.StatusOK, "todo_list.html", gin.H{
		"Page": data,
		"Now":  time.Now(),
	})
}

func (h *TodoHandler) Detail(c *gin.Context) {
	id, ok := h.todoID(c)

	if !ok {
		return
	}

	todo, err := h.svc.Get(c.Request.Context(), id)

	if err != nil {
		h.renderLookupError(c, err)
		return
	}

	c.HTML(http.StatusOK, "todo_detail.html", gin.H{
		"Todo": todo,
		"Now":  time.Now(),
	})
}

func (h *TodoHandler) NewForm(c *gin.Context) {
	c.HTML(http.StatusOK, "todo_form.html", gin.H{
		"Heading": "New Todo",
		"Action":  "/todos",
		"Form":    TodoForm{},
	})
}

func (h *TodoHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var form TodoForm
	_ = c.ShouldBind(&form)

	input, verrs := form.ToInput()

	if verrs == nil {
		_, err := h.svc.Create(ctx, input)

		if err == nil {
			c.Redirect(http.StatusSeeOther, "/todos")
			return
		}

		var ok bool

		if verrs, ok = domain.AsValidationErrors(err); !ok {
			h.logger.Ctx(ctx).Error("failed to create todo", zap.Error(err))
			h.renderServerError(c)
			return
		}
	}

	c.HTML(http.StatusOK, "todo_form.html", gin.H{
		"Heading": "New Todo",
		"Action":  "/todos",
		"Form":    form,
		"Errors":  verrs,
	})
}

func (h *TodoHandler) EditForm(c *gin.Context) {
	id, ok := h.todoID(c)

	if !ok {
		return
	}

	todo, err := h.svc.Get(c.Request.Context(), id)

	if err != nil {
		h.renderLookupError(c, err)
		return
	}

	c.HTML(http.StatusOK, "todo_form.html", gin.H{
		"Heading": "Edit Todo",
		"Action":  "/todos/" + todo.ID.String(),
		"Form":    formFromTodo(todo),
		"IsEdit":  true,
	})
}

func (h *TodoHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := h.todoID(c)

	if !ok {
		return
	}

	var form TodoForm
	_ = c.ShouldBind(&form)

	input, verrs := form.ToInput()

	if verrs == nil {
		_, err := h.svc.Update(ctx, id, input)

		if err == nil {
			c.Redirect(http.StatusSeeOther, "/todos")
			return
		}

		if errors.Is(err, domain.ErrNotFound) {
			h.renderNotFound(c)
			return
		}

		var ok bool

		if verrs, ok = domain.AsValidationErrors(err); !ok {
			h.logger.Ctx(ctx).Error("failed to update todo", zap.Error(err), zap.String("id", id.String()))
			h.renderServerError(c)
			return
		}
	}

	c.HTML(http.StatusOK, "todo_form.html", gin.H{
		"Heading": "Edit Todo",
		"Action":  "/todos/" + id.String(),
		"Form":    form,
		"Errors":  verrs,
		"IsEdit":  true,
	})
}

func (h *TodoHandler) Toggle(c *gin.Context) {
	id, ok := h.todoID(c)

	if !ok {
		return
	}

	_, err := h.svc.Toggle(c.Request.Context(), id)

	if err != nil {
		h.renderLookupError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/todos")
}

func (h *TodoHandler) ConfirmDelete(c *gin.Context) {
	id, ok := h.todoID(c)

	if !ok {
		return
	}

	todo, err := h.svc.Get(c.Request.Context(), id)

	if err != nil {
		h.renderLookupError(c, err)
		return
	}

	c.HTML(http.StatusOK, "todo_confirm_delete.html", gin.H{
		"Todo": todo,
	})
}

func (h *TodoHandler) Delete(c *gin.Context) {
	id, ok := h.todoID(c)

	if !ok {
		return
	}

	err := h.svc.Delete(c.Request.Context(), id)

	if err != nil {
		h.renderLookupError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/todos")
}

// todoID parses the :id segment. A malformed id means the entity cannot
// exist, so it renders the same not-found page as a missing row.
func (h *TodoHandler) todoID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))

	if err != nil {
		h.renderNotFound(c)
		return uuid.Nil, false
	}

	return id, true
}

func (h *TodoHandler) renderLookupError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		h.renderNotFound(c)
		return
	}

	h.logger.Ctx(c.Request.Context()).Error("todo lookup failed", zap.Error(err))
	h.renderServerError(c)
}

func (h *TodoHandler) renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", nil)
}

func (h *TodoHandler) renderServerError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "500.html", nil)
}
