package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"todoweb/internal/core/domain"
	"todoweb/internal/core/validation"
)

func TestStructValid(t *testing.T) {
	err := validation.Struct(domain.Todo{Title: "Buy groceries"})
	assert.NoError(t, err)
}

func TestStructMissingTitle(t *testing.T) {
	err := validation.Struct(domain.Todo{Title: ""})
	assert.Error(t, err)

	verrs, ok := domain.AsValidationErrors(err)
	assert.True(t, ok)
	assert.Equal(t, "Title is required", verrs.For("title"))
}

func TestStructTitleTooLong(t *testing.T) {
	err := validation.Struct(domain.Todo{Title: strings.Repeat("a", 201)})
	assert.Error(t, err)

	verrs, ok := domain.AsValidationErrors(err)
	assert.True(t, ok)
	assert.Equal(t, "Title must be at most 200 characters", verrs.For("title"))
}

func TestStructTitleAtLimit(t *testing.T) {
	err := validation.Struct(domain.Todo{Title: strings.Repeat("a", 200)})
	assert.NoError(t, err)
}
