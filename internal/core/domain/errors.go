package domain

import (
	"errors"
	"strings"
)

// ErrNotFound is returned whenever an operation references an id that does
// not exist. It is never retried.
var ErrNotFound = errors.New("todo not found")

// FieldError describes one failed field constraint, with a message ready to
// be rendered next to the form input.
type FieldError struct {
	Field   string
	Message string
}

type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, fe := range v {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// For returns the message for a field, or "" when the field is valid.
// Templates use it to annotate inputs.
func (v ValidationErrors) For(field string) string {
	for _, fe := range v {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// AsValidationErrors unwraps err into ValidationErrors if that is what it is.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}
