// Package apperr defines the error taxonomy shared by the service layer and
// the HTTP transport. Services return *Error values tagged with a Kind; the
// transport maps each Kind to a status code.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an application error.
type Kind int

const (
	// KindInternal is the fallback for errors with no explicit classification.
	KindInternal Kind = iota
	// KindNotFound means a referenced id does not exist.
	KindNotFound
	// KindInvalidArgument means the input was well-formed JSON but carried a
	// value the domain rejects (e.g. an unknown enum literal).
	KindInvalidArgument
	// KindConflict means a uniqueness constraint was violated.
	KindConflict
	// KindValidation means one or more required fields were missing or blank.
	KindValidation
)

// FieldError names a single violated field constraint.
type FieldError struct {
	Field   string
	Message string
}

// Error is a classified application error.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound reports that no row of the given entity has the given id.
func NotFound(entity, id string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found with id: %s", entity, id),
	}
}

// Conflict reports a uniqueness violation on an entity name.
func Conflict(entity, name string) *Error {
	return &Error{
		Kind:    KindConflict,
		Message: fmt.Sprintf("%s with name '%s' already exists", entity, name),
	}
}

// InvalidArgument reports a malformed input value.
func InvalidArgument(format string, args ...interface{}) *Error {
	return &Error{
		Kind:    KindInvalidArgument,
		Message: fmt.Sprintf(format, args...),
	}
}

// Validation reports every violated field constraint at once. The message
// joins the per-field messages in the order they were checked.
func Validation(fields ...FieldError) *Error {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return &Error{
		Kind:    KindValidation,
		Message: strings.Join(parts, "; "),
		Fields:  fields,
	}
}

// KindOf returns the Kind of err, or KindInternal if err carries no
// classification.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
