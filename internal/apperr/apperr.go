// Package apperr defines the error taxonomy shared by services and
// handlers: validation failures, unresolvable identifiers, and
// protect-on-delete conflicts. Errors carry enough context (kind, id,
// dependent count) for the caller to act.
package apperr

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type Code int

const (
	CodeValidation Code = iota + 1
	CodeNotFound
	CodeConflict
	CodePageOutOfRange
)

type Error struct {
	Code       Code
	Kind       string
	ID         uuid.UUID
	Message    string
	Dependents int64
}

func (e *Error) Error() string {
	switch e.Code {
	case CodeNotFound:
		return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
	case CodeConflict:
		return fmt.Sprintf("%s %s is still referenced by %d dependent record(s)", e.Kind, e.ID, e.Dependents)
	case CodePageOutOfRange:
		return e.Message
	default:
		return e.Message
	}
}

func Validation(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(kind string, id uuid.UUID) *Error {
	return &Error{Code: CodeNotFound, Kind: kind, ID: id}
}

func Conflict(kind string, id uuid.UUID, dependents int64) *Error {
	return &Error{Code: CodeConflict, Kind: kind, ID: id, Dependents: dependents}
}

func PageOutOfRange(page, totalPages int) *Error {
	return &Error{
		Code:    CodePageOutOfRange,
		Message: fmt.Sprintf("page %d is out of range (last page is %d)", page, totalPages),
	}
}

func codeIs(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

func IsValidation(err error) bool { return codeIs(err, CodeValidation) }

func IsNotFound(err error) bool { return codeIs(err, CodeNotFound) }

func IsConflict(err error) bool { return codeIs(err, CodeConflict) }

func IsPageOutOfRange(err error) bool { return codeIs(err, CodePageOutOfRange) }
