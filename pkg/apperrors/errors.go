package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error so the API boundary can translate it to an
// HTTP status without inspecting message text.
type Kind int

const (
	// KindUnexpected is anything the service did not anticipate.
	KindUnexpected Kind = iota
	// KindNotFound means a referenced entity id does not exist.
	KindNotFound
	// KindConflict means a unique key (email) is already taken.
	KindConflict
	// KindIllegalState means a referential or ownership mismatch.
	KindIllegalState
	// KindMethodNotAllowed means the operation is deliberately disallowed.
	KindMethodNotAllowed
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func IllegalState(format string, args ...interface{}) error {
	return &Error{Kind: KindIllegalState, Message: fmt.Sprintf(format, args...)}
}

func MethodNotAllowed(format string, args ...interface{}) error {
	return &Error{Kind: KindMethodNotAllowed, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or KindUnexpected for errors that did not
// originate in the domain layer.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnexpected
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
