package types

import "errors"

// Kind names a failure class. The string value is the name reported in the
// "error" field of a failure envelope.
type Kind string

// Error kinds.
const (
	KindValidation          Kind = "ValidationError"
	KindUserAlreadyExists   Kind = "UserAlreadyExistsError"
	KindUserNotFound        Kind = "UserNotFoundError"
	KindTeamAlreadyExists   Kind = "TeamAlreadyExistsError"
	KindTeamNotFound        Kind = "TeamNotFoundError"
	KindBoardAlreadyExists  Kind = "BoardAlreadyExistsError"
	KindBoardNotFound       Kind = "BoardNotFoundError"
	KindTaskAlreadyExists   Kind = "TaskAlreadyExistsError"
	KindTaskNotFound        Kind = "TaskNotFoundError"
	KindOperationNotAllowed Kind = "OperationNotAllowedError"
	KindInternal            Kind = "InternalError"
)

// Error is a failure of a known kind. Message may be empty.
type Error struct {
	Kind    Kind
	Message string
}

// NewError returns an Error of the given kind carrying msg.
func NewError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.Message
}

// Is reports whether target is an *Error of the same kind with no message,
// so that errors.Is(err, ErrUserNotFound) matches any UserNotFound error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == ""
}

// Sentinel errors, one per kind. Compare with errors.Is.
var (
	ErrValidation          = &Error{Kind: KindValidation}
	ErrUserAlreadyExists   = &Error{Kind: KindUserAlreadyExists}
	ErrUserNotFound        = &Error{Kind: KindUserNotFound}
	ErrTeamAlreadyExists   = &Error{Kind: KindTeamAlreadyExists}
	ErrTeamNotFound        = &Error{Kind: KindTeamNotFound}
	ErrBoardAlreadyExists  = &Error{Kind: KindBoardAlreadyExists}
	ErrBoardNotFound       = &Error{Kind: KindBoardNotFound}
	ErrTaskAlreadyExists   = &Error{Kind: KindTaskAlreadyExists}
	ErrTaskNotFound        = &Error{Kind: KindTaskNotFound}
	ErrOperationNotAllowed = &Error{Kind: KindOperationNotAllowed}
)

// KindOf returns the kind of err, or KindInternal when err does not wrap an
// *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
