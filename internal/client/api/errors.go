package api

import (
	"errors"
	"fmt"
)

// Kind classifies a failed gateway call. Every failure leaving this package
// belongs to exactly one class.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnauthorized
	KindForbidden
	KindBadRequest
	KindNetwork
)

// Fallback messages used when the backend response carries no message body.
const (
	MsgInvalidCredentials = "Invalid credentials"
	MsgForbidden          = "Access denied. Contact admin."
	MsgBadRequest         = "Invalid request"
	MsgNetwork            = "Cannot connect to server. Please check your connection."
	MsgUnknown            = "Something went wrong. Please try again."
)

// Error is the discriminated failure result of a gateway call. Message is
// the backend's verbatim text when available, otherwise the fixed fallback
// for the class.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("api: %s", e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// AsError unpacks a gateway error from err, if present.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

// IsKind reports whether err is a gateway error of the given class.
func IsKind(err error, k Kind) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Kind == k
}

func fallback(k Kind) string {
	switch k {
	case KindUnauthorized:
		return MsgInvalidCredentials
	case KindForbidden:
		return MsgForbidden
	case KindBadRequest:
		return MsgBadRequest
	case KindNetwork:
		return MsgNetwork
	default:
		return MsgUnknown
	}
}

func classifyStatus(status int) Kind {
	switch status {
	case 401:
		return KindUnauthorized
	case 403:
		return KindForbidden
	case 400:
		return KindBadRequest
	default:
		return KindUnknown
	}
}
