package ordermanager

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a domain error. Every failed call aborts with exactly one
// of these; there is no soft-failure path.
type Kind uint8

const (
	KindNone Kind = iota
	KindUnauthorized
	KindInvalidInput
	KindInsufficientFunds
	KindNoMatchFound
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "Unauthorized"
	case KindInvalidInput:
		return "InvalidInput"
	case KindInsufficientFunds:
		return "InsufficientFunds"
	case KindNoMatchFound:
		return "NoMatchFound"
	case KindInternal:
		return "InternalError"
	default:
		return "Unknown"
	}
}

// Error is the terminal error type returned by engine operations.
type Error struct {
	Kind   Kind
	Reason string
}

func (e *Error) Error() string {
	if e.Reason == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind.String(), e.Reason)
}

func newErr(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

func ErrUnauthorized(format string, args ...interface{}) *Error {
	return newErr(KindUnauthorized, format, args...)
}

func ErrInvalidInput(format string, args ...interface{}) *Error {
	return newErr(KindInvalidInput, format, args...)
}

func ErrInsufficientFunds(format string, args ...interface{}) *Error {
	return newErr(KindInsufficientFunds, format, args...)
}

func ErrNoMatchFound() *Error {
	return &Error{Kind: KindNoMatchFound}
}

func ErrInternal(format string, args ...interface{}) *Error {
	return newErr(KindInternal, format, args...)
}

// KindOf extracts the error kind from err, unwrapping as needed. Errors that
// did not originate in the engine report KindInternal.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
