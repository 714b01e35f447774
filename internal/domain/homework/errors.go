// internal/domain/homework/errors.go
package homework

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure a poll cycle can run into.
type ErrorKind int

const (
	KindEndpoint ErrorKind = iota + 1
	KindShape
	KindMissingKey
	KindListShape
	KindMissingField
	KindUnknownStatus
	KindDelivery
)

func (k ErrorKind) String() string {
	switch k {
	case KindEndpoint:
		return "endpoint"
	case KindShape:
		return "shape"
	case KindMissingKey:
		return "missing_key"
	case KindListShape:
		return "list_shape"
	case KindMissingField:
		return "missing_field"
	case KindUnknownStatus:
		return "unknown_status"
	case KindDelivery:
		return "delivery"
	default:
		return "unknown"
	}
}

// Error is the error type returned by every component of the poll cycle.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so the Err* values below work with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && t.Msg == "" && t.Err == nil
}

// Sentinels for errors.Is.
var (
	ErrEndpoint      = &Error{Kind: KindEndpoint}
	ErrShape         = &Error{Kind: KindShape}
	ErrMissingKey    = &Error{Kind: KindMissingKey}
	ErrListShape     = &Error{Kind: KindListShape}
	ErrMissingField  = &Error{Kind: KindMissingField}
	ErrUnknownStatus = &Error{Kind: KindUnknownStatus}
	ErrDelivery      = &Error{Kind: KindDelivery}
)

// NewError builds an *Error of the given kind.
func NewError(kind ErrorKind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the kind of err, if it is (or wraps) an *Error.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
