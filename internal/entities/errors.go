package entities

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindNotFound
	KindConflict
	KindExternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindExternal:
		return "external_dependency"
	default:
		return "unknown"
	}
}

// Error is the error type returned by the booking core. Its kind decides the
// HTTP status a handler responds with.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode maps the error kind to an HTTP status code.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// External wraps a failed store or provider call.
func External(message string, err error) *Error {
	return &Error{Kind: KindExternal, Message: message, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or zero.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

var (
	ErrOrderNotFound        = NotFound("order not found")
	ErrVendorNotFound       = NotFound("vendor not found")
	ErrCustomerNotFound     = NotFound("customer not found")
	ErrPackageNotFound      = NotFound("package not found")
	ErrNotificationNotFound = NotFound("notification not found")

	ErrWrongState     = Conflict("order is not in the expected state")
	ErrEventApplied   = Conflict("payment event already applied")
	ErrVendorBusy     = Conflict("vendor is busy for the requested time")
	ErrAlreadyBooked  = Conflict("you already have a booking with this vendor for the requested time")
	ErrInvalidOrderID = Validation("invalid order id")

	ErrInvalidOrder = errors.New("invalid order data")
)
