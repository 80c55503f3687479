package service

import "errors"

// Kind classifies a service failure.  The HTTP layer maps each kind to a
// status code; anything unclassified is an internal error.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindBadRequest
	KindInvalidCredentials
)

// Error is a client-facing failure.  Msg is returned verbatim in the
// {"error": ...} body.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// KindOf returns the kind of err, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

var (
	ErrUnknownTenant      = &Error{KindNotFound, "Unknown tenant"}
	ErrUserNotFound       = &Error{KindNotFound, "User not found"}
	ErrProductNotFound    = &Error{KindNotFound, "Product not found"}
	ErrNotFound           = &Error{KindNotFound, "Not found"}
	ErrUnauthorized       = &Error{KindUnauthorized, "Unauthorized"}
	ErrForbidden          = &Error{KindForbidden, "Forbidden"}
	ErrMissingFields      = &Error{KindBadRequest, "Missing fields"}
	ErrEmailExists        = &Error{KindBadRequest, "Email already exists"}
	ErrMissingEmail       = &Error{KindBadRequest, "Missing email"}
	ErrEmptyCart          = &Error{KindBadRequest, "Cart is empty"}
	ErrAddressNotFound    = &Error{KindBadRequest, "Address not found"}
	ErrInvalidStatus      = &Error{KindBadRequest, "Invalid status"}
	ErrInvalidCredentials = &Error{KindInvalidCredentials, "Invalid credentials"}
)
