// Package apperr defines the error taxonomy shared by services and the HTTP
// layer. Services return *Error values carrying a Kind; handlers map the kind
// to a status code without inspecting messages, so a storage fault can never
// masquerade as an authentication failure.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation marks missing or malformed input; the client must fix
	// the request.
	KindValidation
	// KindAuth marks a credential mismatch. The message stays generic
	// regardless of root cause to resist user enumeration.
	KindAuth
	// KindConflict marks a duplicate registration or duplicate key.
	KindConflict
	// KindNotFound marks an absent record on a lookup the client named.
	KindNotFound
	// KindReferenced marks a delete rejected because other rows still
	// reference the target.
	KindReferenced
	// KindStorage marks a backing-store fault: unreachable database, failed
	// query, upstream service error.
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindReferenced:
		return "referenced"
	case KindStorage:
		return "storage"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(message string) *Error { return New(KindValidation, message) }
func Auth(message string) *Error       { return New(KindAuth, message) }
func Conflict(message string) *Error   { return New(KindConflict, message) }
func NotFound(message string) *Error   { return New(KindNotFound, message) }
func Referenced(message string) *Error { return New(KindReferenced, message) }

func Storage(message string, err error) *Error {
	return Wrap(KindStorage, message, err)
}

// KindOf reports the Kind carried by err, or KindUnknown when err is not an
// *Error from this package.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// HTTPStatus maps a Kind to the status code the transport layer responds
// with. Conflicts map to 400 to keep the registration endpoint's contract
// ("user already exists" is a 400) while referenced deletes use 409.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindReferenced:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
