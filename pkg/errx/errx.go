package errx

import (
	"fmt"
	"net/http"
)

// Type classifies errors for HTTP mapping and handling policy
type Type string

const (
	TypeValidation     Type = "VALIDATION"
	TypeNotFound       Type = "NOT_FOUND"
	TypeConflict       Type = "CONFLICT"
	TypeAuthentication Type = "AUTHENTICATION"
	TypeAuthorization  Type = "AUTHORIZATION"
	TypeBusiness       Type = "BUSINESS"
	TypeExternal       Type = "EXTERNAL"
	TypeInternal       Type = "INTERNAL"
)

// Code identifies a registered error kind
type Code struct {
	Key        string
	Type       Type
	HTTPStatus int
	Message    string
}

// Registry holds the error codes of one domain package.
// Codes are registered once at init time and used to mint errors.
type Registry struct {
	prefix string
}

// NewRegistry creates a registry with a domain prefix (e.g. "JOB")
func NewRegistry(prefix string) *Registry {
	return &Registry{prefix: prefix}
}

// Register declares an error code under the registry's prefix
func (r *Registry) Register(key string, t Type, httpStatus int, message string) Code {
	return Code{
		Key:        r.prefix + "_" + key,
		Type:       t,
		HTTPStatus: httpStatus,
		Message:    message,
	}
}

// New mints an error for a registered code
func (r *Registry) New(code Code) *Error {
	return &Error{
		Code:       code.Key,
		Type:       code.Type,
		HTTPStatus: code.HTTPStatus,
		Message:    code.Message,
	}
}

// Error is the error value that crosses every service boundary.
// The Message is always safe to show to end users.
type Error struct {
	Code       string         `json:"code"`
	Type       Type           `json:"type"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause to errors.Is/As
func (e *Error) Unwrap() error { return e.cause }

// WithDetail attaches a key/value pair for diagnostics; chainable
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause attaches the underlying error; chainable
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// ToHTTPResponse renders the body returned to clients
func (e *Error) ToHTTPResponse() map[string]any {
	resp := map[string]any{
		"error":   e.Message,
		"type":    e.Type,
		"code":    e.Code,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		resp["details"] = e.Details
	}
	return resp
}

// Wrap converts an arbitrary error into an *Error of the given type.
// If err is already an *Error it is returned unchanged so the original
// code and status survive re-wrapping at outer layers.
func Wrap(err error, message string, t Type) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{
		Code:       string(t),
		Type:       t,
		Message:    message,
		HTTPStatus: statusFor(t),
		cause:      err,
	}
}

func statusFor(t Type) int {
	switch t {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeNotFound:
		return http.StatusNotFound
	case TypeConflict:
		return http.StatusConflict
	case TypeAuthentication:
		return http.StatusUnauthorized
	case TypeAuthorization:
		return http.StatusForbidden
	case TypeBusiness:
		return http.StatusUnprocessableEntity
	case TypeExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
