package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an AppError independently of the HTTP status it renders with.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindConflict     Kind = "conflict"
	KindAuth         Kind = "auth"
	KindNotFound     Kind = "not_found"
	KindUnauthorized Kind = "unauthorized"
	KindRateLimited  Kind = "rate_limited"
	KindInternal     Kind = "internal"
)

type AppError struct {
	Kind    Kind   `json:"kind"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithCode returns a copy of the error rendered with a different HTTP status.
func (e *AppError) WithCode(code int) *AppError {
	cp := *e
	cp.Code = code
	return &cp
}

func New(kind Kind, code int, message string, err error) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func Validation(message string) *AppError {
	return New(KindValidation, http.StatusBadRequest, message, nil)
}

// BadRequest is used for malformed request bodies; it is a validation failure.
func BadRequest(message string) *AppError {
	return Validation(message)
}

// Conflict renders as 400 so clients treat a taken email like any other rejected form field.
func Conflict(message string) *AppError {
	return New(KindConflict, http.StatusBadRequest, message, nil)
}

func InvalidCredentials() *AppError {
	return New(KindAuth, http.StatusBadRequest, "Invalid credentials", nil)
}

func NotFound(message string) *AppError {
	return New(KindNotFound, http.StatusNotFound, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(KindUnauthorized, http.StatusUnauthorized, message, nil)
}

func TooManyRequests(message string) *AppError {
	return New(KindRateLimited, http.StatusTooManyRequests, message, nil)
}

func Internal(err error) *AppError {
	return New(KindInternal, http.StatusInternalServerError, "Internal Server Error", err)
}

// IsKind reports whether err wraps an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
