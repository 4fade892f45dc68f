package domain

import "errors"

// Repository errors; usecases translate them into apperror kinds.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrDuplicateEmail = errors.New("email already registered")
)
