package apperrors

import (
	"errors"
)

var (
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user not found")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoRecoveryPhrase   = errors.New("no recovery phrase on record")

	ErrTokenMissing = errors.New("auth token missing")
	ErrTokenInvalid = errors.New("auth token invalid or expired")

	ErrTodoNotFound = errors.New("todo not found")
	ErrEmptyText    = errors.New("todo text must not be empty")
	ErrEmptyPatch   = errors.New("at least one field must be set")
)
