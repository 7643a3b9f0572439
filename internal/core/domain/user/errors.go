package user

import (
	"errors"
)

var (
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrUserDoesNotExist    = errors.New("user does not exist")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrSessionDoesNotExist = errors.New("session does not exist")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrPasswordTooShort    = errors.New("password is too short")
)

const MIN_PASSWORD_LENGTH = 8
