package account

import "errors"

var (
	ErrBlankName     = errors.New("name is required")
	ErrInvalidEmail  = errors.New("invalid email format")
	ErrUnknownRole   = errors.New("unknown role")
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateUser = errors.New("user already exists")
)
