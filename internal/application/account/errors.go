package account

import "errors"

var (
	ErrInvalidUserID    = errors.New("invalid user id")
	ErrUserNotFound     = errors.New("user not found")
	ErrGetUserByID      = errors.New("failed to get user by id")
	ErrCreateUser       = errors.New("failed to create user")
	ErrProvisionAccount = errors.New("failed to provision auth account")
	ErrMalformedImport  = errors.New("import file is not valid csv")
)
