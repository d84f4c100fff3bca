package service

import "errors"

var (
	ErrInvalidLimit       = errors.New("limit must be between 1 and the maximum page size")
	ErrUnknownField       = errors.New("unknown sort field")
	ErrInvalidDirection   = errors.New("dir must be asc or desc")
	ErrUnknownAction      = errors.New("unknown view action")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("session is missing or expired")
)
