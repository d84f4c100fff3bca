package repository

import "errors"

var (
	ErrInvalidStatus = errors.New("status must be active or inactive")
	ErrDuplicateID   = errors.New("duplicate id")
)

var (
	ErrTSVHeaders = errors.New("tsv headers do not match id, name, email, role, createdAt[, status]")
	ErrTSVLine    = errors.New("malformed tsv line")
)
