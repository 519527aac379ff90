package model

import "errors"

// Domain errors. Handlers map these onto HTTP status codes; repositories wrap
// driver errors and return these sentinels where the distinction matters.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrDuplicate    = errors.New("already exists")
	ErrInvalid      = errors.New("invalid input")
)
