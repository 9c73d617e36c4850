package apperrors

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrNoActiveSession  = errors.New("no active session")
	ErrDemoProtected    = errors.New("demo data cannot be modified or deleted")
	ErrLastAdmin        = errors.New("team must keep at least one admin")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidImport    = errors.New("invalid import file")
)
