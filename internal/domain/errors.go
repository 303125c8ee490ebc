package domain

import "errors"

// Domain error taxonomy. Everything else bubbling out of a repository is an
// internal/store error and is surfaced to callers as such, so "your request
// is invalid" stays distinguishable from "the system is unavailable".
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidDateRange   = errors.New("check-out must be after check-in")
	ErrForbidden          = errors.New("forbidden")
	ErrDateConflict       = errors.New("dates conflict with an existing booking")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
