package entity

import (
	"errors"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrUnauthenticated      = errors.New("unauthenticated")
	ErrUnknownUser          = errors.New("unknown user")
	ErrAccountBlocked       = errors.New("account blocked")
	ErrIdentityMismatch     = errors.New("identity mismatch")
	ErrForbidden            = errors.New("forbidden")
	ErrNotEditable          = errors.New("request is not editable")
	ErrNotDonor             = errors.New("not a donor")
	ErrNotPending           = errors.New("request is not pending")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrInvalidTransition    = errors.New("status transition not allowed")
	ErrDuplicateEmail       = errors.New("email already registered")
	ErrDuplicateTransaction = errors.New("transaction already recorded")
	ErrAlreadyPaid          = errors.New("already paid")
)
