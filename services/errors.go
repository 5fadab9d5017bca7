package services

import "errors"

// Goal calculation fails fast on bad enum input; it signals a caller bug, not
// a transient condition. Ledger writes reject negative nutrition values so a
// bad entry can never corrupt the running totals.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidEntry    = errors.New("invalid log entry")
	ErrSessionNotFound = errors.New("session not found")
)
