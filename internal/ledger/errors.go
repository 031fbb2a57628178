package ledger

import "errors"

var (
	ErrEmptyName       = errors.New("name must not be empty")
	ErrInvalidAmount   = errors.New("amount must be a non-negative decimal")
	ErrInvalidCount    = errors.New("installments count must be a whole number")
	ErrIndexOutOfRange = errors.New("there is no item at this index")
	ErrNoActiveEdit    = errors.New("there is no edit in progress")
)
