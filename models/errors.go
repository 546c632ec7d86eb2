package models

import "errors"

var (
	// ErrInvalidAmount is returned for zero or negative deposit and withdrawal amounts.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrMinimumBalance denies a savings withdrawal that would leave the balance below its floor.
	ErrMinimumBalance = errors.New("withdrawal denied: minimum balance required")

	// ErrOverdraftExceeded denies a current account withdrawal past the overdraft limit.
	ErrOverdraftExceeded = errors.New("withdrawal denied: overdraft limit exceeded")

	ErrDuplicateAccount = errors.New("account number already exists")
	ErrAlreadyExecuted  = errors.New("transaction already executed")
	ErrNotSavings       = errors.New("interest applies to savings accounts only")
)

// IsDenial reports whether err is a withdrawal policy denial rather than bad input.
func IsDenial(err error) bool {
	return errors.Is(err, ErrMinimumBalance) || errors.Is(err, ErrOverdraftExceeded)
}
