package ledger

import "errors"

// Validation and lookup failures. Operations wrap these with context, so
// callers should match with errors.Is.
var (
	ErrInvalidDateFormat      = errors.New("invalid date format, use YYYYMMDD")
	ErrInvalidTransactionType = errors.New("invalid transaction type, use 'D' for deposit or 'W' for withdrawal")
	ErrInvalidAmount          = errors.New("invalid amount, must be greater than zero with up to two decimal places")
	ErrInsufficientBalance    = errors.New("insufficient balance")
	ErrInvalidRate            = errors.New("invalid interest rate, must be between 0 and 100")
	ErrInvalidYearMonthFormat = errors.New("invalid year-month format, use YYYYMM")
	ErrAccountNotFound        = errors.New("account not found")
)
