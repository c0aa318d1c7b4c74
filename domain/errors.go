package domain

import "errors"

var (
	// ErrUnknownEventType ...
	ErrUnknownEventType = errors.New("unknown event type")

	// ErrUnsupportedCurrency ...
	ErrUnsupportedCurrency = errors.New("unsupported currency")

	// ErrAccountAlreadyExists ...
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrAccountNotFound ...
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountClosed ...
	ErrAccountClosed = errors.New("account is closed")

	// ErrCurrencyMismatch ...
	ErrCurrencyMismatch = errors.New("currency does not match account currency")

	// ErrInvalidAmount ...
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds ...
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidName ...
	ErrInvalidName = errors.New("invalid name")

	// ErrTransactionNotFound ...
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidCategory ...
	ErrInvalidCategory = errors.New("category must not be empty")

	// ErrInvalidCategorizer ...
	ErrInvalidCategorizer = errors.New("categorized_by must be user, ml_model or rule")

	// ErrInvalidConfidence ...
	ErrInvalidConfidence = errors.New("confidence must be in [0, 1]")

	// ErrBudgetAlreadyExists ...
	ErrBudgetAlreadyExists = errors.New("budget already exists")

	// ErrBudgetNotFound ...
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidMonth ...
	ErrInvalidMonth = errors.New("month must be formatted as YYYY-MM")

	// ErrInvalidThreshold ...
	ErrInvalidThreshold = errors.New("alert threshold must be in (0, 1]")
)
