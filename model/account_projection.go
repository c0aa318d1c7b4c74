package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountProjection ...
type AccountProjection struct {
	AccountID string          `db:"account_id"`
	UserID    string          `db:"user_id"`
	Name      string          `db:"name"`
	Currency  string          `db:"currency"`
	Balance   decimal.Decimal `db:"balance"`
	Status    AccountStatus   `db:"status"`

	LastEventVersion int64     `db:"last_event_version"`
	SyncedAt         time.Time `db:"synced_at"`
}

// NullAccountProjection ...
type NullAccountProjection struct {
	Valid   bool
	Account AccountProjection
}

// AccountStatus ...
type AccountStatus int

const (
	// AccountStatusUnspecified for accounts whose opening event was not seen yet
	AccountStatusUnspecified AccountStatus = 0

	// AccountStatusOpen ...
	AccountStatusOpen AccountStatus = 1

	// AccountStatusClosed ...
	AccountStatusClosed AccountStatus = 2
)
