package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyAggregateKey ...
type DailyAggregateKey struct {
	UserID   string    `db:"user_id"`
	Date     time.Time `db:"date"`
	Category string    `db:"category"`
	Currency string    `db:"currency"`
}

// DailyAggregate is the spending of a user per day and category
type DailyAggregate struct {
	DailyAggregateKey

	TotalAmount   decimal.Decimal `db:"total_amount"`
	TxCount       int64           `db:"tx_count"`
	AverageAmount decimal.Decimal `db:"average_amount"`

	UpdatedAt time.Time `db:"updated_at"`
}

// NullDailyAggregate ...
type NullDailyAggregate struct {
	Valid     bool
	Aggregate DailyAggregate
}
