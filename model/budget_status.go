package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetStatusKey ...
type BudgetStatusKey struct {
	UserID   string `db:"user_id"`
	Category string `db:"category"`
	Month    string `db:"month"` // YYYY-MM
	Currency string `db:"currency"`
}

// BudgetStatus compares a monthly budget with the spending in its category
type BudgetStatus struct {
	BudgetStatusKey

	BudgetID        string          `db:"budget_id"`
	BudgetAmount    decimal.Decimal `db:"budget_amount"`
	SpentAmount     decimal.Decimal `db:"spent_amount"`
	RemainingAmount decimal.Decimal `db:"remaining_amount"`
	PercentageUsed  decimal.Decimal `db:"percentage_used"`
	AlertThreshold  decimal.Decimal `db:"alert_threshold"`

	UpdatedAt time.Time `db:"updated_at"`
}

// NullBudgetStatus ...
type NullBudgetStatus struct {
	Valid  bool
	Status BudgetStatus
}
