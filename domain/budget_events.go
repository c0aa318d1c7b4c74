package domain

import (
	"github.com/QuangTung97/finledger/model"
	"github.com/shopspring/decimal"
)

// BudgetCreated defines a monthly spending limit for one category
type BudgetCreated struct {
	UserID         string          `json:"user_id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Month          string          `json:"month"`
	Limit          decimal.Decimal `json:"limit"`
	Currency       Currency        `json:"currency"`
	AlertThreshold decimal.Decimal `json:"alert_threshold"`
}

// BudgetUpdated changes the limit of an existing budget
type BudgetUpdated struct {
	OldLimit decimal.Decimal `json:"old_limit"`
	NewLimit decimal.Decimal `json:"new_limit"`
}

// BudgetThresholdExceeded is raised once when spending reaches the alert threshold of the limit
type BudgetThresholdExceeded struct {
	Category        string          `json:"category"`
	Limit           decimal.Decimal `json:"limit"`
	CurrentSpending decimal.Decimal `json:"current_spending"`
	PercentageUsed  decimal.Decimal `json:"percentage_used"`
	Currency        Currency        `json:"currency"`
}

// BudgetExceeded is raised once when spending goes above the limit
type BudgetExceeded struct {
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Limit           decimal.Decimal `json:"limit"`
	CurrentSpending decimal.Decimal `json:"current_spending"`
	ExceededBy      decimal.Decimal `json:"exceeded_by"`
	Currency        Currency        `json:"currency"`
}

// EventType ...
func (BudgetCreated) EventType() EventType { return EventTypeBudgetCreated }

// EventType ...
func (BudgetUpdated) EventType() EventType { return EventTypeBudgetUpdated }

// EventType ...
func (BudgetThresholdExceeded) EventType() EventType { return EventTypeBudgetThresholdExceeded }

// EventType ...
func (BudgetExceeded) EventType() EventType { return EventTypeBudgetExceeded }

// AggregateType ...
func (BudgetCreated) AggregateType() model.AggregateType { return model.AggregateTypeBudget }

// AggregateType ...
func (BudgetUpdated) AggregateType() model.AggregateType { return model.AggregateTypeBudget }

// AggregateType ...
func (BudgetThresholdExceeded) AggregateType() model.AggregateType { return model.AggregateTypeBudget }

// AggregateType ...
func (BudgetExceeded) AggregateType() model.AggregateType { return model.AggregateTypeBudget }

func (BudgetCreated) sealed()           {}
func (BudgetUpdated) sealed()           {}
func (BudgetThresholdExceeded) sealed() {}
func (BudgetExceeded) sealed()          {}
