package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthLayout is the layout of budget months
const MonthLayout = "2006-01"

// Budget is the state of a budget aggregate
type Budget struct {
	Exists bool

	UserID         string
	Name           string
	Category       string
	Month          string
	Currency       Currency
	Limit          decimal.Decimal
	AlertThreshold decimal.Decimal

	// ThresholdAlerted and LimitExceeded are re-armed by a limit change
	ThresholdAlerted bool
	LimitExceeded    bool
}

// NewBudget returns the initial state
func NewBudget() Budget {
	return Budget{}
}

// FoldBudget applies one event to a budget state
func FoldBudget(s Budget, e Event) Budget {
	switch p := e.Payload.(type) {
	case BudgetCreated:
		s.Exists = true
		s.UserID = p.UserID
		s.Name = p.Name
		s.Category = p.Category
		s.Month = p.Month
		s.Currency = p.Currency
		s.Limit = p.Limit
		s.AlertThreshold = p.AlertThreshold

	case BudgetUpdated:
		s.Limit = p.NewLimit
		s.ThresholdAlerted = false
		s.LimitExceeded = false

	case BudgetThresholdExceeded:
		s.ThresholdAlerted = true

	case BudgetExceeded:
		s.LimitExceeded = true
	}
	return s
}

// CreateBudgetInput ...
type CreateBudgetInput struct {
	UserID         string
	Name           string
	Category       string
	Month          string
	Limit          decimal.Decimal
	Currency       string
	AlertThreshold decimal.Decimal
}

// DefaultAlertThreshold is used when no threshold is given
var DefaultAlertThreshold = decimal.RequireFromString("0.8")

// MonthOf returns the budget month of a time
func MonthOf(t time.Time) string {
	return t.UTC().Format(MonthLayout)
}

// Create decides the events for a new budget
func (s Budget) Create(in CreateBudgetInput) ([]Payload, error) {
	if s.Exists {
		return nil, ErrBudgetAlreadyExists
	}
	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, err
	}
	if _, err := time.Parse(MonthLayout, in.Month); err != nil {
		return nil, ErrInvalidMonth
	}
	if !in.Limit.IsPositive() {
		return nil, ErrInvalidAmount
	}
	currency, err := ParseCurrency(in.Currency)
	if err != nil {
		return nil, err
	}

	threshold := in.AlertThreshold
	if threshold.IsZero() {
		threshold = DefaultAlertThreshold
	}
	if !threshold.IsPositive() || threshold.GreaterThan(decimal.NewFromInt(1)) {
		return nil, ErrInvalidThreshold
	}

	category := normalizeCategory(in.Category)
	if category == "" {
		category = CategoryUncategorized
	}

	return []Payload{
		BudgetCreated{
			UserID:         in.UserID,
			Name:           name,
			Category:       category,
			Month:          in.Month,
			Limit:          RoundMoney(in.Limit),
			Currency:       currency,
			AlertThreshold: threshold,
		},
	}, nil
}

// UpdateLimit returns no events when the limit does not change
func (s Budget) UpdateLimit(limit decimal.Decimal) ([]Payload, error) {
	if !s.Exists {
		return nil, ErrBudgetNotFound
	}
	if !limit.IsPositive() {
		return nil, ErrInvalidAmount
	}
	limit = RoundMoney(limit)
	if limit.Equal(s.Limit) {
		return nil, nil
	}
	return []Payload{BudgetUpdated{OldLimit: s.Limit, NewLimit: limit}}, nil
}

// CheckSpending decides the alerts for the spending of the budget category in its month.
// Each alert is raised once per limit.
func (s Budget) CheckSpending(spent decimal.Decimal) ([]Payload, error) {
	if !s.Exists {
		return nil, ErrBudgetNotFound
	}
	if spent.IsNegative() {
		return nil, ErrInvalidAmount
	}

	var result []Payload
	if !s.ThresholdAlerted && spent.GreaterThanOrEqual(s.Limit.Mul(s.AlertThreshold)) {
		result = append(result, BudgetThresholdExceeded{
			Category:        s.Category,
			Limit:           s.Limit,
			CurrentSpending: spent,
			PercentageUsed:  PercentageOf(spent, s.Limit),
			Currency:        s.Currency,
		})
	}
	if !s.LimitExceeded && spent.GreaterThan(s.Limit) {
		result = append(result, BudgetExceeded{
			Name:            s.Name,
			Category:        s.Category,
			Limit:           s.Limit,
			CurrentSpending: spent,
			ExceededBy:      RoundMoney(spent.Sub(s.Limit)),
			Currency:        s.Currency,
		})
	}
	return result, nil
}
