package projection

import (
	"context"
	"time"

	"github.com/QuangTung97/finledger/domain"
	"github.com/QuangTung97/finledger/model"
	"github.com/QuangTung97/finledger/repository"
	"github.com/shopspring/decimal"
)

// BudgetProjectorName ...
const BudgetProjectorName = "budget_status"

// computeBudgetStatus derives remaining and percentage from budget and spent
func computeBudgetStatus(s model.BudgetStatus) model.BudgetStatus {
	s.RemainingAmount = domain.RoundMoney(s.BudgetAmount.Sub(s.SpentAmount))
	s.PercentageUsed = domain.PercentageOf(s.SpentAmount, s.BudgetAmount)
	return s
}

func emptyBudgetStatus(key model.BudgetStatusKey) model.BudgetStatus {
	return model.BudgetStatus{
		BudgetStatusKey: key,
		BudgetAmount:    decimal.Zero,
		SpentAmount:     decimal.Zero,
		AlertThreshold:  decimal.Zero,
	}
}

// ApplyBudgetCreated sets the limit of a status row, spending recorded before the budget is kept
func ApplyBudgetCreated(
	current model.NullBudgetStatus, budgetID string, b domain.BudgetCreated, now time.Time,
) model.BudgetStatus {
	key := model.BudgetStatusKey{
		UserID:   b.UserID,
		Category: b.Category,
		Month:    b.Month,
		Currency: string(b.Currency),
	}
	s := current.Status
	if !current.Valid {
		s = emptyBudgetStatus(key)
	}

	s.BudgetID = budgetID
	s.BudgetAmount = b.Limit
	s.AlertThreshold = b.AlertThreshold
	s.UpdatedAt = now
	return computeBudgetStatus(s)
}

// ApplyBudgetUpdated ...
func ApplyBudgetUpdated(current model.BudgetStatus, b domain.BudgetUpdated, now time.Time) model.BudgetStatus {
	current.BudgetAmount = b.NewLimit
	current.UpdatedAt = now
	return computeBudgetStatus(current)
}

// AddBudgetSpending ...
func AddBudgetSpending(
	current model.NullBudgetStatus, key model.BudgetStatusKey, amount decimal.Decimal, now time.Time,
) model.BudgetStatus {
	s := current.Status
	if !current.Valid {
		s = emptyBudgetStatus(key)
	}
	s.SpentAmount = domain.RoundMoney(s.SpentAmount.Add(amount))
	s.UpdatedAt = now
	return computeBudgetStatus(s)
}

// RemoveBudgetSpending takes a debit out of a status row when it moves to another category
func RemoveBudgetSpending(current model.BudgetStatus, amount decimal.Decimal, now time.Time) model.BudgetStatus {
	current.SpentAmount = domain.RoundMoney(current.SpentAmount.Sub(amount))
	current.UpdatedAt = now
	return computeBudgetStatus(current)
}

func thresholdReached(s model.BudgetStatus) bool {
	return s.BudgetAmount.IsPositive() && s.SpentAmount.GreaterThanOrEqual(s.BudgetAmount.Mul(s.AlertThreshold))
}

func limitExceeded(s model.BudgetStatus) bool {
	return s.BudgetAmount.IsPositive() && s.SpentAmount.GreaterThan(s.BudgetAmount)
}

// NeedsBudgetAlert reports whether a status change crossed the alert threshold or the limit.
// A new limit that is still crossed also needs one, the budget re-arms its alerts on a limit change.
func NeedsBudgetAlert(before model.NullBudgetStatus, after model.BudgetStatus) bool {
	if after.BudgetID == "" || !thresholdReached(after) {
		return false
	}
	if !before.Valid {
		return true
	}
	prev := before.Status
	if prev.BudgetID != after.BudgetID || !prev.BudgetAmount.Equal(after.BudgetAmount) {
		return true
	}
	if !thresholdReached(prev) {
		return true
	}
	return limitExceeded(after) && !limitExceeded(prev)
}

// BudgetKeyOf ...
func BudgetKeyOf(tx domain.TransactionCreated, e domain.Event) model.BudgetStatusKey {
	return model.BudgetStatusKey{
		UserID:   transactionUserID(tx, e),
		Category: tx.CategoryOrDefault(),
		Month:    domain.MonthOf(transactionDay(tx, e)),
		Currency: string(tx.Currency),
	}
}

//go:generate moq -out budget_alerts_mocks.go . BudgetAlerts

// BudgetAlerts decides threshold and limit alerts of a budget whose spending crossed them
type BudgetAlerts interface {
	CheckBudgetSpending(ctx context.Context, budgetID string, spent decimal.Decimal, causationID string) error
}

// BudgetProjector compares budgets with debit spending of the same category and month
type BudgetProjector struct {
	repo   repository.Projection
	now    func() time.Time
	alerts BudgetAlerts
}

// NewBudgetProjector raises no alerts when alerts is nil
func NewBudgetProjector(repo repository.Projection, now func() time.Time, alerts BudgetAlerts) *BudgetProjector {
	return &BudgetProjector{
		repo:   repo,
		now:    now,
		alerts: alerts,
	}
}

// Name ...
func (p *BudgetProjector) Name() string {
	return BudgetProjectorName
}

// Handles both budgets and the transactions of accounts
func (p *BudgetProjector) Handles(model.AggregateType) bool {
	return true
}

// upsert writes the row and, inside the same transaction, appends the alerts it crossed
func (p *BudgetProjector) upsert(
	ctx context.Context, e domain.Event, before model.NullBudgetStatus, after model.BudgetStatus,
) error {
	if err := p.repo.UpsertBudgetStatus(ctx, after); err != nil {
		return err
	}
	if p.alerts == nil || !NeedsBudgetAlert(before, after) {
		return nil
	}
	return p.alerts.CheckBudgetSpending(ctx, after.BudgetID, after.SpentAmount, e.ID)
}

func (p *BudgetProjector) addSpending(
	ctx context.Context, e domain.Event, key model.BudgetStatusKey, amount decimal.Decimal, now time.Time,
) error {
	current, err := p.repo.GetBudgetStatus(ctx, key)
	if err != nil {
		return err
	}
	return p.upsert(ctx, e, current, AddBudgetSpending(current, key, amount, now))
}

// Apply ...
func (p *BudgetProjector) Apply(ctx context.Context, e domain.Event) error {
	now := p.now().UTC()

	switch payload := e.Payload.(type) {
	case domain.BudgetCreated:
		key := model.BudgetStatusKey{
			UserID:   payload.UserID,
			Category: payload.Category,
			Month:    payload.Month,
			Currency: string(payload.Currency),
		}
		current, err := p.repo.GetBudgetStatus(ctx, key)
		if err != nil {
			return err
		}
		return p.upsert(ctx, e, current, ApplyBudgetCreated(current, e.AggregateID, payload, now))

	case domain.BudgetUpdated:
		current, err := p.repo.FindBudgetStatusByBudgetID(ctx, e.AggregateID)
		if err != nil {
			return err
		}
		if !current.Valid {
			return nil
		}
		return p.upsert(ctx, e, current, ApplyBudgetUpdated(current.Status, payload, now))

	case domain.TransactionCreated:
		if payload.TransactionType != domain.TransactionTypeDebit {
			return nil
		}
		return p.addSpending(ctx, e, BudgetKeyOf(payload, e), payload.Amount, now)

	case domain.TransactionCategorized:
		if payload.TransactionType != domain.TransactionTypeDebit {
			return nil
		}
		previous, err := p.repo.GetBudgetStatus(ctx, BudgetKeyOf(payload.Spending(), e))
		if err != nil {
			return err
		}
		if previous.Valid {
			err := p.repo.UpsertBudgetStatus(ctx, RemoveBudgetSpending(previous.Status, payload.Amount, now))
			if err != nil {
				return err
			}
		}
		return p.addSpending(ctx, e, BudgetKeyOf(payload.Recategorized(), e), payload.Amount, now)

	default:
		return nil
	}
}
