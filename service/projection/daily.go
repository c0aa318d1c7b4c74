package projection

import (
	"context"
	"time"

	"github.com/QuangTung97/finledger/domain"
	"github.com/QuangTung97/finledger/model"
	"github.com/QuangTung97/finledger/repository"
	"github.com/shopspring/decimal"
)

// DailyProjectorName ...
const DailyProjectorName = "daily_aggregate"

// transactionDay is the UTC day a transaction belongs to, falling back to the commit time
func transactionDay(tx domain.TransactionCreated, e domain.Event) time.Time {
	t := tx.TransactionDate
	if t.IsZero() {
		t = e.CreatedAt
	}
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func transactionUserID(tx domain.TransactionCreated, e domain.Event) string {
	if tx.UserID != "" {
		return tx.UserID
	}
	return e.Metadata.UserID
}

// DailyKeyOf ...
func DailyKeyOf(tx domain.TransactionCreated, e domain.Event) model.DailyAggregateKey {
	return model.DailyAggregateKey{
		UserID:   transactionUserID(tx, e),
		Date:     transactionDay(tx, e),
		Category: tx.CategoryOrDefault(),
		Currency: string(tx.Currency),
	}
}

// AddDailySpending is the update rule of a daily_aggregate row
func AddDailySpending(
	current model.NullDailyAggregate, key model.DailyAggregateKey, amount decimal.Decimal, now time.Time,
) model.DailyAggregate {
	agg := current.Aggregate
	if !current.Valid {
		agg = model.DailyAggregate{
			DailyAggregateKey: key,
			TotalAmount:       decimal.Zero,
		}
	}

	agg.TotalAmount = domain.RoundMoney(agg.TotalAmount.Add(amount))
	agg.TxCount++
	agg.AverageAmount = domain.RoundMoney(agg.TotalAmount.Div(decimal.NewFromInt(agg.TxCount)))
	agg.UpdatedAt = now
	return agg
}

// RemoveDailySpending takes a debit out of a daily_aggregate row when it moves to another category
func RemoveDailySpending(current model.DailyAggregate, amount decimal.Decimal, now time.Time) model.DailyAggregate {
	current.TotalAmount = domain.RoundMoney(current.TotalAmount.Sub(amount))
	if current.TxCount > 0 {
		current.TxCount--
	}
	if current.TxCount == 0 {
		current.AverageAmount = decimal.Zero
	} else {
		current.AverageAmount = domain.RoundMoney(current.TotalAmount.Div(decimal.NewFromInt(current.TxCount)))
	}
	current.UpdatedAt = now
	return current
}

// DailyProjector sums debit transactions per user, day and category
type DailyProjector struct {
	repo repository.Projection
	now  func() time.Time
}

// NewDailyProjector ...
func NewDailyProjector(repo repository.Projection, now func() time.Time) *DailyProjector {
	return &DailyProjector{
		repo: repo,
		now:  now,
	}
}

// Name ...
func (p *DailyProjector) Name() string {
	return DailyProjectorName
}

// Handles ...
func (p *DailyProjector) Handles(aggregateType model.AggregateType) bool {
	return aggregateType == model.AggregateTypeAccount
}

// Apply ...
func (p *DailyProjector) Apply(ctx context.Context, e domain.Event) error {
	now := p.now().UTC()

	switch payload := e.Payload.(type) {
	case domain.TransactionCreated:
		if payload.TransactionType != domain.TransactionTypeDebit {
			return nil
		}
		return p.add(ctx, DailyKeyOf(payload, e), payload.Amount, now)

	case domain.TransactionCategorized:
		if payload.TransactionType != domain.TransactionTypeDebit {
			return nil
		}
		previous, err := p.repo.GetDailyAggregate(ctx, DailyKeyOf(payload.Spending(), e))
		if err != nil {
			return err
		}
		if previous.Valid {
			err := p.repo.UpsertDailyAggregate(ctx, RemoveDailySpending(previous.Aggregate, payload.Amount, now))
			if err != nil {
				return err
			}
		}
		return p.add(ctx, DailyKeyOf(payload.Recategorized(), e), payload.Amount, now)

	default:
		return nil
	}
}

func (p *DailyProjector) add(ctx context.Context, key model.DailyAggregateKey, amount decimal.Decimal, now time.Time) error {
	current, err := p.repo.GetDailyAggregate(ctx, key)
	if err != nil {
		return err
	}
	return p.repo.UpsertDailyAggregate(ctx, AddDailySpending(current, key, amount, now))
}
