package projection

import (
	"context"
	"time"

	"github.com/QuangTung97/finledger/domain"
	"github.com/QuangTung97/finledger/model"
	"github.com/QuangTung97/finledger/repository"
)

// AccountProjectorName ...
const AccountProjectorName = "account_balance"

// ApplyAccountEvent is the update rule of the account_projection row
func ApplyAccountEvent(current model.NullAccountProjection, e domain.Event, now time.Time) model.AccountProjection {
	acc := current.Account
	acc.AccountID = e.AggregateID

	switch p := e.Payload.(type) {
	case domain.AccountCreated:
		acc.UserID = p.UserID
		acc.Name = p.Name
		acc.Currency = string(p.Currency)
		acc.Balance = p.InitialBalance
		acc.Status = model.AccountStatusOpen

	case domain.TransactionCreated:
		acc.Balance = domain.RoundMoney(acc.Balance.Add(p.SignedAmount()))

	case domain.AccountRenamed:
		acc.Name = p.NewName

	case domain.AccountClosed:
		acc.Status = model.AccountStatusClosed
	}

	acc.LastEventVersion = e.Version
	acc.SyncedAt = now
	return acc
}

// AccountProjector keeps the current balance of every account
type AccountProjector struct {
	repo repository.Projection
	now  func() time.Time
}

var _ Rebuilder = &AccountProjector{}

// NewAccountProjector ...
func NewAccountProjector(repo repository.Projection, now func() time.Time) *AccountProjector {
	return &AccountProjector{
		repo: repo,
		now:  now,
	}
}

// Name ...
func (p *AccountProjector) Name() string {
	return AccountProjectorName
}

// Handles ...
func (p *AccountProjector) Handles(aggregateType model.AggregateType) bool {
	return aggregateType == model.AggregateTypeAccount
}

// Apply ...
func (p *AccountProjector) Apply(ctx context.Context, e domain.Event) error {
	current, err := p.repo.GetAccount(ctx, e.AggregateID)
	if err != nil {
		return err
	}
	return p.repo.UpsertAccount(ctx, ApplyAccountEvent(current, e, p.now().UTC()))
}

// Rebuild computes the row from an empty projection
func (p *AccountProjector) Rebuild(ctx context.Context, aggregateID string, events []domain.Event) error {
	if len(events) == 0 {
		return nil
	}

	now := p.now().UTC()
	var current model.NullAccountProjection
	for _, e := range events {
		current = model.NullAccountProjection{
			Valid:   true,
			Account: ApplyAccountEvent(current, e, now),
		}
	}
	return p.repo.UpsertAccount(ctx, current.Account)
}

// DeleteAll ...
func (p *AccountProjector) DeleteAll(ctx context.Context) error {
	return p.repo.DeleteAllAccounts(ctx)
}
