package ledger

import (
	"context"

	"github.com/QuangTung97/finledger/domain"
	"github.com/QuangTung97/finledger/service/aggregate"
	"github.com/QuangTung97/finledger/service/eventstore"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SchemaVersion of the event payloads written by this service
const SchemaVersion = 1

// CommandMeta identifies who issued a command and why
type CommandMeta struct {
	ActorID       string
	CorrelationID string
	CausationID   string
}

func (m CommandMeta) metadata(userID string) domain.Metadata {
	return domain.Metadata{
		ActorID:       m.ActorID,
		UserID:        userID,
		CorrelationID: m.CorrelationID,
		CausationID:   m.CausationID,
		SchemaVersion: SchemaVersion,
	}
}

// Result of a command
type Result struct {
	AggregateID string
	Version     int64
}

// Service handles account and budget commands
type Service struct {
	accounts *aggregate.Repository[domain.Account]
	budgets  *aggregate.Repository[domain.Budget]

	newID func() string
}

// Option ...
type Option func(s *Service)

// WithIDGenerator ...
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) {
		s.newID = fn
	}
}

// NewService ...
func NewService(store eventstore.IStore, maxRetries int, options ...Option) *Service {
	s := &Service{
		accounts: aggregate.NewRepository(store, aggregate.AccountDefinition(), maxRetries),
		budgets:  aggregate.NewRepository(store, aggregate.BudgetDefinition(), maxRetries),
		newID: func() string {
			return uuid.Must(uuid.NewV7()).String()
		},
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *Service) updateAccount(
	ctx context.Context, meta CommandMeta, accountID string,
	decide func(state domain.Account) ([]domain.Payload, error),
) (Result, error) {
	version, err := s.accounts.Update(ctx, accountID,
		func(state domain.Account, _ int64) ([]domain.Change, error) {
			payloads, err := decide(state)
			if err != nil {
				return nil, err
			}
			return domain.NewChanges(meta.metadata(state.UserID), payloads...), nil
		},
	)
	if err != nil {
		return Result{}, err
	}
	return Result{AggregateID: accountID, Version: version}, nil
}

// OpenAccount creates a new account stream
func (s *Service) OpenAccount(ctx context.Context, meta CommandMeta, in domain.OpenAccountInput) (Result, error) {
	accountID := s.newID()
	payloads, err := domain.NewAccount().Open(in)
	if err != nil {
		return Result{}, err
	}

	version, err := s.accounts.Save(ctx, accountID, 0, domain.NewChanges(meta.metadata(in.UserID), payloads...))
	if err != nil {
		return Result{}, err
	}
	return Result{AggregateID: accountID, Version: version}, nil
}

func (s *Service) withTransactionID(in domain.TransactionInput) domain.TransactionInput {
	if in.TransactionID == "" {
		in.TransactionID = s.newID()
	}
	return in
}

// Deposit ...
func (s *Service) Deposit(
	ctx context.Context, meta CommandMeta, accountID string, in domain.TransactionInput,
) (Result, error) {
	in = s.withTransactionID(in)
	return s.updateAccount(ctx, meta, accountID, func(state domain.Account) ([]domain.Payload, error) {
		return state.Deposit(in)
	})
}

// Withdraw ...
func (s *Service) Withdraw(
	ctx context.Context, meta CommandMeta, accountID string, in domain.TransactionInput,
) (Result, error) {
	in = s.withTransactionID(in)
	return s.updateAccount(ctx, meta, accountID, func(state domain.Account) ([]domain.Payload, error) {
		return state.Withdraw(in)
	})
}

// RenameAccount ...
func (s *Service) RenameAccount(ctx context.Context, meta CommandMeta, accountID string, name string) (Result, error) {
	return s.updateAccount(ctx, meta, accountID, func(state domain.Account) ([]domain.Payload, error) {
		return state.Rename(name)
	})
}

// SetOverdraftLimit ...
func (s *Service) SetOverdraftLimit(
	ctx context.Context, meta CommandMeta, accountID string, limit decimal.Decimal,
) (Result, error) {
	return s.updateAccount(ctx, meta, accountID, func(state domain.Account) ([]domain.Payload, error) {
		return state.SetOverdraftLimit(limit)
	})
}

// CategorizeTransaction ...
func (s *Service) CategorizeTransaction(
	ctx context.Context, meta CommandMeta, accountID string, in domain.CategorizeInput,
) (Result, error) {
	return s.updateAccount(ctx, meta, accountID, func(state domain.Account) ([]domain.Payload, error) {
		return state.Categorize(in)
	})
}

// CloseAccount ...
func (s *Service) CloseAccount(ctx context.Context, meta CommandMeta, accountID string, reason string) (Result, error) {
	return s.updateAccount(ctx, meta, accountID, func(state domain.Account) ([]domain.Payload, error) {
		return state.Close(reason)
	})
}

// CreateBudget ...
func (s *Service) CreateBudget(ctx context.Context, meta CommandMeta, in domain.CreateBudgetInput) (Result, error) {
	budgetID := s.newID()
	payloads, err := domain.NewBudget().Create(in)
	if err != nil {
		return Result{}, err
	}

	version, err := s.budgets.Save(ctx, budgetID, 0, domain.NewChanges(meta.metadata(in.UserID), payloads...))
	if err != nil {
		return Result{}, err
	}
	return Result{AggregateID: budgetID, Version: version}, nil
}

func (s *Service) updateBudget(
	ctx context.Context, meta CommandMeta, budgetID string,
	decide func(state domain.Budget) ([]domain.Payload, error),
) (Result, error) {
	version, err := s.budgets.Update(ctx, budgetID,
		func(state domain.Budget, _ int64) ([]domain.Change, error) {
			payloads, err := decide(state)
			if err != nil {
				return nil, err
			}
			return domain.NewChanges(meta.metadata(state.UserID), payloads...), nil
		},
	)
	if err != nil {
		return Result{}, err
	}
	return Result{AggregateID: budgetID, Version: version}, nil
}

// UpdateBudgetLimit ...
func (s *Service) UpdateBudgetLimit(
	ctx context.Context, meta CommandMeta, budgetID string, limit decimal.Decimal,
) (Result, error) {
	return s.updateBudget(ctx, meta, budgetID, func(state domain.Budget) ([]domain.Payload, error) {
		return state.UpdateLimit(limit)
	})
}

// BudgetAlertActor is the actor of alerts raised from the budget status read model
const BudgetAlertActor = "system:budget_status"

// CheckBudgetSpending raises the threshold and limit alerts of a budget for its current spending.
// causationID is the event that changed the spending.
func (s *Service) CheckBudgetSpending(
	ctx context.Context, budgetID string, spent decimal.Decimal, causationID string,
) error {
	meta := CommandMeta{ActorID: BudgetAlertActor, CausationID: causationID}
	_, err := s.updateBudget(ctx, meta, budgetID, func(state domain.Budget) ([]domain.Payload, error) {
		return state.CheckSpending(spent)
	})
	return err
}

// GetAccount replays the account stream
func (s *Service) GetAccount(ctx context.Context, accountID string) (domain.Account, int64, error) {
	state, version, err := s.accounts.Load(ctx, accountID)
	if err != nil {
		return domain.Account{}, 0, err
	}
	if state.Status == domain.AccountStatusNone {
		return domain.Account{}, 0, domain.ErrAccountNotFound
	}
	return state, version, nil
}
