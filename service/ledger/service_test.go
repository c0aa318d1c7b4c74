package ledger

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/QuangTung97/finledger/domain"
	"github.com/QuangTung97/finledger/service/eventstore"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newContext() context.Context {
	return context.Background()
}

func newDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type serviceTest struct {
	store   *eventstore.MemoryStore
	service *Service
}

func newServiceTest() *serviceTest {
	store := eventstore.NewMemoryStore()
	seq := 0
	return &serviceTest{
		store: store,
		service: NewService(store, 3, WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		})),
	}
}

var testMeta = CommandMeta{ActorID: "user-1", CorrelationID: "corr-1"}

func (st *serviceTest) openAccount(t *testing.T) string {
	res, err := st.service.OpenAccount(newContext(), testMeta, domain.OpenAccountInput{
		UserID:   "user-1",
		Name:     "Main",
		Currency: "USD",
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(1), res.Version)
	return res.AggregateID
}

func TestService_Account_Lifecycle(t *testing.T) {
	st := newServiceTest()
	accountID := st.openAccount(t)
	assert.Equal(t, "id-1", accountID)

	res, err := st.service.Deposit(newContext(), testMeta, accountID, domain.TransactionInput{
		Amount: newDecimal("100"),
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, Result{AggregateID: accountID, Version: 2}, res)

	_, err = st.service.Withdraw(newContext(), testMeta, accountID, domain.TransactionInput{
		Amount:   newDecimal("30"),
		Category: "Groceries",
	})
	assert.Equal(t, nil, err)

	_, err = st.service.Deposit(newContext(), testMeta, accountID, domain.TransactionInput{
		Amount: newDecimal("20"),
	})
	assert.Equal(t, nil, err)

	state, version, err := st.service.GetAccount(newContext(), accountID)
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(4), version)
	assert.True(t, newDecimal("90").Equal(state.Balance))

	events, err := st.store.Load(newContext(), accountID, 2)
	assert.Equal(t, nil, err)
	tx := events[0].Payload.(domain.TransactionCreated)
	assert.Equal(t, "id-2", tx.TransactionID)
	assert.Equal(t, "user-1", tx.UserID)
	assert.Equal(t, domain.Metadata{
		ActorID:       "user-1",
		UserID:        "user-1",
		CorrelationID: "corr-1",
		SchemaVersion: SchemaVersion,
	}, events[0].Metadata)
	assert.Equal(t, "groceries", events[1].Payload.(domain.TransactionCreated).Category)
}

func TestService_Withdraw__Insufficient_Funds_And_Overdraft(t *testing.T) {
	st := newServiceTest()
	accountID := st.openAccount(t)

	_, err := st.service.Withdraw(newContext(), testMeta, accountID, domain.TransactionInput{
		Amount: newDecimal("10"),
	})
	assert.Equal(t, domain.ErrInsufficientFunds, err)

	_, err = st.service.SetOverdraftLimit(newContext(), testMeta, accountID, newDecimal("50"))
	assert.Equal(t, nil, err)

	res, err := st.service.Withdraw(newContext(), testMeta, accountID, domain.TransactionInput{
		Amount: newDecimal("10"),
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(3), res.Version)

	state, _, err := st.service.GetAccount(newContext(), accountID)
	assert.Equal(t, nil, err)
	assert.True(t, newDecimal("-10").Equal(state.Balance))
}

func TestService_Rename_And_Close(t *testing.T) {
	st := newServiceTest()
	accountID := st.openAccount(t)

	res, err := st.service.RenameAccount(newContext(), testMeta, accountID, "Main")
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(1), res.Version)

	res, err = st.service.RenameAccount(newContext(), testMeta, accountID, "Savings")
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(2), res.Version)

	_, err = st.service.CloseAccount(newContext(), testMeta, accountID, "moving")
	assert.Equal(t, nil, err)

	_, err = st.service.Deposit(newContext(), testMeta, accountID, domain.TransactionInput{
		Amount: newDecimal("1"),
	})
	assert.Equal(t, domain.ErrAccountClosed, err)

	state, _, err := st.service.GetAccount(newContext(), accountID)
	assert.Equal(t, nil, err)
	assert.Equal(t, "Savings", state.Name)
	assert.Equal(t, domain.AccountStatusClosed, state.Status)
}

func TestService_GetAccount__Not_Found(t *testing.T) {
	st := newServiceTest()
	_, _, err := st.service.GetAccount(newContext(), "acc-404")
	assert.Equal(t, domain.ErrAccountNotFound, err)
}

func TestService_OpenAccount__Invalid(t *testing.T) {
	st := newServiceTest()
	_, err := st.service.OpenAccount(newContext(), testMeta, domain.OpenAccountInput{
		UserID: "user-1", Name: "Main", Currency: "XYZ",
	})
	assert.Equal(t, domain.ErrUnsupportedCurrency, err)
}

func TestService_Budget(t *testing.T) {
	st := newServiceTest()

	res, err := st.service.CreateBudget(newContext(), testMeta, domain.CreateBudgetInput{
		UserID:   "user-1",
		Name:     "Food",
		Category: "groceries",
		Month:    "2024-01",
		Limit:    newDecimal("500"),
		Currency: "USD",
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(1), res.Version)

	res, err = st.service.UpdateBudgetLimit(newContext(), testMeta, res.AggregateID, newDecimal("600"))
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(2), res.Version)

	_, err = st.service.UpdateBudgetLimit(newContext(), testMeta, "budget-404", newDecimal("600"))
	assert.True(t, errors.Is(err, domain.ErrBudgetNotFound))
}

func TestService_Deposit__Store_Error(t *testing.T) {
	storeErr := errors.New("store error")
	store := &eventstore.IStoreMock{
		LoadFunc: func(ctx context.Context, aggregateID string, fromVersion int64) ([]domain.Event, error) {
			return nil, storeErr
		},
	}
	s := NewService(store, 3)

	_, err := s.Deposit(newContext(), testMeta, "acc-1", domain.TransactionInput{Amount: newDecimal("1")})
	assert.Equal(t, storeErr, err)
}

func TestService_CategorizeTransaction(t *testing.T) {
	st := newServiceTest()
	accountID := st.openAccount(t)

	_, err := st.service.Deposit(newContext(), testMeta, accountID, domain.TransactionInput{
		Amount: newDecimal("100"),
	})
	assert.Equal(t, nil, err)
	res, err := st.service.Withdraw(newContext(), testMeta, accountID, domain.TransactionInput{
		TransactionID: "tx-coffee",
		Amount:        newDecimal("4.5"),
		Category:      "food",
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(3), res.Version)

	res, err = st.service.CategorizeTransaction(newContext(), testMeta, accountID, domain.CategorizeInput{
		TransactionID: "tx-coffee",
		Category:      "eating_out",
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(4), res.Version)

	state, _, err := st.service.GetAccount(newContext(), accountID)
	assert.Equal(t, nil, err)
	ref, ok := state.Transaction("tx-coffee")
	assert.True(t, ok)
	assert.Equal(t, "eating_out", ref.Category)
	assert.True(t, newDecimal("95.5").Equal(state.Balance))

	_, err = st.service.CategorizeTransaction(newContext(), testMeta, accountID, domain.CategorizeInput{
		TransactionID: "tx-404",
		Category:      "food",
	})
	assert.Equal(t, domain.ErrTransactionNotFound, err)
}

func TestService_CheckBudgetSpending(t *testing.T) {
	st := newServiceTest()
	res, err := st.service.CreateBudget(newContext(), testMeta, domain.CreateBudgetInput{
		UserID:   "user-1",
		Name:     "Food",
		Category: "food",
		Month:    "2024-01",
		Limit:    newDecimal("100"),
		Currency: "USD",
	})
	assert.Equal(t, nil, err)

	err = st.service.CheckBudgetSpending(newContext(), res.AggregateID, newDecimal("50"), "event-1")
	assert.Equal(t, nil, err)

	err = st.service.CheckBudgetSpending(newContext(), res.AggregateID, newDecimal("120"), "event-2")
	assert.Equal(t, nil, err)

	// raised once
	err = st.service.CheckBudgetSpending(newContext(), res.AggregateID, newDecimal("130"), "event-3")
	assert.Equal(t, nil, err)

	events, err := st.store.Load(newContext(), res.AggregateID, 1)
	assert.Equal(t, nil, err)
	assert.Equal(t, 3, len(events))
	assert.Equal(t, domain.EventTypeBudgetThresholdExceeded, events[1].Type())
	assert.Equal(t, domain.EventTypeBudgetExceeded, events[2].Type())
	assert.Equal(t, BudgetAlertActor, events[2].Metadata.ActorID)
	assert.Equal(t, "event-2", events[2].Metadata.CausationID)
	assert.Equal(t, "user-1", events[2].Metadata.UserID)

	err = st.service.CheckBudgetSpending(newContext(), "budget-404", newDecimal("1"), "event-4")
	assert.Equal(t, domain.ErrBudgetNotFound, err)
}
