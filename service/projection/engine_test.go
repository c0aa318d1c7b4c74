package projection

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/QuangTung97/finledger/domain"
	"github.com/QuangTung97/finledger/model"
	"github.com/QuangTung97/finledger/pkg/bus"
	"github.com/QuangTung97/finledger/repository"
	"github.com/QuangTung97/finledger/service/eventstore"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() context.Context {
	return context.Background()
}

func newDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, newDecimal(expected).Equal(actual), "expected %s, actual %s", expected, actual)
}

func newTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

type checkpointKey struct {
	projection  string
	aggregateID string
}

type engineTest struct {
	provider *repository.ProviderMock
	repo     *repository.ProjectionMock
	store    *eventstore.MemoryStore
	alerts   *BudgetAlertsMock

	checkpoints map[checkpointKey]int64
	accounts    map[string]model.AccountProjection
	daily       map[model.DailyAggregateKey]model.DailyAggregate
	budgets     map[model.BudgetStatusKey]model.BudgetStatus

	sleeps []time.Duration
	engine *Engine
}

func newEngineTest() *engineTest {
	et := &engineTest{
		store: eventstore.NewMemoryStore(),

		checkpoints: map[checkpointKey]int64{},
		accounts:    map[string]model.AccountProjection{},
		daily:       map[model.DailyAggregateKey]model.DailyAggregate{},
		budgets:     map[model.BudgetStatusKey]model.BudgetStatus{},
	}

	et.provider = &repository.ProviderMock{
		TransactFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
		ReadonlyFunc: func(ctx context.Context) context.Context {
			return ctx
		},
	}

	et.repo = &repository.ProjectionMock{
		GetCheckpointFunc: func(
			ctx context.Context, projection string, aggregateID string,
		) (model.ProjectionCheckpoint, error) {
			return model.ProjectionCheckpoint{
				Projection:       projection,
				AggregateID:      aggregateID,
				LastEventVersion: et.checkpoints[checkpointKey{projection, aggregateID}],
			}, nil
		},
		UpsertCheckpointFunc: func(ctx context.Context, checkpoint model.ProjectionCheckpoint) error {
			et.checkpoints[checkpointKey{checkpoint.Projection, checkpoint.AggregateID}] = checkpoint.LastEventVersion
			return nil
		},
		DeleteCheckpointsFunc: func(ctx context.Context, projection string) error {
			for k := range et.checkpoints {
				if k.projection == projection {
					delete(et.checkpoints, k)
				}
			}
			return nil
		},

		GetAccountFunc: func(ctx context.Context, accountID string) (model.NullAccountProjection, error) {
			acc, ok := et.accounts[accountID]
			return model.NullAccountProjection{Valid: ok, Account: acc}, nil
		},
		UpsertAccountFunc: func(ctx context.Context, account model.AccountProjection) error {
			et.accounts[account.AccountID] = account
			return nil
		},
		DeleteAllAccountsFunc: func(ctx context.Context) error {
			et.accounts = map[string]model.AccountProjection{}
			return nil
		},

		GetDailyAggregateFunc: func(ctx context.Context, key model.DailyAggregateKey) (model.NullDailyAggregate, error) {
			agg, ok := et.daily[key]
			return model.NullDailyAggregate{Valid: ok, Aggregate: agg}, nil
		},
		UpsertDailyAggregateFunc: func(ctx context.Context, aggregate model.DailyAggregate) error {
			et.daily[aggregate.DailyAggregateKey] = aggregate
			return nil
		},

		GetBudgetStatusFunc: func(ctx context.Context, key model.BudgetStatusKey) (model.NullBudgetStatus, error) {
			s, ok := et.budgets[key]
			return model.NullBudgetStatus{Valid: ok, Status: s}, nil
		},
		FindBudgetStatusByBudgetIDFunc: func(ctx context.Context, budgetID string) (model.NullBudgetStatus, error) {
			for _, s := range et.budgets {
				if s.BudgetID == budgetID {
					return model.NullBudgetStatus{Valid: true, Status: s}, nil
				}
			}
			return model.NullBudgetStatus{}, nil
		},
		UpsertBudgetStatusFunc: func(ctx context.Context, status model.BudgetStatus) error {
			et.budgets[status.BudgetStatusKey] = status
			return nil
		},
	}

	et.alerts = &BudgetAlertsMock{
		CheckBudgetSpendingFunc: func(
			ctx context.Context, budgetID string, spent decimal.Decimal, causationID string,
		) error {
			return nil
		},
	}

	now := func() time.Time {
		return newTime("2026-03-05T08:00:00Z")
	}
	et.engine = NewEngine(et.provider, et.repo, et.store, Config{
		CacheSizeBytes: 1 << 20,
		CacheExpire:    time.Minute,
		InitialBackoff: 10 * time.Millisecond,
		MaxBackoff:     time.Second,
	}, DefaultProjectors(et.repo, now, et.alerts),
		WithClock(now),
		WithSleep(func(ctx context.Context, d time.Duration) error {
			et.sleeps = append(et.sleeps, d)
			return nil
		}),
	)
	return et
}

func (et *engineTest) append(t *testing.T, aggregateType model.AggregateType, id string, payloads ...domain.Payload) []domain.Event {
	t.Helper()
	meta := domain.Metadata{ActorID: "user-1", UserID: "user-1", SchemaVersion: 1}

	before, err := et.store.Load(newContext(), id, 1)
	require.Equal(t, nil, err)

	_, err = et.store.Append(newContext(), aggregateType, id, int64(len(before)), domain.NewChanges(meta, payloads...))
	require.Equal(t, nil, err)

	events, err := et.store.Load(newContext(), id, int64(len(before))+1)
	require.Equal(t, nil, err)
	return events
}

func opened() domain.AccountCreated {
	return domain.AccountCreated{
		UserID:         "user-1",
		Name:           "Main",
		AccountType:    domain.AccountTypeChecking,
		Currency:       domain.CurrencyUSD,
		InitialBalance: decimal.Zero,
	}
}

func credit(amount string) domain.TransactionCreated {
	return domain.TransactionCreated{
		TransactionID:   "tx-" + amount,
		UserID:          "user-1",
		Amount:          newDecimal(amount),
		Currency:        domain.CurrencyUSD,
		TransactionType: domain.TransactionTypeCredit,
		TransactionDate: newTime("2026-03-02T10:00:00Z"),
	}
}

func debit(amount string, category string) domain.TransactionCreated {
	return domain.TransactionCreated{
		TransactionID:   "tx-" + amount,
		UserID:          "user-1",
		Amount:          newDecimal(amount),
		Currency:        domain.CurrencyUSD,
		TransactionType: domain.TransactionTypeDebit,
		Category:        category,
		TransactionDate: newTime("2026-03-02T10:00:00Z"),
	}
}

func (et *engineTest) handleAll(t *testing.T, events []domain.Event) {
	t.Helper()
	for _, e := range events {
		require.Equal(t, nil, et.engine.Handle(newContext(), e))
	}
}

func TestEngine_Deposit_Withdraw_Deposit(t *testing.T) {
	et := newEngineTest()

	events := et.append(t, model.AggregateTypeAccount, "acc-1",
		credit("100"),
		debit("30", "food"),
		credit("20"),
	)
	et.handleAll(t, events)

	acc := et.accounts["acc-1"]
	assertDecimal(t, "90", acc.Balance)
	assert.Equal(t, int64(3), acc.LastEventVersion)
	assert.Equal(t, newTime("2026-03-05T08:00:00Z"), acc.SyncedAt)

	assert.Equal(t, int64(3), et.checkpoints[checkpointKey{AccountProjectorName, "acc-1"}])
	assert.Equal(t, int64(3), et.checkpoints[checkpointKey{DailyProjectorName, "acc-1"}])
	assert.Equal(t, int64(3), et.checkpoints[checkpointKey{BudgetProjectorName, "acc-1"}])

	daily := et.daily[model.DailyAggregateKey{
		UserID:   "user-1",
		Date:     newTime("2026-03-02T00:00:00Z"),
		Category: "food",
		Currency: "USD",
	}]
	assertDecimal(t, "30", daily.TotalAmount)
	assert.Equal(t, int64(1), daily.TxCount)
	assert.Equal(t, 1, len(et.daily))
}

func TestEngine_Opened_Account(t *testing.T) {
	et := newEngineTest()

	events := et.append(t, model.AggregateTypeAccount, "acc-1",
		domain.AccountCreated{
			UserID:         "user-1",
			Name:           "Main",
			AccountType:    domain.AccountTypeChecking,
			Currency:       domain.CurrencyUSD,
			InitialBalance: newDecimal("100"),
		},
		debit("30", "food"),
		domain.AccountClosed{Reason: "moved", FinalBalance: newDecimal("70")},
	)
	et.handleAll(t, events)

	acc := et.accounts["acc-1"]
	assertDecimal(t, "70", acc.Balance)
	assert.Equal(t, "user-1", acc.UserID)
	assert.Equal(t, "USD", acc.Currency)
	assert.Equal(t, model.AccountStatusClosed, acc.Status)
	assert.Equal(t, int64(3), acc.LastEventVersion)
}

func TestEngine_Redelivery_Is_Idempotent(t *testing.T) {
	et := newEngineTest()

	events := et.append(t, model.AggregateTypeAccount, "acc-1", opened(), credit("100"), debit("25", ""))
	et.handleAll(t, events)
	et.handleAll(t, events)
	et.handleAll(t, events[1:2])

	acc := et.accounts["acc-1"]
	assertDecimal(t, "75", acc.Balance)
	assert.Equal(t, int64(3), acc.LastEventVersion)

	daily := et.daily[model.DailyAggregateKey{
		UserID:   "user-1",
		Date:     newTime("2026-03-02T00:00:00Z"),
		Category: domain.CategoryUncategorized,
		Currency: "USD",
	}]
	assertDecimal(t, "25", daily.TotalAmount)
	assert.Equal(t, int64(1), daily.TxCount)

	assert.Equal(t, float64(3), testutil.ToFloat64(et.engine.metrics.applied.WithLabelValues(AccountProjectorName)))
	assert.Equal(t, float64(4), testutil.ToFloat64(et.engine.metrics.discarded.WithLabelValues(AccountProjectorName)))
}

func TestEngine_Redelivery_Without_Cache_Uses_Checkpoint(t *testing.T) {
	et := newEngineTest()

	events := et.append(t, model.AggregateTypeAccount, "acc-1", opened(), credit("100"))
	et.handleAll(t, events)

	et.engine.cache.Clear()
	et.handleAll(t, events)

	assertDecimal(t, "100", et.accounts["acc-1"].Balance)
	assert.Equal(t, 2, len(et.repo.UpsertAccountCalls()))
}

func TestEngine_Out_Of_Order_Backfills_From_Store(t *testing.T) {
	et := newEngineTest()

	events := et.append(t, model.AggregateTypeAccount, "acc-1",
		opened(), credit("100"), credit("10"), debit("5", "food"), credit("1"),
	)
	et.handleAll(t, events[:3])

	// version 5 arrives before version 4
	require.Equal(t, nil, et.engine.Handle(newContext(), events[4]))

	acc := et.accounts["acc-1"]
	assertDecimal(t, "106", acc.Balance)
	assert.Equal(t, int64(5), acc.LastEventVersion)
	assert.Equal(t, int64(5), et.checkpoints[checkpointKey{AccountProjectorName, "acc-1"}])

	// the late version 4 is a duplicate now
	require.Equal(t, nil, et.engine.Handle(newContext(), events[3]))
	assertDecimal(t, "106", et.accounts["acc-1"].Balance)

	daily := et.daily[model.DailyAggregateKey{
		UserID:   "user-1",
		Date:     newTime("2026-03-02T00:00:00Z"),
		Category: "food",
		Currency: "USD",
	}]
	assertDecimal(t, "5", daily.TotalAmount)
	assert.Equal(t, int64(1), daily.TxCount)

	assert.Equal(t, float64(1), testutil.ToFloat64(et.engine.metrics.backfilled.WithLabelValues(AccountProjectorName)))
}

func TestEngine_Backfill_Gap_Not_In_Store(t *testing.T) {
	et := newEngineTest()

	events := et.append(t, model.AggregateTypeAccount, "acc-1", opened(), credit("100"))

	ghost := events[1]
	ghost.Version = 4

	err := et.engine.Handle(newContext(), ghost)
	assert.True(t, errors.Is(err, ErrProjectionGap))
	assert.Equal(t, 0, len(et.accounts))
	assert.Equal(t, 0, len(et.repo.UpsertCheckpointCalls()))
}

func TestEngine_Budget_Status(t *testing.T) {
	et := newEngineTest()

	accEvents := et.append(t, model.AggregateTypeAccount, "acc-1",
		opened(), credit("1000"), debit("120", "food"), debit("30", "transport"),
	)
	budgetEvents := et.append(t, model.AggregateTypeBudget, "budget-1",
		domain.BudgetCreated{
			UserID:         "user-1",
			Name:           "Food",
			Category:       "food",
			Month:          "2026-03",
			Limit:          newDecimal("400"),
			Currency:       domain.CurrencyUSD,
			AlertThreshold: newDecimal("0.8"),
		},
		domain.BudgetUpdated{
			OldLimit: newDecimal("400"),
			NewLimit: newDecimal("300"),
		},
	)

	// spending recorded before the budget is kept
	et.handleAll(t, accEvents)
	et.handleAll(t, budgetEvents)

	status := et.budgets[model.BudgetStatusKey{
		UserID:   "user-1",
		Category: "food",
		Month:    "2026-03",
		Currency: "USD",
	}]
	assert.Equal(t, "budget-1", status.BudgetID)
	assertDecimal(t, "300", status.BudgetAmount)
	assertDecimal(t, "120", status.SpentAmount)
	assertDecimal(t, "180", status.RemainingAmount)
	assertDecimal(t, "40", status.PercentageUsed)
	assertDecimal(t, "0.8", status.AlertThreshold)
	assert.Equal(t, 0, len(et.alerts.CheckBudgetSpendingCalls()))

	// budget events are not applied to the account projection
	_, ok := et.accounts["budget-1"]
	assert.False(t, ok)
	assert.Equal(t, int64(0), et.checkpoints[checkpointKey{AccountProjectorName, "budget-1"}])
}

func TestEngine_Transaction_Categorized_Moves_Spending(t *testing.T) {
	et := newEngineTest()

	newBudget := func(category string, limit string) domain.BudgetCreated {
		return domain.BudgetCreated{
			UserID:         "user-1",
			Name:           "Budget " + category,
			Category:       category,
			Month:          "2026-03",
			Limit:          newDecimal(limit),
			Currency:       domain.CurrencyUSD,
			AlertThreshold: newDecimal("0.8"),
		}
	}
	et.handleAll(t, et.append(t, model.AggregateTypeBudget, "budget-food", newBudget("food", "300")))
	et.handleAll(t, et.append(t, model.AggregateTypeBudget, "budget-transport", newBudget("transport", "100")))

	accEvents := et.append(t, model.AggregateTypeAccount, "acc-1",
		opened(), credit("1000"), debit("120", "food"), debit("30", "food"),
		domain.TransactionCategorized{
			TransactionID:    "tx-120",
			UserID:           "user-1",
			Category:         "transport",
			PreviousCategory: "food",
			CategorizedBy:    domain.CategorizedByUser,
			Amount:           newDecimal("120"),
			Currency:         domain.CurrencyUSD,
			TransactionType:  domain.TransactionTypeDebit,
			TransactionDate:  newTime("2026-03-02T10:00:00Z"),
		},
	)
	et.handleAll(t, accEvents)

	acc := et.accounts["acc-1"]
	assertDecimal(t, "850", acc.Balance)
	assert.Equal(t, int64(5), acc.LastEventVersion)

	dailyKey := func(category string) model.DailyAggregateKey {
		return model.DailyAggregateKey{
			UserID:   "user-1",
			Date:     newTime("2026-03-02T00:00:00Z"),
			Category: category,
			Currency: "USD",
		}
	}
	food := et.daily[dailyKey("food")]
	assertDecimal(t, "30", food.TotalAmount)
	assert.Equal(t, int64(1), food.TxCount)
	assertDecimal(t, "30", food.AverageAmount)

	transport := et.daily[dailyKey("transport")]
	assertDecimal(t, "120", transport.TotalAmount)
	assert.Equal(t, int64(1), transport.TxCount)

	budgetKey := func(category string) model.BudgetStatusKey {
		return model.BudgetStatusKey{UserID: "user-1", Category: category, Month: "2026-03", Currency: "USD"}
	}
	assertDecimal(t, "30", et.budgets[budgetKey("food")].SpentAmount)
	assertDecimal(t, "10", et.budgets[budgetKey("food")].PercentageUsed)
	assertDecimal(t, "120", et.budgets[budgetKey("transport")].SpentAmount)
	assertDecimal(t, "-20", et.budgets[budgetKey("transport")].RemainingAmount)

	// only the transport budget crossed its threshold
	calls := et.alerts.CheckBudgetSpendingCalls()
	require.Equal(t, 1, len(calls))
	assert.Equal(t, "budget-transport", calls[0].BudgetID)
	assertDecimal(t, "120", calls[0].Spent)
	assert.Equal(t, accEvents[4].ID, calls[0].CausationID)
}

func TestEngine_Budget_Alert_Error_Keeps_Checkpoint(t *testing.T) {
	et := newEngineTest()
	et.handleAll(t, et.append(t, model.AggregateTypeBudget, "budget-1", domain.BudgetCreated{
		UserID:         "user-1",
		Name:           "Food",
		Category:       "food",
		Month:          "2026-03",
		Limit:          newDecimal("100"),
		Currency:       domain.CurrencyUSD,
		AlertThreshold: newDecimal("0.5"),
	}))
	accEvents := et.append(t, model.AggregateTypeAccount, "acc-1", opened(), credit("500"), debit("60", "food"))
	et.handleAll(t, accEvents[:2])

	et.alerts.CheckBudgetSpendingFunc = func(
		ctx context.Context, budgetID string, spent decimal.Decimal, causationID string,
	) error {
		return errors.New("budget store unavailable")
	}
	err := et.engine.Handle(newContext(), accEvents[2])
	assert.Error(t, err)
	assert.Equal(t, int64(2), et.checkpoints[checkpointKey{BudgetProjectorName, "acc-1"}])
}

func TestEngine_HandleWithRetry_Retries_Transient_Errors(t *testing.T) {
	et := newEngineTest()
	events := et.append(t, model.AggregateTypeAccount, "acc-1", opened())

	calls := 0
	et.provider.TransactFunc = func(ctx context.Context, fn func(ctx context.Context) error) error {
		calls++
		if calls <= 2 {
			return repository.ErrStoreUnavailable
		}
		return fn(ctx)
	}

	err := et.engine.HandleWithRetry(newContext(), events[0])
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(et.sleeps))
	assert.Equal(t, int64(1), et.accounts["acc-1"].LastEventVersion)
	assert.Equal(t, float64(2), testutil.ToFloat64(et.engine.metrics.failures.WithLabelValues(AccountProjectorName)))
}

func TestEngine_HandleWithRetry_Stops_When_Context_Done(t *testing.T) {
	et := newEngineTest()
	events := et.append(t, model.AggregateTypeAccount, "acc-1", opened())

	ctx, cancel := context.WithCancel(newContext())
	et.provider.TransactFunc = func(ctx context.Context, fn func(ctx context.Context) error) error {
		cancel()
		return repository.ErrStoreUnavailable
	}

	err := et.engine.HandleWithRetry(ctx, events[0])
	assert.Equal(t, context.Canceled, err)
	assert.Equal(t, 0, len(et.sleeps))
}

func TestEngine_HandleMessage(t *testing.T) {
	et := newEngineTest()
	events := et.append(t, model.AggregateTypeAccount, "acc-1", opened(), credit("12.5"))

	for _, e := range events {
		data, err := domain.MarshalMessage(e)
		require.Equal(t, nil, err)

		err = et.engine.HandleMessage(newContext(), bus.Message{
			Topic: "finance.account.events",
			Key:   e.AggregateID,
			Value: data,
		})
		require.Equal(t, nil, err)
	}
	assertDecimal(t, "12.5", et.accounts["acc-1"].Balance)

	// undecodable messages are acknowledged
	err := et.engine.HandleMessage(newContext(), bus.Message{Value: []byte("not json")})
	assert.Equal(t, nil, err)
}

func TestEngine_Run_With_Subscriber(t *testing.T) {
	et := newEngineTest()
	events := et.append(t, model.AggregateTypeAccount, "acc-1", opened(), credit("7"))

	sub := &bus.SubscriberMock{
		SubscribeFunc: func(ctx context.Context, handler bus.Handler) error {
			for _, e := range events {
				data, err := domain.MarshalMessage(e)
				if err != nil {
					return err
				}
				if err := handler(ctx, bus.Message{Key: e.AggregateID, Value: data}); err != nil {
					return err
				}
			}
			return nil
		},
	}

	err := et.engine.Run(newContext(), sub)
	assert.Equal(t, nil, err)
	assertDecimal(t, "7", et.accounts["acc-1"].Balance)
}

func TestEngine_Rebuild(t *testing.T) {
	et := newEngineTest()
	events := et.append(t, model.AggregateTypeAccount, "acc-1", opened(), credit("100"), debit("40", "rent"))
	et.handleAll(t, events)

	// corrupt the read model
	acc := et.accounts["acc-1"]
	acc.Balance = newDecimal("1")
	et.accounts["acc-1"] = acc

	err := et.engine.Rebuild(newContext(), AccountProjectorName, "acc-1")
	assert.Equal(t, nil, err)

	assertDecimal(t, "60", et.accounts["acc-1"].Balance)
	assert.Equal(t, int64(3), et.accounts["acc-1"].LastEventVersion)
	assert.Equal(t, int64(3), et.checkpoints[checkpointKey{AccountProjectorName, "acc-1"}])

	// new events continue from the rebuilt checkpoint
	next := et.append(t, model.AggregateTypeAccount, "acc-1", credit("5"))
	et.handleAll(t, next)
	assertDecimal(t, "65", et.accounts["acc-1"].Balance)
}

func TestEngine_Rebuild_Errors(t *testing.T) {
	et := newEngineTest()

	err := et.engine.Rebuild(newContext(), DailyProjectorName, "acc-1")
	assert.True(t, errors.Is(err, ErrNotRebuildable))

	err = et.engine.Rebuild(newContext(), "unknown", "acc-1")
	assert.True(t, errors.Is(err, ErrUnknownProjector))
}

func TestEngine_RebuildAll(t *testing.T) {
	et := newEngineTest()
	acc1 := et.append(t, model.AggregateTypeAccount, "acc-1", opened(), credit("100"))
	acc2 := et.append(t, model.AggregateTypeAccount, "acc-2", opened(), credit("50"), debit("20", "food"))
	et.append(t, model.AggregateTypeBudget, "budget-1", domain.BudgetCreated{
		UserID:   "user-1",
		Name:     "Food",
		Category: "food",
		Month:    "2026-03",
		Limit:    newDecimal("100"),
		Currency: domain.CurrencyUSD,
	})
	et.handleAll(t, acc1[:1])
	et.accounts["stale"] = model.AccountProjection{AccountID: "stale"}

	err := et.engine.RebuildAll(newContext(), AccountProjectorName, 2)
	assert.Equal(t, nil, err)

	assert.Equal(t, 2, len(et.accounts))
	assertDecimal(t, "100", et.accounts["acc-1"].Balance)
	assertDecimal(t, "30", et.accounts["acc-2"].Balance)
	assert.Equal(t, int64(len(acc2)), et.checkpoints[checkpointKey{AccountProjectorName, "acc-2"}])

	// other projectors are untouched
	assert.Equal(t, 0, len(et.daily))
}

func TestEngine_RebuildAll_Waits_For_Recent_Seq_Hole(t *testing.T) {
	et := newEngineTest()
	now := newTime("2026-03-05T08:00:00Z")

	accountEvent := func(seq uint64, id string, version int64, payload domain.Payload) domain.Event {
		return domain.Event{
			ID:            fmt.Sprintf("event-%d", seq),
			Seq:           seq,
			AggregateType: model.AggregateTypeAccount,
			AggregateID:   id,
			Version:       version,
			Payload:       payload,
			Metadata:      domain.Metadata{ActorID: "user-1", UserID: "user-1", SchemaVersion: 1},
			CreatedAt:     now.Add(-time.Second),
		}
	}
	first := accountEvent(1, "acc-1", 1, opened())
	second := accountEvent(2, "acc-2", 1, opened())
	third := accountEvent(3, "acc-1", 2, credit("100"))

	// seq 2 only becomes visible after the first scan
	scans := 0
	store := &eventstore.IStoreMock{
		ScanFunc: func(ctx context.Context, afterSeq uint64, limit uint64) ([]domain.Event, error) {
			scans++
			visible := []domain.Event{first, third}
			if scans > 1 {
				visible = []domain.Event{first, second, third}
			}
			var result []domain.Event
			for _, e := range visible {
				if e.Seq > afterSeq && uint64(len(result)) < limit {
					result = append(result, e)
				}
			}
			return result, nil
		},
	}

	engine := NewEngine(et.provider, et.repo, store, Config{
		CacheSizeBytes: 1 << 20,
		CacheExpire:    time.Minute,
		SettleLag:      time.Minute,
	}, DefaultProjectors(et.repo, func() time.Time { return now }, nil),
		WithClock(func() time.Time { return now }),
		WithSleep(func(ctx context.Context, d time.Duration) error {
			et.sleeps = append(et.sleeps, d)
			return nil
		}),
	)

	err := engine.RebuildAll(newContext(), AccountProjectorName, 10)
	assert.Equal(t, nil, err)

	assert.Equal(t, 2, scans)
	assert.Equal(t, []time.Duration{settlePollInterval}, et.sleeps)
	assert.Equal(t, 2, len(et.accounts))
	assertDecimal(t, "100", et.accounts["acc-1"].Balance)
	assert.Equal(t, int64(2), et.accounts["acc-1"].LastEventVersion)
	assert.Equal(t, int64(1), et.checkpoints[checkpointKey{AccountProjectorName, "acc-2"}])
	assert.Equal(t, 0, len(store.LoadCalls()))
}
