package aggregate

import (
	"context"
	"errors"
	"fmt"

	"github.com/QuangTung97/finledger/domain"
	"github.com/QuangTung97/finledger/model"
	"github.com/QuangTung97/finledger/pkg/otellib"
	"github.com/QuangTung97/finledger/service/eventstore"
	"go.uber.org/zap"
)

// ErrCorruptStream when a loaded stream is not gapless from version 1
var ErrCorruptStream = errors.New("corrupt event stream")

// Definition describes how to rebuild the state of one aggregate type
type Definition[S any] struct {
	Type    model.AggregateType
	Initial func() S

	// Fold must be pure: same state and event always give the same result
	Fold func(state S, e domain.Event) S
}

// Decide computes the changes of a command from the current state
type Decide[S any] func(state S, version int64) ([]domain.Change, error)

// Repository loads aggregates by replaying their streams and saves new changes
type Repository[S any] struct {
	store      eventstore.IStore
	def        Definition[S]
	maxRetries int
}

// NewRepository ...
func NewRepository[S any](store eventstore.IStore, def Definition[S], maxRetries int) *Repository[S] {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &Repository[S]{
		store:      store,
		def:        def,
		maxRetries: maxRetries,
	}
}

// AccountDefinition ...
func AccountDefinition() Definition[domain.Account] {
	return Definition[domain.Account]{
		Type:    model.AggregateTypeAccount,
		Initial: domain.NewAccount,
		Fold:    domain.FoldAccount,
	}
}

// BudgetDefinition ...
func BudgetDefinition() Definition[domain.Budget] {
	return Definition[domain.Budget]{
		Type:    model.AggregateTypeBudget,
		Initial: domain.NewBudget,
		Fold:    domain.FoldBudget,
	}
}

// Replay folds events over state, events must continue from version
func Replay[S any](fold func(S, domain.Event) S, state S, version int64, events []domain.Event) (S, int64, error) {
	for _, e := range events {
		if e.Version != version+1 {
			return state, version, fmt.Errorf("%w: %s expected version %d, got %d",
				ErrCorruptStream, e.AggregateID, version+1, e.Version)
		}
		state = fold(state, e)
		version = e.Version
	}
	return state, version, nil
}

// Load returns the current state and version, version 0 when the aggregate does not exist
func (r *Repository[S]) Load(ctx context.Context, id string) (S, int64, error) {
	events, err := r.store.Load(ctx, id, 1)
	if err != nil {
		var empty S
		return empty, 0, err
	}
	return Replay(r.def.Fold, r.def.Initial(), 0, events)
}

// Save appends changes with optimistic concurrency on expectedVersion
func (r *Repository[S]) Save(ctx context.Context, id string, expectedVersion int64, changes []domain.Change) (int64, error) {
	return r.store.Append(ctx, r.def.Type, id, expectedVersion, changes)
}

// Update loads, decides and saves, reloading on version conflicts at most maxRetries times.
// No changes from decide is a successful no-op.
func (r *Repository[S]) Update(ctx context.Context, id string, decide Decide[S]) (int64, error) {
	for attempt := 0; ; attempt++ {
		state, version, err := r.Load(ctx, id)
		if err != nil {
			return 0, err
		}

		changes, err := decide(state, version)
		if err != nil {
			return version, err
		}
		if len(changes) == 0 {
			return version, nil
		}

		newVersion, err := r.Save(ctx, id, version, changes)
		if err == nil {
			return newVersion, nil
		}
		if !errors.Is(err, eventstore.ErrConcurrencyConflict) || attempt >= r.maxRetries {
			return 0, err
		}

		otellib.Extract(ctx).Info("retrying command after version conflict",
			zap.String("aggregate_id", id),
			zap.Int64("version", version),
			zap.Int("attempt", attempt+1),
		)
	}
}
