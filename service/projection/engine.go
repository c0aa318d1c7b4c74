package projection

import (
	"context"
	"fmt"
	"time"

	"github.com/QuangTung97/finledger/domain"
	"github.com/QuangTung97/finledger/pkg/bus"
	"github.com/QuangTung97/finledger/pkg/memtable"
	"github.com/QuangTung97/finledger/pkg/otellib"
	"github.com/QuangTung97/finledger/repository"
	"github.com/QuangTung97/finledger/service/eventstore"
	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
)

// Config ...
type Config struct {
	CacheSizeBytes int
	CacheExpire    time.Duration
	InitialBackoff time.Duration
	MaxBackoff     time.Duration

	// SettleLag bounds how long a hole in seq may belong to an uncommitted append
	SettleLag time.Duration
}

// Engine applies events to projectors exactly once per (projector, aggregate, version)
type Engine struct {
	provider repository.Provider
	repo     repository.Projection
	store    eventstore.IStore

	projectors []Projector
	conf       Config
	cache      *memtable.MemTable
	metrics    *Metrics

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// Option ...
type Option func(e *Engine)

// WithClock ...
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithSleep replaces the wait between retries
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(e *Engine) {
		e.sleep = sleep
	}
}

// WithMetrics ...
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NewEngine ...
func NewEngine(
	provider repository.Provider, repo repository.Projection, store eventstore.IStore,
	conf Config, projectors []Projector, options ...Option,
) *Engine {
	if conf.CacheSizeBytes <= 0 {
		conf.CacheSizeBytes = 8 << 20
	}
	if conf.SettleLag <= 0 {
		conf.SettleLag = eventstore.DefaultSettleLag
	}
	e := &Engine{
		provider: provider,
		repo:     repo,
		store:    store,

		projectors: projectors,
		conf:       conf,
		cache:      memtable.New(conf.CacheSizeBytes, int(conf.CacheExpire/time.Second)),
		metrics:    NewMetrics(),

		now:   time.Now,
		sleep: sleepContext,
	}
	for _, opt := range options {
		opt(e)
	}
	return e
}

// DefaultProjectors returns the account balance, daily aggregate and budget status projectors
func DefaultProjectors(repo repository.Projection, now func() time.Time, alerts BudgetAlerts) []Projector {
	return []Projector{
		NewAccountProjector(repo, now),
		NewDailyProjector(repo, now),
		NewBudgetProjector(repo, now, alerts),
	}
}

func cacheKey(projector string, aggregateID string) string {
	return projector + ":" + aggregateID
}

// pendingEvents returns the events with versions last+1..event.Version in order
func (e *Engine) pendingEvents(ctx context.Context, last int64, event domain.Event) ([]domain.Event, error) {
	if event.Version == last+1 {
		return []domain.Event{event}, nil
	}

	loaded, err := e.store.Load(ctx, event.AggregateID, last+1)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Event, 0, event.Version-last)
	next := last + 1
	for _, ev := range loaded {
		if ev.Version > event.Version {
			break
		}
		if ev.Version != next {
			return nil, fmt.Errorf("%w: aggregate %s expected version %d, got %d",
				ErrProjectionGap, event.AggregateID, next, ev.Version)
		}
		result = append(result, ev)
		next++
	}
	if next != event.Version+1 {
		return nil, fmt.Errorf("%w: aggregate %s has no version %d",
			ErrProjectionGap, event.AggregateID, next)
	}
	return result, nil
}

type projectResult struct {
	lastVersion int64
	applied     int
	discarded   bool
}

func (e *Engine) projectOnce(ctx context.Context, p Projector, event domain.Event) (projectResult, error) {
	var result projectResult
	err := e.provider.Transact(ctx, func(ctx context.Context) error {
		checkpoint, err := e.repo.GetCheckpoint(ctx, p.Name(), event.AggregateID)
		if err != nil {
			return err
		}
		if event.Version <= checkpoint.LastEventVersion {
			result = projectResult{lastVersion: checkpoint.LastEventVersion, discarded: true}
			return nil
		}

		events, err := e.pendingEvents(ctx, checkpoint.LastEventVersion, event)
		if err != nil {
			return err
		}
		for _, ev := range events {
			if err := p.Apply(ctx, ev); err != nil {
				return err
			}
		}

		checkpoint.LastEventVersion = event.Version
		checkpoint.UpdatedAt = e.now().UTC()
		if err := e.repo.UpsertCheckpoint(ctx, checkpoint); err != nil {
			return err
		}
		result = projectResult{lastVersion: event.Version, applied: len(events)}
		return nil
	})
	return result, err
}

// project applies one event to one projector in a single transaction
func (e *Engine) project(ctx context.Context, p Projector, event domain.Event) error {
	key := cacheKey(p.Name(), event.AggregateID)
	if last, ok := e.cache.GetNum(key); ok && uint64(event.Version) <= last {
		e.metrics.discarded.WithLabelValues(p.Name()).Inc()
		return nil
	}

	result, err := e.projectOnce(ctx, p, event)
	if err != nil {
		return err
	}
	e.cache.AdvanceNum(key, uint64(result.lastVersion))

	if result.discarded {
		e.metrics.discarded.WithLabelValues(p.Name()).Inc()
		return nil
	}
	e.metrics.applied.WithLabelValues(p.Name()).Add(float64(result.applied))
	if result.applied > 1 {
		e.metrics.backfilled.WithLabelValues(p.Name()).Add(float64(result.applied - 1))
		otellib.Extract(ctx).Info("backfilled projection gap",
			zap.String("projector", p.Name()),
			zap.String("aggregate_id", event.AggregateID),
			zap.Int64("version", event.Version),
			zap.Int("applied", result.applied),
		)
	}
	return nil
}

// Handle applies the event to every interested projector, once each
func (e *Engine) Handle(ctx context.Context, event domain.Event) error {
	for _, p := range e.projectors {
		if !p.Handles(event.AggregateType) {
			continue
		}
		if err := e.project(ctx, p, event); err != nil {
			e.metrics.failures.WithLabelValues(p.Name()).Inc()
			return fmt.Errorf("projector %s: %w", p.Name(), err)
		}
	}
	return nil
}

func (e *Engine) newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	if e.conf.InitialBackoff > 0 {
		b.InitialInterval = e.conf.InitialBackoff
	}
	if e.conf.MaxBackoff > 0 {
		b.MaxInterval = e.conf.MaxBackoff
	}
	b.Reset()
	return b
}

// HandleWithRetry retries Handle with exponential backoff until it succeeds or ctx is done
func (e *Engine) HandleWithRetry(ctx context.Context, event domain.Event) error {
	b := e.newBackOff()
	for attempt := 1; ; attempt++ {
		err := e.Handle(ctx, event)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		wait := b.NextBackOff()
		otellib.Extract(ctx).Warn("project event",
			zap.String("aggregate_id", event.AggregateID),
			zap.Int64("version", event.Version),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", wait),
			zap.Error(err),
		)
		if err := e.sleep(ctx, wait); err != nil {
			return err
		}
	}
}

// HandleMessage decodes a bus message, a message that can not be decoded is logged and acknowledged
func (e *Engine) HandleMessage(ctx context.Context, msg bus.Message) error {
	event, err := domain.UnmarshalMessage(msg.Value)
	if err != nil {
		otellib.Extract(ctx).Error("decode bus message",
			zap.String("topic", msg.Topic),
			zap.String("key", msg.Key),
			zap.String("event_id", msg.Headers[bus.HeaderEventID]),
			zap.Error(err),
		)
		return nil
	}
	return e.HandleWithRetry(ctx, event)
}

// Run consumes the subscriber until ctx is done
func (e *Engine) Run(ctx context.Context, sub bus.Subscriber) error {
	err := sub.Subscribe(ctx, e.HandleMessage)
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func (e *Engine) findRebuilder(name string) (Rebuilder, error) {
	for _, p := range e.projectors {
		if p.Name() != name {
			continue
		}
		r, ok := p.(Rebuilder)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotRebuildable, name)
		}
		return r, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownProjector, name)
}

// Rebuild recomputes the rows of one aggregate from its full stream and resets the checkpoint
func (e *Engine) Rebuild(ctx context.Context, projector string, aggregateID string) error {
	r, err := e.findRebuilder(projector)
	if err != nil {
		return err
	}

	var lastVersion int64
	err = e.provider.Transact(ctx, func(ctx context.Context) error {
		checkpoint, err := e.repo.GetCheckpoint(ctx, projector, aggregateID)
		if err != nil {
			return err
		}

		events, err := e.store.Load(ctx, aggregateID, 1)
		if err != nil {
			return err
		}
		if err := r.Rebuild(ctx, aggregateID, events); err != nil {
			return err
		}

		lastVersion = 0
		if len(events) > 0 {
			lastVersion = events[len(events)-1].Version
		}
		checkpoint.LastEventVersion = lastVersion
		checkpoint.UpdatedAt = e.now().UTC()
		return e.repo.UpsertCheckpoint(ctx, checkpoint)
	})
	if err != nil {
		return err
	}

	e.cache.SetNum(cacheKey(projector, aggregateID), uint64(lastVersion))
	otellib.Extract(ctx).Info("rebuilt projection",
		zap.String("projector", projector),
		zap.String("aggregate_id", aggregateID),
		zap.Int64("version", lastVersion),
	)
	return nil
}

const settlePollInterval = time.Second

// RebuildAll deletes every row of a projector and replays the whole event store in global order.
// It waits at a recent hole in seq until the append owning it commits or is old enough to be a rollback.
func (e *Engine) RebuildAll(ctx context.Context, projector string, batchSize uint64) error {
	r, err := e.findRebuilder(projector)
	if err != nil {
		return err
	}
	if batchSize == 0 {
		batchSize = 500
	}

	err = e.provider.Transact(ctx, func(ctx context.Context) error {
		if err := r.DeleteAll(ctx); err != nil {
			return err
		}
		return e.repo.DeleteCheckpoints(ctx, projector)
	})
	if err != nil {
		return err
	}
	e.cache.Clear()

	var afterSeq uint64
	for {
		events, err := e.store.Scan(ctx, afterSeq, batchSize)
		if err != nil {
			return err
		}
		settled := eventstore.Settled(events, afterSeq, e.now(), e.conf.SettleLag)
		for _, event := range settled {
			if r.Handles(event.AggregateType) {
				if err := e.project(ctx, r, event); err != nil {
					return err
				}
			}
			afterSeq = event.Seq
		}

		if len(settled) < len(events) {
			if err := e.sleep(ctx, settlePollInterval); err != nil {
				return err
			}
			continue
		}
		if uint64(len(events)) < batchSize {
			return nil
		}
	}
}
