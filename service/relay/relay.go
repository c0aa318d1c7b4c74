package relay

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/QuangTung97/finledger/model"
	"github.com/QuangTung97/finledger/pkg/bus"
	"github.com/QuangTung97/finledger/pkg/otellib"
	"github.com/QuangTung97/finledger/repository"
	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
)

// ErrPublishFailure when the bus did not acknowledge an outbox entry in time
var ErrPublishFailure = errors.New("publish failure")

// Config ...
type Config struct {
	Partition      model.OutboxPartition
	BatchSize      uint64
	PollInterval   time.Duration
	PublishTimeout time.Duration

	InitialBackoff time.Duration
	MaxBackoff     time.Duration

	TopicPrefix string
}

// Relay moves committed outbox entries of one partition to the bus, in id order
type Relay struct {
	provider   repository.Provider
	outboxRepo repository.Outbox
	publisher  bus.Publisher

	conf    Config
	metrics *Metrics

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// Option ...
type Option func(r *Relay)

// WithClock ...
func WithClock(now func() time.Time) Option {
	return func(r *Relay) {
		r.now = now
	}
}

// WithSleep replaces the wait between polls and retries
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(r *Relay) {
		r.sleep = sleep
	}
}

// WithMetrics ...
func WithMetrics(m *Metrics) Option {
	return func(r *Relay) {
		r.metrics = m
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

// New ...
func New(
	provider repository.Provider, outboxRepo repository.Outbox, publisher bus.Publisher,
	conf Config, options ...Option,
) *Relay {
	if conf.BatchSize == 0 {
		conf.BatchSize = 100
	}
	if conf.Partition.Count == 0 {
		conf.Partition.Count = 1
	}
	r := &Relay{
		provider:   provider,
		outboxRepo: outboxRepo,
		publisher:  publisher,

		conf:    conf,
		metrics: NewMetrics(),

		now:   time.Now,
		sleep: sleepContext,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (r *Relay) messageOf(e model.OutboxEntry) bus.Message {
	return bus.Message{
		Topic: bus.TopicFor(r.conf.TopicPrefix, string(e.AggregateType)),
		Key:   e.AggregateID,
		Value: e.Payload,
		Headers: map[string]string{
			bus.HeaderEventID:       e.EventID,
			bus.HeaderEventType:     e.EventType,
			bus.HeaderAggregateType: string(e.AggregateType),
			bus.HeaderVersion:       strconv.FormatInt(e.Version, 10),
		},
	}
}

func (r *Relay) publish(ctx context.Context, e model.OutboxEntry) error {
	if r.conf.PublishTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.conf.PublishTimeout)
		defer cancel()
	}
	return r.publisher.Publish(ctx, r.messageOf(e))
}

func (r *Relay) recordFailure(ctx context.Context, e model.OutboxEntry, publishErr error) {
	r.metrics.failed.Inc()

	err := r.provider.Transact(ctx, func(ctx context.Context) error {
		return r.outboxRepo.RecordFailure(ctx, e.ID, publishErr.Error())
	})
	if err != nil {
		otellib.Extract(ctx).Error("record publish failure", zap.Uint64("outbox_id", e.ID), zap.Error(err))
	}
}

// RunOnce publishes one batch and returns the number of published entries.
// It stops at the first failure so that entries of an aggregate never overtake each other.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	entries, err := r.outboxRepo.GetUnpublished(r.provider.Readonly(ctx), r.conf.Partition, r.conf.BatchSize)
	if err != nil {
		return 0, err
	}

	published := 0
	for _, e := range entries {
		if err := r.publish(ctx, e); err != nil {
			if ctx.Err() != nil {
				return published, ctx.Err()
			}
			r.recordFailure(ctx, e, err)
			otellib.Extract(ctx).Warn("publish outbox entry",
				zap.Uint64("outbox_id", e.ID),
				zap.String("aggregate_id", e.AggregateID),
				zap.Int64("version", e.Version),
				zap.Int("attempt", e.AttemptCount+1),
				zap.Error(err),
			)
			return published, fmt.Errorf("%w: outbox %d: %v", ErrPublishFailure, e.ID, err)
		}

		err := r.provider.Transact(ctx, func(ctx context.Context) error {
			return r.outboxRepo.MarkPublished(ctx, e.ID, r.now().UTC())
		})
		if err != nil {
			return published, err
		}

		r.metrics.published.Inc()
		r.metrics.lag.Observe(r.now().Sub(e.CreatedAt).Seconds())
		published++
	}
	return published, nil
}

func (r *Relay) newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	if r.conf.InitialBackoff > 0 {
		b.InitialInterval = r.conf.InitialBackoff
	}
	if r.conf.MaxBackoff > 0 {
		b.MaxInterval = r.conf.MaxBackoff
	}
	b.Reset()
	return b
}

func (r *Relay) updateBacklog(ctx context.Context) {
	count, err := r.outboxRepo.CountUnpublished(r.provider.Readonly(ctx))
	if err != nil {
		return
	}
	r.metrics.backlog.Set(float64(count))
}

// Run polls until ctx is done, failures are retried forever with exponential backoff
func (r *Relay) Run(ctx context.Context) error {
	b := r.newBackOff()
	logger := otellib.Extract(ctx)

	for {
		n, err := r.RunOnce(ctx)
		if ctx.Err() != nil {
			return nil
		}

		var wait time.Duration
		switch {
		case err != nil:
			wait = b.NextBackOff()
			logger.Warn("relay batch failed", zap.Duration("backoff", wait), zap.Error(err))
		case uint64(n) < r.conf.BatchSize:
			b.Reset()
			r.updateBacklog(ctx)
			wait = r.conf.PollInterval
		default:
			b.Reset()
		}

		if wait > 0 {
			if err := r.sleep(ctx, wait); err != nil {
				return nil
			}
		}
	}
}
