package main

import (
	"context"
	"time"

	"github.com/QuangTung97/finledger/config"
	"github.com/QuangTung97/finledger/model"
	"github.com/QuangTung97/finledger/pkg/bus"
	"github.com/QuangTung97/finledger/pkg/bus/kafkabus"
	"github.com/QuangTung97/finledger/pkg/bus/membus"
	"github.com/QuangTung97/finledger/pkg/otellib"
	"github.com/QuangTung97/finledger/repository"
	"github.com/QuangTung97/finledger/service/archive"
	"github.com/QuangTung97/finledger/service/eventstore"
	"github.com/QuangTung97/finledger/service/ledger"
	"github.com/QuangTung97/finledger/service/projection"
	"github.com/QuangTung97/finledger/service/relay"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type app struct {
	conf   config.Config
	logger *zap.Logger

	db       *sqlx.DB
	provider repository.Provider

	outboxRepo     repository.Outbox
	projectionRepo repository.Projection
	store          eventstore.IStore

	tracerProvider trace.TracerProvider
	shutdownTracer func()

	memBus *membus.Bus
}

func newApp(ctx context.Context) *app {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)

	tracerProvider, shutdown := otellib.InitOtel(ctx, conf.Tracing)
	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	key, err := conf.Integrity.KeyBytes()
	if err != nil {
		logger.Fatal("invalid integrity key", zap.Error(err))
	}

	db := conf.MySQL.MustConnect(logger)
	provider := repository.NewProvider(db)
	outboxRepo := repository.NewOutbox()

	storeMetrics := eventstore.NewMetrics()
	storeMetrics.Register(prometheus.DefaultRegisterer)

	store := eventstore.NewStore(
		provider, repository.NewEvent(), outboxRepo,
		eventstore.NewChainHasher(key),
		eventstore.WithMetrics(storeMetrics),
	)

	return &app{
		conf:   conf,
		logger: logger,

		db:       db,
		provider: provider,

		outboxRepo:     outboxRepo,
		projectionRepo: repository.NewProjection(),
		store:          eventstore.NewIStoreWrapper(store, tracerProvider.Tracer("finledger"), "eventstore"),

		tracerProvider: tracerProvider,
		shutdownTracer: shutdown,
	}
}

func (a *app) close() {
	if a.memBus != nil {
		_ = a.memBus.Close()
	}
	_ = a.db.Close()
	a.shutdownTracer()
	_ = a.logger.Sync()
}

func (a *app) workerContext(ctx context.Context, worker string, fields ...zap.Field) context.Context {
	return otellib.WorkerContext(ctx, a.logger, worker, fields...)
}

func (a *app) getMemBus() *membus.Bus {
	if a.memBus == nil {
		a.memBus = membus.New(a.conf.Bus.Partitions, a.conf.Bus.BufferSize)
	}
	return a.memBus
}

func (a *app) newPublisher() bus.Publisher {
	if a.conf.Bus.Kind == config.BusKindMemory {
		return a.getMemBus()
	}
	return kafkabus.NewPublisher(a.conf.Kafka)
}

func (a *app) newSubscriber() bus.Subscriber {
	if a.conf.Bus.Kind == config.BusKindMemory {
		return a.getMemBus()
	}
	return kafkabus.NewSubscriber(a.conf.Kafka, []string{
		bus.TopicFor(a.conf.Kafka.TopicPrefix, string(model.AggregateTypeAccount)),
		bus.TopicFor(a.conf.Kafka.TopicPrefix, string(model.AggregateTypeBudget)),
	})
}

func (a *app) newRelays(publisher bus.Publisher) []*relay.Relay {
	metrics := relay.NewMetrics()
	metrics.Register(prometheus.DefaultRegisterer)

	count := a.conf.Relay.Partitions
	if count == 0 {
		count = 1
	}

	relays := make([]*relay.Relay, 0, count)
	for i := uint32(0); i < count; i++ {
		relays = append(relays, relay.New(a.provider, a.outboxRepo, publisher, relay.Config{
			Partition:      model.OutboxPartition{Index: i, Count: count},
			BatchSize:      a.conf.Relay.BatchSize,
			PollInterval:   a.conf.Relay.PollInterval,
			PublishTimeout: a.conf.Relay.PublishTimeout,
			InitialBackoff: a.conf.Relay.InitialBackoff,
			MaxBackoff:     a.conf.Relay.MaxBackoff,
			TopicPrefix:    a.conf.Kafka.TopicPrefix,
		}, relay.WithMetrics(metrics)))
	}
	return relays
}

// newBudgetAlerts appends threshold alerts to budget streams inside the projection transaction
func (a *app) newBudgetAlerts() projection.BudgetAlerts {
	return ledger.NewService(a.store, a.conf.Ledger.MaxRetries)
}

func (a *app) newEngine() *projection.Engine {
	metrics := projection.NewMetrics()
	metrics.Register(prometheus.DefaultRegisterer)

	return projection.NewEngine(a.provider, a.projectionRepo, a.store, projection.Config{
		CacheSizeBytes: a.conf.Projection.CacheSizeBytes,
		CacheExpire:    a.conf.Projection.CacheExpire,
		InitialBackoff: a.conf.Projection.InitialBackoff,
		MaxBackoff:     a.conf.Projection.MaxBackoff,
		SettleLag:      a.conf.Projection.SettleLag,
	}, projection.DefaultProjectors(a.projectionRepo, time.Now, a.newBudgetAlerts()), projection.WithMetrics(metrics))
}

func (a *app) newExporter(ctx context.Context) (*archive.Exporter, func(), error) {
	objects, err := archive.NewGCSStore(ctx, a.conf.Archive.Bucket)
	if err != nil {
		return nil, nil, err
	}
	exporter := archive.NewExporter(a.provider, a.projectionRepo, a.store, objects, archive.Config{
		Prefix:    a.conf.Archive.Prefix,
		BatchSize: a.conf.Archive.BatchSize,
		Interval:  a.conf.Archive.Interval,
		SettleLag: a.conf.Archive.SettleLag,
	})
	return exporter, func() { _ = objects.Close() }, nil
}
