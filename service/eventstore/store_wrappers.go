package eventstore

import (
	"context"

	"github.com/QuangTung97/finledger/domain"
	"github.com/QuangTung97/finledger/model"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// IStoreWrapper wraps OpenTelemetry's span
type IStoreWrapper struct {
	IStore
	tracer trace.Tracer
	prefix string
}

// NewIStoreWrapper creates a wrapper
func NewIStoreWrapper(wrapped IStore, tracer trace.Tracer, prefix string) *IStoreWrapper {
	return &IStoreWrapper{
		IStore: wrapped,
		tracer: tracer,
		prefix: prefix,
	}
}

func recordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// Append ...
func (w *IStoreWrapper) Append(
	ctx context.Context, aggregateType model.AggregateType, aggregateID string,
	expectedVersion int64, changes []domain.Change,
) (int64, error) {
	ctx, span := w.tracer.Start(ctx, w.prefix+"Append", trace.WithAttributes(
		attribute.String("aggregate.type", string(aggregateType)),
		attribute.String("aggregate.id", aggregateID),
		attribute.Int64("expected_version", expectedVersion),
		attribute.Int("changes", len(changes)),
	))
	defer span.End()

	a, err := w.IStore.Append(ctx, aggregateType, aggregateID, expectedVersion, changes)
	recordError(span, err)
	return a, err
}

// Load ...
func (w *IStoreWrapper) Load(ctx context.Context, aggregateID string, fromVersion int64) ([]domain.Event, error) {
	ctx, span := w.tracer.Start(ctx, w.prefix+"Load", trace.WithAttributes(
		attribute.String("aggregate.id", aggregateID),
		attribute.Int64("from_version", fromVersion),
	))
	defer span.End()

	a, err := w.IStore.Load(ctx, aggregateID, fromVersion)
	recordError(span, err)
	return a, err
}

// Verify ...
func (w *IStoreWrapper) Verify(ctx context.Context, aggregateID string) error {
	ctx, span := w.tracer.Start(ctx, w.prefix+"Verify", trace.WithAttributes(
		attribute.String("aggregate.id", aggregateID),
	))
	defer span.End()

	err := w.IStore.Verify(ctx, aggregateID)
	recordError(span, err)
	return err
}

// Scan ...
func (w *IStoreWrapper) Scan(ctx context.Context, afterSeq uint64, limit uint64) ([]domain.Event, error) {
	ctx, span := w.tracer.Start(ctx, w.prefix+"Scan")
	defer span.End()

	a, err := w.IStore.Scan(ctx, afterSeq, limit)
	recordError(span, err)
	return a, err
}
