package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/QuangTung97/finledger/model"
)

//go:generate moq -out event_mocks.go . Event

// Event for the append-only events table
type Event interface {
	// GetHead locks and returns the last version of an aggregate, zero if the stream is empty
	GetHead(ctx context.Context, aggregateID string) (model.EventHead, error)
	InsertEvents(ctx context.Context, events []model.Event) error

	GetEvents(ctx context.Context, aggregateID string, fromVersion int64) ([]model.Event, error)
	ScanEvents(ctx context.Context, afterSeq uint64, limit uint64) ([]model.Event, error)
}

type eventRepo struct {
}

// NewEvent ...
func NewEvent() Event {
	return &eventRepo{}
}

// GetHead ...
func (r *eventRepo) GetHead(ctx context.Context, aggregateID string) (model.EventHead, error) {
	query := `
SELECT version, hash FROM events
WHERE aggregate_id = ?
ORDER BY version DESC LIMIT 1
FOR UPDATE
`
	var head model.EventHead
	err := GetTx(ctx).GetContext(ctx, &head, query, aggregateID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.EventHead{}, nil
	}
	return head, ClassifyError(err)
}

// InsertEvents ...
func (r *eventRepo) InsertEvents(ctx context.Context, events []model.Event) error {
	if len(events) == 0 {
		return nil
	}
	query := `
INSERT INTO events (
	event_id, aggregate_type, aggregate_id, event_type, version,
	payload, metadata, prev_hash, hash, created_at
) VALUES (
	:event_id, :aggregate_type, :aggregate_id, :event_type, :version,
	:payload, :metadata, :prev_hash, :hash, :created_at
)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, events)
	return ClassifyError(err)
}

// GetEvents returns the stream in ascending version order starting at fromVersion
func (r *eventRepo) GetEvents(ctx context.Context, aggregateID string, fromVersion int64) ([]model.Event, error) {
	query := `
SELECT seq, event_id, aggregate_type, aggregate_id, event_type, version,
	payload, metadata, prev_hash, hash, created_at
FROM events
WHERE aggregate_id = ? AND version >= ?
ORDER BY version ASC
`
	var result []model.Event
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, aggregateID, fromVersion)
	return result, ClassifyError(err)
}

// ScanEvents returns events in global insertion order
func (r *eventRepo) ScanEvents(ctx context.Context, afterSeq uint64, limit uint64) ([]model.Event, error) {
	query := `
SELECT seq, event_id, aggregate_type, aggregate_id, event_type, version,
	payload, metadata, prev_hash, hash, created_at
FROM events
WHERE seq > ?
ORDER BY seq ASC
LIMIT ?
`
	var result []model.Event
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, afterSeq, limit)
	return result, ClassifyError(err)
}
