package repository

import (
	"context"
	"time"

	"github.com/QuangTung97/finledger/model"
)

//go:generate moq -out outbox_mocks.go . Outbox

// Outbox is written by the event append path (insert) and the relay (publish state) only
type Outbox interface {
	InsertOutboxEntries(ctx context.Context, entries []model.OutboxEntry) error

	GetUnpublished(ctx context.Context, partition model.OutboxPartition, limit uint64) ([]model.OutboxEntry, error)
	MarkPublished(ctx context.Context, id uint64, publishedAt time.Time) error
	RecordFailure(ctx context.Context, id uint64, lastError string) error
	CountUnpublished(ctx context.Context) (int64, error)
}

type outboxRepo struct {
}

// NewOutbox ...
func NewOutbox() Outbox {
	return &outboxRepo{}
}

// InsertOutboxEntries ...
func (r *outboxRepo) InsertOutboxEntries(ctx context.Context, entries []model.OutboxEntry) error {
	if len(entries) == 0 {
		return nil
	}
	query := `
INSERT INTO outbox (
	event_id, aggregate_type, aggregate_id, event_type, version,
	shard, payload, created_at
) VALUES (
	:event_id, :aggregate_type, :aggregate_id, :event_type, :version,
	:shard, :payload, :created_at
)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, entries)
	return ClassifyError(err)
}

// GetUnpublished returns unpublished entries of a partition ordered by id
func (r *outboxRepo) GetUnpublished(
	ctx context.Context, partition model.OutboxPartition, limit uint64,
) ([]model.OutboxEntry, error) {
	count := partition.Count
	if count == 0 {
		count = 1
	}
	query := `
SELECT id, event_id, aggregate_type, aggregate_id, event_type, version, shard,
	payload, created_at, published_at, attempt_count, last_error
FROM outbox
WHERE published_at IS NULL AND shard % ? = ?
ORDER BY id ASC
LIMIT ?
`
	var result []model.OutboxEntry
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, count, partition.Index, limit)
	return result, ClassifyError(err)
}

// MarkPublished ...
func (r *outboxRepo) MarkPublished(ctx context.Context, id uint64, publishedAt time.Time) error {
	query := `UPDATE outbox SET published_at = ? WHERE id = ? AND published_at IS NULL`
	_, err := GetTx(ctx).ExecContext(ctx, query, publishedAt, id)
	return ClassifyError(err)
}

// RecordFailure ...
func (r *outboxRepo) RecordFailure(ctx context.Context, id uint64, lastError string) error {
	if len(lastError) > 1024 {
		lastError = lastError[:1024]
	}
	query := `UPDATE outbox SET attempt_count = attempt_count + 1, last_error = ? WHERE id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, lastError, id)
	return ClassifyError(err)
}

// CountUnpublished ...
func (r *outboxRepo) CountUnpublished(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM outbox WHERE published_at IS NULL`
	var count int64
	err := GetReadonly(ctx).GetContext(ctx, &count, query)
	return count, ClassifyError(err)
}
