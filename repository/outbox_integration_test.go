//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/QuangTung97/finledger/model"
	"github.com/stretchr/testify/assert"
)

func newOutboxEntry(id string, shard uint32) model.OutboxEntry {
	return model.OutboxEntry{
		EventID:       id,
		AggregateType: model.AggregateTypeAccount,
		AggregateID:   "acc-1",
		EventType:     "AccountCreated",
		Version:       1,
		Shard:         shard,
		Payload:       []byte(`{"event_id": "` + id + `"}`),
		CreatedAt:     newTime("2024-01-15T10:00:00Z"),
	}
}

func TestOutbox(t *testing.T) {
	tc := newEventTest()

	repo := NewOutbox()

	//---------------------------------------
	// Insert
	//---------------------------------------
	err := tc.provider.Transact(newContext(), func(ctx context.Context) error {
		return repo.InsertOutboxEntries(ctx, []model.OutboxEntry{
			newOutboxEntry("ev-1", 10),
			newOutboxEntry("ev-2", 11),
			newOutboxEntry("ev-3", 12),
		})
	})
	assert.Equal(t, nil, err)

	readCtx := tc.provider.Readonly(newContext())

	count, err := repo.CountUnpublished(readCtx)
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(3), count)

	//---------------------------------------
	// Get Unpublished
	//---------------------------------------
	entries, err := repo.GetUnpublished(readCtx, model.OutboxPartition{Index: 0, Count: 1}, 10)
	assert.Equal(t, nil, err)
	assert.Equal(t, 3, len(entries))
	assert.Equal(t, "ev-1", entries[0].EventID)
	assert.Equal(t, "ev-2", entries[1].EventID)
	assert.Equal(t, "ev-3", entries[2].EventID)
	assert.Equal(t, false, entries[0].PublishedAt.Valid)

	entries, err = repo.GetUnpublished(readCtx, model.OutboxPartition{Index: 0, Count: 2}, 10)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(entries))
	assert.Equal(t, "ev-1", entries[0].EventID)
	assert.Equal(t, "ev-3", entries[1].EventID)

	//---------------------------------------
	// Record Failure
	//---------------------------------------
	err = tc.provider.Transact(newContext(), func(ctx context.Context) error {
		return repo.RecordFailure(ctx, entries[0].ID, "broker down")
	})
	assert.Equal(t, nil, err)

	//---------------------------------------
	// Mark Published
	//---------------------------------------
	err = tc.provider.Transact(newContext(), func(ctx context.Context) error {
		return repo.MarkPublished(ctx, entries[0].ID, newTime("2024-01-15T10:00:05Z"))
	})
	assert.Equal(t, nil, err)

	entries, err = repo.GetUnpublished(readCtx, model.OutboxPartition{Index: 0, Count: 1}, 10)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(entries))
	assert.Equal(t, "ev-2", entries[0].EventID)

	count, err = repo.CountUnpublished(readCtx)
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(2), count)

	var first model.OutboxEntry
	err = tc.tc.DB.Get(&first, `SELECT * FROM outbox WHERE event_id = 'ev-1'`)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, first.AttemptCount)
	assert.Equal(t, "broker down", first.LastError)
	assert.Equal(t, true, first.PublishedAt.Valid)
	assert.Equal(t, newTime("2024-01-15T10:00:05Z"), first.PublishedAt.Time)
}
