//go:build integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/QuangTung97/finledger/model"
	"github.com/QuangTung97/finledger/pkg/integration"
	"github.com/stretchr/testify/assert"
)

type eventTest struct {
	tc       *integration.TestCase
	provider Provider
}

func newEventTest() *eventTest {
	tc := integration.NewTestCase()
	tc.Truncate("events")
	tc.Truncate("outbox")
	return &eventTest{
		tc:       tc,
		provider: NewProvider(tc.DB),
	}
}

func newTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func newEventRecord(id string, aggregateID string, version int64) model.Event {
	return model.Event{
		EventID:       id,
		AggregateType: model.AggregateTypeAccount,
		AggregateID:   aggregateID,
		EventType:     "TransactionCreated",
		Version:       version,
		Payload:       []byte(`{"amount": "10"}`),
		Metadata:      []byte(`{"actor_id": "user-1"}`),
		PrevHash:      "prev",
		Hash:          "hash-" + id,
		CreatedAt:     newTime("2024-01-15T10:00:00Z"),
	}
}

func TestEvent(t *testing.T) {
	tc := newEventTest()

	repo := NewEvent()

	//---------------------------------------
	// Get Head Of Empty Stream
	//---------------------------------------
	err := tc.provider.Transact(newContext(), func(ctx context.Context) error {
		head, err := repo.GetHead(ctx, "acc-1")
		assert.Equal(t, nil, err)
		assert.Equal(t, model.EventHead{}, head)
		return nil
	})
	assert.Equal(t, nil, err)

	//---------------------------------------
	// Insert
	//---------------------------------------
	err = tc.provider.Transact(newContext(), func(ctx context.Context) error {
		return repo.InsertEvents(ctx, []model.Event{
			newEventRecord("ev-1", "acc-1", 1),
			newEventRecord("ev-2", "acc-1", 2),
			newEventRecord("ev-3", "acc-2", 1),
		})
	})
	assert.Equal(t, nil, err)

	//---------------------------------------
	// Get Head
	//---------------------------------------
	err = tc.provider.Transact(newContext(), func(ctx context.Context) error {
		head, err := repo.GetHead(ctx, "acc-1")
		assert.Equal(t, nil, err)
		assert.Equal(t, model.EventHead{Version: 2, Hash: "hash-ev-2"}, head)
		return nil
	})
	assert.Equal(t, nil, err)

	//---------------------------------------
	// Get Events
	//---------------------------------------
	readCtx := tc.provider.Readonly(newContext())
	events, err := repo.GetEvents(readCtx, "acc-1", 2)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(events))
	assert.Equal(t, "ev-2", events[0].EventID)
	assert.Equal(t, int64(2), events[0].Version)
	assert.Equal(t, newTime("2024-01-15T10:00:00Z"), events[0].CreatedAt)
	assert.JSONEq(t, `{"amount": "10"}`, string(events[0].Payload))

	events, err = repo.GetEvents(readCtx, "acc-1", 1)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(events))
	assert.Equal(t, int64(1), events[0].Version)
	assert.Equal(t, int64(2), events[1].Version)

	//---------------------------------------
	// Scan Events
	//---------------------------------------
	events, err = repo.ScanEvents(readCtx, 0, 2)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(events))
	assert.Equal(t, "ev-1", events[0].EventID)
	assert.Equal(t, "ev-2", events[1].EventID)

	events, err = repo.ScanEvents(readCtx, events[1].Seq, 10)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(events))
	assert.Equal(t, "ev-3", events[0].EventID)
}

func TestEvent_InsertEvents__Duplicated_Version(t *testing.T) {
	tc := newEventTest()

	repo := NewEvent()

	err := tc.provider.Transact(newContext(), func(ctx context.Context) error {
		return repo.InsertEvents(ctx, []model.Event{
			newEventRecord("ev-1", "acc-1", 1),
		})
	})
	assert.Equal(t, nil, err)

	err = tc.provider.Transact(newContext(), func(ctx context.Context) error {
		return repo.InsertEvents(ctx, []model.Event{
			newEventRecord("ev-2", "acc-1", 1),
		})
	})
	assert.True(t, errors.Is(err, ErrDuplicateKey))
}
