package archive

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/QuangTung97/finledger/domain"
	"github.com/QuangTung97/finledger/model"
	"github.com/QuangTung97/finledger/repository"
	"github.com/QuangTung97/finledger/service/eventstore"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() context.Context {
	return context.Background()
}

func newTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func newEvent(seq uint64, aggregateType model.AggregateType, createdAt string) domain.Event {
	var payload domain.Payload = domain.TransactionCreated{
		TransactionID:   "tx-1",
		UserID:          "user-1",
		Amount:          decimal.RequireFromString("12.3456"),
		Currency:        domain.CurrencyUSD,
		TransactionType: domain.TransactionTypeDebit,
		TransactionDate: newTime(createdAt),
	}
	if aggregateType == model.AggregateTypeBudget {
		payload = domain.BudgetUpdated{
			OldLimit: decimal.NewFromInt(10),
			NewLimit: decimal.NewFromInt(20),
		}
	}
	return domain.Event{
		ID:            fmt.Sprintf("event-%d", seq),
		Seq:           seq,
		AggregateType: aggregateType,
		AggregateID:   "agg-1",
		Version:       int64(seq),
		Payload:       payload,
		Metadata:      domain.Metadata{ActorID: "user-1", SchemaVersion: 1},
		CreatedAt:     newTime(createdAt),
	}
}

type exporterTest struct {
	provider *repository.ProviderMock
	repo     *repository.ProjectionMock
	store    *eventstore.IStoreMock
	objects  *ObjectStoreMock

	cursor   int64
	stored   map[string][]byte
	sleeps   []time.Duration
	exporter *Exporter
}

func newExporterTest(events []domain.Event) *exporterTest {
	et := &exporterTest{
		stored: map[string][]byte{},
	}
	et.provider = &repository.ProviderMock{
		TransactFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
	et.repo = &repository.ProjectionMock{
		GetCheckpointFunc: func(
			ctx context.Context, projection string, aggregateID string,
		) (model.ProjectionCheckpoint, error) {
			return model.ProjectionCheckpoint{
				Projection:       projection,
				AggregateID:      aggregateID,
				LastEventVersion: et.cursor,
			}, nil
		},
		UpsertCheckpointFunc: func(ctx context.Context, checkpoint model.ProjectionCheckpoint) error {
			et.cursor = checkpoint.LastEventVersion
			return nil
		},
	}
	et.store = &eventstore.IStoreMock{
		ScanFunc: func(ctx context.Context, afterSeq uint64, limit uint64) ([]domain.Event, error) {
			var result []domain.Event
			for _, e := range events {
				if e.Seq > afterSeq && uint64(len(result)) < limit {
					result = append(result, e)
				}
			}
			return result, nil
		},
	}
	et.objects = &ObjectStoreMock{
		PutFunc: func(ctx context.Context, name string, contentType string, data []byte) error {
			et.stored[name] = data
			return nil
		},
	}
	et.exporter = NewExporter(et.provider, et.repo, et.store, et.objects, Config{
		Prefix:    "ledger",
		BatchSize: 3,
		Interval:  time.Minute,
	}, WithSleep(func(ctx context.Context, d time.Duration) error {
		et.sleeps = append(et.sleeps, d)
		return nil
	}))
	return et
}

func TestExporter_ExportOnce_Groups_By_Type_And_Day(t *testing.T) {
	et := newExporterTest([]domain.Event{
		newEvent(1, model.AggregateTypeAccount, "2026-03-01T10:00:00Z"),
		newEvent(2, model.AggregateTypeBudget, "2026-03-01T11:00:00Z"),
		newEvent(3, model.AggregateTypeAccount, "2026-03-01T23:59:00Z"),
		newEvent(4, model.AggregateTypeAccount, "2026-03-02T00:01:00Z"),
	})

	n, err := et.exporter.ExportOnce(newContext())
	assert.Equal(t, nil, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, int64(3), et.cursor)

	calls := et.objects.PutCalls()
	require.Equal(t, 2, len(calls))
	assert.Equal(t, "ledger/events/account/2026/03/01/00000000000000000001-00000000000000000003.ndjson.zst", calls[0].Name)
	assert.Equal(t, "ledger/events/budget/2026/03/01/00000000000000000002-00000000000000000002.ndjson.zst", calls[1].Name)
	assert.Equal(t, ContentType, calls[0].ContentType)

	events, err := Decode(calls[0].Data)
	assert.Equal(t, nil, err)
	require.Equal(t, 2, len(events))
	assert.Equal(t, uint64(1), events[0].Seq)
	assert.Equal(t, uint64(3), events[1].Seq)
	tx := events[0].Payload.(domain.TransactionCreated)
	assert.True(t, decimal.RequireFromString("12.3456").Equal(tx.Amount))

	// next batch starts after the cursor
	n, err = et.exporter.ExportOnce(newContext())
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, int64(4), et.cursor)
	assert.Equal(t, "ledger/events/account/2026/03/02/00000000000000000004-00000000000000000004.ndjson.zst",
		et.objects.PutCalls()[2].Name)

	n, err = et.exporter.ExportOnce(newContext())
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 3, len(et.objects.PutCalls()))
}

func TestExporter_ExportOnce_Put_Error_Keeps_Cursor(t *testing.T) {
	et := newExporterTest([]domain.Event{
		newEvent(1, model.AggregateTypeAccount, "2026-03-01T10:00:00Z"),
	})
	et.objects.PutFunc = func(ctx context.Context, name string, contentType string, data []byte) error {
		return errors.New("bucket unavailable")
	}

	n, err := et.exporter.ExportOnce(newContext())
	assert.Equal(t, errors.New("bucket unavailable"), err)
	assert.Equal(t, 0, n)
	assert.Equal(t, int64(0), et.cursor)
	assert.Equal(t, 0, len(et.repo.UpsertCheckpointCalls()))
}

func TestExporter_Run(t *testing.T) {
	et := newExporterTest([]domain.Event{
		newEvent(1, model.AggregateTypeAccount, "2026-03-01T10:00:00Z"),
		newEvent(2, model.AggregateTypeAccount, "2026-03-01T10:00:01Z"),
		newEvent(3, model.AggregateTypeAccount, "2026-03-01T10:00:02Z"),
		newEvent(4, model.AggregateTypeAccount, "2026-03-01T10:00:03Z"),
	})

	ctx, cancel := context.WithCancel(newContext())
	defer cancel()

	et.exporter.sleep = func(ctx context.Context, d time.Duration) error {
		et.sleeps = append(et.sleeps, d)
		cancel()
		return ctx.Err()
	}

	err := et.exporter.Run(ctx)
	assert.Equal(t, nil, err)

	// a full batch is followed directly by the next one
	assert.Equal(t, []time.Duration{time.Minute}, et.sleeps)
	assert.Equal(t, int64(4), et.cursor)
	assert.Equal(t, 2, len(et.objects.PutCalls()))
}

func TestExporter_ExportOnce_Waits_For_Recent_Seq_Hole(t *testing.T) {
	visible := []domain.Event{
		newEvent(1, model.AggregateTypeAccount, "2026-03-01T09:00:00Z"),
		newEvent(3, model.AggregateTypeAccount, "2026-03-01T10:00:00Z"),
	}
	et := newExporterTest(nil)
	et.store.ScanFunc = func(ctx context.Context, afterSeq uint64, limit uint64) ([]domain.Event, error) {
		var result []domain.Event
		for _, e := range visible {
			if e.Seq > afterSeq && uint64(len(result)) < limit {
				result = append(result, e)
			}
		}
		return result, nil
	}
	now := newTime("2026-03-01T10:00:30Z")
	et.exporter.now = func() time.Time { return now }

	// seq 2 is allocated but not committed yet
	n, err := et.exporter.ExportOnce(newContext())
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, int64(1), et.cursor)

	n, err = et.exporter.ExportOnce(newContext())
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, int64(1), et.cursor)

	// the append owning seq 2 commits later
	visible = []domain.Event{
		visible[0],
		newEvent(2, model.AggregateTypeAccount, "2026-03-01T09:59:59Z"),
		visible[1],
	}
	n, err = et.exporter.ExportOnce(newContext())
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, int64(3), et.cursor)

	calls := et.objects.PutCalls()
	require.Equal(t, 2, len(calls))
	events, err := Decode(calls[1].Data)
	assert.Equal(t, nil, err)
	require.Equal(t, 2, len(events))
	assert.Equal(t, uint64(2), events[0].Seq)
	assert.Equal(t, uint64(3), events[1].Seq)
}

func TestExporter_ExportOnce_Skips_Old_Seq_Hole(t *testing.T) {
	et := newExporterTest([]domain.Event{
		newEvent(1, model.AggregateTypeAccount, "2026-03-01T09:00:00Z"),
		newEvent(3, model.AggregateTypeAccount, "2026-03-01T09:00:01Z"),
	})
	et.exporter.now = func() time.Time { return newTime("2026-03-01T10:00:00Z") }

	// a rolled back append leaves seq 2 empty forever
	n, err := et.exporter.ExportOnce(newContext())
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, int64(3), et.cursor)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode([]byte("not zstd"))
	assert.Error(t, err)
}
