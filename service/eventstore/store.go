package eventstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/QuangTung97/finledger/domain"
	"github.com/QuangTung97/finledger/model"
	"github.com/QuangTung97/finledger/pkg/otellib"
	"github.com/QuangTung97/finledger/pkg/util"
	"github.com/QuangTung97/finledger/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate moq -out store_mocks.go . IStore

// IStore is the append-only event log with its outbox
type IStore interface {
	// Append writes changes as versions expectedVersion+1.. and returns the new version
	Append(
		ctx context.Context, aggregateType model.AggregateType, aggregateID string,
		expectedVersion int64, changes []domain.Change,
	) (int64, error)

	// Load returns events with version >= fromVersion in version order
	Load(ctx context.Context, aggregateID string, fromVersion int64) ([]domain.Event, error)

	// Verify recomputes the hash chain of an aggregate
	Verify(ctx context.Context, aggregateID string) error

	// Scan returns events in global order after a sequence number
	Scan(ctx context.Context, afterSeq uint64, limit uint64) ([]domain.Event, error)
}

// Store ...
type Store struct {
	provider   repository.Provider
	eventRepo  repository.Event
	outboxRepo repository.Outbox

	hasher  *ChainHasher
	metrics *Metrics

	now   func() time.Time
	newID func() string
}

var _ IStore = &Store{}

// Option ...
type Option func(s *Store)

// WithClock ...
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator ...
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

// WithMetrics ...
func WithMetrics(m *Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

func newEventID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// NewStore ...
func NewStore(
	provider repository.Provider, eventRepo repository.Event, outboxRepo repository.Outbox,
	hasher *ChainHasher, options ...Option,
) *Store {
	s := &Store{
		provider:   provider,
		eventRepo:  eventRepo,
		outboxRepo: outboxRepo,

		hasher:  hasher,
		metrics: NewMetrics(),

		now:   time.Now,
		newID: newEventID,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

type appendBatch struct {
	events  []model.Event
	entries []model.OutboxEntry
}

func (s *Store) buildBatch(
	aggregateType model.AggregateType, aggregateID string,
	head model.EventHead, changes []domain.Change,
) (appendBatch, error) {
	createdAt := s.now().UTC().Truncate(time.Microsecond)
	shard := util.ShardOf(aggregateID, model.OutboxShardCount)

	batch := appendBatch{
		events:  make([]model.Event, 0, len(changes)),
		entries: make([]model.OutboxEntry, 0, len(changes)),
	}

	prevHash := head.Hash
	for i, c := range changes {
		version := head.Version + int64(i) + 1

		payload, err := domain.EncodePayload(c.Payload)
		if err != nil {
			return appendBatch{}, err
		}
		meta, err := domain.EncodeMetadata(c.Metadata)
		if err != nil {
			return appendBatch{}, err
		}

		record := model.Event{
			EventID:       s.newID(),
			AggregateType: aggregateType,
			AggregateID:   aggregateID,
			EventType:     string(c.Payload.EventType()),
			Version:       version,
			Payload:       payload,
			Metadata:      meta,
			PrevHash:      prevHash,
			CreatedAt:     createdAt,
		}
		record.Hash = s.hasher.Hash(hashInputOf(record))
		prevHash = record.Hash

		msg, err := domain.MarshalMessage(domain.Event{
			ID:            record.EventID,
			AggregateType: aggregateType,
			AggregateID:   aggregateID,
			Version:       version,
			Payload:       c.Payload,
			Metadata:      c.Metadata,
			CreatedAt:     createdAt,
		})
		if err != nil {
			return appendBatch{}, err
		}

		batch.events = append(batch.events, record)
		batch.entries = append(batch.entries, model.OutboxEntry{
			EventID:       record.EventID,
			AggregateType: aggregateType,
			AggregateID:   aggregateID,
			EventType:     record.EventType,
			Version:       version,
			Shard:         shard,
			Payload:       msg,
			CreatedAt:     createdAt,
		})
	}
	return batch, nil
}

func hashInputOf(r model.Event) HashInput {
	return HashInput{
		PrevHash:    r.PrevHash,
		AggregateID: r.AggregateID,
		Version:     r.Version,
		EventType:   r.EventType,
		Payload:     r.Payload,
		Metadata:    r.Metadata,
		CreatedAt:   r.CreatedAt,
	}
}

func validateChanges(aggregateType model.AggregateType, expectedVersion int64, changes []domain.Change) error {
	if len(changes) == 0 {
		return ErrNoChanges
	}
	if expectedVersion < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidExpectedVersion, expectedVersion)
	}
	for _, c := range changes {
		if c.Payload == nil {
			return fmt.Errorf("%w: nil payload", domain.ErrUnknownEventType)
		}
		if c.Payload.AggregateType() != aggregateType {
			return fmt.Errorf("%w: %s event for %s stream",
				ErrAggregateTypeMismatch, c.Payload.EventType(), aggregateType)
		}
	}
	return nil
}

// Append ...
func (s *Store) Append(
	ctx context.Context, aggregateType model.AggregateType, aggregateID string,
	expectedVersion int64, changes []domain.Change,
) (int64, error) {
	if err := validateChanges(aggregateType, expectedVersion, changes); err != nil {
		return 0, err
	}

	var batch appendBatch
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		head, err := s.eventRepo.GetHead(ctx, aggregateID)
		if err != nil {
			return err
		}
		if head.Version != expectedVersion {
			return &ConcurrencyConflictError{
				AggregateID: aggregateID,
				Expected:    expectedVersion,
				Actual:      head.Version,
			}
		}

		batch, err = s.buildBatch(aggregateType, aggregateID, head, changes)
		if err != nil {
			return err
		}

		if err := s.eventRepo.InsertEvents(ctx, batch.events); err != nil {
			return err
		}
		return s.outboxRepo.InsertOutboxEntries(ctx, batch.entries)
	})
	if err != nil {
		err = s.translateAppendError(aggregateID, expectedVersion, err)
		if errors.Is(err, ErrConcurrencyConflict) {
			s.metrics.conflicts.WithLabelValues(string(aggregateType)).Inc()
		}
		otellib.Extract(ctx).Warn("append failed",
			zap.String("aggregate_id", aggregateID),
			zap.Int64("expected_version", expectedVersion),
			zap.Error(err),
		)
		return 0, err
	}

	for _, e := range batch.events {
		s.metrics.appendedEvents.WithLabelValues(string(aggregateType), e.EventType).Inc()
	}

	newVersion := expectedVersion + int64(len(changes))
	otellib.Extract(ctx).Debug("events appended",
		zap.String("aggregate_id", aggregateID),
		zap.Int64("version", newVersion),
	)
	return newVersion, nil
}

func (s *Store) translateAppendError(aggregateID string, expectedVersion int64, err error) error {
	switch {
	case errors.Is(err, repository.ErrLockConflict):
		return fmt.Errorf("%w: %v", &ConcurrencyConflictError{
			AggregateID: aggregateID,
			Expected:    expectedVersion,
			Actual:      -1,
		}, err)
	case errors.Is(err, repository.ErrDuplicateKey):
		return fmt.Errorf("%w: %v", ErrDuplicateEvent, err)
	default:
		return err
	}
}

// Load ...
func (s *Store) Load(ctx context.Context, aggregateID string, fromVersion int64) ([]domain.Event, error) {
	if fromVersion < 1 {
		fromVersion = 1
	}
	records, err := s.eventRepo.GetEvents(s.provider.Readonly(ctx), aggregateID, fromVersion)
	if err != nil {
		return nil, err
	}
	return decodeRecords(records)
}

// Scan ...
func (s *Store) Scan(ctx context.Context, afterSeq uint64, limit uint64) ([]domain.Event, error) {
	records, err := s.eventRepo.ScanEvents(s.provider.Readonly(ctx), afterSeq, limit)
	if err != nil {
		return nil, err
	}
	return decodeRecords(records)
}

func decodeRecords(records []model.Event) ([]domain.Event, error) {
	events := make([]domain.Event, 0, len(records))
	for _, r := range records {
		e, err := domain.FromRecord(r)
		if err != nil {
			return nil, fmt.Errorf("event %s version %d: %w", r.AggregateID, r.Version, err)
		}
		events = append(events, e)
	}
	return events, nil
}

// Verify re-encodes each stored event into its canonical form because the
// database may normalize the stored JSON documents
func (s *Store) Verify(ctx context.Context, aggregateID string) error {
	records, err := s.eventRepo.GetEvents(s.provider.Readonly(ctx), aggregateID, 1)
	if err != nil {
		return err
	}

	prevHash := ""
	for i, r := range records {
		expectedVersion := int64(i) + 1
		if r.Version != expectedVersion {
			return &TamperedError{
				AggregateID: aggregateID,
				Version:     r.Version,
				Reason:      fmt.Sprintf("expected version %d", expectedVersion),
			}
		}
		if r.PrevHash != prevHash {
			return &TamperedError{AggregateID: aggregateID, Version: r.Version, Reason: "prev hash mismatch"}
		}

		canonical, err := canonicalRecord(r)
		if err != nil {
			return &TamperedError{AggregateID: aggregateID, Version: r.Version, Reason: err.Error()}
		}
		if s.hasher.Hash(hashInputOf(canonical)) != r.Hash {
			return &TamperedError{AggregateID: aggregateID, Version: r.Version, Reason: "hash mismatch"}
		}
		prevHash = r.Hash
	}
	return nil
}

func canonicalRecord(r model.Event) (model.Event, error) {
	e, err := domain.FromRecord(r)
	if err != nil {
		return model.Event{}, err
	}
	payload, err := domain.EncodePayload(e.Payload)
	if err != nil {
		return model.Event{}, err
	}
	meta, err := domain.EncodeMetadata(e.Metadata)
	if err != nil {
		return model.Event{}, err
	}
	r.Payload = payload
	r.Metadata = meta
	return r, nil
}
