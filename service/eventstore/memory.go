package eventstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/QuangTung97/finledger/domain"
	"github.com/QuangTung97/finledger/model"
)

// MemoryStore keeps streams in process memory with the same version rules as Store.
// Used by tests and the benchmark command.
type MemoryStore struct {
	mut    sync.Mutex
	byAgg  map[string][]domain.Event
	global []domain.Event
	seq    uint64

	now func() time.Time
}

var _ IStore = &MemoryStore{}

// NewMemoryStore ...
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byAgg: map[string][]domain.Event{},
		now:   time.Now,
	}
}

// Append ...
func (s *MemoryStore) Append(
	_ context.Context, aggregateType model.AggregateType, aggregateID string,
	expectedVersion int64, changes []domain.Change,
) (int64, error) {
	if err := validateChanges(aggregateType, expectedVersion, changes); err != nil {
		return 0, err
	}

	s.mut.Lock()
	defer s.mut.Unlock()

	stream := s.byAgg[aggregateID]
	actual := int64(len(stream))
	if actual != expectedVersion {
		return 0, &ConcurrencyConflictError{
			AggregateID: aggregateID,
			Expected:    expectedVersion,
			Actual:      actual,
		}
	}

	createdAt := s.now().UTC()
	for i, c := range changes {
		s.seq++
		e := domain.Event{
			ID:            fmt.Sprintf("mem-%d", s.seq),
			Seq:           s.seq,
			AggregateType: aggregateType,
			AggregateID:   aggregateID,
			Version:       expectedVersion + int64(i) + 1,
			Payload:       c.Payload,
			Metadata:      c.Metadata,
			CreatedAt:     createdAt,
		}
		stream = append(stream, e)
		s.global = append(s.global, e)
	}
	s.byAgg[aggregateID] = stream
	return expectedVersion + int64(len(changes)), nil
}

// Load ...
func (s *MemoryStore) Load(_ context.Context, aggregateID string, fromVersion int64) ([]domain.Event, error) {
	if fromVersion < 1 {
		fromVersion = 1
	}

	s.mut.Lock()
	defer s.mut.Unlock()

	stream := s.byAgg[aggregateID]
	if fromVersion > int64(len(stream)) {
		return nil, nil
	}
	result := make([]domain.Event, len(stream)-int(fromVersion-1))
	copy(result, stream[fromVersion-1:])
	return result, nil
}

// Verify always succeeds, memory streams are not hashed
func (s *MemoryStore) Verify(context.Context, string) error {
	return nil
}

// Scan ...
func (s *MemoryStore) Scan(_ context.Context, afterSeq uint64, limit uint64) ([]domain.Event, error) {
	s.mut.Lock()
	defer s.mut.Unlock()

	var result []domain.Event
	for _, e := range s.global {
		if e.Seq <= afterSeq {
			continue
		}
		if uint64(len(result)) >= limit {
			break
		}
		result = append(result, e)
	}
	return result, nil
}
