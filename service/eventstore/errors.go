package eventstore

import (
	"errors"
	"fmt"

	"github.com/QuangTung97/finledger/repository"
)

var (
	// ErrConcurrencyConflict when the expected version is not the current version of the stream
	ErrConcurrencyConflict = errors.New("concurrency conflict")

	// ErrDuplicateEvent when an event id or an (aggregate id, version) pair already exists
	ErrDuplicateEvent = errors.New("duplicate event")

	// ErrStoreUnavailable ...
	ErrStoreUnavailable = repository.ErrStoreUnavailable

	// ErrNoChanges ...
	ErrNoChanges = errors.New("no changes to append")

	// ErrInvalidExpectedVersion ...
	ErrInvalidExpectedVersion = errors.New("invalid expected version")

	// ErrAggregateTypeMismatch when a change does not belong to the aggregate type of the stream
	ErrAggregateTypeMismatch = errors.New("aggregate type mismatch")

	// ErrTampered when the stored hash chain does not match the recomputed one
	ErrTampered = errors.New("event chain tampered")
)

// ConcurrencyConflictError ...
type ConcurrencyConflictError struct {
	AggregateID string
	Expected    int64
	Actual      int64
}

func (e *ConcurrencyConflictError) Error() string {
	if e.Actual < 0 {
		return fmt.Sprintf("concurrency conflict on %s: expected version %d, lost a lock race",
			e.AggregateID, e.Expected)
	}
	return fmt.Sprintf("concurrency conflict on %s: expected version %d, actual %d",
		e.AggregateID, e.Expected, e.Actual)
}

// Is makes errors.Is(err, ErrConcurrencyConflict) true
func (e *ConcurrencyConflictError) Is(target error) bool {
	return target == ErrConcurrencyConflict
}

// TamperedError ...
type TamperedError struct {
	AggregateID string
	Version     int64
	Reason      string
}

func (e *TamperedError) Error() string {
	return fmt.Sprintf("event chain tampered on %s at version %d: %s", e.AggregateID, e.Version, e.Reason)
}

// Is makes errors.Is(err, ErrTampered) true
func (e *TamperedError) Is(target error) bool {
	return target == ErrTampered
}
