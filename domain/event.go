package domain

import (
	"time"

	"github.com/QuangTung97/finledger/model"
)

// EventType is the past-tense name of a domain fact
type EventType string

const (
	// EventTypeAccountCreated ...
	EventTypeAccountCreated EventType = "AccountCreated"

	// EventTypeTransactionCreated ...
	EventTypeTransactionCreated EventType = "TransactionCreated"

	// EventTypeTransactionCategorized ...
	EventTypeTransactionCategorized EventType = "TransactionCategorized"

	// EventTypeAccountRenamed ...
	EventTypeAccountRenamed EventType = "AccountRenamed"

	// EventTypeOverdraftLimitSet ...
	EventTypeOverdraftLimitSet EventType = "OverdraftLimitSet"

	// EventTypeAccountClosed ...
	EventTypeAccountClosed EventType = "AccountClosed"

	// EventTypeBudgetCreated ...
	EventTypeBudgetCreated EventType = "BudgetCreated"

	// EventTypeBudgetUpdated ...
	EventTypeBudgetUpdated EventType = "BudgetUpdated"

	// EventTypeBudgetThresholdExceeded ...
	EventTypeBudgetThresholdExceeded EventType = "BudgetThresholdExceeded"

	// EventTypeBudgetExceeded ...
	EventTypeBudgetExceeded EventType = "BudgetExceeded"
)

// Payload is the data of one event kind. The set of implementations is closed:
// only types of this package can satisfy it.
type Payload interface {
	EventType() EventType
	AggregateType() model.AggregateType

	sealed()
}

// Metadata is attached to every event for tracing and audit
type Metadata struct {
	ActorID       string `json:"actor_id,omitempty"`
	UserID        string `json:"user_id,omitempty"`
	CorrelationID string `json:"correlation_id,omitempty"`
	CausationID   string `json:"causation_id,omitempty"`
	SchemaVersion int    `json:"schema_version"`
}

// Change is an event that has been decided but not yet appended
type Change struct {
	Payload  Payload
	Metadata Metadata
}

// Event is a committed, decoded event
type Event struct {
	ID            string
	Seq           uint64
	AggregateType model.AggregateType
	AggregateID   string
	Version       int64
	Payload       Payload
	Metadata      Metadata
	CreatedAt     time.Time
}

// Type returns the event type of the payload
func (e Event) Type() EventType {
	return e.Payload.EventType()
}

// NewChanges wraps payloads that share the same metadata
func NewChanges(meta Metadata, payloads ...Payload) []Change {
	changes := make([]Change, 0, len(payloads))
	for _, p := range payloads {
		changes = append(changes, Change{
			Payload:  p,
			Metadata: meta,
		})
	}
	return changes
}
