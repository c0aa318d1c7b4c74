package model

import "time"

// Event is a row of the append-only events table
type Event struct {
	Seq     uint64 `db:"seq"`
	EventID string `db:"event_id"`

	AggregateType AggregateType `db:"aggregate_type"`
	AggregateID   string        `db:"aggregate_id"`

	EventType string `db:"event_type"`
	Version   int64  `db:"version"`
	Payload   []byte `db:"payload"`
	Metadata  []byte `db:"metadata"`

	PrevHash string `db:"prev_hash"`
	Hash     string `db:"hash"`

	CreatedAt time.Time `db:"created_at"`
}

// EventHead is the latest version and chain hash of an aggregate stream
type EventHead struct {
	Version int64  `db:"version"`
	Hash    string `db:"hash"`
}

// AggregateType ...
type AggregateType string

const (
	// AggregateTypeAccount ...
	AggregateTypeAccount AggregateType = "Account"

	// AggregateTypeBudget ...
	AggregateTypeBudget AggregateType = "Budget"
)
