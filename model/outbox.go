package model

import (
	"database/sql"
	"time"
)

// OutboxEntry is a pending or delivered bus message, one per committed event
type OutboxEntry struct {
	ID      uint64 `db:"id"`
	EventID string `db:"event_id"`

	AggregateType AggregateType `db:"aggregate_type"`
	AggregateID   string        `db:"aggregate_id"`
	EventType     string        `db:"event_type"`
	Version       int64         `db:"version"`
	Shard         uint32        `db:"shard"`

	Payload []byte `db:"payload"`

	CreatedAt   time.Time    `db:"created_at"`
	PublishedAt sql.NullTime `db:"published_at"`

	AttemptCount int    `db:"attempt_count"`
	LastError    string `db:"last_error"`
}

// OutboxShardCount is the number of shards an aggregate id is hashed into
const OutboxShardCount = 256

// OutboxPartition selects shards with shard % Count = Index
type OutboxPartition struct {
	Index uint32
	Count uint32
}
