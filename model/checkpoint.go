package model

import "time"

// ProjectionCheckpoint stores the last applied version of one aggregate for one projection
type ProjectionCheckpoint struct {
	Projection       string    `db:"projection"`
	AggregateID      string    `db:"aggregate_id"`
	LastEventVersion int64     `db:"last_event_version"`
	UpdatedAt        time.Time `db:"updated_at"`
}
