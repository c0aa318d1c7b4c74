package eventstore

import (
	"time"

	"github.com/QuangTung97/finledger/domain"
)

// DefaultSettleLag must exceed the longest append transaction, lock waits included
const DefaultSettleLag = 2 * time.Minute

// Settled returns the prefix of a Scan result that no transaction in flight can still extend.
// Seq is allocated at insert and becomes visible at commit, so a hole in seq may be filled later.
// A hole is accepted as permanent only when the event after it is older than lag.
func Settled(events []domain.Event, afterSeq uint64, now time.Time, lag time.Duration) []domain.Event {
	next := afterSeq + 1
	for i, e := range events {
		if e.Seq != next && now.Sub(e.CreatedAt) < lag {
			return events[:i]
		}
		next = e.Seq + 1
	}
	return events
}
