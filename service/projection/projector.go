package projection

import (
	"context"
	"errors"

	"github.com/QuangTung97/finledger/domain"
	"github.com/QuangTung97/finledger/model"
)

var (
	// ErrProjectionGap when the event store can not fill the versions between a checkpoint and an event
	ErrProjectionGap = errors.New("projection gap")

	// ErrNotRebuildable ...
	ErrNotRebuildable = errors.New("projector can not be rebuilt")

	// ErrUnknownProjector ...
	ErrUnknownProjector = errors.New("unknown projector")
)

// Projector maintains one read model.
// Apply runs inside the transaction that advances the projector checkpoint.
type Projector interface {
	Name() string
	Handles(aggregateType model.AggregateType) bool
	Apply(ctx context.Context, e domain.Event) error
}

// Rebuilder is a projector whose rows of one aggregate are a function of that aggregate's stream only
type Rebuilder interface {
	Projector

	Rebuild(ctx context.Context, aggregateID string, events []domain.Event) error
	DeleteAll(ctx context.Context) error
}
