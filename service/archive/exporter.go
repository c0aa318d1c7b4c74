package archive

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/QuangTung97/finledger/domain"
	"github.com/QuangTung97/finledger/pkg/otellib"
	"github.com/QuangTung97/finledger/repository"
	"github.com/QuangTung97/finledger/service/eventstore"
	"go.uber.org/zap"
)

const (
	// CheckpointProjection is the projection_checkpoint row holding the last archived seq
	CheckpointProjection = "archive"

	checkpointAggregateID = "global"
)

// Config ...
type Config struct {
	Prefix    string
	BatchSize uint64
	Interval  time.Duration

	// SettleLag bounds how long a hole in seq may belong to an uncommitted append
	SettleLag time.Duration
}

// Exporter copies committed events in global order into the object store
type Exporter struct {
	provider repository.Provider
	repo     repository.Projection
	store    eventstore.IStore
	objects  ObjectStore

	conf  Config
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// Option ...
type Option func(e *Exporter)

// WithSleep ...
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(e *Exporter) {
		e.sleep = sleep
	}
}

// WithClock ...
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		e.now = now
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NewExporter ...
func NewExporter(
	provider repository.Provider, repo repository.Projection, store eventstore.IStore,
	objects ObjectStore, conf Config, options ...Option,
) *Exporter {
	if conf.BatchSize == 0 {
		conf.BatchSize = 1000
	}
	if conf.Interval <= 0 {
		conf.Interval = time.Minute
	}
	if conf.SettleLag <= 0 {
		conf.SettleLag = eventstore.DefaultSettleLag
	}
	e := &Exporter{
		provider: provider,
		repo:     repo,
		store:    store,
		objects:  objects,

		conf:  conf,
		now:   time.Now,
		sleep: sleepContext,
	}
	for _, opt := range options {
		opt(e)
	}
	return e
}

type objectGroup struct {
	name   string
	events []domain.Event
}

func (e *Exporter) objectName(first domain.Event, last domain.Event) string {
	day := first.CreatedAt.UTC()
	return path.Join(
		e.conf.Prefix,
		"events",
		strings.ToLower(string(first.AggregateType)),
		day.Format("2006"), day.Format("01"), day.Format("02"),
		fmt.Sprintf("%020d-%020d.ndjson.zst", first.Seq, last.Seq),
	)
}

// groupEvents splits events by aggregate type and UTC day, keeping seq order inside each group
func (e *Exporter) groupEvents(events []domain.Event) []objectGroup {
	type groupKey struct {
		aggregateType string
		day           string
	}

	index := map[groupKey]int{}
	var groups []objectGroup
	for _, ev := range events {
		key := groupKey{
			aggregateType: string(ev.AggregateType),
			day:           ev.CreatedAt.UTC().Format("2006-01-02"),
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, objectGroup{})
		}
		groups[i].events = append(groups[i].events, ev)
	}

	for i := range groups {
		g := groups[i].events
		groups[i].name = e.objectName(g[0], g[len(g)-1])
	}
	return groups
}

func (e *Exporter) getCursor(ctx context.Context) (uint64, error) {
	var cursor uint64
	err := e.provider.Transact(ctx, func(ctx context.Context) error {
		checkpoint, err := e.repo.GetCheckpoint(ctx, CheckpointProjection, checkpointAggregateID)
		if err != nil {
			return err
		}
		cursor = uint64(checkpoint.LastEventVersion)
		return nil
	})
	return cursor, err
}

func (e *Exporter) setCursor(ctx context.Context, seq uint64) error {
	return e.provider.Transact(ctx, func(ctx context.Context) error {
		checkpoint, err := e.repo.GetCheckpoint(ctx, CheckpointProjection, checkpointAggregateID)
		if err != nil {
			return err
		}
		if uint64(checkpoint.LastEventVersion) >= seq {
			return nil
		}
		checkpoint.LastEventVersion = int64(seq)
		checkpoint.UpdatedAt = e.now().UTC()
		return e.repo.UpsertCheckpoint(ctx, checkpoint)
	})
}

// ExportOnce archives one batch and returns the number of exported events.
// Object names depend only on the batch content so a batch retried after a crash overwrites the same objects.
func (e *Exporter) ExportOnce(ctx context.Context) (int, error) {
	cursor, err := e.getCursor(ctx)
	if err != nil {
		return 0, err
	}

	events, err := e.store.Scan(ctx, cursor, e.conf.BatchSize)
	if err != nil {
		return 0, err
	}
	events = eventstore.Settled(events, cursor, e.now(), e.conf.SettleLag)
	if len(events) == 0 {
		return 0, nil
	}

	for _, g := range e.groupEvents(events) {
		data, err := Encode(g.events)
		if err != nil {
			return 0, err
		}
		if err := e.objects.Put(ctx, g.name, ContentType, data); err != nil {
			return 0, err
		}
		otellib.Extract(ctx).Info("archived events",
			zap.String("object", g.name),
			zap.Int("count", len(g.events)),
		)
	}

	if err := e.setCursor(ctx, events[len(events)-1].Seq); err != nil {
		return 0, err
	}
	return len(events), nil
}

// Run exports until ctx is done, waiting the interval whenever the store is drained or an export fails
func (e *Exporter) Run(ctx context.Context) error {
	for {
		n, err := e.ExportOnce(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			otellib.Extract(ctx).Error("archive export", zap.Error(err))
		}

		if err != nil || uint64(n) < e.conf.BatchSize {
			if err := e.sleep(ctx, e.conf.Interval); err != nil {
				return nil
			}
		}
	}
}
