package membus

import (
	"context"
	"errors"
	"sync"

	"github.com/QuangTung97/finledger/pkg/bus"
	"github.com/QuangTung97/finledger/pkg/util"
)

// ErrClosed ...
var ErrClosed = errors.New("membus: closed")

// Bus is an in process partitioned bus, messages are routed to a partition by key.
// A single subscriber consumes every partition, one goroutine per partition.
// Messages live only in memory, a published message is lost if the process stops before it is handled.
type Bus struct {
	partitions []*partition

	closeOnce sync.Once
	closed    chan struct{}
}

type partition struct {
	ch chan bus.Message

	mut     sync.Mutex
	pending []bus.Message
}

var _ bus.Publisher = &Bus{}
var _ bus.Subscriber = &Bus{}

// New ...
func New(numPartitions int, bufferSize int) *Bus {
	if numPartitions <= 0 {
		numPartitions = 1
	}
	partitions := make([]*partition, 0, numPartitions)
	for i := 0; i < numPartitions; i++ {
		partitions = append(partitions, &partition{
			ch: make(chan bus.Message, bufferSize),
		})
	}
	return &Bus{
		partitions: partitions,
		closed:     make(chan struct{}),
	}
}

func (b *Bus) partitionOf(key string) *partition {
	index := util.ShardOf(key, uint32(len(b.partitions)))
	return b.partitions[index]
}

// Publish blocks while the partition buffer is full.
// It returns once the message is queued, not when it has been handled.
func (b *Bus) Publish(ctx context.Context, msg bus.Message) error {
	p := b.partitionOf(msg.Key)
	select {
	case <-b.closed:
		return ErrClosed
	default:
	}

	select {
	case p.ch <- msg:
		return nil
	case <-b.closed:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Subscribe ...
func (b *Bus) Subscribe(ctx context.Context, handler bus.Handler) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	var errOnce sync.Once
	var firstErr error

	wg.Add(len(b.partitions))
	for _, p := range b.partitions {
		p := p
		go func() {
			defer wg.Done()

			err := b.consume(ctx, p, handler)
			if err != nil {
				errOnce.Do(func() {
					firstErr = err
					cancel()
				})
			}
		}()
	}
	wg.Wait()

	return firstErr
}

func (b *Bus) consume(ctx context.Context, p *partition, handler bus.Handler) error {
	for {
		msg, ok := p.next(ctx, b.closed)
		if !ok {
			return nil
		}
		if err := handler(ctx, msg); err != nil {
			p.pushFront(msg)
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
	}
}

func (p *partition) next(ctx context.Context, closed <-chan struct{}) (bus.Message, bool) {
	p.mut.Lock()
	if len(p.pending) > 0 {
		msg := p.pending[0]
		p.pending = p.pending[1:]
		p.mut.Unlock()
		return msg, true
	}
	p.mut.Unlock()

	select {
	case msg := <-p.ch:
		return msg, true
	case <-closed:
		return bus.Message{}, false
	case <-ctx.Done():
		return bus.Message{}, false
	}
}

func (p *partition) pushFront(msg bus.Message) {
	p.mut.Lock()
	defer p.mut.Unlock()
	p.pending = append([]bus.Message{msg}, p.pending...)
}

// Close ...
func (b *Bus) Close() error {
	b.closeOnce.Do(func() {
		close(b.closed)
	})
	return nil
}
