package membus

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/QuangTung97/finledger/pkg/bus"
	"github.com/stretchr/testify/assert"
)

func newContext() context.Context {
	return context.Background()
}

type recorder struct {
	mut      sync.Mutex
	received map[string][]string
	total    int
	done     chan struct{}
	expected int
}

func newRecorder(expected int) *recorder {
	return &recorder{
		received: map[string][]string{},
		done:     make(chan struct{}),
		expected: expected,
	}
}

func (r *recorder) handle(_ context.Context, msg bus.Message) error {
	r.mut.Lock()
	defer r.mut.Unlock()

	r.received[msg.Key] = append(r.received[msg.Key], string(msg.Value))
	r.total++
	if r.total == r.expected {
		close(r.done)
	}
	return nil
}

func TestBus__Per_Key_Order(t *testing.T) {
	b := New(4, 100)

	keys := []string{"acc-1", "acc-2", "acc-3"}
	for i := 1; i <= 10; i++ {
		for _, key := range keys {
			err := b.Publish(newContext(), bus.Message{
				Topic: "finance.account.events",
				Key:   key,
				Value: []byte(fmt.Sprintf("%d", i)),
			})
			assert.Equal(t, nil, err)
		}
	}

	r := newRecorder(30)

	ctx, cancel := context.WithCancel(newContext())
	errCh := make(chan error, 1)
	go func() {
		errCh <- b.Subscribe(ctx, r.handle)
	}()

	select {
	case <-r.done:
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for messages")
	}
	cancel()
	assert.Equal(t, nil, <-errCh)

	for _, key := range keys {
		assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}, r.received[key])
	}
}

func TestBus__Handler_Error__Redelivered_On_Next_Subscribe(t *testing.T) {
	b := New(1, 10)

	for _, v := range []string{"a", "b"} {
		err := b.Publish(newContext(), bus.Message{Key: "acc-1", Value: []byte(v)})
		assert.Equal(t, nil, err)
	}

	handlerErr := errors.New("handler error")
	err := b.Subscribe(newContext(), func(ctx context.Context, msg bus.Message) error {
		return handlerErr
	})
	assert.Equal(t, handlerErr, err)

	r := newRecorder(2)
	ctx, cancel := context.WithCancel(newContext())
	errCh := make(chan error, 1)
	go func() {
		errCh <- b.Subscribe(ctx, r.handle)
	}()

	select {
	case <-r.done:
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for messages")
	}
	cancel()
	assert.Equal(t, nil, <-errCh)

	assert.Equal(t, []string{"a", "b"}, r.received["acc-1"])
}

func TestBus__Publish_After_Close(t *testing.T) {
	b := New(2, 0)
	assert.Equal(t, nil, b.Close())
	assert.Equal(t, nil, b.Close())

	err := b.Publish(newContext(), bus.Message{Key: "acc-1"})
	assert.Equal(t, ErrClosed, err)

	err = b.Subscribe(newContext(), func(ctx context.Context, msg bus.Message) error {
		return nil
	})
	assert.Equal(t, nil, err)
}

func TestBus__Publish_Context_Cancelled(t *testing.T) {
	b := New(1, 0)

	ctx, cancel := context.WithCancel(newContext())
	cancel()

	err := b.Publish(ctx, bus.Message{Key: "acc-1"})
	assert.Equal(t, context.Canceled, err)
}

func TestBus__Publish_Returns_Once_Queued(t *testing.T) {
	b := New(1, 2)

	// nothing consumes the bus, the messages only sit in the partition buffer
	for i := 0; i < 2; i++ {
		err := b.Publish(newContext(), bus.Message{Key: "acc-1", Value: []byte(fmt.Sprintf("%d", i))})
		assert.Equal(t, nil, err)
	}
	assert.Equal(t, 2, len(b.partitions[0].ch))

	// the buffer is full, the next publish waits for a consumer
	ctx, cancel := context.WithTimeout(newContext(), 10*time.Millisecond)
	defer cancel()
	err := b.Publish(ctx, bus.Message{Key: "acc-1"})
	assert.Equal(t, context.DeadlineExceeded, err)
}
