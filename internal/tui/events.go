package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// eventQueue hands registry notifications to the program in the order they
// were raised. push never waits for the program loop.
type eventQueue struct {
	mu      sync.Mutex
	pending []tea.Msg
	wake    chan struct{}
}

func newEventQueue() *eventQueue {
	return &eventQueue{wake: make(chan struct{}, 1)}
}

func (q *eventQueue) push(msgs ...tea.Msg) {
	q.mu.Lock()
	q.pending = append(q.pending, msgs...)
	q.mu.Unlock()
	q.notify()
}

// pushSnapshot queues the messages built by snapshot while holding the queue,
// so notifications raised after the snapshot is taken land behind it.
func (q *eventQueue) pushSnapshot(snapshot func() []tea.Msg) {
	q.mu.Lock()
	q.pending = append(q.pending, snapshot()...)
	q.mu.Unlock()
	q.notify()
}

func (q *eventQueue) notify() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// forward delivers queued messages with send, one at a time, until ctx is
// done.
func (q *eventQueue) forward(ctx context.Context, send func(tea.Msg)) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-q.wake:
		}

		q.mu.Lock()
		batch := q.pending
		q.pending = nil
		q.mu.Unlock()

		for _, msg := range batch {
			if ctx.Err() != nil {
				return
			}
			send(msg)
		}
	}
}
