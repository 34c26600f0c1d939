// File: softirq/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Deferred-work queue behind the reserved soft interrupt. Drivers push
// follow-up work out of their ISRs here; the dispatch loop drains it
// through the OnSoftIRQ hook, so deferred jobs still execute on the single
// dispatch thread with full ordering guarantees.

package softirq

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-irq/api"
)

// Queue is a FIFO of deferred jobs coupled to a Raiser. Schedule enqueues
// a job and raises the soft interrupt; Drain is intended to be wired as
// the consumer's OnSoftIRQ hook.
type Queue struct {
	mu       sync.Mutex
	jobs     *queue.Queue
	raiser   api.Raiser
	capacity int // 0 means unbounded
}

// New creates a deferred-work queue. capacity <= 0 leaves it unbounded.
func New(raiser api.Raiser, capacity int) *Queue {
	return &Queue{
		jobs:     queue.New(),
		raiser:   raiser,
		capacity: capacity,
	}
}

// Schedule enqueues a job and raises IRQSoftIRQ. Safe from any goroutine,
// including from inside an ISR. Multiple schedules before the soft
// interrupt is serviced coalesce into one drain that runs them all.
func (q *Queue) Schedule(fn func()) error {
	if fn == nil {
		return nil
	}
	q.mu.Lock()
	if q.capacity > 0 && q.jobs.Length() >= q.capacity {
		q.mu.Unlock()
		return api.ErrQueueSaturated
	}
	q.jobs.Add(fn)
	q.mu.Unlock()
	return q.raiser.Raise(api.IRQSoftIRQ)
}

// Drain runs every queued job in FIFO order. Jobs execute outside the
// queue lock, so a job may Schedule more work; anything enqueued during a
// drain is picked up before Drain returns.
func (q *Queue) Drain() {
	for {
		q.mu.Lock()
		if q.jobs.Length() == 0 {
			q.mu.Unlock()
			return
		}
		fn := q.jobs.Remove().(func())
		q.mu.Unlock()
		fn()
	}
}

// Len reports the number of jobs waiting.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.jobs.Length()
}
