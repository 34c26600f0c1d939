// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import (
	"sync"

	"github.com/momentics/hioload-irq/api"
)

// RecordingISR captures every invocation for assertions. C receives each
// serviced IRQ without blocking the dispatch loop.
type RecordingISR struct {
	mu    sync.Mutex
	calls []api.IRQ
	devs  []any

	// Err, when non-nil, is returned from every invocation.
	Err error

	C chan api.IRQ
}

// NewRecordingISR builds a RecordingISR with a buffered notify channel.
func NewRecordingISR() *RecordingISR {
	return &RecordingISR{C: make(chan api.IRQ, 64)}
}

func (r *RecordingISR) HandleIRQ(irq api.IRQ, dev any) error {
	r.mu.Lock()
	r.calls = append(r.calls, irq)
	r.devs = append(r.devs, dev)
	r.mu.Unlock()
	select {
	case r.C <- irq:
	default:
	}
	return r.Err
}

// Calls returns a copy of the recorded invocations.
func (r *RecordingISR) Calls() []api.IRQ {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]api.IRQ, len(r.calls))
	copy(out, r.calls)
	return out
}

// Devs returns the device contexts seen, in invocation order.
func (r *RecordingISR) Devs() []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]any, len(r.devs))
	copy(out, r.devs)
	return out
}
