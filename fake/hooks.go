// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import "sync/atomic"

// RecordingHooks counts hook invocations and signals them on channels.
type RecordingHooks struct {
	Ticks atomic.Int64
	Softs atomic.Int64

	TickC chan struct{}
	SoftC chan struct{}
}

// NewRecordingHooks builds hooks with buffered signal channels.
func NewRecordingHooks() *RecordingHooks {
	return &RecordingHooks{
		TickC: make(chan struct{}, 64),
		SoftC: make(chan struct{}, 64),
	}
}

func (h *RecordingHooks) OnTimerTick() {
	h.Ticks.Add(1)
	select {
	case h.TickC <- struct{}{}:
	default:
	}
}

func (h *RecordingHooks) OnSoftIRQ() {
	h.Softs.Add(1)
	select {
	case h.SoftC <- struct{}{}:
	default:
	}
}
